/*
 * write.go, part of gosimm.
 *
 *
 * Copyright 2024 Raul Mera <rmeraa{at}academicos(dot)uta(dot)cl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package ff

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

func qerr(err error) {
	if err != nil {
		panic(err)
	}
}

// num formats v with the fewest digits that read back as the same value.
func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Write writes the catalog in the text format Fill reads, using
// sigma/epsilon for the Lennard-Jones columns.
func (C *Catalog) Write(w io.StringWriter) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = fmt.Errorf("%v", r)
		}
	}()
	ws := func(s string) {
		_, err := w.WriteString(s)
		qerr(err)
	}
	ws(sf("; %s\n[ defaults ]\nsigma-epsilon\n", C.Name))
	if len(C.plist) > 0 {
		ws("\n[ atomtypes ]\n; name  element  mass  charge  sigma  epsilon\n")
		for _, t := range C.plist {
			ws(sf("%-6s %-3s %9s %8s %12s %12s", t.Name, t.Element, num(t.Mass), num(t.Charge), num(t.Sigma), num(t.Epsilon)))
			if t.Desc != "" {
				ws(" ; " + t.Desc)
			}
			ws("\n")
		}
	}
	if len(C.blist) > 0 {
		ws("\n[ bondtypes ]\n; a  b  k  r0\n")
		for _, t := range C.blist {
			ws(sf("%-6s %-6s %9s %8s\n", t.Names[0], t.Names[1], num(t.K), num(t.R0)))
		}
	}
	if len(C.alist) > 0 {
		ws("\n[ angletypes ]\n; a  b  c  k  theta0\n")
		for _, t := range C.alist {
			ws(sf("%-6s %-6s %-6s %8s %8s\n", t.Names[0], t.Names[1], t.Names[2], num(t.K), num(t.Theta0)))
		}
	}
	if len(C.dlist) > 0 {
		ws("\n[ dihedraltypes ]\n; a  b  c  d  k  n  phase\n")
		for _, t := range C.dlist {
			ws(sf("%-6s %-6s %-6s %-6s %8s %2d %7s\n", t.Names[0], t.Names[1], t.Names[2], t.Names[3], num(t.K), t.Multiplicity, num(t.Phase)))
		}
	}
	if len(C.ilist) > 0 {
		ws("\n[ impropertypes ]\n; center  n1  n2  n3  k  n  phase\n")
		for _, t := range C.ilist {
			ws(sf("%-6s %-6s %-6s %-6s %8s %2d %7s\n", t.Names[0], t.Names[1], t.Names[2], t.Names[3], num(t.K), t.Multiplicity, num(t.Phase)))
		}
	}
	return nil
}

// WriteCatalogFile writes C to the file at path, compressing it if the
// file name ends in .zst or .gz.
func WriteCatalogFile(C *Catalog, path string) error {
	f, err := createCatalog(path)
	if err != nil {
		return err
	}
	b := bufio.NewWriter(f)
	if err = C.Write(b); err != nil {
		f.Close()
		return err
	}
	if err = b.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
