/*
 * read.go, part of gosimm.
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
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"

	"github.com/rmera/scu"
)

var fi = strings.Fields
var sf = fmt.Sprintf

// StringReader is the reading interface Fill needs. *bufio.Reader implements it.
type StringReader interface {
	ReadString(delim byte) (string, error)
}

const maxIncludeDepth = 16

// cond keeps track of the #ifdef/#ifndef/#else/#endif blocks we are in.
type cond struct {
	stack []bool
}

func (c *cond) reading() bool {
	for _, v := range c.stack {
		if !v {
			return false
		}
	}
	return true
}

// directive handles a conditional directive. It returns true if
// line was one.
func (c *cond) directive(line string, defines map[string]bool) (bool, error) {
	f := fi(line)
	switch f[0] {
	case "#ifdef", "#ifndef":
		if len(f) < 2 {
			return true, fmt.Errorf("%s without a name", f[0])
		}
		v := defines[f[1]]
		if f[0] == "#ifndef" {
			v = !v
		}
		c.stack = append(c.stack, v)
	case "#else":
		if len(c.stack) == 0 {
			return true, errors.New("#else without #ifdef")
		}
		c.stack[len(c.stack)-1] = !c.stack[len(c.stack)-1]
	case "#endif":
		if len(c.stack) == 0 {
			return true, errors.New("#endif without #ifdef")
		}
		c.stack = c.stack[:len(c.stack)-1]
	default:
		return false, nil
	}
	return true, nil
}

// reader holds the state of a reading, shared with the included files.
type reader struct {
	C       *Catalog
	follow  bool
	defines map[string]bool
	h       *sectionHeader
	depth   int
}

func newReader(C *Catalog, followIncludes bool, defines []string) *reader {
	rd := &reader{C: C, follow: followIncludes, defines: make(map[string]bool), h: newSectionHeader()}
	for _, v := range defines {
		rd.defines[v] = true
	}
	return rd
}

// Fill adds to the receiver the types in r, which must be in the catalog
// text format. Names in defines are taken as #define'd. If followIncludes
// is true, #include'd files are read too, with paths relative to the
// working directory.
func (C *Catalog) Fill(r StringReader, followIncludes bool, defines ...string) error {
	rd := newReader(C, followIncludes, defines)
	return rd.fill(r, C.Name, ".")
}

// ReadCatalog returns a new catalog with the given name and the types in r.
func ReadCatalog(r io.Reader, name string, followIncludes bool, defines ...string) (*Catalog, error) {
	C := NewCatalog(name)
	if err := C.Fill(bufio.NewReader(r), followIncludes, defines...); err != nil {
		return nil, err
	}
	return C, nil
}

// ReadCatalogFile returns a new catalog with the types in the file at path.
// Files ending in .zst or .gz are decompressed. Included files are looked
// for relative to the file that includes them.
func ReadCatalogFile(path string, followIncludes bool, defines ...string) (*Catalog, error) {
	C := NewCatalog(catalogName(path))
	rd := newReader(C, followIncludes, defines)
	if err := rd.fillFile(path); err != nil {
		return nil, err
	}
	return C, nil
}

// catalogName returns the file name without directory and extensions.
func catalogName(path string) string {
	base := filepath.Base(path)
	if i := strings.Index(base, "."); i > 0 {
		return base[:i]
	}
	return base
}

func (rd *reader) fillFile(path string) error {
	f, err := openCatalog(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return rd.fill(bufio.NewReader(f), path, filepath.Dir(path))
}

func (rd *reader) fill(r StringReader, name, dir string) error {
	section := ""
	cnd := new(cond)
	perr := func(lineno int, line string, err error) error {
		return &ParseError{File: name, Line: lineno, Section: section, Text: line, Err: err, deco: []string{"Fill"}}
	}
	for lineno := 1; ; lineno++ {
		s, rerr := r.ReadString('\n')
		line := cleanString(s)
		if line != "" {
			var err error
			section, err = rd.line(s, line, section, cnd, dir)
			if err != nil {
				return perr(lineno, line, err)
			}
		}
		if rerr != nil {
			if errors.Is(rerr, io.EOF) {
				break
			}
			return perr(lineno, line, rerr)
		}
	}
	if len(cnd.stack) != 0 {
		return perr(0, "", errors.New("unterminated #ifdef block"))
	}
	return nil
}

// line processes one non-empty, comment-free line and returns the
// section that is current after it.
func (rd *reader) line(raw, line, section string, cnd *cond, dir string) (string, error) {
	if strings.HasPrefix(line, "#") {
		isCond, err := cnd.directive(line, rd.defines)
		if isCond || err != nil {
			return section, err
		}
		if !cnd.reading() {
			return section, nil
		}
		f := fi(line)
		switch f[0] {
		case "#define":
			if len(f) < 2 {
				return section, errors.New("#define without a name")
			}
			rd.defines[f[1]] = true
		case "#undef":
			if len(f) < 2 {
				return section, errors.New("#undef without a name")
			}
			delete(rd.defines, f[1])
		case "#include":
			if !rd.follow {
				return section, nil
			}
			if len(f) < 2 {
				return section, errors.New("#include without a file")
			}
			return section, rd.include(strings.Trim(f[len(f)-1], "\"'<>"), dir)
		default:
			return section, fmt.Errorf("unknown directive %s", f[0])
		}
		return section, nil
	}
	if !cnd.reading() {
		return section, nil
	}
	if rd.h.Is(line) {
		which := rd.h.Which(line)
		if which == "" {
			return section, fmt.Errorf("unknown section %s", line)
		}
		return which, nil
	}
	var err error
	C := rd.C
	switch section {
	case "defaults":
		C.c6c12 = ljC6C12(fi(line))
	case "atomtypes":
		var t ParticleType
		t, err = particleTypeFromLine(raw, C.c6c12)
		if err == nil {
			err = C.AddParticleType(t)
		}
	case "bondtypes":
		var t BondType
		t, err = bondTypeFromLine(line)
		if err == nil {
			err = C.AddBondType(t)
		}
	case "angletypes":
		var t AngleType
		t, err = angleTypeFromLine(line)
		if err == nil {
			err = C.AddAngleType(t)
		}
	case "dihedraltypes":
		var t DihedralType
		t, err = dihedralTypeFromLine(line)
		if err == nil {
			err = C.AddDihedralType(t)
		}
	case "impropertypes":
		var t ImproperType
		t, err = improperTypeFromLine(line)
		if err == nil {
			err = C.AddImproperType(t)
		}
	default:
		err = errors.New("data outside of any section")
	}
	return section, err
}

func (rd *reader) include(fname, dir string) error {
	if rd.depth >= maxIncludeDepth {
		return fmt.Errorf("includes nested more than %d levels deep, at %s", maxIncludeDepth, fname)
	}
	if !filepath.IsAbs(fname) {
		fname = filepath.Join(dir, fname)
	}
	rd.depth++
	defer func() { rd.depth-- }()
	if err := rd.fillFile(fname); err != nil {
		return fmt.Errorf("failed to include file %s: %w", fname, err)
	}
	return nil
}

// ljC6C12 reads a defaults line. It accepts either "sigma-epsilon" / "c6-c12" or
// the Gromacs "nbfunc comb-rule" numbers, where comb-rule 1 means C6/C12.
func ljC6C12(f []string) bool {
	switch {
	case f[0] == "c6-c12":
		return true
	case f[0] == "sigma-epsilon":
		return false
	case len(f) > 1 && f[1] == "1":
		return true
	}
	return false
}

func c6c12ToSigmaEpsilon(c6, c12 float64) (sigma float64, epsilon float64) {
	if c6 == 0 || c12 == 0 {
		return 0, 0
	}
	return math.Pow(c12/c6, 1.0/6.0), c6 * c6 / (4 * c12)
}

func sigmaEpsilonToC6C12(sigma, epsilon float64) (c6 float64, c12 float64) {
	return 4 * epsilon * math.Pow(sigma, 6), 4 * epsilon * math.Pow(sigma, 12)
}

func nfields(f []string, n int, what string) error {
	if len(f) < n {
		return fmt.Errorf("%s needs at least %d fields, got %d", what, n, len(f))
	}
	return nil
}

// The following functions rely on scu's Must* helpers and turn their panics
// into errors.

// particleTypeFromLine reads "name element mass charge sigma epsilon ; description".
// If c6c12 is true the last two numbers are taken as C6 and C12 and converted.
func particleTypeFromLine(s string, c6c12 bool) (ret ParticleType, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("couldn't read particle type: %v", r)
		}
	}()
	f := fi(cleanString(s))
	if err = nfields(f, 6, "atomtypes"); err != nil {
		return
	}
	ret.Name = f[0]
	ret.Element = f[1]
	ret.Mass = scu.MustParseFloat(f[2])
	ret.Charge = scu.MustParseFloat(f[3])
	a, b := scu.MustParseFloat(f[4]), scu.MustParseFloat(f[5])
	if c6c12 {
		a, b = c6c12ToSigmaEpsilon(a, b)
	}
	ret.Sigma, ret.Epsilon = a, b
	if i := strings.Index(s, ";"); i >= 0 {
		ret.Desc = strings.TrimSpace(s[i+1:])
	}
	return
}

// "a b k r0"
func bondTypeFromLine(s string) (ret BondType, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("couldn't read bond type: %v", r)
		}
	}()
	f := fi(s)
	if err = nfields(f, 4, "bondtypes"); err != nil {
		return
	}
	copy(ret.Names[:], f[:2])
	ret.K = scu.MustParseFloat(f[2])
	ret.R0 = scu.MustParseFloat(f[3])
	return
}

// "a b c k theta0"
func angleTypeFromLine(s string) (ret AngleType, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("couldn't read angle type: %v", r)
		}
	}()
	f := fi(s)
	if err = nfields(f, 5, "angletypes"); err != nil {
		return
	}
	copy(ret.Names[:], f[:3])
	ret.K = scu.MustParseFloat(f[3])
	ret.Theta0 = scu.MustParseFloat(f[4])
	return
}

// "a b c d k n phase"
func dihedralTypeFromLine(s string) (ret DihedralType, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("couldn't read dihedral type: %v", r)
		}
	}()
	f := fi(s)
	if err = nfields(f, 7, "dihedraltypes"); err != nil {
		return
	}
	copy(ret.Names[:], f[:4])
	ret.K = scu.MustParseFloat(f[4])
	ret.Multiplicity = scu.MustAtoi(f[5])
	ret.Phase = scu.MustParseFloat(f[6])
	return
}

// "center n1 n2 n3 k n phase"
func improperTypeFromLine(s string) (ret ImproperType, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("couldn't read improper type: %v", r)
		}
	}()
	f := fi(s)
	if err = nfields(f, 7, "impropertypes"); err != nil {
		return
	}
	copy(ret.Names[:], f[:4])
	ret.K = scu.MustParseFloat(f[4])
	ret.Multiplicity = scu.MustAtoi(f[5])
	ret.Phase = scu.MustParseFloat(f[6])
	return
}
