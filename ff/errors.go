/*
 * errors.go, part of gosimm.
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
	"fmt"
	"strings"
)

// ParseError is returned when a catalog file can't be read. It wraps the
// underlying cause.
type ParseError struct {
	File    string
	Line    int //0 if the problem is not tied to a line
	Section string
	Text    string
	Err     error
	deco    []string
}

func (err *ParseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "catalog %s", err.File)
	if err.Line > 0 {
		fmt.Fprintf(&b, ", line %d", err.Line)
	}
	if err.Section != "" {
		fmt.Fprintf(&b, ", section [ %s ]", err.Section)
	}
	fmt.Fprintf(&b, ": %v", err.Err)
	if err.Text != "" {
		fmt.Fprintf(&b, " (%q)", err.Text)
	}
	return b.String()
}

func (err *ParseError) Unwrap() error { return err.Err }

// Decorate adds dec to the breadcrumbs of the error, and returns them.
func (err *ParseError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical is always true, a half-read catalog is not usable.
func (err *ParseError) Critical() bool { return true }
