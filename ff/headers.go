/*
 * headers.go, part of gosimm.
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
	"regexp"
	"strings"
)

// Returns a string without comments (sequences starting with ';'),
// trailing and leading spaces, tabs and newlines
func cleanString(s string) string {
	f := strings.Split(s, ";")[0]
	return strings.Trim(f, "\r\n\t ")
}

// sectionHeader recognizes the "[ name ]" lines that open each
// section of a catalog file.
type sectionHeader struct {
	wany     *regexp.Regexp
	patterns map[string]*regexp.Regexp
}

func newSectionHeader() *sectionHeader {
	h := new(sectionHeader)
	h.wany = regexp.MustCompile(`^\[\p{Zs}*.*\p{Zs}*\]$`)
	h.patterns = map[string]*regexp.Regexp{
		"defaults":      regexp.MustCompile(`^\[\p{Zs}*defaults\p{Zs}*\]$`),
		"atomtypes":     regexp.MustCompile(`^\[\p{Zs}*atomtypes\p{Zs}*\]$`),
		"bondtypes":     regexp.MustCompile(`^\[\p{Zs}*bondtypes\p{Zs}*\]$`),
		"angletypes":    regexp.MustCompile(`^\[\p{Zs}*angletypes\p{Zs}*\]$`),
		"dihedraltypes": regexp.MustCompile(`^\[\p{Zs}*dihedraltypes\p{Zs}*\]$`),
		"impropertypes": regexp.MustCompile(`^\[\p{Zs}*impropertypes\p{Zs}*\]$`),
	}
	return h
}

// Is returns true if the line is a section header. It discards comments.
func (h *sectionHeader) Is(line string) bool {
	return h.wany.MatchString(cleanString(line))
}

// Which returns the name of the section the header line opens, or
// an empty string if the section is not one we read.
func (h *sectionHeader) Which(line string) string {
	line = cleanString(line)
	for k, v := range h.patterns {
		if v.MatchString(line) {
			return k
		}
	}
	return ""
}
