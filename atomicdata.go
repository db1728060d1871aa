/*
 * atomicdata.go, part of gosimm.
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

package simm

import "strings"

//A map for assigning mass to elements.
//Note that just the elements organic force fields care about are present
var symbolMass = map[string]float64{
	"H":  1.008,
	"C":  12.01,
	"O":  16.00,
	"N":  14.01,
	"P":  30.97,
	"S":  32.06,
	"Se": 78.96,
	"Si": 28.08,
	"B":  10.81,
	"F":  18.998,
	"Cl": 35.45,
	"Br": 79.904,
	"I":  126.90,
	"Na": 22.99,
	"K":  39.1,
	"Mg": 24.30,
	"Ca": 40.08,
	"Zn": 65.38,
}

// Elements that count as electron-withdrawing when typing
// hydrogens on carbon.
var electronegative = map[string]bool{
	"N":  true,
	"O":  true,
	"F":  true,
	"Cl": true,
	"Br": true,
	"I":  true,
	"S":  true,
}

// Halogens, heaviest first.
var halogens = []string{"I", "Br", "Cl", "F"}

// ElementMass returns the standard mass for the element, and false if the
// element is not in the table.
func ElementMass(element string) (float64, bool) {
	m, ok := symbolMass[element]
	return m, ok
}

// IsElectronegative returns true for N, O, S and the halogens.
func IsElectronegative(element string) bool {
	return electronegative[element]
}

// IsHalogen returns true for F, Cl, Br and I.
func IsHalogen(element string) bool {
	for _, v := range halogens {
		if v == element {
			return true
		}
	}
	return false
}

// HalogenRank returns 0 for I, up to 3 for F, and -1 for anything else.
// Lower ranks are heavier halogens.
func HalogenRank(element string) int {
	for i, v := range halogens {
		if v == element {
			return i
		}
	}
	return -1
}

// NormalizeElement returns the element symbol with the first letter
// capitalized and the rest in lowercase ("CL" -> "Cl").
func NormalizeElement(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
