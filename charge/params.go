/*
 * params.go, part of gosimm.
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

package charge

import (
	simm "github.com/rmera/gosimm"
)

// gasteigerParams are the coefficients of the orbital electronegativity
// chi(q) = A + B*q + C*q^2.
type gasteigerParams struct {
	A, B, C float64
	cation  float64 //chi at q=+1, if different from A+B+C
}

func (g gasteigerParams) chi(q float64) float64 {
	return g.A + g.B*q + g.C*q*q
}

// denominator is the electronegativity of the cation, used to scale the
// charge given away by a particle.
func (g gasteigerParams) denominator() float64 {
	if g.cation != 0 {
		return g.cation
	}
	return g.A + g.B + g.C
}

// Gasteiger-Marsili parameters, keyed by element and, where it matters,
// hybridization (".3" sp3, ".2" sp2, ".1" sp).
var gasteigerTable = map[string]gasteigerParams{
	"H":   {A: 7.17, B: 6.24, C: -0.56, cation: 20.02},
	"C.3": {A: 7.98, B: 9.18, C: 1.88},
	"C.2": {A: 8.79, B: 9.32, C: 1.51},
	"C.1": {A: 10.39, B: 9.45, C: 0.73},
	"N.3": {A: 11.54, B: 10.82, C: 1.36},
	"N.2": {A: 12.87, B: 11.15, C: 0.85},
	"N.1": {A: 15.68, B: 11.70, C: -0.27},
	"O.3": {A: 14.18, B: 12.92, C: 1.39},
	"O.2": {A: 17.07, B: 13.79, C: 0.47},
	"F":   {A: 14.66, B: 13.85, C: 2.31},
	"Cl":  {A: 11.00, B: 9.69, C: 1.35},
	"Br":  {A: 10.08, B: 8.47, C: 1.16},
	"I":   {A: 9.90, B: 7.96, C: 0.96},
	"S":   {A: 10.14, B: 9.13, C: 1.38},
	"P":   {A: 8.90, B: 8.24, C: 0.96},
}

// hybridization guesses 1 (sp), 2 (sp2) or 3 (sp3) from the bond orders.
func hybridization(p *simm.Particle) int {
	var double, triple, arom int
	for _, b := range p.Bonds {
		switch b.Order {
		case simm.Double:
			double++
		case simm.Triple:
			triple++
		case simm.Aromatic:
			arom++
		}
	}
	switch {
	case triple > 0 || double > 1:
		return 1
	case double > 0 || arom > 0:
		return 2
	}
	return 3
}

// gasteigerFor returns the parameters for the particle. If there are none
// for its hybridization, the next one with parameters (sp to sp2 to sp3) is used.
func gasteigerFor(p *simm.Particle) (gasteigerParams, bool) {
	if g, ok := gasteigerTable[p.Element]; ok {
		return g, true
	}
	for h := hybridization(p); h <= 3; h++ {
		if g, ok := gasteigerTable[p.Element+hybKey[h]]; ok {
			return g, true
		}
	}
	return gasteigerParams{}, false
}

var hybKey = [...]string{"", ".1", ".2", ".3"}

// qeqParams are the electronegativity (Chi) and idempotential (J), in eV,
// for charge equilibration.
type qeqParams struct {
	Chi, J float64
}

var qeqTable = map[string]qeqParams{
	"H":  {4.528, 13.890},
	"C":  {5.343, 10.126},
	"N":  {6.899, 11.760},
	"O":  {8.741, 13.364},
	"F":  {10.874, 14.948},
	"S":  {6.928, 8.972},
	"P":  {5.463, 8.000},
	"Cl": {8.564, 9.892},
	"Br": {7.790, 8.850},
	"I":  {6.822, 7.524},
	"Na": {2.843, 4.592},
	"K":  {2.421, 3.840},
	"Mg": {3.951, 7.386},
	"Ca": {3.231, 5.760},
}
