/*
 * env.go, part of gosimm.
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

package gaff2

import (
	simm "github.com/rmera/gosimm"
)

// Env is what the rules see of a particle: its element, effective bond
// count, neighbors, bond orders and ring data.
type Env struct {
	P         *simm.Particle
	Element   string
	Valence   int //bonds, plus one for linkers
	Neighbors []*simm.Particle
	Orders    []simm.BondOrder //Orders[i] is the order of the bond to Neighbors[i]
}

// NewEnv collects the environment of p. Ring data is read from p, so the
// system must have been through ring perception.
func NewEnv(p *simm.Particle) *Env {
	e := &Env{P: p, Element: p.Element, Valence: p.Valence()}
	for _, b := range p.Bonds {
		e.Neighbors = append(e.Neighbors, b.Cross(p))
		e.Orders = append(e.Orders, b.Order)
	}
	return e
}

// sole returns the only neighbor of a particle with a single bond
// (and no linker), or nil.
func (e *Env) sole() *simm.Particle {
	if e.Valence != 1 || len(e.Neighbors) != 1 {
		return nil
	}
	return e.Neighbors[0]
}

// Count returns the number of neighbors of the given element.
func (e *Env) Count(element string) int {
	n := 0
	for _, q := range e.Neighbors {
		if q.Element == element {
			n++
		}
	}
	return n
}

// Has returns true if at least one neighbor is of the given element.
func (e *Env) Has(element string) bool {
	return e.Count(element) > 0
}

// Bonds returns the number of bonds of the given order.
func (e *Env) Bonds(o simm.BondOrder) int {
	n := 0
	for _, v := range e.Orders {
		if v == o {
			n++
		}
	}
	return n
}

// Electronegative returns the number of N, O, S and halogen neighbors.
func (e *Env) Electronegative() int {
	n := 0
	for _, q := range e.Neighbors {
		if simm.IsElectronegative(q.Element) {
			n++
		}
	}
	return n
}

// Heaviest returns the heaviest halogen bonded to the particle, or an empty string.
func (e *Env) Heaviest() string {
	best, rank := "", 100
	for _, q := range e.Neighbors {
		if r := simm.HalogenRank(q.Element); r >= 0 && r < rank {
			best, rank = q.Element, r
		}
	}
	return best
}

// terminal returns true if q has no other bond than the one to the particle.
func terminal(q *simm.Particle) bool {
	return len(q.Bonds) == 1 && q.Linker == simm.NotLinker
}

// carbonyl returns true if q is a carbon with a double bond to a terminal
// O or S.
func carbonyl(q *simm.Particle) bool {
	if q.Element != "C" || q.Valence() != 3 {
		return false
	}
	for _, b := range q.Bonds {
		o := b.Cross(q)
		if b.Order == simm.Double && (o.Element == "O" || o.Element == "S") && terminal(o) {
			return true
		}
	}
	return false
}

func countH(q *simm.Particle) int {
	n := 0
	for _, b := range q.Bonds {
		if b.Cross(q).Element == "H" {
			n++
		}
	}
	return n
}
