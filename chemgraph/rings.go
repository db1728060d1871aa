/*
 * rings.go, part of gosimm.
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

package chemgraph

import (
	"fmt"
	"sort"

	simm "github.com/rmera/gosimm"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/traverse"
)

// MaxRingSize is the largest ring Perceive looks for.
const MaxRingSize = 8

// Ring is a cycle in the bond graph.
type Ring struct {
	Members  []int //particle indexes, in walking order
	Aromatic bool
}

// Len returns the number of members of the ring.
func (R *Ring) Len() int { return len(R.Members) }

// Contains returns true if the particle with index i is in the ring.
func (R *Ring) Contains(i int) bool {
	for _, v := range R.Members {
		if v == i {
			return true
		}
	}
	return false
}

func (R *Ring) key() string {
	m := append([]int(nil), R.Members...)
	sort.Ints(m)
	return fmt.Sprint(m)
}

// Perceive finds the smallest ring through every bond of the system (up to
// MaxRingSize members), marks the aromatic ones, and fills the ring fields of
// every particle. It returns the unique rings found, sorted by size and then
// by smallest member.
func Perceive(S *simm.System) []*Ring {
	g := Graph(S)
	rings := smallestRings(g)
	markAromatic(S, rings)
	for _, p := range S.Particles {
		p.RingSize, p.Rings, p.AromaticRings, p.Aromatic = 0, 0, 0, false
	}
	for _, b := range S.Bonds {
		b.RingSize = 0
	}
	for _, r := range rings {
		for k, i := range r.Members {
			p, q := S.Particles[i], S.Particles[r.Members[(k+1)%r.Len()]]
			for _, b := range p.Bonds {
				if b.Cross(p).Index == q.Index && (b.RingSize == 0 || r.Len() < b.RingSize) {
					b.RingSize = r.Len()
				}
			}
		}
		for _, i := range r.Members {
			p := S.Particles[i]
			if p.RingSize == 0 || r.Len() < p.RingSize {
				p.RingSize = r.Len()
			}
			p.Rings++
			if r.Aromatic {
				p.AromaticRings++
				p.Aromatic = true
			}
		}
	}
	return rings
}

func smallestRings(g *simple.UndirectedGraph) []*Ring {
	seen := make(map[string]bool)
	var rings []*Ring
	edges := g.Edges()
	for edges.Next() {
		e := edges.Edge()
		r := ringThrough(g, e.From().ID(), e.To().ID())
		if r == nil {
			continue
		}
		k := r.key()
		if seen[k] {
			continue
		}
		seen[k] = true
		rings = append(rings, r)
	}
	sort.Slice(rings, func(i, j int) bool {
		if rings[i].Len() != rings[j].Len() {
			return rings[i].Len() < rings[j].Len()
		}
		return minInt(rings[i].Members) < minInt(rings[j].Members)
	})
	return rings
}

// ringThrough returns the smallest ring containing the edge u-v, by looking
// for the shortest path from u to v that doesn't use that edge.
func ringThrough(g *simple.UndirectedGraph, u, v int64) *Ring {
	parent := make(map[int64]int64)
	var from int64
	bf := traverse.BreadthFirst{
		Traverse: func(e graph.Edge) bool {
			f, t := e.From().ID(), e.To().ID()
			if (f == u && t == v) || (f == v && t == u) {
				return false
			}
			from = f
			return true
		},
		Visit: func(n graph.Node) {
			parent[n.ID()] = from
		},
	}
	found := bf.Walk(g, g.Node(u), func(n graph.Node, depth int) bool {
		return n.ID() == v || depth > MaxRingSize-1
	})
	if found == nil || found.ID() != v {
		return nil
	}
	members := []int{int(v)}
	for c := v; c != u; {
		c = parent[c]
		members = append(members, int(c))
	}
	if len(members) > MaxRingSize {
		return nil
	}
	return &Ring{Members: members}
}

func minInt(s []int) int {
	m := s[0]
	for _, v := range s[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// sp2-like members of aromatic rings.
func planar(p *simm.Particle) bool {
	switch p.Element {
	case "C":
		return p.Valence() == 3
	case "N":
		return p.Valence() == 2 || p.Valence() == 3
	case "O", "S":
		return p.Valence() == 2
	}
	return false
}

// piPartner returns true if p has exactly one double (or aromatic) bond
// and it goes to a member of r or to a particle in an aromatic ring.
func piPartner(p *simm.Particle, r *Ring, inAromatic map[int]bool) bool {
	n := 0
	ok := false
	for _, b := range p.Bonds {
		if b.Order != simm.Double && b.Order != simm.Aromatic {
			continue
		}
		n++
		q := b.Cross(p)
		if r.Contains(q.Index) || inAromatic[q.Index] {
			ok = true
		}
	}
	//aromatic-order bonds come in pairs around a ring member
	if n == 2 && allRingAromatic(p, r) {
		return true
	}
	return n == 1 && ok
}

func allRingAromatic(p *simm.Particle, r *Ring) bool {
	n := 0
	for _, b := range p.Bonds {
		if r.Contains(b.Cross(p).Index) {
			if b.Order != simm.Aromatic {
				return false
			}
			n++
		}
	}
	return n == 2
}

// lonePair returns true for a ring heteroatom that gives two electrons to the
// ring: N, O or S with only single bonds.
func lonePair(p *simm.Particle) bool {
	switch p.Element {
	case "N", "O", "S":
	default:
		return false
	}
	for _, b := range p.Bonds {
		if b.Order != simm.Single {
			return false
		}
	}
	return true
}

// markAromatic sets the Aromatic flag of 5- and 6-membered rings where every
// member is planar and takes part in the pi system. It repeats until nothing
// changes, so a ring fused to an aromatic ring can borrow its double bonds.
func markAromatic(S *simm.System, rings []*Ring) {
	inAromatic := make(map[int]bool)
	for changed := true; changed; {
		changed = false
		for _, r := range rings {
			if r.Aromatic || (r.Len() != 5 && r.Len() != 6) {
				continue
			}
			pi, lp := 0, 0
			for _, i := range r.Members {
				p := S.Particles[i]
				if !planar(p) {
					pi = -100
					break
				}
				if piPartner(p, r, inAromatic) {
					pi++
				} else if lonePair(p) {
					lp++
				}
			}
			if (r.Len() == 6 && pi == 6) || (r.Len() == 5 && pi == 4 && lp == 1) || (r.Len() == 5 && pi == 5) {
				r.Aromatic = true
				changed = true
				for _, i := range r.Members {
					inAromatic[i] = true
				}
			}
		}
	}
}
