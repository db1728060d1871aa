/*
 * particle.go, part of gosimm.
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

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rmera/gosimm/ff"
)

// Linker marks a particle that will form a bond with another
// monomer. A linker counts one extra bond when typed.
type Linker int

const (
	NotLinker Linker = iota
	HeadLinker
	TailLinker
	GenericLinker
)

// ParseLinker returns the Linker for "head", "tail" or "linker".
// An empty string means NotLinker.
func ParseLinker(s string) (Linker, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "false":
		return NotLinker, nil
	case "head":
		return HeadLinker, nil
	case "tail":
		return TailLinker, nil
	case "linker", "generic", "true":
		return GenericLinker, nil
	}
	return NotLinker, fmt.Errorf("unknown linker role %q", s)
}

// Prefix returns the prefix added to the type name of a linker particle
// when linker types are requested.
func (l Linker) Prefix() string {
	switch l {
	case HeadLinker:
		return "HL@"
	case TailLinker:
		return "TL@"
	case GenericLinker:
		return "L@"
	}
	return ""
}

func (l Linker) String() string {
	switch l {
	case HeadLinker:
		return "head"
	case TailLinker:
		return "tail"
	case GenericLinker:
		return "linker"
	}
	return ""
}

// Particle is an atom (or bead) in a System.
type Particle struct {
	Index        int //position in the System, and identity.
	Element      string
	Pos          [3]float64 //Angstroms
	Bonds        []*Bond    //in declaration order
	Type         *ff.ParticleType
	Linker       Linker
	FormalCharge int
	Charge       float64 //partial charge

	//Filled by ring perception (chemgraph.Perceive)
	RingSize      int //size of the smallest ring containing the particle, 0 if none.
	Rings         int //number of smallest rings through the particle
	AromaticRings int
	Aromatic      bool
}

// Neighbors returns the particles bonded to P, in bond order.
func (P *Particle) Neighbors() []*Particle {
	ret := make([]*Particle, 0, len(P.Bonds))
	for _, b := range P.Bonds {
		ret = append(ret, b.Cross(P))
	}
	return ret
}

// Valence returns the effective number of bonds of the particle,
// which includes the bond a linker has yet to form.
func (P *Particle) Valence() int {
	if P.Linker != NotLinker {
		return len(P.Bonds) + 1
	}
	return len(P.Bonds)
}

// BondTo returns the bond between P and q, or nil if they are not bonded.
func (P *Particle) BondTo(q *Particle) *Bond {
	for _, b := range P.Bonds {
		if b.Cross(P).Index == q.Index {
			return b
		}
	}
	return nil
}

// NeighborElements returns the sorted elements of the particles bonded to P.
func (P *Particle) NeighborElements() []string {
	ret := make([]string, 0, len(P.Bonds))
	for _, n := range P.Neighbors() {
		ret = append(ret, n.Element)
	}
	sort.Strings(ret)
	return ret
}

// TypeName returns the name of the particle type, or an empty string
// if the particle is not typed.
func (P *Particle) TypeName() string {
	if P.Type == nil {
		return ""
	}
	return P.Type.Name
}

func (P *Particle) String() string {
	return fmt.Sprintf("%s%d", P.Element, P.Index)
}

// System is the topology being typed. The builder adds particles and bonds;
// the typer derives angles, dihedrals and impropers from them and fills the
// Types registry.
type System struct {
	Name      string
	Particles []*Particle
	Bonds     []*Bond
	Angles    []*Angle
	Dihedrals []*Dihedral
	Impropers []*Improper
	Types     *ff.Registry
}

// NewSystem returns an empty system with an empty type registry.
func NewSystem(name string) *System {
	return &System{Name: name, Types: ff.NewRegistry()}
}

// Len returns the number of particles in the system.
func (S *System) Len() int { return len(S.Particles) }

// Particle returns the i-th particle. It panics if i is out of range.
func (S *System) Particle(i int) *Particle {
	if i < 0 || i >= len(S.Particles) {
		panic(ErrForeignIndex)
	}
	return S.Particles[i]
}

// AddParticle appends a new particle with the given element and position,
// and returns it.
func (S *System) AddParticle(element string, pos [3]float64) *Particle {
	p := &Particle{Index: len(S.Particles), Element: NormalizeElement(element), Pos: pos}
	S.Particles = append(S.Particles, p)
	return p
}

// AddBond bonds the particles with indexes i and j. It panics if
// either index is out of range, or if i==j.
func (S *System) AddBond(i, j int, order BondOrder) *Bond {
	p1, p2 := S.Particle(i), S.Particle(j)
	if i == j {
		panic(ErrSelfBond)
	}
	b := &Bond{Index: len(S.Bonds), P1: p1, P2: p2, Order: order}
	p1.Bonds = append(p1.Bonds, b)
	p2.Bonds = append(p2.Bonds, b)
	S.Bonds = append(S.Bonds, b)
	return b
}

// Bonded returns true if a and b share a bond.
func (S *System) Bonded(a, b *Particle) bool {
	return a.BondTo(b) != nil
}

// Charge returns the sum of the formal charges of the system.
func (S *System) Charge() int {
	var q int
	for _, p := range S.Particles {
		q += p.FormalCharge
	}
	return q
}

// Masses returns a slice with the masses of each particle. The mass of the
// particle type is used if the particle is typed, the element mass otherwise.
func (S *System) Masses() ([]float64, error) {
	ret := make([]float64, len(S.Particles))
	for i, p := range S.Particles {
		if p.Type != nil && p.Type.Mass > 0 {
			ret[i] = p.Type.Mass
			continue
		}
		m, ok := symbolMass[p.Element]
		if !ok {
			return nil, fmt.Errorf("no mass for element %q of particle %d", p.Element, i)
		}
		ret[i] = m
	}
	return ret, nil
}

// ClearTerms removes the derived angles, dihedrals and impropers, so
// they can be rebuilt from the bond graph.
func (S *System) ClearTerms() {
	S.Angles = nil
	S.Dihedrals = nil
	S.Impropers = nil
}

// Angle is a bonded triple P1-Center-P2.
type Angle struct {
	Index  int
	P1     *Particle
	Center *Particle
	P2     *Particle
	Type   *ff.AngleType
}

// Particles returns the three particles in the angle, in order.
func (A *Angle) Particles() [3]*Particle {
	return [3]*Particle{A.P1, A.Center, A.P2}
}

// Dihedral is the chain P1-B-A-P2 over three consecutive bonds,
// where B-A is the central bond.
type Dihedral struct {
	Index int
	P1    *Particle
	B     *Particle
	A     *Particle
	P2    *Particle
	Type  *ff.DihedralType
}

// Particles returns the four particles in the dihedral, in order.
func (D *Dihedral) Particles() [4]*Particle {
	return [4]*Particle{D.P1, D.B, D.A, D.P2}
}

// Improper is an out-of-plane term on a trigonal Center. Neighbors keeps the
// order in which they matched the type.
type Improper struct {
	Index     int
	Center    *Particle
	Neighbors [3]*Particle
	Type      *ff.ImproperType
}

// Particles returns the center followed by its three neighbors.
func (I *Improper) Particles() [4]*Particle {
	return [4]*Particle{I.Center, I.Neighbors[0], I.Neighbors[1], I.Neighbors[2]}
}
