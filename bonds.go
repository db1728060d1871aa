/*
 * bonds.go, part of gosimm.
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
	"strings"

	"github.com/rmera/gosimm/ff"
)

// BondOrder is the multiplicity of a covalent bond.
// OrderUnset means the builder never gave one.
type BondOrder int

const (
	OrderUnset BondOrder = iota
	Single
	Double
	Triple
	Aromatic //Kekulé-free input, a delocalized bond in an aromatic ring.
)

// ParseBondOrder takes "1", "2", "3", "ar" (or "single", "double", "triple", "aromatic")
// and returns the corresponding BondOrder.
func ParseBondOrder(s string) (BondOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "s", "single":
		return Single, nil
	case "2", "d", "double":
		return Double, nil
	case "3", "t", "triple":
		return Triple, nil
	case "4", "ar", "a", "aromatic", "1.5":
		return Aromatic, nil
	case "", "0":
		return OrderUnset, nil
	}
	return OrderUnset, fmt.Errorf("unknown bond order %q", s)
}

func (o BondOrder) String() string {
	switch o {
	case Single:
		return "1"
	case Double:
		return "2"
	case Triple:
		return "3"
	case Aromatic:
		return "ar"
	}
	return "unset"
}

// Bond joins two particles. Bonds are not directional, but
// P1 and P2 keep the order in which the bond was declared.
type Bond struct {
	Index int
	P1    *Particle
	P2    *Particle
	Order BondOrder
	Type  *ff.BondType //nil until typed

	RingSize int //smallest ring containing the bond, 0 if none. Filled by ring perception.
}

// Cross returns the particle at the other end of the bond from origin.
func (B *Bond) Cross(origin *Particle) *Particle {
	if origin.Index == B.P1.Index {
		return B.P2
	}
	if origin.Index == B.P2.Index {
		return B.P1
	}
	panic("Trying to cross a bond: The origin particle given is not present in the bond!") //a programming error, so a panic is warranted.
}

// Contains returns true if p is one of the ends of the bond.
func (B *Bond) Contains(p *Particle) bool {
	return B.P1.Index == p.Index || B.P2.Index == p.Index
}

func (B *Bond) String() string {
	return fmt.Sprintf("bond %d (%d-%d, order %s)", B.Index, B.P1.Index, B.P2.Index, B.Order)
}

// CheckBondOrders returns an error of kind MissingBondOrder
// for the first bond without an order, or nil if all bonds have one.
func (S *System) CheckBondOrders() error {
	for _, b := range S.Bonds {
		if b.Order == OrderUnset {
			err := NewTypingError(MissingBondOrder, b.P1.Index)
			err.Element = b.P1.Element
			err.Key = fmt.Sprintf("%d-%d", b.P1.Index, b.P2.Index)
			err.Index = b.Index
			err.Decorate("CheckBondOrders")
			return err
		}
	}
	return nil
}
