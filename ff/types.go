/*
 * types.go, part of gosimm.
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
	"sort"
	"strings"
)

// Wildcard matches any particle type name in a dihedral or improper entry.
const Wildcard = "X"

// Key joins type names with commas, the way entries are keyed in the catalog.
func Key(names ...string) string {
	return strings.Join(names, ",")
}

// canonical returns the smaller of the forward and the reversed key of names,
// so a bonded term and its reverse share a key.
func canonical(names ...string) string {
	fwd := Key(names...)
	rev := make([]string, len(names))
	for i, v := range names {
		rev[len(names)-1-i] = v
	}
	r := Key(rev...)
	if r < fwd {
		return r
	}
	return fwd
}

func wildcards(names ...string) int {
	n := 0
	for _, v := range names {
		if v == Wildcard {
			n++
		}
	}
	return n
}

// ParticleType is a named particle (atom) type with its non-bonded parameters.
// Sigma is in Angstroms, Epsilon in kcal/mol.
type ParticleType struct {
	ID      int //1-based position in a Registry, 0 for catalog entries.
	Name    string
	Element string
	Mass    float64
	Charge  float64
	Sigma   float64
	Epsilon float64
	Desc    string
	Order   int //registration order in the catalog
}

// BondType is a harmonic bond between two particle types.
// K in kcal/mol/A^2, R0 in Angstroms.
type BondType struct {
	ID    int
	Names [2]string
	K     float64
	R0    float64
	Order int
}

// Name returns the comma-joined key of the bond type.
func (T *BondType) Name() string { return Key(T.Names[:]...) }

func (T *BondType) String() string {
	return fmt.Sprintf("%s k=%.2f r0=%.4f", T.Name(), T.K, T.R0)
}

// AngleType is a harmonic angle. Theta0 is in degrees. In a Registry,
// Members holds the particle indexes of every angle bound to the type.
type AngleType struct {
	ID      int
	Names   [3]string
	K       float64
	Theta0  float64
	Order   int
	Members [][3]int
}

// Name returns the comma-joined key of the angle type.
func (T *AngleType) Name() string { return Key(T.Names[:]...) }

func (T *AngleType) String() string {
	return fmt.Sprintf("%s k=%.2f theta0=%.2f", T.Name(), T.K, T.Theta0)
}

// DihedralType is a cosine dihedral term. Multiplicity is the periodicity
// index of the term, Phase is in degrees.
type DihedralType struct {
	ID           int
	Names        [4]string
	K            float64
	Multiplicity int
	Phase        float64
	Order        int
}

// Name returns the comma-joined key of the dihedral type.
func (T *DihedralType) Name() string { return Key(T.Names[:]...) }

// Wildcards returns the number of wildcard slots in the entry.
func (T *DihedralType) Wildcards() int { return wildcards(T.Names[:]...) }

func (T *DihedralType) String() string {
	return fmt.Sprintf("%s k=%.3f n=%d phase=%.1f", T.Name(), T.K, T.Multiplicity, T.Phase)
}

// ImproperType is an out-of-plane term. Names[0] is the center; the other
// three names are matched regardless of their order.
type ImproperType struct {
	ID           int
	Names        [4]string
	K            float64
	Multiplicity int
	Phase        float64
	Order        int
}

// Name returns the comma-joined key of the improper type, center first.
func (T *ImproperType) Name() string { return Key(T.Names[:]...) }

// Wildcards returns the number of wildcard neighbor slots in the entry.
func (T *ImproperType) Wildcards() int { return wildcards(T.Names[1:]...) }

func (T *ImproperType) String() string {
	return fmt.Sprintf("%s k=%.3f n=%d phase=%.1f", T.Name(), T.K, T.Multiplicity, T.Phase)
}

// improperKey returns the center followed by the sorted neighbor names.
func improperKey(center string, n1, n2, n3 string) string {
	ns := []string{n1, n2, n3}
	sort.Strings(ns)
	return Key(center, ns[0], ns[1], ns[2])
}
