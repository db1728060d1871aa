/*
 * catalog.go, part of gosimm.
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
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrBadWildcard   = errors.New("wildcard not allowed in this position")
	ErrDuplicateType = errors.New("type already registered")
)

var linkerPrefixes = []string{"HL@", "TL@", "L@"}

// BaseName strips a linker prefix (HL@, TL@ or L@) from a particle type name.
func BaseName(name string) string {
	for _, p := range linkerPrefixes {
		if strings.HasPrefix(name, p) {
			return name[len(p):]
		}
	}
	return name
}

// Catalog is a reference force field: the set of type records the typer
// looks parameters up in. A Catalog is filled once (by hand or from a file)
// and only read afterwards. Lookups are safe for concurrent use, registrations are not.
type Catalog struct {
	Name  string
	c6c12 bool //LJ columns of atomtypes are C6/C12 instead of sigma/epsilon

	particles map[string]*ParticleType
	bonds     map[string]*BondType
	angles    map[string]*AngleType
	dihedrals map[string][]*DihedralType
	impropers map[string][]*ImproperType

	plist []*ParticleType
	blist []*BondType
	alist []*AngleType
	dlist []*DihedralType
	ilist []*ImproperType
	seq   int
}

// NewCatalog returns an empty catalog with the given name.
func NewCatalog(name string) *Catalog {
	return &Catalog{
		Name:      name,
		particles: make(map[string]*ParticleType),
		bonds:     make(map[string]*BondType),
		angles:    make(map[string]*AngleType),
		dihedrals: make(map[string][]*DihedralType),
		impropers: make(map[string][]*ImproperType),
	}
}

func (C *Catalog) next() int {
	C.seq++
	return C.seq
}

// AddParticleType registers a copy of t.
func (C *Catalog) AddParticleType(t ParticleType) error {
	if t.Name == "" || t.Name == Wildcard {
		return fmt.Errorf("invalid particle type name %q: %w", t.Name, ErrBadWildcard)
	}
	if _, ok := C.particles[t.Name]; ok {
		return fmt.Errorf("particle type %s: %w", t.Name, ErrDuplicateType)
	}
	t.ID = 0
	t.Order = C.next()
	C.particles[t.Name] = &t
	C.plist = append(C.plist, &t)
	return nil
}

// AddBondType registers a copy of t. Bond types can't have wildcards.
func (C *Catalog) AddBondType(t BondType) error {
	if wildcards(t.Names[:]...) > 0 {
		return fmt.Errorf("bond type %s: %w", t.Name(), ErrBadWildcard)
	}
	k := canonical(t.Names[:]...)
	if _, ok := C.bonds[k]; ok {
		return fmt.Errorf("bond type %s: %w", t.Name(), ErrDuplicateType)
	}
	t.ID = 0
	t.Order = C.next()
	C.bonds[k] = &t
	C.blist = append(C.blist, &t)
	return nil
}

// AddAngleType registers a copy of t. Angle types can't have wildcards.
func (C *Catalog) AddAngleType(t AngleType) error {
	if wildcards(t.Names[:]...) > 0 {
		return fmt.Errorf("angle type %s: %w", t.Name(), ErrBadWildcard)
	}
	k := canonical(t.Names[:]...)
	if _, ok := C.angles[k]; ok {
		return fmt.Errorf("angle type %s: %w", t.Name(), ErrDuplicateType)
	}
	t.ID = 0
	t.Order = C.next()
	t.Members = nil
	C.angles[k] = &t
	C.alist = append(C.alist, &t)
	return nil
}

// AddDihedralType registers a copy of t. Several entries can share the same
// names as long as their multiplicities differ. Wildcards are only allowed
// in the two outer positions.
func (C *Catalog) AddDihedralType(t DihedralType) error {
	if t.Names[1] == Wildcard || t.Names[2] == Wildcard {
		return fmt.Errorf("dihedral type %s: %w", t.Name(), ErrBadWildcard)
	}
	k := canonical(t.Names[:]...)
	for _, v := range C.dihedrals[k] {
		if v.Multiplicity == t.Multiplicity {
			return fmt.Errorf("dihedral type %s n=%d: %w", t.Name(), t.Multiplicity, ErrDuplicateType)
		}
	}
	t.ID = 0
	t.Order = C.next()
	C.dihedrals[k] = append(C.dihedrals[k], &t)
	C.dlist = append(C.dlist, &t)
	return nil
}

// AddImproperType registers a copy of t. The center (Names[0]) can't be a
// wildcard, the neighbors can.
func (C *Catalog) AddImproperType(t ImproperType) error {
	if t.Names[0] == Wildcard {
		return fmt.Errorf("improper type %s: %w", t.Name(), ErrBadWildcard)
	}
	k := improperKey(t.Names[0], t.Names[1], t.Names[2], t.Names[3])
	for _, v := range C.impropers[k] {
		if v.Multiplicity == t.Multiplicity {
			return fmt.Errorf("improper type %s n=%d: %w", t.Name(), t.Multiplicity, ErrDuplicateType)
		}
	}
	t.ID = 0
	t.Order = C.next()
	C.impropers[k] = append(C.impropers[k], &t)
	C.ilist = append(C.ilist, &t)
	return nil
}

// ParticleType returns the particle type with the given name.
func (C *Catalog) ParticleType(name string) (*ParticleType, bool) {
	t, ok := C.particles[name]
	return t, ok
}

// BondType returns the bond type between type names a and b, in
// either orientation.
func (C *Catalog) BondType(a, b string) (*BondType, bool) {
	t, ok := C.bonds[canonical(a, b)]
	return t, ok
}

// AngleType returns the angle type a-b-c, with b the center, in either orientation.
func (C *Catalog) AngleType(a, b, c string) (*AngleType, bool) {
	t, ok := C.angles[canonical(a, b, c)]
	return t, ok
}

// DihedralMatch is a dihedral entry that matches a query, with the number of
// wildcard slots it needed to match.
type DihedralMatch struct {
	Type      *DihedralType
	Wildcards int
}

// DihedralTypes returns every entry that matches the chain a-b-c-d in either
// orientation, sorted from best to worst: fewer wildcards first, then smaller
// multiplicity, then earlier registration.
func (C *Catalog) DihedralTypes(a, b, c, d string) []DihedralMatch {
	keys := []string{
		canonical(a, b, c, d),
		canonical(Wildcard, b, c, d),
		canonical(a, b, c, Wildcard),
		canonical(Wildcard, b, c, Wildcard),
	}
	seen := make(map[*DihedralType]bool)
	var ret []DihedralMatch
	for _, k := range keys {
		for _, t := range C.dihedrals[k] {
			if seen[t] {
				continue
			}
			seen[t] = true
			ret = append(ret, DihedralMatch{Type: t, Wildcards: t.Wildcards()})
		}
	}
	sort.Slice(ret, func(i, j int) bool {
		ti, tj := ret[i], ret[j]
		if ti.Wildcards != tj.Wildcards {
			return ti.Wildcards < tj.Wildcards
		}
		if ti.Type.Multiplicity != tj.Type.Multiplicity {
			return ti.Type.Multiplicity < tj.Type.Multiplicity
		}
		return ti.Type.Order < tj.Type.Order
	})
	return ret
}

// DihedralType returns the dihedral type for the chain a-b-c-d. Exact entries
// win over wildcard entries; ties go to the smallest multiplicity, then to the
// first registered entry. Wildcard entries are only used when no exact entry exists.
func (C *Catalog) DihedralType(a, b, c, d string) (*DihedralType, bool) {
	m := C.DihedralTypes(a, b, c, d)
	if len(m) == 0 {
		return nil, false
	}
	return m[0].Type, true
}

// ImproperType returns the improper type for the given center and neighbors,
// regardless of the order of the neighbors. Exact entries come first, then
// entries with fewer wildcards, then the first registered.
func (C *Catalog) ImproperType(center, n1, n2, n3 string) (*ImproperType, bool) {
	ns := [3]string{n1, n2, n3}
	seen := make(map[*ImproperType]bool)
	var cands []*ImproperType
	//every subset of neighbor slots replaced by the wildcard
	for mask := 0; mask < 8; mask++ {
		q := ns
		for i := 0; i < 3; i++ {
			if mask&(1<<i) != 0 {
				q[i] = Wildcard
			}
		}
		for _, t := range C.impropers[improperKey(center, q[0], q[1], q[2])] {
			if !seen[t] {
				seen[t] = true
				cands = append(cands, t)
			}
		}
	}
	if len(cands) == 0 {
		return nil, false
	}
	sort.Slice(cands, func(i, j int) bool {
		wi, wj := cands[i].Wildcards(), cands[j].Wildcards()
		if wi != wj {
			return wi < wj
		}
		return cands[i].Order < cands[j].Order
	})
	return cands[0], true
}

// ParticleTypes returns the particle types in registration order.
func (C *Catalog) ParticleTypes() []*ParticleType { return C.plist }

// BondTypes returns the bond types in registration order.
func (C *Catalog) BondTypes() []*BondType { return C.blist }

// AngleTypes returns the angle types in registration order.
func (C *Catalog) AngleTypes() []*AngleType { return C.alist }

// AllDihedralTypes returns the dihedral types in registration order.
func (C *Catalog) AllDihedralTypes() []*DihedralType { return C.dlist }

// ImproperTypes returns the improper types in registration order.
func (C *Catalog) ImproperTypes() []*ImproperType { return C.ilist }

func (C *Catalog) String() string {
	return fmt.Sprintf("catalog %s: %d particle, %d bond, %d angle, %d dihedral and %d improper types",
		C.Name, len(C.plist), len(C.blist), len(C.alist), len(C.dlist), len(C.ilist))
}
