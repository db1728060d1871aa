/*
 * registry.go, part of gosimm.
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
	"strconv"
	"sync"
)

// Registry is the working set of types used by one system. Records are
// copied in from a Catalog the first time they are needed, and after that the
// same handle is returned for the same key. Records are never removed.
// A Registry is safe for concurrent use.
type Registry struct {
	mu sync.RWMutex

	particles map[string]*ParticleType
	bonds     map[string]*BondType
	angles    map[string]*AngleType
	dihedrals map[string]*DihedralType
	impropers map[string]*ImproperType

	plist []*ParticleType
	blist []*BondType
	alist []*AngleType
	dlist []*DihedralType
	ilist []*ImproperType
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		particles: make(map[string]*ParticleType),
		bonds:     make(map[string]*BondType),
		angles:    make(map[string]*AngleType),
		dihedrals: make(map[string]*DihedralType),
		impropers: make(map[string]*ImproperType),
	}
}

// intern is the insert-or-get shared by all the record kinds. mk is only
// called if key is not present, with the write lock held, and must append
// the new record to the corresponding list.
func intern[T any](R *Registry, m map[string]*T, key string, mk func() *T) *T {
	R.mu.RLock()
	t, ok := m[key]
	R.mu.RUnlock()
	if ok {
		return t
	}
	R.mu.Lock()
	defer R.mu.Unlock()
	if t, ok = m[key]; ok { //someone else got here first
		return t
	}
	t = mk()
	m[key] = t
	return t
}

// InternParticleType returns the registry's particle type with the name of t,
// adding a copy of t if it isn't there yet.
func (R *Registry) InternParticleType(t ParticleType) *ParticleType {
	return intern(R, R.particles, t.Name, func() *ParticleType {
		n := t
		R.plist = append(R.plist, &n)
		n.ID = len(R.plist)
		return &n
	})
}

// InternBondType returns the registry's bond type with the key of t,
// adding a copy of t if it isn't there yet.
func (R *Registry) InternBondType(t BondType) *BondType {
	return intern(R, R.bonds, canonical(t.Names[:]...), func() *BondType {
		n := t
		R.blist = append(R.blist, &n)
		n.ID = len(R.blist)
		return &n
	})
}

// InternAngleType returns the registry's angle type with the key of t,
// adding a copy of t (without members) if it isn't there yet.
func (R *Registry) InternAngleType(t AngleType) *AngleType {
	return intern(R, R.angles, canonical(t.Names[:]...), func() *AngleType {
		n := t
		n.Members = nil
		R.alist = append(R.alist, &n)
		n.ID = len(R.alist)
		return &n
	})
}

// AddAngleMember records that the angle formed by the particles with the
// given indexes uses the type t, which must come from this registry.
func (R *Registry) AddAngleMember(t *AngleType, member [3]int) {
	R.mu.Lock()
	t.Members = append(t.Members, member)
	R.mu.Unlock()
}

// ClearAngleMembers empties the members of every angle type, so the
// angles of a system can be bound again.
func (R *Registry) ClearAngleMembers() {
	R.mu.Lock()
	defer R.mu.Unlock()
	for _, t := range R.alist {
		t.Members = nil
	}
}

// InternDihedralType returns the registry's dihedral type with the key and
// multiplicity of t, adding a copy of t if it isn't there yet.
func (R *Registry) InternDihedralType(t DihedralType) *DihedralType {
	k := canonical(t.Names[:]...) + "/" + strconv.Itoa(t.Multiplicity)
	return intern(R, R.dihedrals, k, func() *DihedralType {
		n := t
		R.dlist = append(R.dlist, &n)
		n.ID = len(R.dlist)
		return &n
	})
}

// InternImproperType returns the registry's improper type with the key and
// multiplicity of t, adding a copy of t if it isn't there yet.
func (R *Registry) InternImproperType(t ImproperType) *ImproperType {
	k := improperKey(t.Names[0], t.Names[1], t.Names[2], t.Names[3]) + "/" + strconv.Itoa(t.Multiplicity)
	return intern(R, R.impropers, k, func() *ImproperType {
		n := t
		R.ilist = append(R.ilist, &n)
		n.ID = len(R.ilist)
		return &n
	})
}

// ParticleType returns the registry's particle type with the given name.
func (R *Registry) ParticleType(name string) (*ParticleType, bool) {
	R.mu.RLock()
	defer R.mu.RUnlock()
	t, ok := R.particles[name]
	return t, ok
}

// BondType returns the registry's bond type for a and b, in either orientation.
func (R *Registry) BondType(a, b string) (*BondType, bool) {
	R.mu.RLock()
	defer R.mu.RUnlock()
	t, ok := R.bonds[canonical(a, b)]
	return t, ok
}

// AngleType returns the registry's angle type for a-b-c, in either orientation.
func (R *Registry) AngleType(a, b, c string) (*AngleType, bool) {
	R.mu.RLock()
	defer R.mu.RUnlock()
	t, ok := R.angles[canonical(a, b, c)]
	return t, ok
}

func listCopy[T any](R *Registry, l *[]*T) []*T {
	R.mu.RLock()
	defer R.mu.RUnlock()
	return append([]*T(nil), (*l)...)
}

// ParticleTypes returns the particle types in ID order.
func (R *Registry) ParticleTypes() []*ParticleType { return listCopy(R, &R.plist) }

// BondTypes returns the bond types in ID order.
func (R *Registry) BondTypes() []*BondType { return listCopy(R, &R.blist) }

// AngleTypes returns the angle types in ID order.
func (R *Registry) AngleTypes() []*AngleType { return listCopy(R, &R.alist) }

// DihedralTypes returns the dihedral types in ID order.
func (R *Registry) DihedralTypes() []*DihedralType { return listCopy(R, &R.dlist) }

// ImproperTypes returns the improper types in ID order.
func (R *Registry) ImproperTypes() []*ImproperType { return listCopy(R, &R.ilist) }

func (R *Registry) String() string {
	R.mu.RLock()
	defer R.mu.RUnlock()
	return fmt.Sprintf("registry: %d particle, %d bond, %d angle, %d dihedral and %d improper types",
		len(R.plist), len(R.blist), len(R.alist), len(R.dlist), len(R.ilist))
}
