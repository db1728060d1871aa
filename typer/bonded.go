/*
 * bonded.go, part of gosimm.
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

package typer

import (
	"context"

	simm "github.com/rmera/gosimm"
	"github.com/rmera/gosimm/ff"
)

func unmatched(kind simm.ErrorKind, first *simm.Particle, index int, key, caller string) error {
	err := simm.NewTypingError(kind, first.Index)
	err.Element = first.Element
	err.Key = key
	err.Index = index
	err.Decorate(caller)
	return err
}

// uniqueNeighbors returns the particles bonded to p, each one once, in
// bond order.
func uniqueNeighbors(p *simm.Particle) []*simm.Particle {
	ret := make([]*simm.Particle, 0, len(p.Bonds))
	seen := make(map[int]bool, len(p.Bonds))
	for _, q := range p.Neighbors() {
		if seen[q.Index] {
			continue
		}
		seen[q.Index] = true
		ret = append(ret, q)
	}
	return ret
}

func (T *Typer) typeBonds(ctx context.Context, S *simm.System, ph *Phase) error {
	found := make([]*ff.BondType, len(S.Bonds))
	err := T.each(ctx, len(S.Bonds), func(i int) error {
		b := S.Bonds[i]
		a, c := baseName(b.P1), baseName(b.P2)
		t, ok := T.cat.BondType(a, c)
		if !ok {
			return unmatched(simm.UnmatchedBond, b.P1, b.Index, ff.Key(a, c), "typeBonds")
		}
		found[i] = t
		return nil
	})
	if err != nil {
		return err
	}
	for i, b := range S.Bonds {
		b.Type = S.Types.InternBondType(*found[i])
		ph.Count++
	}
	return nil
}

// angles returns every P1-Center-P2 triple of the system, centers in index
// order and each unordered pair of neighbors once.
func angles(S *simm.System) []*simm.Angle {
	var ret []*simm.Angle
	for _, c := range S.Particles {
		n := uniqueNeighbors(c)
		for i := 0; i < len(n); i++ {
			for j := i + 1; j < len(n); j++ {
				ret = append(ret, &simm.Angle{Index: len(ret), P1: n[i], Center: c, P2: n[j]})
			}
		}
	}
	return ret
}

func (T *Typer) typeAngles(ctx context.Context, S *simm.System, ph *Phase) error {
	ang := angles(S)
	found := make([]*ff.AngleType, len(ang))
	err := T.each(ctx, len(ang), func(i int) error {
		a := ang[i]
		n1, c, n2 := baseName(a.P1), baseName(a.Center), baseName(a.P2)
		t, ok := T.cat.AngleType(n1, c, n2)
		if !ok {
			return unmatched(simm.UnmatchedAngle, a.P1, i, ff.Key(n1, c, n2), "typeAngles")
		}
		found[i] = t
		return nil
	})
	if err != nil {
		return err
	}
	S.Types.ClearAngleMembers()
	for i, a := range ang {
		a.Type = S.Types.InternAngleType(*found[i])
		S.Types.AddAngleMember(a.Type, [3]int{a.P1.Index, a.Center.Index, a.P2.Index})
		ph.Count++
	}
	S.Angles = ang
	return nil
}

// dihedrals returns the P1-B-A-P2 chains around every bond B-A (bonds in
// declaration order, a pair bonded twice is only used once). Chains whose ends are bonded
// to each other are dropped, unless there is nothing else around that bond.
func dihedrals(S *simm.System) []*simm.Dihedral {
	var ret []*simm.Dihedral
	done := make(map[[2]int]bool)
	for _, bond := range S.Bonds {
		b, a := bond.P1, bond.P2
		k := [2]int{min(a.Index, b.Index), max(a.Index, b.Index)}
		if done[k] {
			continue
		}
		done[k] = true
		var open, closed []*simm.Dihedral
		for _, p1 := range uniqueNeighbors(b) {
			if p1.Index == a.Index {
				continue
			}
			for _, p2 := range uniqueNeighbors(a) {
				if p2.Index == b.Index || p2.Index == p1.Index {
					continue
				}
				d := &simm.Dihedral{P1: p1, B: b, A: a, P2: p2}
				if S.Bonded(p1, p2) {
					closed = append(closed, d)
				} else {
					open = append(open, d)
				}
			}
		}
		if len(open) == 0 {
			open = closed
		}
		for _, d := range open {
			d.Index = len(ret)
			ret = append(ret, d)
		}
	}
	return ret
}

func (T *Typer) typeDihedrals(ctx context.Context, S *simm.System, ph *Phase) error {
	dih := dihedrals(S)
	found := make([]ff.DihedralMatch, len(dih))
	err := T.each(ctx, len(dih), func(i int) error {
		d := dih[i]
		n := [4]string{baseName(d.P1), baseName(d.B), baseName(d.A), baseName(d.P2)}
		m := T.cat.DihedralTypes(n[0], n[1], n[2], n[3])
		if len(m) == 0 {
			return unmatched(simm.UnmatchedDihedral, d.P1, i, ff.Key(n[:]...), "typeDihedrals")
		}
		found[i] = m[0]
		return nil
	})
	if err != nil {
		return err
	}
	for i, d := range dih {
		d.Type = S.Types.InternDihedralType(*found[i].Type)
		if found[i].Wildcards > 0 {
			ph.Wildcard++
		}
		ph.Count++
	}
	S.Dihedrals = dih
	return nil
}

// alignNeighbors orders the neighbors so they follow the names of the
// improper type: exact names first, wildcard slots get the rest in their
// original order.
func alignNeighbors(t *ff.ImproperType, n []*simm.Particle) [3]*simm.Particle {
	var ret [3]*simm.Particle
	used := make([]bool, len(n))
	for slot := 1; slot <= 3; slot++ {
		if t.Names[slot] == ff.Wildcard {
			continue
		}
		for j, q := range n {
			if !used[j] && baseName(q) == t.Names[slot] {
				ret[slot-1] = q
				used[j] = true
				break
			}
		}
	}
	for slot := 0; slot < 3; slot++ {
		if ret[slot] != nil {
			continue
		}
		for j, q := range n {
			if !used[j] {
				ret[slot] = q
				used[j] = true
				break
			}
		}
	}
	return ret
}

// typeImpropers adds an improper for every particle with exactly three
// neighbors that has a matching improper type. A missing improper type is
// not an error.
func (T *Typer) typeImpropers(ctx context.Context, S *simm.System, ph *Phase) error {
	found := make([]*simm.Improper, S.Len())
	err := T.each(ctx, S.Len(), func(i int) error {
		c := S.Particles[i]
		n := uniqueNeighbors(c)
		if len(n) != 3 {
			return nil
		}
		t, ok := T.cat.ImproperType(baseName(c), baseName(n[0]), baseName(n[1]), baseName(n[2]))
		if !ok {
			return nil
		}
		found[i] = &simm.Improper{Center: c, Neighbors: alignNeighbors(t, n), Type: t}
		return nil
	})
	if err != nil {
		return err
	}
	var imp []*simm.Improper
	for _, v := range found {
		if v == nil {
			continue
		}
		if v.Type.Wildcards() > 0 {
			ph.Wildcard++
		}
		v.Type = S.Types.InternImproperType(*v.Type)
		v.Index = len(imp)
		imp = append(imp, v)
		ph.Count++
	}
	S.Impropers = imp
	return nil
}
