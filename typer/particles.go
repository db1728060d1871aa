/*
 * particles.go, part of gosimm.
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
	"go.uber.org/zap"
)

// typeParticles classifies every untyped particle. Names are collected
// first and only bound if every particle got one, so a failed pass leaves
// the system as it was. Particles that already have a type keep it.
func (T *Typer) typeParticles(ctx context.Context, S *simm.System, ph *Phase) error {
	names := make([]string, S.Len())
	err := T.each(ctx, S.Len(), func(i int) error {
		p := S.Particles[i]
		if p.Type != nil {
			return nil
		}
		name, ok := T.rules.Classify(p)
		if !ok {
			return unclassifiable(p)
		}
		names[i] = name
		return nil
	})
	if err != nil {
		return err
	}
	warned := make(map[string]bool)
	for i, p := range S.Particles {
		if p.Type != nil {
			p.Type = S.Types.InternParticleType(*p.Type)
			continue
		}
		p.Type = T.internParticle(S, p, names[i], warned)
		ph.Count++
	}
	return nil
}

// internParticle returns the registry record for the particle type name,
// copying it from the catalog if needed. Names missing from the catalog get
// a record with only the element and its mass.
func (T *Typer) internParticle(S *simm.System, p *simm.Particle, name string, warned map[string]bool) *ff.ParticleType {
	var rec ff.ParticleType
	if ref, ok := T.cat.ParticleType(name); ok {
		rec = *ref
	} else {
		if !warned[name] {
			T.log.Warn("particle type not in catalog", zap.String("type", name), zap.String("catalog", T.cat.Name), zap.Int("particle", p.Index))
			warned[name] = true
		}
		rec = ff.ParticleType{Name: name, Element: p.Element}
		rec.Mass, _ = simm.ElementMass(p.Element)
	}
	if T.linkerTypes && p.Linker != simm.NotLinker {
		rec.Name = p.Linker.Prefix() + rec.Name
	}
	return S.Types.InternParticleType(rec)
}

func unclassifiable(p *simm.Particle) error {
	err := simm.NewTypingError(simm.UnclassifiableParticle, p.Index)
	err.Element = p.Element
	err.Neighbors = p.NeighborElements()
	err.Decorate("typeParticles")
	return err
}

// baseName is the type name used for bonded lookups: linker prefixes
// are not part of the catalog keys.
func baseName(p *simm.Particle) string {
	return ff.BaseName(p.TypeName())
}
