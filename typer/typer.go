/*
 * typer.go, part of gosimm.
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
	"fmt"
	"time"

	simm "github.com/rmera/gosimm"
	"github.com/rmera/gosimm/chemgraph"
	"github.com/rmera/gosimm/ff"
	"go.uber.org/zap"
)

// Classifier gives the particle type name for a particle, or false if
// none of its rules apply. Implementations must only read the particle
// and its neighbors, as Classify is called concurrently.
type Classifier interface {
	Classify(p *simm.Particle) (string, bool)
}

// Typer assigns particle, bond, angle, dihedral and improper types to a
// system, looking parameters up in a reference catalog.
type Typer struct {
	cat         *ff.Catalog
	rules       Classifier
	log         *zap.Logger
	workers     int
	linkerTypes bool
}

// Option configures a Typer.
type Option func(*Typer)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(T *Typer) {
		if l != nil {
			T.log = l
		}
	}
}

// WithWorkers sets how many goroutines each phase may use. 1 or less
// runs everything in the calling goroutine.
func WithWorkers(n int) Option {
	return func(T *Typer) { T.workers = n }
}

// WithLinkerTypes makes linker particles get their own types, named with
// a HL@, TL@ or L@ prefix. Bonded lookups ignore the prefix.
func WithLinkerTypes(b bool) Option {
	return func(T *Typer) { T.linkerTypes = b }
}

// New returns a Typer that classifies particles with rules and takes
// parameters from cat.
func New(cat *ff.Catalog, rules Classifier, opts ...Option) *Typer {
	T := &Typer{cat: cat, rules: rules, log: zap.NewNop(), workers: 1}
	for _, o := range opts {
		o(T)
	}
	return T
}

// Status is the outcome of a typing phase.
type Status int

const (
	Skipped Status = iota
	Completed
	Failed
)

func (s Status) String() string {
	switch s {
	case Completed:
		return "completed"
	case Failed:
		return "failed"
	}
	return "skipped"
}

// MarshalText lets Status show as text in reports.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(b []byte) error {
	switch string(b) {
	case "completed":
		*s = Completed
	case "failed":
		*s = Failed
	case "skipped":
		*s = Skipped
	default:
		return fmt.Errorf("unknown phase status %q", b)
	}
	return nil
}

// Phase is the outcome of one typing phase.
type Phase struct {
	Name     string
	Status   Status
	Count    int           //number of terms typed
	Wildcard int           //dihedrals and impropers typed through wildcard entries
	Elapsed  time.Duration //wall time of the phase
}

// Report has one entry per phase, in the order they run.
type Report struct {
	Particles Phase
	Bonds     Phase
	Angles    Phase
	Dihedrals Phase
	Impropers Phase
}

// Phases returns pointers to the phases of the report, in running order.
func (R *Report) Phases() []*Phase {
	return []*Phase{&R.Particles, &R.Bonds, &R.Angles, &R.Dihedrals, &R.Impropers}
}

// OK returns true if every phase completed.
func (R *Report) OK() bool {
	for _, p := range R.Phases() {
		if p.Status != Completed {
			return false
		}
	}
	return true
}

// Run types the system. Phases run in order, each one only after the
// previous one has finished for every particle or term: particles, bonds,
// angles, dihedrals and impropers. Angles, dihedrals and impropers are rebuilt
// from the bond graph. If a phase fails, nothing is bound in that phase,
// later phases are skipped, and the error (which may combine several
// failures) is returned along with the report.
func (T *Typer) Run(ctx context.Context, S *simm.System) (*Report, error) {
	rep := &Report{}
	rep.Particles.Name = "particles"
	rep.Bonds.Name = "bonds"
	rep.Angles.Name = "angles"
	rep.Dihedrals.Name = "dihedrals"
	rep.Impropers.Name = "impropers"
	if err := S.CheckBondOrders(); err != nil {
		rep.Particles.Status = Failed
		return rep, simm.DecorateError(err, "Run")
	}
	rings := chemgraph.Perceive(S)
	T.log.Debug("perceived rings", zap.String("system", S.Name), zap.Int("rings", len(rings)))
	steps := []func(context.Context, *simm.System, *Phase) error{
		T.typeParticles,
		T.typeBonds,
		T.typeAngles,
		T.typeDihedrals,
		T.typeImpropers,
	}
	for i, ph := range rep.Phases() {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		start := time.Now()
		err := steps[i](ctx, S, ph)
		ph.Elapsed = time.Since(start)
		if err != nil {
			ph.Status = Failed
			T.log.Error("typing phase failed", zap.String("system", S.Name), zap.String("phase", ph.Name), zap.Error(err))
			return rep, simm.DecorateError(err, "Run")
		}
		ph.Status = Completed
		T.log.Debug("typing phase done",
			zap.String("system", S.Name),
			zap.String("phase", ph.Name),
			zap.Int("count", ph.Count),
			zap.Int("wildcard", ph.Wildcard),
			zap.Duration("elapsed", ph.Elapsed))
	}
	return rep, nil
}
