/*
 * charge.go, part of gosimm.
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

// Package charge assigns partial charges to the particles of a system.
// Methods only read elements, bonds, formal charges and, for some of them,
// positions. They never look at force field types, so charges can be
// assigned before or after typing.
//
// Every bonded fragment is handled on its own, and keeps the sum of the
// formal charges of its particles.
package charge

import (
	"context"
	"sort"
	"sync"

	simm "github.com/rmera/gosimm"
	"github.com/rmera/gosimm/chemgraph"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
)

// Default parameters for iterative methods.
const (
	DefaultMaxIter   = 6
	DefaultDamping   = 0.5
	DefaultTolerance = 1e-8
)

// Options for charge assignment. Not every method uses all of them.
type Options struct {
	MaxIter   int     //iteration cap
	Damping   float64 //the charge transfer in iteration k is scaled by Damping^k
	Tolerance float64 //stop when no charge changes by more than this
	Log       *zap.Logger
}

// Option modifies Options.
type Option func(*Options)

func WithMaxIter(n int) Option { return func(o *Options) { o.MaxIter = n } }

func WithDamping(d float64) Option { return func(o *Options) { o.Damping = d } }

func WithTolerance(t float64) Option { return func(o *Options) { o.Tolerance = t } }

func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Log = l
		}
	}
}

// Method computes the charges of the particles whose indexes are in frag,
// which form one bonded fragment of S. The returned slice has one charge per
// element of frag, in the same order.
type Method func(ctx context.Context, S *simm.System, frag []int, o *Options) ([]float64, error)

var (
	mu      sync.RWMutex
	methods = map[string]Method{
		"gasteiger": Gasteiger,
		"qeq":       QEq,
		"none":      None,
	}
)

// Register makes a method available under the given name, replacing any
// previous method with that name.
func Register(name string, m Method) {
	mu.Lock()
	defer mu.Unlock()
	methods[name] = m
}

// Methods returns the names of the available methods, sorted.
func Methods() []string {
	mu.RLock()
	defer mu.RUnlock()
	ret := make([]string, 0, len(methods))
	for k := range methods {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}

func lookup(name string) (Method, bool) {
	mu.RLock()
	defer mu.RUnlock()
	m, ok := methods[name]
	return m, ok
}

func unsupported(method string) error {
	err := simm.NewTypingError(simm.UnsupportedChargeMethod, -1)
	err.Key = method
	return err
}

func missingParams(method string, p *simm.Particle) error {
	err := simm.NewTypingError(simm.MissingChargeParameters, p.Index)
	err.Key = method
	err.Element = p.Element
	return err
}

// single returns the formal charge of a fragment with one particle.
func single(S *simm.System, frag []int) ([]float64, bool) {
	if len(frag) != 1 {
		return nil, false
	}
	return []float64{float64(S.Particles[frag[0]].FormalCharge)}, true
}

// Assign computes charges for every particle in S with the named method.
// Charges are only written to the particles if every fragment succeeded.
// An unknown method name gives an error that is simm.ErrUnsupportedChargeMethod,
// a bonded particle whose element the method has no parameters for, one
// that is simm.ErrMissingChargeParameters. Lone particles, such as
// counterions, keep their formal charge with every built-in method but none.
func Assign(ctx context.Context, S *simm.System, method string, opts ...Option) error {
	o := &Options{MaxIter: DefaultMaxIter, Damping: DefaultDamping, Tolerance: DefaultTolerance, Log: zap.NewNop()}
	for _, f := range opts {
		f(o)
	}
	m, ok := lookup(method)
	if !ok {
		return simm.DecorateError(unsupported(method), "Assign")
	}
	frags := chemgraph.Fragments(S)
	q := make([]float64, S.Len())
	for _, frag := range frags {
		if err := ctx.Err(); err != nil {
			return err
		}
		fq, err := m(ctx, S, frag, o)
		if err != nil {
			return simm.DecorateError(err, "Assign")
		}
		for i, v := range fq {
			q[frag[i]] = v
		}
	}
	for i, p := range S.Particles {
		p.Charge = q[i]
	}
	o.Log.Debug("charges assigned",
		zap.String("system", S.Name),
		zap.String("method", method),
		zap.Int("fragments", len(frags)),
		zap.Float64("net", floats.Sum(q)))
	return nil
}

// Net returns the sum of the partial charges of the particles in S.
func Net(S *simm.System) float64 {
	q := make([]float64, S.Len())
	for i, p := range S.Particles {
		q[i] = p.Charge
	}
	return floats.Sum(q)
}

// FragmentCharge returns the sum of the formal charges of the particles
// in frag.
func FragmentCharge(S *simm.System, frag []int) int {
	ret := 0
	for _, i := range frag {
		ret += S.Particles[i].FormalCharge
	}
	return ret
}

// None sets every charge to zero.
func None(ctx context.Context, S *simm.System, frag []int, o *Options) ([]float64, error) {
	return make([]float64, len(frag)), nil
}
