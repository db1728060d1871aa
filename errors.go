/*
 * errors.go, part of gosimm.
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
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// ErrorKind classifies typing failures.
type ErrorKind int

const (
	MissingBondOrder ErrorKind = iota + 1
	UnclassifiableParticle
	UnmatchedBond
	UnmatchedAngle
	UnmatchedDihedral
	UnsupportedChargeMethod
	MissingChargeParameters
)

func (k ErrorKind) String() string {
	switch k {
	case MissingBondOrder:
		return "missing bond order"
	case UnclassifiableParticle:
		return "unclassifiable particle"
	case UnmatchedBond:
		return "unmatched bond"
	case UnmatchedAngle:
		return "unmatched angle"
	case UnmatchedDihedral:
		return "unmatched dihedral"
	case UnsupportedChargeMethod:
		return "unsupported charge method"
	case MissingChargeParameters:
		return "missing charge parameters"
	}
	return "unknown error"
}

// Sentinels for errors.Is. A *TypingError of a given kind "is" the
// corresponding sentinel.
var (
	ErrMissingBondOrder        = errors.New(MissingBondOrder.String())
	ErrUnclassifiableParticle  = errors.New(UnclassifiableParticle.String())
	ErrUnmatchedBond           = errors.New(UnmatchedBond.String())
	ErrUnmatchedAngle          = errors.New(UnmatchedAngle.String())
	ErrUnmatchedDihedral       = errors.New(UnmatchedDihedral.String())
	ErrUnsupportedChargeMethod = errors.New(UnsupportedChargeMethod.String())
	ErrMissingChargeParameters = errors.New(MissingChargeParameters.String())
)

var sentinels = map[ErrorKind]error{
	MissingBondOrder:        ErrMissingBondOrder,
	UnclassifiableParticle:  ErrUnclassifiableParticle,
	UnmatchedBond:           ErrUnmatchedBond,
	UnmatchedAngle:          ErrUnmatchedAngle,
	UnmatchedDihedral:       ErrUnmatchedDihedral,
	UnsupportedChargeMethod: ErrUnsupportedChargeMethod,
	MissingChargeParameters: ErrMissingChargeParameters,
}

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing its type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Adds the caller name to the breadcrumbs, and returns them. An empty string just returns the current ones.
	Critical() bool
}

// TypingError reports a failure of the typing pipeline or of the charge assignment.
// Particle is the index of the offending particle (or of the first particle in the
// offending bond/angle/dihedral), -1 if it doesn't apply.
type TypingError struct {
	kind      ErrorKind
	Particle  int
	Element   string
	Neighbors []string //sorted neighbor elements, for unclassifiable particles
	Key       string   //comma-joined type names, for unmatched bonded terms. The method name for charges.
	Index     int      //index of the bond/angle/dihedral, when relevant.
	deco      []string
	critical  bool
}

// NewTypingError returns a critical error of the given kind. Callers fill
// in the remaining fields.
func NewTypingError(kind ErrorKind, particle int) *TypingError {
	return &TypingError{kind: kind, Particle: particle, Index: -1, critical: true}
}

// Kind returns the kind of failure.
func (err *TypingError) Kind() ErrorKind { return err.kind }

func (err *TypingError) Error() string {
	var b strings.Builder
	b.WriteString(err.kind.String())
	switch err.kind {
	case UnclassifiableParticle:
		fmt.Fprintf(&b, ": particle %d (%s) bonded to [%s]", err.Particle, err.Element, strings.Join(err.Neighbors, " "))
	case MissingBondOrder:
		fmt.Fprintf(&b, ": bond between particles %s", err.Key)
	case UnsupportedChargeMethod, MissingChargeParameters:
		fmt.Fprintf(&b, ": %q", err.Key)
		if err.Particle >= 0 {
			fmt.Fprintf(&b, " for particle %d (%s)", err.Particle, err.Element)
		}
	default:
		fmt.Fprintf(&b, ": no type for %q", err.Key)
		if err.Index >= 0 {
			fmt.Fprintf(&b, " (term %d)", err.Index)
		}
	}
	if len(err.deco) > 0 {
		fmt.Fprintf(&b, " [%s]", strings.Join(err.deco, " <- "))
	}
	return b.String()
}

// Decorate adds dec to the breadcrumbs of the error, unless dec is empty,
// and returns the breadcrumbs.
func (err *TypingError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical returns whether the error should stop the typing pass.
func (err *TypingError) Critical() bool { return err.critical }

// Is makes errors.Is(err, ErrUnmatchedAngle) and friends work.
func (err *TypingError) Is(target error) bool {
	return sentinels[err.kind] == target
}

// DecorateError is a helper function that decorates the error with the caller's
// name if it implements Error, and returns it unchanged otherwise. Every error
// combined by multierr is decorated.
func DecorateError(err error, caller string) error {
	if err == nil {
		return nil
	}
	for _, each := range multierr.Errors(err) {
		var e Error
		if errors.As(each, &e) {
			e.Decorate(caller)
		}
	}
	return err
}

// PanicMsg is a message used for panics, even though it does satisfy the error interface.
// for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNilParticle  = PanicMsg("gosimm: Nil particle given")
	ErrForeignIndex = PanicMsg("gosimm: Particle index out of the range of the system")
	ErrSelfBond     = PanicMsg("gosimm: A particle can't be bonded to itself")
)
