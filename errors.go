/*
 * errors.go, part of goacsf.
 *
 *
 * Copyright 2023 Raul Mera A. (raulpuntomeraatusachpuntocl)
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
 *
 */

package acsf

import "fmt"

// ErrKind classifies the failures this library can produce on its own.
// A wrong descriptor configuration that quietly produces plausible-looking
// numbers is worse than a loud failure, so everything the user can get
// wrong maps to one of these kinds, which can be checked with KindOf.
type ErrKind int

const (
	//NoError is the kind reported by KindOf for nil errors and for errors
	//foreign to this library.
	NoError ErrKind = iota
	//InvalidConfig means malformed construction arguments: no types, a
	//non-positive cutoff or atom capacity, or parameters out of domain.
	InvalidConfig
	//ConfigLocked means an attempt to mutate an already-built engine.
	ConfigLocked
	//UnknownType means a structure contains an atomic number that was not
	//declared when the engine was built, or is otherwise degenerate.
	UnknownType
	//TooManyAtoms means a structure exceeds the engine's atom capacity.
	TooManyAtoms
)

func (k ErrKind) String() string {
	switch k {
	case InvalidConfig:
		return "invalid configuration"
	case ConfigLocked:
		return "configuration locked"
	case UnknownType:
		return "unknown atom type"
	case TooManyAtoms:
		return "too many atoms"
	}
	return "no error"
}

// CError (Concrete Error) is the concrete error type of the library.
// It implements the Error interface, plus a Kind method for the
// classification above.
type CError struct {
	kind ErrKind
	msg  string
	deco []string
}

func (err *CError) Error() string { return fmt.Sprintf("%v: %v", err.kind, err.msg) }

// Kind returns the classification of the error.
func (err *CError) Kind() ErrKind { return err.kind }

// Decorate adds the dec string to the decoration slice of strings of the
// error and returns the resulting slice. If dec is empty, it just returns
// the current slice.
func (err *CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// KindOf returns the ErrKind of err, or NoError if err is nil or does
// not come from this library.
func KindOf(err error) ErrKind {
	if err == nil {
		return NoError
	}
	type kinder interface {
		Kind() ErrKind
	}
	if e, ok := err.(kinder); ok {
		return e.Kind()
	}
	return NoError
}

// errDecorate is a helper function that asserts that the error
// implements Error and decorates the error with the caller's name before
// returning it. If used with an error from outside the library, it will
// cause a panic.
func errDecorate(err error, caller string) error {
	err2 := err.(Error) //I know that is the type returned by the functions in this library
	err2.Decorate(caller)
	return err2
}

// PanicMsg is a message used for panics. It does satisfy the error
// interface, but for errors use CError. Panics are reserved for
// programming mistakes: broken Structurer implementations, out of range
// indexes and the like, not for bad user input.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNilData         = PanicMsg("goacsf: Nil data given")
	ErrShape           = PanicMsg("goacsf: Dimension mismatch")
	ErrInconsistent    = PanicMsg("goacsf: Structurer reports inconsistent atoms/distances")
	ErrIndexOutOfRange = PanicMsg("goacsf: Index out of range")
)
