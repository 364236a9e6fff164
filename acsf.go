/*
 * acsf.go, part of goacsf.
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

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ACSF is an atom-centered symmetry function descriptor engine. It is
// built once, with the atomic numbers it will accept, the capacity in
// atoms, the cutoff radius and the parameter tables, and after that its
// configuration never changes: the Set methods only work during
// construction and return a ConfigLocked error afterwards. A locked
// engine is safe for concurrent use, as describing mutates nothing but
// the output buffer.
type ACSF struct {
	tindex    *TypeIndex
	maxAtoms  int
	cutoff    float64
	radial    []RadialParam
	radialCos []float64
	angular   []AngularParam
	nG2       int //features per type slot: 1 + |radial| + |radialCos|
	nG3       int //features per pair slot: |angular|
	width     int
	cpus      int
	built     bool
}

// New builds a descriptor engine for structures of up to maxAtoms
// atoms whose atomic numbers are among types (deduped and sorted
// ascending, so order and repetition don't matter). The cutoff radius
// and the three parameter tables come from options; with the defaults
// every parameter table is empty, which leaves only the bare
// cutoff-sum feature per type. Malformed settings give an
// InvalidConfig error: a wrong configuration that quietly produces
// plausible-looking numbers is worse than a loud failure.
func New(maxAtoms int, types []int, options ...*Options) (*ACSF, error) {
	var o *Options
	if len(options) > 0 && options[0] != nil {
		o = options[0]
	} else {
		o = DefaultOptions()
	}
	A := new(ACSF)
	if err := A.SetMaxAtoms(maxAtoms); err != nil {
		return nil, errDecorate(err, "New")
	}
	if err := A.SetTypes(types); err != nil {
		return nil, errDecorate(err, "New")
	}
	if err := A.SetCutoff(o.Cutoff()); err != nil {
		return nil, errDecorate(err, "New")
	}
	if err := A.SetRadialParams(o.RadialParams()); err != nil {
		return nil, errDecorate(err, "New")
	}
	if err := A.SetRadialCosParams(o.RadialCosParams()); err != nil {
		return nil, errDecorate(err, "New")
	}
	if err := A.SetAngularParams(o.AngularParams()); err != nil {
		return nil, errDecorate(err, "New")
	}
	A.cpus = o.Cpus()
	A.nG2 = 1 + len(A.radial) + len(A.radialCos)
	A.nG3 = len(A.angular)
	A.width = A.NTypes()*A.nG2 + A.NSymTypes()*A.nG3
	A.built = true
	return A, nil
}

func lockedError(caller string) *CError {
	err := new(CError)
	err.kind = ConfigLocked
	err.msg = "The engine is already built, its configuration can't change"
	err.Decorate(caller)
	return err
}

// SetMaxAtoms sets the capacity, in atoms, of the engine. Like all the
// Set methods, it only works before the engine is built; on a built
// engine it returns a ConfigLocked error.
func (A *ACSF) SetMaxAtoms(n int) error {
	if A.built {
		return lockedError("SetMaxAtoms")
	}
	if n <= 0 {
		err := new(CError)
		err.kind = InvalidConfig
		err.msg = fmt.Sprintf("The maximum number of atoms must be positive, got %d", n)
		err.Decorate("SetMaxAtoms")
		return err
	}
	A.maxAtoms = n
	return nil
}

// SetTypes sets the accepted atomic numbers. On a built engine it
// returns a ConfigLocked error.
func (A *ACSF) SetTypes(types []int) error {
	if A.built {
		return lockedError("SetTypes")
	}
	T, err := NewTypeIndex(types)
	if err != nil {
		return errDecorate(err, "SetTypes")
	}
	A.tindex = T
	return nil
}

// SetCutoff sets the cutoff radius, which must be positive. On a built
// engine it returns a ConfigLocked error.
func (A *ACSF) SetCutoff(cutoff float64) error {
	if A.built {
		return lockedError("SetCutoff")
	}
	if cutoff <= 0 || math.IsNaN(cutoff) {
		err := new(CError)
		err.kind = InvalidConfig
		err.msg = fmt.Sprintf("The cutoff radius must be positive, got %v", cutoff)
		err.Decorate("SetCutoff")
		return err
	}
	A.cutoff = cutoff
	return nil
}

// SetRadialParams sets the Gaussian radial parameter table. An empty or
// nil table disables the family. On a built engine it returns a
// ConfigLocked error.
func (A *ACSF) SetRadialParams(params []RadialParam) error {
	if A.built {
		return lockedError("SetRadialParams")
	}
	A.radial = make([]RadialParam, len(params))
	copy(A.radial, params)
	return nil
}

// SetRadialCosParams sets the cosine radial parameter table, one eta
// per function. An empty or nil table disables the family. On a built
// engine it returns a ConfigLocked error.
func (A *ACSF) SetRadialCosParams(params []float64) error {
	if A.built {
		return lockedError("SetRadialCosParams")
	}
	A.radialCos = make([]float64, len(params))
	copy(A.radialCos, params)
	return nil
}

// SetAngularParams sets the angular parameter table. Lambda must be +1
// or -1 and Zeta a positive integer, anything else gives an
// InvalidConfig error. An empty or nil table disables the family. On a
// built engine it returns a ConfigLocked error.
func (A *ACSF) SetAngularParams(params []AngularParam) error {
	if A.built {
		return lockedError("SetAngularParams")
	}
	for i, p := range params {
		if p.Lambda != 1 && p.Lambda != -1 {
			err := new(CError)
			err.kind = InvalidConfig
			err.msg = fmt.Sprintf("Angular parameter %d: lambda must be +1 or -1, got %v", i, p.Lambda)
			err.Decorate("SetAngularParams")
			return err
		}
		if p.Zeta < 1 || p.Zeta != math.Trunc(p.Zeta) {
			err := new(CError)
			err.kind = InvalidConfig
			err.msg = fmt.Sprintf("Angular parameter %d: zeta must be a positive integer, got %v", i, p.Zeta)
			err.Decorate("SetAngularParams")
			return err
		}
	}
	A.angular = make([]AngularParam, len(params))
	copy(A.angular, params)
	return nil
}

//Accessors. The parameter tables are returned as copies, so the
//caller can't alter a built engine through them.

// MaxAtoms returns the capacity, in atoms, of the engine.
func (A *ACSF) MaxAtoms() int { return A.maxAtoms }

// Cutoff returns the cutoff radius.
func (A *ACSF) Cutoff() float64 { return A.cutoff }

// Cpus returns the number of gorutines ConcDescribe uses.
func (A *ACSF) Cpus() int { return A.cpus }

// RadialParams returns a copy of the Gaussian radial parameter table.
func (A *ACSF) RadialParams() []RadialParam {
	ret := make([]RadialParam, len(A.radial))
	copy(ret, A.radial)
	return ret
}

// RadialCosParams returns a copy of the cosine radial parameter table.
func (A *ACSF) RadialCosParams() []float64 {
	ret := make([]float64, len(A.radialCos))
	copy(ret, A.radialCos)
	return ret
}

// AngularParams returns a copy of the angular parameter table.
func (A *ACSF) AngularParams() []AngularParam {
	ret := make([]AngularParam, len(A.angular))
	copy(ret, A.angular)
	return ret
}

// Slot returns the type slot for the atomic number z, or an
// UnknownType error if z was not declared.
func (A *ACSF) Slot(z int) (int, error) { return A.tindex.Slot(z) }

// PairSlot returns the symmetric pair slot for the unordered pair of
// type slots {a,b}.
func (A *ACSF) PairSlot(a, b int) int { return A.tindex.PairSlot(a, b) }

// NTypes returns the number of declared types.
func (A *ACSF) NTypes() int { return A.tindex.NTypes() }

// NSymTypes returns the number of unordered pairs of declared types.
func (A *ACSF) NSymTypes() int { return A.tindex.NSymTypes() }

// Types returns a copy of the declared atomic numbers, deduped and
// sorted ascending.
func (A *ACSF) Types() []int { return A.tindex.Types() }

// NG2 returns the number of radial features per type slot.
func (A *ACSF) NG2() int { return A.nG2 }

// NG3 returns the number of angular features per pair slot.
func (A *ACSF) NG3() int { return A.nG3 }

// Width returns the number of feature columns per atom:
// NTypes*NG2 + NSymTypes*NG3.
func (A *ACSF) Width() int { return A.width }

// NFeatures returns the total size of the descriptor of one structure,
// Width()*MaxAtoms(), i.e. the length of the slice DescribeFlat
// returns. It needs no structure: the size depends on the
// configuration alone.
func (A *ACSF) NFeatures() int { return A.width * A.maxAtoms }

//checkStructure runs the per-call validation and returns the type slot
//of each atom plus the distance matrix. The checks on user input (atom
//count, atom types) return errors; a Structurer whose own pieces
//disagree with each other is a broken implementation, so that panics.
func (A *ACSF) checkStructure(s Structurer) ([]int, mat.Symmetric, error) {
	if s == nil {
		panic(ErrNilData)
	}
	zs := s.AtomicNumbers()
	n := s.Len()
	if len(zs) != n {
		panic(ErrInconsistent)
	}
	if n > A.maxAtoms {
		err := new(CError)
		err.kind = TooManyAtoms
		err.msg = fmt.Sprintf("The structure has %d atoms, but the engine was built for at most %d", n, A.maxAtoms)
		err.Decorate("checkStructure")
		return nil, nil, err
	}
	dm := s.DistanceMatrix()
	if dm == nil {
		panic(ErrNilData)
	}
	if r, _ := dm.Dims(); r != n {
		panic(ErrInconsistent)
	}
	slots := make([]int, n)
	for i, z := range zs {
		slot, err := A.Slot(z)
		if err != nil {
			return nil, nil, errDecorate(err, "checkStructure")
		}
		slots[i] = slot
	}
	return slots, dm, nil
}

// Describe computes the descriptors for the structure s and returns
// them in a freshly allocated Buffer, which the caller then owns.
// It fails with TooManyAtoms if s exceeds the engine's capacity and
// with UnknownType if any atom of s has an undeclared atomic number.
// For a fixed structure the result is reproducible bit by bit.
func (A *ACSF) Describe(s Structurer) (*Buffer, error) {
	buf := A.NewBuffer()
	if err := A.DescribeInto(buf, s); err != nil {
		return nil, errDecorate(err, "Describe")
	}
	return buf, nil
}

// DescribeInto is like Describe but reuses buf instead of allocating,
// for callers describing many structures with one engine. buf must
// come from NewBuffer on this engine (or one with equal dimensions);
// a mismatched buffer panics. Previous contents don't matter: the
// buffer is zeroed first. If an error is returned, the contents of
// buf are undefined.
func (A *ACSF) DescribeInto(buf *Buffer, s Structurer) error {
	if buf == nil {
		panic(ErrNilData)
	}
	if buf.rows != A.maxAtoms || buf.width != A.width {
		panic(ErrShape)
	}
	slots, dm, err := A.checkStructure(s)
	if err != nil {
		return errDecorate(err, "DescribeInto")
	}
	buf.Zero()
	n := len(slots)
	for i := 0; i < n; i++ {
		row := buf.Row(i)
		A.radialFill(i, n, slots, dm, row)
		if A.nG3 > 0 {
			if err := A.angularFill(i, n, slots, dm, row); err != nil {
				return errDecorate(err, "DescribeInto")
			}
		}
	}
	buf.natoms = n
	return nil
}

// DescribeFlat is Describe with the buffer flattened row-major into a
// freshly allocated slice of length NFeatures(), the form most ML
// pipelines take as input.
func (A *ACSF) DescribeFlat(s Structurer) ([]float64, error) {
	buf, err := A.Describe(s)
	if err != nil {
		return nil, errDecorate(err, "DescribeFlat")
	}
	return buf.Flat(), nil
}

// ConcDescribe is Describe computing the feature rows concurrently,
// with up to Cpus() gorutines. Atoms are independent, so the rows are
// simply sharded among the workers; each result is bit-identical to
// what Describe returns.
func (A *ACSF) ConcDescribe(s Structurer) (*Buffer, error) {
	slots, dm, err := A.checkStructure(s)
	if err != nil {
		return nil, errDecorate(err, "ConcDescribe")
	}
	buf := A.NewBuffer()
	n := len(slots)
	if n == 0 {
		return buf, nil
	}
	cpus := A.cpus
	if cpus > n {
		cpus = n
	}
	results := make([]chan error, cpus)
	chunk := n / cpus
	extra := n % cpus
	start := 0
	for w := 0; w < cpus; w++ {
		size := chunk
		if w < extra {
			size++
		}
		end := start + size
		results[w] = make(chan error)
		go func(start, end int, res chan error) {
			for i := start; i < end; i++ {
				row := buf.Row(i)
				A.radialFill(i, n, slots, dm, row)
				if A.nG3 > 0 {
					if err := A.angularFill(i, n, slots, dm, row); err != nil {
						res <- err
						return
					}
				}
			}
			res <- nil
		}(start, end, results[w])
		start = end
	}
	var reterr error
	for _, c := range results {
		if e := <-c; e != nil && reterr == nil {
			reterr = e
		}
	}
	if reterr != nil {
		return nil, errDecorate(reterr, "ConcDescribe")
	}
	buf.natoms = n
	return buf, nil
}
