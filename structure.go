/*
 * structure.go, part of goacsf.
 *
 * Copyright 2023 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

package acsf

import (
	"fmt"

	v3 "github.com/rmera/goacsf/v3"
	"gonum.org/v1/gonum/mat"
)

// Structure is the concrete Structurer of the library: a set of atoms
// with their atomic numbers and interatomic distances. It can be built
// from cartesian coordinates, in which case the distance matrix is
// computed eagerly on construction, or straight from a distance matrix
// when no coordinates exist (say, distances from an NMR experiment or
// from another program). The descriptors only ever need the distances.
type Structure struct {
	z      []int
	coords *v3.Matrix //nil when built from distances
	dm     *mat.SymDense
}

// NewStructure builds a Structure from atomic numbers and cartesian
// coordinates, one 3D vector per atom, and computes the distance
// matrix. The structure keeps a reference to coords, so the caller
// should not modify them afterwards.
func NewStructure(z []int, coords *v3.Matrix) (*Structure, error) {
	if z == nil || coords == nil {
		err := new(CError)
		err.kind = InvalidConfig
		err.msg = "Nil atomic numbers or coordinates given"
		err.Decorate("NewStructure")
		return nil, err
	}
	if len(z) != coords.NVecs() {
		err := new(CError)
		err.kind = InvalidConfig
		err.msg = fmt.Sprintf("Mismatched number of atomic numbers (%d) and coordinate vectors (%d)", len(z), coords.NVecs())
		err.Decorate("NewStructure")
		return nil, err
	}
	S := new(Structure)
	S.z = make([]int, len(z))
	copy(S.z, z)
	S.coords = coords
	S.dm = distancesFromCoords(coords)
	return S, nil
}

// StructureFromDistances builds a Structure from atomic numbers and an
// already-computed distance matrix, with no coordinates. The matrix
// must have one row per atom, a zero diagonal and no negative entries.
func StructureFromDistances(z []int, dm *mat.SymDense) (*Structure, error) {
	if z == nil || dm == nil {
		err := new(CError)
		err.kind = InvalidConfig
		err.msg = "Nil atomic numbers or distance matrix given"
		err.Decorate("StructureFromDistances")
		return nil, err
	}
	n := len(z)
	if r, _ := dm.Dims(); r != n {
		err := new(CError)
		err.kind = InvalidConfig
		err.msg = fmt.Sprintf("Mismatched number of atomic numbers (%d) and distance matrix rows (%d)", n, r)
		err.Decorate("StructureFromDistances")
		return nil, err
	}
	for i := 0; i < n; i++ {
		if dm.At(i, i) != 0 {
			err := new(CError)
			err.kind = InvalidConfig
			err.msg = fmt.Sprintf("Distance matrix has a non-zero diagonal element at %d: %v", i, dm.At(i, i))
			err.Decorate("StructureFromDistances")
			return nil, err
		}
		for j := i + 1; j < n; j++ {
			if dm.At(i, j) < 0 {
				err := new(CError)
				err.kind = InvalidConfig
				err.msg = fmt.Sprintf("Distance matrix has a negative entry at %d,%d: %v", i, j, dm.At(i, j))
				err.Decorate("StructureFromDistances")
				return nil, err
			}
		}
	}
	S := new(Structure)
	S.z = make([]int, n)
	copy(S.z, z)
	S.dm = dm
	return S, nil
}

// AtomicNumbers returns the atomic number of each atom, in order. The
// returned slice is a view of the structure's own data, not a copy.
func (S *Structure) AtomicNumbers() []int {
	return S.z
}

// Len returns the number of atoms in the structure.
func (S *Structure) Len() int {
	return len(S.z)
}

// Coords returns the cartesian coordinates of the structure, or nil if
// it was built from distances alone.
func (S *Structure) Coords() *v3.Matrix {
	return S.coords
}

// DistanceMatrix returns the matrix of interatomic distances.
func (S *Structure) DistanceMatrix() mat.Symmetric {
	return S.dm
}

//distancesFromCoords fills a symmetric matrix with the pairwise
//distances between the given coordinate vectors.
func distancesFromCoords(coords *v3.Matrix) *mat.SymDense {
	n := coords.NVecs()
	dm := mat.NewSymDense(n, nil)
	t := v3.Zeros(1)
	for i := 0; i < n; i++ {
		vi := coords.VecView(i)
		for j := i + 1; j < n; j++ {
			t.Sub(vi, coords.VecView(j))
			dm.SetSym(i, j, t.Norm(2))
		}
	}
	return dm
}
