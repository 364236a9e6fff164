/*
 * buffer.go, part of goacsf.
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
	"encoding/json"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Buffer is the output of one describe call: a row-major [Rows x Width]
// matrix with one feature row per atom, rows past the atom count of the
// described structure left zero-filled. Per row, the layout is: for
// each type slot t, nG2 radial values; then, for each pair slot p, nG3
// angular values. A Buffer belongs to the engine that created it only
// for the duration of the describe call; after that the caller owns it.
type Buffer struct {
	rows, width int //rows is the engine's MaxAtoms
	natoms      int //atoms described in the last fill
	ntypes      int
	ng2         int
	nsymtypes   int
	ng3         int
	data        []float64 //row-major
}

// NewBuffer returns a zeroed Buffer with the engine's dimensions,
// ready to be passed to DescribeInto.
func (A *ACSF) NewBuffer() *Buffer {
	B := new(Buffer)
	B.rows = A.maxAtoms
	B.width = A.width
	B.ntypes = A.NTypes()
	B.ng2 = A.nG2
	B.nsymtypes = A.NSymTypes()
	B.ng3 = A.nG3
	B.data = make([]float64, B.rows*B.width)
	return B
}

// Rows returns the number of rows (the atom capacity) of the buffer.
func (B *Buffer) Rows() int {
	return B.rows
}

// Width returns the number of feature columns per atom.
func (B *Buffer) Width() int {
	return B.width
}

// NAtoms returns the number of atoms in the structure described by the
// last fill of the buffer. Rows at and beyond NAtoms are zero.
func (B *Buffer) NAtoms() int {
	return B.natoms
}

// SetNAtoms records n as the number of leading rows of the buffer that
// describe real atoms, as opposed to padding. It does not alter the
// data. It is mostly useful when filling a buffer by hand or from a
// file, as the Describe functions record it themselves.
func (B *Buffer) SetNAtoms(n int) error {
	if n < 0 {
		err := new(CError)
		err.kind = InvalidConfig
		err.msg = fmt.Sprintf("negative atom count: %d", n)
		err.Decorate("SetNAtoms")
		return err
	}
	if n > B.rows {
		err := new(CError)
		err.kind = TooManyAtoms
		err.msg = fmt.Sprintf("%d atoms recorded for a buffer with only %d rows", n, B.rows)
		err.Decorate("SetNAtoms")
		return err
	}
	B.natoms = n
	return nil
}

//returns the index in the data slice of the buffer given
//the row and column indexes.
//just to avoid fixing it in many places if I screw up
func (B *Buffer) rc2i(r, c int) int {
	B.Check(r, c, true)
	return B.width*r + c
}

// Check checks if the given row and column indexes are within range.
// If pan is given and true, it panics if either is out of range,
// otherwise, it returns an error.
func (B *Buffer) Check(r, c int, pan ...bool) error {
	p := false
	var err error
	if len(pan) > 0 && pan[0] {
		p = true
	}
	if r < 0 || r >= B.rows {
		err = fmt.Errorf("goacsf/Buffer: Row out of range")
	}
	if c < 0 || c >= B.width {
		err = fmt.Errorf("goacsf/Buffer: Column out of range")
	}
	if err != nil && p {
		panic(err.Error())
	}
	return err
}

// At returns the feature value at row r (atom) and column c.
func (B *Buffer) At(r, c int) float64 {
	return B.data[B.rc2i(r, c)]
}

// Row returns a view of the feature row of atom i. Changes to the
// returned slice are reflected in the buffer.
func (B *Buffer) Row(i int) []float64 {
	B.Check(i, 0, true)
	return B.data[i*B.width : (i+1)*B.width]
}

// RadialPart returns a view of the nG2 radial values of atom i for the
// type slot t: the bare cutoff sum, then the Gaussian terms, then the
// cosine terms.
func (B *Buffer) RadialPart(i, t int) []float64 {
	if t < 0 || t >= B.ntypes {
		panic(ErrIndexOutOfRange)
	}
	row := B.Row(i)
	return row[t*B.ng2 : (t+1)*B.ng2]
}

// AngularPart returns a view of the nG3 angular values of atom i for
// the pair slot p, one value per angular parameter triple.
func (B *Buffer) AngularPart(i, p int) []float64 {
	if p < 0 || p >= B.nsymtypes {
		panic(ErrIndexOutOfRange)
	}
	row := B.Row(i)
	off := B.ntypes*B.ng2 + p*B.ng3
	return row[off : off+B.ng3]
}

// Dense returns the buffer as a gonum Dense matrix. The matrix is a
// view: it shares the backing data with the buffer, so changes in one
// are reflected in the other.
func (B *Buffer) Dense() *mat.Dense {
	return mat.NewDense(B.rows, B.width, B.data)
}

// Flat returns a copy of the buffer in row-major flattened form, of
// length Rows()*Width(). If a destination slice with enough capacity
// is given, it is used instead of allocating a new one.
func (B *Buffer) Flat(dest ...[]float64) []float64 {
	d := getCopySlice(len(B.data), dest...)
	copy(d, B.data)
	return d
}

// Zero sets every value in the buffer to zero.
func (B *Buffer) Zero() {
	for i := range B.data {
		B.data[i] = 0
	}
	B.natoms = 0
}

func (B *Buffer) String() string {
	return fmt.Sprintf("goacsf.Buffer{rows:%d width:%d natoms:%d}", B.rows, B.width, B.natoms)
}

func (B *Buffer) MarshalJSON() ([]byte, error) {
	j, err := json.Marshal(struct {
		Rows      int       `json:"rows"`
		Width     int       `json:"width"`
		NAtoms    int       `json:"natoms"`
		NTypes    int       `json:"ntypes"`
		NG2       int       `json:"ng2"`
		NSymTypes int       `json:"nsymtypes"`
		NG3       int       `json:"ng3"`
		Data      []float64 `json:"data"`
	}{
		Rows:      B.rows,
		Width:     B.width,
		NAtoms:    B.natoms,
		NTypes:    B.ntypes,
		NG2:       B.ng2,
		NSymTypes: B.nsymtypes,
		NG3:       B.ng3,
		Data:      B.data,
	})
	if err != nil {
		return nil, err
	}
	return j, nil
}

func (B *Buffer) UnmarshalJSON(b []byte) error {
	var a struct {
		Rows      int       `json:"rows"`
		Width     int       `json:"width"`
		NAtoms    int       `json:"natoms"`
		NTypes    int       `json:"ntypes"`
		NG2       int       `json:"ng2"`
		NSymTypes int       `json:"nsymtypes"`
		NG3       int       `json:"ng3"`
		Data      []float64 `json:"data"`
	}

	err := json.Unmarshal(b, &a)
	if err != nil {
		return err
	}
	B.rows = a.Rows
	B.width = a.Width
	B.natoms = a.NAtoms
	B.ntypes = a.NTypes
	B.ng2 = a.NG2
	B.nsymtypes = a.NSymTypes
	B.ng3 = a.NG3
	B.data = a.Data
	return nil
}

func getCopySlice(N int, dest ...[]float64) []float64 {
	var d []float64
	if len(dest) > 0 && len(dest[0]) >= N {
		d = dest[0][:N]
	} else {
		d = make([]float64, N)
	}
	return d

}
