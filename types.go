/*
 * types.go, part of goacsf.
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
	"sort"
)

// TypeIndex maps the atomic numbers declared for an engine to compact,
// 0-based type slots, and unordered pairs of type slots to symmetric
// pair slots. Atoms of undeclared elements have no slot, so structures
// containing them cannot be described.
type TypeIndex struct {
	types []int
	slots map[int]int
}

// NewTypeIndex builds a TypeIndex from a list of atomic numbers. The
// list is deduped and sorted ascending, so the caller does not need to
// care about order or repetitions. An empty list, or a negative atomic
// number, gives an InvalidConfig error.
func NewTypeIndex(types []int) (*TypeIndex, error) {
	if len(types) == 0 {
		err := new(CError)
		err.kind = InvalidConfig
		err.msg = "Empty list of atomic numbers given"
		err.Decorate("NewTypeIndex")
		return nil, err
	}
	clean := make([]int, 0, len(types))
	for _, v := range types {
		if v < 0 {
			err := new(CError)
			err.kind = InvalidConfig
			err.msg = fmt.Sprintf("Negative atomic number given: %d", v)
			err.Decorate("NewTypeIndex")
			return nil, err
		}
		if !isInInt(clean, v) {
			clean = append(clean, v)
		}
	}
	sort.Ints(clean)
	T := new(TypeIndex)
	T.types = clean
	T.slots = make(map[int]int, len(clean))
	for i, v := range clean {
		T.slots[v] = i
	}
	return T, nil
}

// Slot returns the type slot, in [0,NTypes()), for the atomic number z,
// or an UnknownType error if z was not declared.
func (T *TypeIndex) Slot(z int) (int, error) {
	s, ok := T.slots[z]
	if !ok {
		err := new(CError)
		err.kind = UnknownType
		err.msg = fmt.Sprintf("Atomic number %d is not among the declared types %v", z, T.types)
		err.Decorate("Slot")
		return 0, err
	}
	return s, nil
}

// PairSlot returns the symmetric pair slot, in [0,NSymTypes()), for the
// unordered pair of type slots {a,b}. PairSlot(a,b)==PairSlot(b,a).
// Pair slots follow the ascending (min,max) enumeration of the pairs:
// with 2 types, (0,0)->0, (0,1)->1, (1,1)->2. It panics if a slot is
// out of range; slots should always come from calls to Slot.
func (T *TypeIndex) PairSlot(a, b int) int {
	n := len(T.types)
	if a < 0 || b < 0 || a >= n || b >= n {
		panic(ErrIndexOutOfRange)
	}
	if a > b {
		a, b = b, a
	}
	return a*n - a*(a-1)/2 + (b - a)
}

// NTypes returns the number of declared types.
func (T *TypeIndex) NTypes() int {
	return len(T.types)
}

// NSymTypes returns the number of unordered pairs of declared types,
// NTypes*(NTypes+1)/2, counting each type paired with itself.
func (T *TypeIndex) NSymTypes() int {
	n := len(T.types)
	return n * (n + 1) / 2
}

// Types returns a copy of the declared atomic numbers, deduped and
// sorted ascending.
func (T *TypeIndex) Types() []int {
	ret := make([]int, len(T.types))
	copy(ret, T.types)
	return ret
}

//isInInt returns true if test is in container, false otherwise.
func isInInt(container []int, test int) bool {
	if container == nil {
		return false
	}
	for _, i := range container {
		if test == i {
			return true
		}
	}
	return false
}
