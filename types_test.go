/*
 * types_test.go
 *
 * Copyright 2023 Raul Mera <rauldotmeraatusachdotcl>
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
 * Public License along with this program; if not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package acsf

import (
	"fmt"
	"testing"
)

//TestPairSlots checks that the pair slots of every unordered pair of
//type slots enumerate 0,1,2... with no gaps and no collisions, for a
//few type-set sizes, and that the order of the arguments is irrelevant.
func TestPairSlots(Te *testing.T) {
	fmt.Println("Pair slot test!")
	for n := 1; n <= 5; n++ {
		types := make([]int, n)
		for i := range types {
			types[i] = i + 1 //1, 2, ... n
		}
		T, err := NewTypeIndex(types)
		if err != nil {
			Te.Fatal(err)
		}
		if T.NSymTypes() != n*(n+1)/2 {
			Te.Errorf("n=%d: NSymTypes %d, want %d", n, T.NSymTypes(), n*(n+1)/2)
		}
		next := 0
		for a := 0; a < n; a++ {
			for b := a; b < n; b++ {
				got := T.PairSlot(a, b)
				if got != next {
					Te.Errorf("n=%d: pair (%d,%d) got slot %d, want %d", n, a, b, got, next)
				}
				if T.PairSlot(b, a) != got {
					Te.Errorf("n=%d: pair slot not symmetric for (%d,%d)", n, a, b)
				}
				next++
			}
		}
		if next != T.NSymTypes() {
			Te.Errorf("n=%d: enumerated %d pairs, NSymTypes says %d", n, next, T.NSymTypes())
		}
	}
}

//TestTypeCoercion checks that repeated and unsorted atomic numbers are
//cleaned up on construction, and that lookups behave.
func TestTypeCoercion(Te *testing.T) {
	fmt.Println("Type coercion test!")
	T, err := NewTypeIndex([]int{8, 1, 8, 1})
	if err != nil {
		Te.Fatal(err)
	}
	types := T.Types()
	if len(types) != 2 || types[0] != 1 || types[1] != 8 {
		Te.Errorf("types not deduped and sorted: %v", types)
	}
	if T.NTypes() != 2 {
		Te.Errorf("NTypes %d, want 2", T.NTypes())
	}
	s, err := T.Slot(1)
	if err != nil || s != 0 {
		Te.Errorf("Slot(1) = %d, %v", s, err)
	}
	s, err = T.Slot(8)
	if err != nil || s != 1 {
		Te.Errorf("Slot(8) = %d, %v", s, err)
	}
	if _, err := T.Slot(7); KindOf(err) != UnknownType {
		Te.Errorf("Slot(7): expected UnknownType, got %v", err)
	}
	//mutating the returned slice must not touch the index
	types[0] = 99
	if T.Types()[0] != 1 {
		Te.Error("Types() does not return a copy")
	}
}

//TestTypeIndexErrors checks the construction failures and the pair
//slot out-of-range panic.
func TestTypeIndexErrors(Te *testing.T) {
	fmt.Println("Type index errors test!")
	if _, err := NewTypeIndex([]int{}); KindOf(err) != InvalidConfig {
		Te.Errorf("empty list: expected InvalidConfig, got %v", err)
	}
	if _, err := NewTypeIndex([]int{1, -8}); KindOf(err) != InvalidConfig {
		Te.Errorf("negative number: expected InvalidConfig, got %v", err)
	}
	T, err := NewTypeIndex([]int{1, 8})
	if err != nil {
		Te.Fatal(err)
	}
	defer func() {
		r := recover()
		if r == nil {
			Te.Error("out-of-range pair slot did not panic")
		}
		if _, ok := r.(PanicMsg); !ok {
			Te.Errorf("panic value is not a PanicMsg: %v", r)
		}
	}()
	T.PairSlot(0, 2)
}
