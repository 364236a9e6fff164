/*
 * atomicdata_test.go
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

//TestSymbolTables checks the symbol/atomic number/mass lookups and
//their failure kind.
func TestSymbolTables(Te *testing.T) {
	fmt.Println("Symbol tables test!")
	z, err := ZFromSymbol("O")
	if err != nil || z != 8 {
		Te.Errorf("ZFromSymbol(O) = %d, %v", z, err)
	}
	s, err := SymbolFromZ(1)
	if err != nil || s != "H" {
		Te.Errorf("SymbolFromZ(1) = %s, %v", s, err)
	}
	//every symbol survives a round trip
	for _, sym := range []string{"H", "C", "N", "O", "P", "S", "Fe", "Zn"} {
		z, err := ZFromSymbol(sym)
		if err != nil {
			Te.Fatal(err)
		}
		back, err := SymbolFromZ(z)
		if err != nil || back != sym {
			Te.Errorf("symbol %s became %s on the round trip", sym, back)
		}
	}
	m, err := MassFromSymbol("O")
	if err != nil || m != 16.00 {
		Te.Errorf("MassFromSymbol(O) = %v, %v", m, err)
	}
	if _, err := ZFromSymbol("Xx"); KindOf(err) != UnknownType {
		Te.Errorf("unknown symbol: expected UnknownType, got %v", err)
	}
	if _, err := SymbolFromZ(200); KindOf(err) != UnknownType {
		Te.Errorf("unknown number: expected UnknownType, got %v", err)
	}
	if _, err := MassFromSymbol("Xx"); KindOf(err) != UnknownType {
		Te.Errorf("unknown symbol mass: expected UnknownType, got %v", err)
	}
}

//TestTypesFromSymbols checks that declaring the engine types by element
//symbol is the same as declaring them by atomic number.
func TestTypesFromSymbols(Te *testing.T) {
	fmt.Println("Types from symbols test!")
	types, err := TypesFromSymbols("O", "H", "O") //repetitions are fine
	if err != nil {
		Te.Fatal(err)
	}
	o := DefaultOptions()
	o.Cutoff(5.0)
	o.RadialParams([]RadialParam{{Eta: 1.0, Rs: 0.0}})
	A1, err := New(3, types, o)
	if err != nil {
		Te.Fatal(err)
	}
	A2, err := New(3, []int{1, 8}, o)
	if err != nil {
		Te.Fatal(err)
	}
	t1, t2 := A1.Types(), A2.Types()
	if len(t1) != len(t2) || t1[0] != t2[0] || t1[1] != t2[1] {
		Te.Fatalf("types differ: %v vs %v", t1, t2)
	}
	mol := waterMol(Te)
	b1, err := A1.Describe(mol)
	if err != nil {
		Te.Fatal(err)
	}
	b2, err := A2.Describe(mol)
	if err != nil {
		Te.Fatal(err)
	}
	for i := 0; i < b1.Rows(); i++ {
		for j := 0; j < b1.Width(); j++ {
			if b1.At(i, j) != b2.At(i, j) {
				Te.Errorf("symbol-declared and number-declared engines disagree at %d,%d", i, j)
			}
		}
	}
	if _, err := TypesFromSymbols("H", "Xx"); KindOf(err) != UnknownType {
		Te.Errorf("unknown symbol in the list: expected UnknownType, got %v", err)
	}
}
