/*
 * atomicdata.go, part of goacsf.
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

//A map for assigning atomic numbers to element symbols.
//Note that just common "bio-elements" are present
var symbolZ = map[string]int{
	"H":  1,
	"C":  6,
	"O":  8,
	"N":  7,
	"P":  15,
	"S":  16,
	"Se": 34,
	"K":  19,
	"Ca": 20,
	"Mg": 12,
	"Cl": 17,
	"Na": 11,
	"Cu": 29,
	"Zn": 30,
	"Co": 27,
	"Fe": 26,
	"Mn": 25,
	"Cr": 24,
	"Si": 14,
	"Be": 4,
	"F":  9,
	"Br": 35,
	"I":  53,
}

//The inverse of symbolZ, built on initialization.
var zSymbol = map[int]string{}

func init() {
	for k, v := range symbolZ {
		zSymbol[v] = k
	}
}

//A map for assigning mass to elements.
//Note that just common "bio-elements" are present
var symbolMass = map[string]float64{
	"H":  1.0,
	"C":  12.01,
	"O":  16.00,
	"N":  14.01,
	"P":  30.97,
	"S":  32.06,
	"Se": 78.96,
	"K":  39.1,
	"Ca": 40.08,
	"Mg": 24.30,
	"Cl": 35.45,
	"Na": 22.99,
	"Cu": 63.55,
	"Zn": 65.38,
	"Co": 58.93,
	"Fe": 55.84,
	"Mn": 54.94,
	"Cr": 51.996,
	"Si": 28.08,
	"Be": 9.012,
	"F":  18.998,
	"Br": 79.904,
	"I":  126.90,
}

//ZFromSymbol returns the atomic number for an element symbol, or an
//UnknownType error if the symbol is not in the table.
func ZFromSymbol(symbol string) (int, error) {
	z, ok := symbolZ[symbol]
	if !ok {
		err := new(CError)
		err.kind = UnknownType
		err.msg = fmt.Sprintf("No atomic number known for element symbol %s", symbol)
		err.Decorate("ZFromSymbol")
		return 0, err
	}
	return z, nil
}

//SymbolFromZ returns the element symbol for an atomic number, or an
//UnknownType error if the number is not in the table.
func SymbolFromZ(z int) (string, error) {
	s, ok := zSymbol[z]
	if !ok {
		err := new(CError)
		err.kind = UnknownType
		err.msg = fmt.Sprintf("No element symbol known for atomic number %d", z)
		err.Decorate("SymbolFromZ")
		return "", err
	}
	return s, nil
}

//MassFromSymbol returns the mass for an element symbol, or an
//UnknownType error if the symbol is not in the table.
func MassFromSymbol(symbol string) (float64, error) {
	m, ok := symbolMass[symbol]
	if !ok {
		err := new(CError)
		err.kind = UnknownType
		err.msg = fmt.Sprintf("No mass known for element symbol %s", symbol)
		err.Decorate("MassFromSymbol")
		return 0, err
	}
	return m, nil
}

//TypesFromSymbols translates a set of element symbols into the slice of
//atomic numbers that New takes as the declared types. Repeated symbols
//are allowed; New dedupes and sorts the result anyway.
func TypesFromSymbols(symbols ...string) ([]int, error) {
	types := make([]int, 0, len(symbols))
	for _, v := range symbols {
		z, err := ZFromSymbol(v)
		if err != nil {
			return nil, errDecorate(err, "TypesFromSymbols")
		}
		types = append(types, z)
	}
	return types, nil
}
