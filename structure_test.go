/*
 * structure_test.go
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

	"gonum.org/v1/gonum/mat"
)

//TestStructureFromDistances checks that a structure built from a
//distance matrix describes exactly like one built from coordinates.
func TestStructureFromDistances(Te *testing.T) {
	fmt.Println("Structure from distances test!")
	mol := waterMol(Te)
	n := mol.Len()
	sd := mat.NewSymDense(n, nil)
	dm := mol.DistanceMatrix()
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sd.SetSym(i, j, dm.At(i, j))
		}
	}
	dmol, err := StructureFromDistances(mol.AtomicNumbers(), sd)
	if err != nil {
		Te.Fatal(err)
	}
	if dmol.Coords() != nil {
		Te.Error("a distances-only structure should have nil coordinates")
	}
	A := waterEngine(Te, 3, true)
	b1, err := A.Describe(mol)
	if err != nil {
		Te.Fatal(err)
	}
	b2, err := A.Describe(dmol)
	if err != nil {
		Te.Fatal(err)
	}
	for i := 0; i < b1.Rows(); i++ {
		for j := 0; j < b1.Width(); j++ {
			if b1.At(i, j) != b2.At(i, j) {
				Te.Errorf("coordinate and distance structures disagree at %d,%d", i, j)
			}
		}
	}
}

//TestStructureErrors checks the construction failure modes.
func TestStructureErrors(Te *testing.T) {
	fmt.Println("Structure errors test!")
	mol := waterMol(Te)
	if _, err := NewStructure(nil, mol.Coords()); KindOf(err) != InvalidConfig {
		Te.Errorf("nil atomic numbers: expected InvalidConfig, got %v", err)
	}
	if _, err := NewStructure([]int{8, 1, 1}, nil); KindOf(err) != InvalidConfig {
		Te.Errorf("nil coordinates: expected InvalidConfig, got %v", err)
	}
	if _, err := NewStructure([]int{8, 1}, mol.Coords()); KindOf(err) != InvalidConfig {
		Te.Errorf("length mismatch: expected InvalidConfig, got %v", err)
	}
	bad := mat.NewSymDense(2, []float64{0, 1.0, 1.0, 0.5}) //non-zero diagonal
	if _, err := StructureFromDistances([]int{8, 1}, bad); KindOf(err) != InvalidConfig {
		Te.Errorf("non-zero diagonal: expected InvalidConfig, got %v", err)
	}
	bad2 := mat.NewSymDense(2, []float64{0, -1.0, -1.0, 0}) //negative distance
	if _, err := StructureFromDistances([]int{8, 1}, bad2); KindOf(err) != InvalidConfig {
		Te.Errorf("negative distance: expected InvalidConfig, got %v", err)
	}
	ok := mat.NewSymDense(2, []float64{0, 1.0, 1.0, 0})
	if _, err := StructureFromDistances([]int{8, 1, 1}, ok); KindOf(err) != InvalidConfig {
		Te.Errorf("size mismatch: expected InvalidConfig, got %v", err)
	}
}

//TestXyzRead reads the water fixture and checks the geometry against
//the values in the file.
func TestXyzRead(Te *testing.T) {
	fmt.Println("XYZ read test!")
	mol, err := XyzRead("test/water.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Len() != 3 {
		Te.Fatalf("read %d atoms from the water fixture", mol.Len())
	}
	z := mol.AtomicNumbers()
	if z[0] != 8 || z[1] != 1 || z[2] != 1 {
		Te.Errorf("wrong atomic numbers: %v", z)
	}
	dm := mol.DistanceMatrix()
	if !closeEnough(dm.At(0, 1), 0.9573, 1e-3) || !closeEnough(dm.At(0, 2), 0.9573, 1e-3) {
		Te.Errorf("O-H distances off: %v and %v", dm.At(0, 1), dm.At(0, 2))
	}
	if !closeEnough(dm.At(1, 2), 1.514, 1e-3) {
		Te.Errorf("H-H distance off: %v", dm.At(1, 2))
	}
	//the fixture has the same geometry the in-code water uses, so the
	//descriptors must come out bit-identical
	A := waterEngine(Te, 3, true)
	bf, err := A.Describe(mol)
	if err != nil {
		Te.Fatal(err)
	}
	bm, err := A.Describe(waterMol(Te))
	if err != nil {
		Te.Fatal(err)
	}
	for i := 0; i < bf.Rows(); i++ {
		for j := 0; j < bf.Width(); j++ {
			if bf.At(i, j) != bm.At(i, j) {
				Te.Errorf("file and in-code water disagree at %d,%d", i, j)
			}
		}
	}
	if _, err := XyzRead("test/no_such_file.xyz"); err == nil {
		Te.Error("reading a missing file should fail")
	}
}

//TestXyzWrite writes a molecule out and reads it back.
func TestXyzWrite(Te *testing.T) {
	fmt.Println("XYZ write test!")
	mol := waterMol(Te)
	name := "test/water_written.xyz"
	if err := XyzWrite(mol, name); err != nil {
		Te.Fatal(err)
	}
	rec, err := XyzRead(name)
	if err != nil {
		Te.Fatal(err)
	}
	if rec.Len() != mol.Len() {
		Te.Fatalf("wrote %d atoms, read back %d", mol.Len(), rec.Len())
	}
	for i, z := range mol.AtomicNumbers() {
		if rec.AtomicNumbers()[i] != z {
			Te.Errorf("atom %d changed element on the round trip", i)
		}
	}
	for i := 0; i < mol.Len(); i++ {
		for j := 0; j < 3; j++ {
			//the format keeps 3 decimals
			if !closeEnough(mol.Coords().At(i, j), rec.Coords().At(i, j), 1e-3) {
				Te.Errorf("atom %d coordinate %d changed: %v vs %v", i, j,
					mol.Coords().At(i, j), rec.Coords().At(i, j))
			}
		}
	}
	//structures without coordinates can't be written
	sd := mat.NewSymDense(2, []float64{0, 1.0, 1.0, 0})
	dmol, err := StructureFromDistances([]int{8, 1}, sd)
	if err != nil {
		Te.Fatal(err)
	}
	if KindOf(XyzWrite(dmol, "test/should_not_exist.xyz")) != InvalidConfig {
		Te.Error("writing a coordinate-less structure should be InvalidConfig")
	}
	if KindOf(XyzWrite(nil, "test/should_not_exist.xyz")) != InvalidConfig {
		Te.Error("writing a nil structure should be InvalidConfig")
	}
}
