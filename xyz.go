/*
 * xyz.go, part of goacsf.
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
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	v3 "github.com/rmera/goacsf/v3"
)

// XyzRead reads an XYZ file and returns the Structure it contains. Only
// the first frame of a multi-frame file is read. The element symbols
// are translated to atomic numbers with the tables in this package, so
// an exotic element gives an UnknownType error.
func XyzRead(xyzname string) (*Structure, error) {
	xyzfile, err := os.Open(xyzname)
	if err != nil {
		return nil, err
	}
	defer xyzfile.Close()
	xyz := bufio.NewReader(xyzfile)
	line, err := xyz.ReadString('\n')
	if err != nil {
		return nil, fmt.Errorf("Ill formatted XYZ file!")
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return nil, fmt.Errorf("Ill formatted XYZ file!")
	}
	z := make([]int, natoms, natoms)
	coords := make([]float64, natoms*3, natoms*3)
	_, _ = xyz.ReadString('\n') //We dont care about this line, it's just a comment
	for i := 0; i < natoms; i++ {
		line, rerr := xyz.ReadString('\n')
		fields := strings.Fields(line)
		//the last line of a file is allowed to lack the final newline,
		//so we only complain about a read error if the line is also short.
		if len(fields) < 4 {
			if rerr != nil {
				return nil, fmt.Errorf("Ill formatted XYZ file %s: %v", xyzname, rerr)
			}
			return nil, fmt.Errorf("Line number %d in file %s ill formed", i, xyzname)
		}
		z[i], err = ZFromSymbol(fields[0])
		if err != nil {
			return nil, errDecorate(err, "XyzRead")
		}
		for j := 0; j < 3; j++ {
			coords[i*3+j], err = strconv.ParseFloat(fields[j+1], 64)
			if err != nil {
				return nil, fmt.Errorf("Can't parse coordinate %d of atom %d in file %s: %v", j, i, xyzname, err)
			}
		}
	}
	mcoords, err := v3.NewMatrix(coords)
	if err != nil {
		return nil, errDecorate(err, "XyzRead")
	}
	ret, err := NewStructure(z, mcoords)
	if err != nil {
		return nil, errDecorate(err, "XyzRead")
	}
	return ret, nil
}

// XyzWrite writes the structure mol to an XYZ file with name xyzname,
// which will be created. If the file exists it will be overwritten.
// The structure must carry coordinates, not just distances.
func XyzWrite(mol *Structure, xyzname string) error {
	if mol == nil || mol.Coords() == nil {
		err := new(CError)
		err.kind = InvalidConfig
		err.msg = "Nil structure, or structure without coordinates, given"
		err.Decorate("XyzWrite")
		return err
	}
	out, err := os.Create(xyzname)
	if err != nil {
		return err
	}
	defer out.Close()
	fmt.Fprintf(out, "%-4d\n", mol.Len())
	fmt.Fprintf(out, "\n")
	coords := mol.Coords()
	for i, z := range mol.AtomicNumbers() {
		symbol, err := SymbolFromZ(z)
		if err != nil {
			return errDecorate(err, "XyzWrite")
		}
		_, err = fmt.Fprintf(out, "%-2s  %8.3f%8.3f%8.3f \n", symbol, coords.At(i, 0), coords.At(i, 1), coords.At(i, 2))
		if err != nil {
			return err
		}
	}
	return nil
}
