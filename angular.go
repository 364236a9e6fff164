/*
 * angular.go, part of goacsf.
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
	"math"

	"gonum.org/v1/gonum/mat"
)

// AngularParam holds the parameters of one angular (3-body) symmetry
// function: (1+Lambda*cos(theta))^Zeta * exp(-Eta*(rij^2+rik^2+rjk^2))
// * fc(rij)*fc(rik)*fc(rjk), summed over the unordered neighbor pairs
// of each type pair, with theta the angle at the central atom. Lambda
// must be +1 or -1 and Zeta a positive integer; both are kept as reals
// so parameter tables read from files stay uniform, and New checks the
// constraints.
type AngularParam struct {
	Eta    float64
	Zeta   float64
	Lambda float64
}

// angularFill accumulates the 3-body symmetry functions of atom i into
// row, the (zeroed beforehand) feature row for atom i. Each unordered
// neighbor pair {j,k} contributes once, to the nG3-wide block of the
// pair slot of its two type slots. The angle at i comes from the
// distance matrix via the law of cosines, so no coordinates are needed.
// Pairs whose three cutoff factors multiply to zero are skipped before
// the division; if a contributing pair has a zero distance to the
// central atom the structure is degenerate (two atoms coincide) and an
// UnknownType-kind error is returned.
func (A *ACSF) angularFill(i, natoms int, slots []int, dm mat.Symmetric, row []float64) error {
	base := A.NTypes() * A.nG2
	for j := 0; j < natoms; j++ {
		if j == i {
			continue
		}
		rij := dm.At(i, j)
		fcij := Fc(rij, A.cutoff)
		if fcij == 0 {
			continue
		}
		for k := j + 1; k < natoms; k++ {
			if k == i {
				continue
			}
			rik := dm.At(i, k)
			rjk := dm.At(j, k)
			fc3 := fcij * Fc(rik, A.cutoff) * Fc(rjk, A.cutoff)
			if fc3 == 0 {
				continue
			}
			if rij == 0 || rik == 0 {
				err := new(CError)
				err.kind = UnknownType
				err.msg = fmt.Sprintf("Atoms %d and %d (or %d) are at zero distance, can't compute an angle at %d", i, j, k, i)
				err.Decorate("angularFill")
				return err
			}
			cost := (rij*rij + rik*rik - rjk*rjk) / (2 * rij * rik)
			sum2 := rij*rij + rik*rik + rjk*rjk
			off := base + A.PairSlot(slots[j], slots[k])*A.nG3
			for m, p := range A.angular {
				row[off+m] += math.Pow(1+p.Lambda*cost, p.Zeta) * math.Exp(-p.Eta*sum2) * fc3
			}
		}
	}
	return nil
}
