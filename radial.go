/*
 * radial.go, part of goacsf.
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
	"math"

	"gonum.org/v1/gonum/mat"
)

// RadialParam holds the parameters of one Gaussian radial (2-body)
// symmetry function: exp(-Eta*(r-Rs)^2)*fc(r), summed over the
// neighbors of each type. Rs displaces the center of the Gaussian from
// the central atom, Eta controls its width.
type RadialParam struct {
	Eta float64
	Rs  float64
}

// radialFill accumulates the 2-body symmetry functions of atom i into
// row, which must be the (zeroed beforehand) feature row for atom i.
// Each neighbor j contributes to the nG2-wide block of its own type
// slot: first the bare fc sum, then one Gaussian term per RadialParam,
// then one cosine term per RadialCos eta. Neighbors at or beyond the
// cutoff contribute exactly zero and are skipped. The neighbor order is
// fixed (ascending index) so results are reproducible bit by bit.
func (A *ACSF) radialFill(i, natoms int, slots []int, dm mat.Symmetric, row []float64) {
	for j := 0; j < natoms; j++ {
		if j == i {
			continue
		}
		r := dm.At(i, j)
		fc := Fc(r, A.cutoff)
		if fc == 0 {
			continue
		}
		base := slots[j] * A.nG2
		row[base] += fc
		for k, p := range A.radial {
			d := r - p.Rs
			row[base+1+k] += math.Exp(-p.Eta*d*d) * fc
		}
		off := base + 1 + len(A.radial)
		for k, eta := range A.radialCos {
			row[off+k] += math.Cos(eta*r) * fc
		}
	}
}
