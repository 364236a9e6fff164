/*
 * cutoff.go, part of goacsf.
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

import "math"

// Fc is the cosine cutoff kernel shared by every symmetry function:
// 0.5*(cos(pi*r/rcut)+1) for r < rcut, and exactly 0 for r >= rcut.
// It is exactly 1 at r=0 and decays smoothly to 0 at r=rcut, so the
// contribution of a neighbor vanishes continuously as it leaves the
// cutoff sphere. An abrupt cutoff would put discontinuities in the
// descriptors, which corrupts gradients for whatever model consumes
// them downstream. r is assumed non-negative, as distances are.
func Fc(r, rcut float64) float64 {
	if r >= rcut {
		return 0
	}
	return 0.5 * (math.Cos(math.Pi*r/rcut) + 1)
}
