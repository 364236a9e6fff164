/*
 * doc.go, part of goacsf.
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
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*Package acsf is the main package of the goacsf library. It computes atom-centered
symmetry function descriptors, fixed-length vectors that encode the chemical
environment of each atom in a structure, so the structure can be fed to
machine-learning regressors of energies, charges and other atomic properties.


	**goacsf Capabilities**


    Computes radial (two-body) descriptors: the bare cutoff-function sum per
	element, Gaussian functions at chosen widths and centers, and damped
	cosine functions.

    Computes angular (three-body) descriptors over every pair of elements,
	at chosen widths, angular resolutions and cosine signs.

    Both families are smoothly damped by a cosine cutoff function, so
	descriptors vary continuously as atoms cross the cutoff radius.

    Describes structures sequentially or concurrently, with both paths
	giving numbers that match bit by bit.

    Structures can be given as cartesian coordinates or directly as
	interatomic distances, and anything implementing the Structurer
	interface is accepted.

    Descriptors for structures with fewer atoms than the engine's capacity
	are zero-padded to a constant length, so a whole dataset of varying
	molecules maps to vectors of a single size.

    Reads/writes XYZ files.

    Writes and reads sequences of descriptor frames as compressed text
	files (see the featio subpackage).

    Per-feature statistics, standardization and histograms over datasets
	(see the featstat subpackage).

    Plots of the symmetry functions and of descriptor vectors, for choosing
	parameters (see the descplot subpackage).


goacsf implements its own matrix type for coordinates, v3.Matrix, based on
gonum's mat.Dense. Each row of a v3.Matrix represents one point in space.

An engine is configured once, at creation, and is immutable afterwards: the
width and meaning of every descriptor column stay fixed for the engine's
lifetime, which is what a regressor trained on those columns needs.*/
package acsf
