/*
 * options.go, part of goacsf.
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

import "runtime"

// Options contains the optional settings for building a descriptor
// engine. An Options value only carries settings; all the correctness
// checks happen when the engine is built with New, so a bad value given
// here fails loudly there, with an InvalidConfig error, instead of being
// silently replaced by a default.
type Options struct {
	cutoff    float64
	radial    []RadialParam
	radialCos []float64
	angular   []AngularParam
	cpus      int
}

// DefaultOptions returns an Options with the default settings: a cutoff
// radius of 5.0, every symmetry-function family disabled, and as many
// gorutines for the concurrent calculation as logical CPUs.
func DefaultOptions() *Options {
	ret := new(Options)
	ret.cutoff = 5.0
	ret.cpus = runtime.NumCPU()
	return ret
}

// Cutoff returns the current value of the cutoff radius
// and sets it to the one given, if any.
func (r *Options) Cutoff(cutoff ...float64) float64 {
	ret := r.cutoff
	if len(cutoff) > 0 {
		r.cutoff = cutoff[0]
	}
	return ret
}

// RadialParams returns the current Gaussian radial parameter set
// and sets it to a copy of the one given, if any.
func (r *Options) RadialParams(params ...[]RadialParam) []RadialParam {
	ret := r.radial
	if len(params) > 0 {
		//I prefer to copy the slice to avoid somebody changing it from outside
		r.radial = make([]RadialParam, len(params[0]))
		copy(r.radial, params[0])
	}
	return ret
}

// RadialCosParams returns the current cosine radial parameter set (one
// eta per function) and sets it to a copy of the one given, if any.
func (r *Options) RadialCosParams(params ...[]float64) []float64 {
	ret := r.radialCos
	if len(params) > 0 {
		r.radialCos = make([]float64, len(params[0]))
		copy(r.radialCos, params[0])
	}
	return ret
}

// AngularParams returns the current angular parameter set
// and sets it to a copy of the one given, if any.
func (r *Options) AngularParams(params ...[]AngularParam) []AngularParam {
	ret := r.angular
	if len(params) > 0 {
		r.angular = make([]AngularParam, len(params[0]))
		copy(r.angular, params[0])
	}
	return ret
}

// Cpus returns the current value of the Cpus option (the number of
// gorutines to use on the concurrent calculation) and sets it, if
// a valid value is given.
func (r *Options) Cpus(cpus ...int) int {
	ret := r.cpus
	if len(cpus) > 0 && cpus[0] > 0 {
		r.cpus = cpus[0]
	}
	return ret
}
