/*
 * descplot_test.go, part of goacsf.
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
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 */

/*This provides some tests for the plotting functions, in the form of
 * little functions that have practical applications*/

package descplot

import (
	"fmt"
	"testing"

	acsf "github.com/rmera/goacsf"
	v3 "github.com/rmera/goacsf/v3"
)

func testEngine(Te *testing.T) *acsf.ACSF {
	o := acsf.DefaultOptions()
	o.Cutoff(6.0)
	o.RadialParams([]acsf.RadialParam{{Eta: 4.0, Rs: 0.0}, {Eta: 4.0, Rs: 2.0}, {Eta: 1.0, Rs: 4.0}})
	o.RadialCosParams([]float64{0.5, 1.0})
	o.AngularParams([]acsf.AngularParam{{Eta: 0.05, Zeta: 1, Lambda: 1}, {Eta: 0.05, Zeta: 4, Lambda: 1}, {Eta: 0.05, Zeta: 4, Lambda: -1}})
	A, err := acsf.New(4, []int{1, 8}, o)
	if err != nil {
		Te.Fatal(err)
	}
	return A
}

//TestSymFuncPlots draws the symmetry functions of a small engine, which
//is also the quickest way of eyeballing a parameter set.
func TestSymFuncPlots(Te *testing.T) {
	fmt.Println("Symmetry function plots test!")
	A := testEngine(Te)
	err := RadialPlot(A, 200, "Radial symmetry functions", "../test/Radial")
	if err != nil {
		Te.Error(err)
	}
	err = AngularPlot(A, 200, "Angular symmetry functions", "../test/Angular")
	if err != nil {
		Te.Error(err)
	}
}

//TestFeaturePlot describes a water molecule and plots the feature
//vector of its oxygen.
func TestFeaturePlot(Te *testing.T) {
	fmt.Println("Feature vector plot test!")
	A := testEngine(Te)
	wat, err := v3.NewMatrix([]float64{
		0.0, 0.0, 0.0,
		0.96, 0.0, 0.0,
		0.0, 0.96, 0.0,
	})
	if err != nil {
		Te.Fatal(err)
	}
	mol, err := acsf.NewStructure([]int{8, 1, 1}, wat)
	if err != nil {
		Te.Fatal(err)
	}
	b, err := A.Describe(mol)
	if err != nil {
		Te.Fatal(err)
	}
	err = FeaturePlot(b, 0, "Features of a water oxygen", "../test/Features")
	if err != nil {
		Te.Error(err)
	}
}
