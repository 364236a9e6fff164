/*
 * descplot.go, part of goacsf.
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

//Package descplot plots symmetry functions and descriptor vectors in png
//format. It is meant as an aid for choosing the parameters of an engine:
//one look at the radial curves tells more about coverage of the distance
//range than any amount of staring at eta values.
package descplot

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	acsf "github.com/rmera/goacsf"
)

func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

func addLine(p *plot.Plot, xys plotter.XYs, label string, key, total int) error {
	l, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	r, g, b := colors(key, total)
	l.LineStyle.Color = color.RGBA{R: r, B: b, G: g, A: 255}
	l.LineStyle.Width = vg.Points(1.5)
	p.Add(l)
	p.Legend.Add(label, l)
	return nil
}

/*RadialPlot plots every radial symmetry function of the engine A against
  the interatomic distance, from zero to the cutoff radius, and saves the
  result in png format. The extension must not be included in plotname.
  points is the number of distances sampled per curve. Returns an error or nil*/
func RadialPlot(A *acsf.ACSF, points int, title, plotname string) error {
	if A == nil {
		panic("Given nil engine")
	}
	if points < 2 {
		points = 100 //a reasonable default
	}
	rcut := A.Cutoff()
	radial := A.RadialParams()
	radialcos := A.RadialCosParams()
	total := 1 + len(radial) + len(radialcos)
	p := basicPlot(title, "r (A)", "G2 contribution")
	p.X.Min = 0
	p.X.Max = rcut
	step := rcut / float64(points-1)
	curve := func(f func(r float64) float64) plotter.XYs {
		xys := make(plotter.XYs, points)
		for i := range xys {
			r := float64(i) * step
			xys[i].X = r
			xys[i].Y = f(r)
		}
		return xys
	}
	fc := func(r float64) float64 { return acsf.Fc(r, rcut) }
	if err := addLine(p, curve(fc), "fc", 0, total); err != nil {
		return err
	}
	for k, v := range radial {
		v := v
		f := func(r float64) float64 { return math.Exp(-v.Eta*(r-v.Rs)*(r-v.Rs)) * acsf.Fc(r, rcut) }
		label := fmt.Sprintf("eta=%.3g Rs=%.3g", v.Eta, v.Rs)
		if err := addLine(p, curve(f), label, k+1, total); err != nil {
			return err
		}
	}
	for k, eta := range radialcos {
		eta := eta
		f := func(r float64) float64 { return math.Cos(eta*r) * acsf.Fc(r, rcut) }
		label := fmt.Sprintf("cos eta=%.3g", eta)
		if err := addLine(p, curve(f), label, k+1+len(radial), total); err != nil {
			return err
		}
	}
	filename := fmt.Sprintf("%s.png", plotname)
	if err := p.Save(5*vg.Inch, 5*vg.Inch, filename); err != nil {
		return err
	}
	return nil
}

/*AngularPlot plots the angular part of every angular symmetry function of
  the engine A against the j-i-k angle, from 0 to 180 degrees, and saves the
  result in png format. The radial damping is left out, so functions with the
  same zeta and lambda give the same curve, whatever their eta. The extension
  must not be included in plotname. Returns an error or nil*/
func AngularPlot(A *acsf.ACSF, points int, title, plotname string) error {
	if A == nil {
		panic("Given nil engine")
	}
	if points < 2 {
		points = 100
	}
	angular := A.AngularParams()
	if len(angular) == 0 {
		return fmt.Errorf("goacsf/descplot.AngularPlot: The engine has no angular symmetry functions")
	}
	p := basicPlot(title, "theta (deg)", "angular factor")
	p.X.Min = 0
	p.X.Max = 180
	step := 180.0 / float64(points-1)
	for k, v := range angular {
		xys := make(plotter.XYs, points)
		for i := range xys {
			deg := float64(i) * step
			cost := math.Cos(deg * math.Pi / 180)
			xys[i].X = deg
			xys[i].Y = math.Pow(1+v.Lambda*cost, v.Zeta)
		}
		label := fmt.Sprintf("zeta=%.3g lambda=%+.0f", v.Zeta, v.Lambda)
		if err := addLine(p, xys, label, k, len(angular)); err != nil {
			return err
		}
	}
	filename := fmt.Sprintf("%s.png", plotname)
	if err := p.Save(5*vg.Inch, 5*vg.Inch, filename); err != nil {
		return err
	}
	return nil
}

/*FeaturePlot plots the feature vector of one atom row of the buffer b,
  feature index against feature value, and saves the result in png format.
  The extension must not be included in plotname. Returns an error or nil*/
func FeaturePlot(b *acsf.Buffer, atom int, title, plotname string) error {
	if b == nil {
		panic("Given nil buffer")
	}
	if err := b.Check(atom, 0); err != nil {
		return fmt.Errorf("goacsf/descplot.FeaturePlot: %v", err)
	}
	row := b.Row(atom)
	p := basicPlot(title, "feature", "value")
	xys := make(plotter.XYs, len(row))
	for i, v := range row {
		xys[i].X = float64(i)
		xys[i].Y = v
	}
	l, s, err := plotter.NewLinePoints(xys)
	if err != nil {
		return err
	}
	r, g, b2 := colors(0, 1)
	l.LineStyle.Color = color.RGBA{R: r, B: b2, G: g, A: 255}
	s.GlyphStyle.Color = color.RGBA{R: r, B: b2, G: g, A: 255}
	p.Add(l, s)
	filename := fmt.Sprintf("%s.png", plotname)
	if err := p.Save(6*vg.Inch, 4*vg.Inch, filename); err != nil {
		return err
	}
	return nil
}
