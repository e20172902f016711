/*
 * plot.go, part of nucpair.
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

//Package nucplot draws diagnostic plots for the pairs found by the
//parent package.
package nucplot

import (
	"fmt"
	"image/color"
	"math"

	nuc "github.com/ebarria/nucpair"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//ScorePlot plots the quality score of each pair against its position in
//the pair list and saves the result as plotname.png. Lower is better,
//so good pairs sit at the bottom.
func ScorePlot(pairs []*nuc.BasePair, title, plotname string) error {
	if pairs == nil {
		return fmt.Errorf("nucplot: Nil pairs given")
	}
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Pair"
	p.Y.Label.Text = "Score"
	p.Add(plotter.NewGrid())
	pts := make(plotter.XYs, len(pairs))
	scores := make([]float64, len(pairs))
	for i, pair := range pairs {
		pts[i].X = float64(i)
		pts[i].Y = pair.Result.Score
		scores[i] = pair.Result.Score
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	s.GlyphStyle.Color = color.RGBA{R: 180, A: 255}
	p.Add(s)
	if len(scores) > 0 {
		//pad the y axis so the extreme points are not on the border
		p.Y.Min = floats.Min(scores) - 1
		p.Y.Max = floats.Max(scores) + 1
	}
	return p.Save(5*vg.Inch, 5*vg.Inch, fmt.Sprintf("%s.png", plotname))
}

//SlideRisePlot plots |slide| against |rise| for every classified pair,
//Watson-Crick pairs in blue and wobble pairs in red, and saves the
//result as plotname.png. Pairs without step parameters are skipped.
func SlideRisePlot(pairs []*nuc.BasePair, title, plotname string) error {
	if pairs == nil {
		return fmt.Errorf("nucplot: Nil pairs given")
	}
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "|Slide|"
	p.Y.Label.Text = "|Rise|"
	p.Add(plotter.NewGrid())
	var wc, wob plotter.XYs
	for _, pair := range pairs {
		st := pair.Result.Step
		if st == nil {
			continue
		}
		pt := plotter.XY{X: math.Abs(st.Slide), Y: math.Abs(st.Rise)}
		if pair.Result.Kind == nuc.WatsonCrick {
			wc = append(wc, pt)
		} else if pair.Result.Kind == nuc.Wobble {
			wob = append(wob, pt)
		}
	}
	for i, set := range []plotter.XYs{wc, wob} {
		if len(set) == 0 {
			continue
		}
		s, err := plotter.NewScatter(set)
		if err != nil {
			return err
		}
		if i == 0 {
			s.GlyphStyle.Color = color.RGBA{B: 200, A: 255}
		} else {
			s.GlyphStyle.Color = color.RGBA{R: 200, A: 255}
		}
		p.Add(s)
	}
	return p.Save(5*vg.Inch, 5*vg.Inch, fmt.Sprintf("%s.png", plotname))
}
