/*
Copyright © 2018 the atltools authors.
This file is part of atltools.

atltools is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

atltools is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with atltools.  If not, see <http://www.gnu.org/licenses/>.
*/

package photon

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/skratchdot/open-golang/open"
	"github.com/spf13/afero"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	figWidth  = 10 * vg.Inch
	figHeight = 6 * vg.Inch
)

// NewPlot creates a scatter plot of photon height against along-track
// distance.
func NewPlot(r *Result) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = r.Title
	p.X.Label.Text = r.XLabel
	p.Y.Label.Text = r.YLabel

	xy := make(plotter.XYs, len(r.Distance))
	for i := range r.Distance {
		xy[i].X = r.Distance[i]
		xy[i].Y = r.Height[i]
	}
	s, err := plotter.NewScatter(xy)
	if err != nil {
		return nil, fmt.Errorf("photon: creating scatter plot: %w", err)
	}
	s.GlyphStyle = draw.GlyphStyle{
		Color:  color.RGBA{R: 255, A: 255},
		Radius: vg.Points(1),
		Shape:  draw.CircleGlyph{},
	}
	p.Add(s)
	return p, nil
}

// Plot saves a plot of r to path. The format is chosen from the file
// extension (e.g. pdf, png, svg).
func Plot(fs afero.Fs, path string, r *Result) error {
	p, err := NewPlot(r)
	if err != nil {
		return err
	}
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	wt, err := p.WriterTo(figWidth, figHeight, format)
	if err != nil {
		return fmt.Errorf("photon: preparing plot: %w", err)
	}
	f, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("photon: creating plot file: %w", err)
	}
	if _, err := wt.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("photon: saving plot to %s: %w", path, err)
	}
	return f.Close()
}

// Show opens the file at path with the system's default viewer.
func Show(path string) error {
	return open.Run(path)
}
