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

package landice

import (
	"fmt"

	"github.com/ctessum/cdf"
	"github.com/spf13/afero"
)

// passVariables lists the variables in a pass file, with their
// descriptions and units.
var passVariables = []struct {
	name, description, units string
}{
	{"lon", "Longitude of segment center", "degrees_east"},
	{"lat", "Latitude of segment center", "degrees_north"},
	{"h_li", "Standard land-ice segment height", "meters"},
	{"t_yr", "Time of segment center", "decimal year"},
	{"beam", "Beam number (1=gt1l ... 6=gt3r)", "1"},
}

// WritePass writes p to a NetCDF file at path.
func WritePass(fs afero.Fs, path string, p *Pass) error {
	h := cdf.NewHeader([]string{"segment"}, []int{p.Len()})
	for _, v := range passVariables {
		if v.name == "beam" {
			h.AddVariable(v.name, []string{"segment"}, []int32{0})
		} else {
			h.AddVariable(v.name, []string{"segment"}, []float64{0})
		}
		h.AddAttribute(v.name, "description", v.description)
		h.AddAttribute(v.name, "units", v.units)
	}
	h.Define()
	if errs := h.Check(); len(errs) > 0 {
		return fmt.Errorf("landice: creating %s: %v", path, errs[0])
	}

	ff, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("landice: creating %s: %w", path, err)
	}
	f, err := cdf.Create(ff, h)
	if err != nil {
		ff.Close()
		return fmt.Errorf("landice: creating %s: %w", path, err)
	}
	data := map[string]interface{}{
		"lon":  p.Lon,
		"lat":  p.Lat,
		"h_li": p.HLi,
		"t_yr": p.TYear,
		"beam": p.Beam,
	}
	for _, v := range passVariables {
		w := f.Writer(v.name, []int{0}, []int{p.Len()})
		if _, err := w.Write(data[v.name]); err != nil {
			ff.Close()
			return fmt.Errorf("landice: writing %s to %s: %w", v.name, path, err)
		}
	}
	return ff.Close()
}

// ReadPass reads a pass file written by WritePass.
func ReadPass(fs afero.Fs, path string) (*Pass, error) {
	ff, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("landice: opening %s: %w", path, err)
	}
	defer ff.Close()
	f, err := cdf.Open(ff)
	if err != nil {
		return nil, fmt.Errorf("landice: reading %s: %w", path, err)
	}
	n := f.Header.Lengths("lat")[0]
	p := &Pass{
		Lon:   make([]float64, n),
		Lat:   make([]float64, n),
		HLi:   make([]float64, n),
		TYear: make([]float64, n),
		Beam:  make([]int32, n),
	}
	data := map[string]interface{}{
		"lon":  p.Lon,
		"lat":  p.Lat,
		"h_li": p.HLi,
		"t_yr": p.TYear,
		"beam": p.Beam,
	}
	for _, v := range passVariables {
		r := f.Reader(v.name, nil, nil)
		if _, err := r.Read(data[v.name]); err != nil {
			return nil, fmt.Errorf("landice: reading %s from %s: %w", v.name, path, err)
		}
	}
	return p, nil
}
