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

package atltools

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ctessum/geom"
)

// BBox is a geographic bounding box in degrees.
type BBox struct {
	West, East, South, North float64
}

// Contains returns whether the point (lon, lat) is inside b, including
// its edges.
func (b BBox) Contains(lon, lat float64) bool {
	return b.Bound().Overlaps(geom.NewBoundsPoint(geom.Point{X: lon, Y: lat}))
}

// Bound returns b as planar bounds with longitude on the x axis.
func (b BBox) Bound() *geom.Bounds {
	return &geom.Bounds{
		Min: geom.Point{X: b.West, Y: b.South},
		Max: geom.Point{X: b.East, Y: b.North},
	}
}

// String formats b as "W,S,E,N" with four decimal places, the form
// used in NSIDC requests.
func (b BBox) String() string {
	return fmt.Sprintf("%6.4f,%6.4f,%6.4f,%6.4f", b.West, b.South, b.East, b.North)
}

// ParseBBox parses a bounding box given as four numbers in the order
// west, south, east, north, separated by commas or spaces.
func ParseBBox(s string) (*BBox, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	if len(fields) != 4 {
		return nil, fmt.Errorf("bounding box %q must have four values (W S E N)", s)
	}
	var v [4]float64
	for i, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("bounding box %q: %v", s, err)
		}
		v[i] = x
	}
	b := &BBox{West: v[0], South: v[1], East: v[2], North: v[3]}
	if b.West > b.East || b.South > b.North {
		return nil, fmt.Errorf("bounding box %q: west must not exceed east and south must not exceed north", s)
	}
	if b.South < -90 || b.North > 90 {
		return nil, fmt.Errorf("bounding box %q: latitude out of range", s)
	}
	return b, nil
}
