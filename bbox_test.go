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
	"testing"

	"github.com/ctessum/geom"
)

func TestParseBBox(t *testing.T) {
	for _, s := range []string{"-50,60,-40,70", "-50 60 -40 70", "-50, 60, -40, 70"} {
		b, err := ParseBBox(s)
		if err != nil {
			t.Fatalf("%q: %v", s, err)
		}
		if *b != (BBox{West: -50, South: 60, East: -40, North: 70}) {
			t.Errorf("%q: have %+v", s, *b)
		}
	}
	for _, s := range []string{"", "1,2,3", "a,2,3,4", "10,0,0,1", "0,10,1,0", "0,-91,1,0"} {
		if _, err := ParseBBox(s); err == nil {
			t.Errorf("%q: expected an error", s)
		}
	}
}

func TestBBox(t *testing.T) {
	b := BBox{West: -50, South: 60, East: -40, North: 70}
	if have, want := b.String(), "-50.0000,60.0000,-40.0000,70.0000"; have != want {
		t.Errorf("have %s, want %s", have, want)
	}
	for _, p := range [][2]float64{{-50, 60}, {-40, 70}, {-45, 65}} {
		if !b.Contains(p[0], p[1]) {
			t.Errorf("%v should be inside", p)
		}
	}
	for _, p := range [][2]float64{{-50.1, 60}, {-45, 70.1}} {
		if b.Contains(p[0], p[1]) {
			t.Errorf("%v should be outside", p)
		}
	}
	bound := b.Bound()
	if bound.Min != (geom.Point{X: -50, Y: 60}) || bound.Max != (geom.Point{X: -40, Y: 70}) {
		t.Errorf("bound: have %v", bound)
	}
}
