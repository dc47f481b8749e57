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
	"errors"
	"reflect"
	"testing"
)

func TestConfidenceMask(t *testing.T) {
	conf := [][]int64{{0, 4}, {2, 1}, {4, 4}}
	have := ConfidenceMask(conf, 4)
	want := []bool{true, false, true}
	if !reflect.DeepEqual(have, want) {
		t.Errorf("have %v, want %v", have, want)
	}
}

func TestConfidenceMaskBounds(t *testing.T) {
	conf := [][]int64{{-2, -1, 0, 1, 2}, {4, 3, 2, 1, 0}, {-1, -1, -1, -1, -1}}
	for _, m := range ConfidenceMask(conf, ConfidenceTEP-1) {
		if !m {
			t.Errorf("threshold below minimum level should keep every photon")
		}
	}
	for _, m := range ConfidenceMask(conf, ConfidenceHigh+1) {
		if m {
			t.Errorf("threshold above maximum level should drop every photon")
		}
	}
}

func TestCheckConfidence(t *testing.T) {
	for c := ConfidenceTEP; c <= ConfidenceHigh; c++ {
		if err := CheckConfidence(c); err != nil {
			t.Errorf("level %d: %v", c, err)
		}
	}
	for _, c := range []int64{-3, 5} {
		if err := CheckConfidence(c); err == nil {
			t.Errorf("level %d should be rejected", c)
		}
	}
}

func TestNormalizeTrack(t *testing.T) {
	for _, in := range []string{"gt2r", "/gt2r", "gt2r/", "//gt2r"} {
		have, err := NormalizeTrack(in)
		if err != nil {
			t.Errorf("%s: %v", in, err)
		}
		if have != "gt2r" {
			t.Errorf("%s: have %s, want gt2r", in, have)
		}
	}
	if _, err := NormalizeTrack("gt4l"); err == nil {
		t.Error("gt4l should be rejected")
	}
}

func TestFilterPairs(t *testing.T) {
	d, h, err := FilterPairs(
		[]float64{1, 2, 3, 4},
		[]float64{10, 20, 30, 40},
		[]bool{true, false, false, true},
	)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(d, []float64{1, 4}) {
		t.Errorf("distance: have %v", d)
	}
	if !reflect.DeepEqual(h, []float64{10, 40}) {
		t.Errorf("height: have %v", h)
	}
	if len(d) != CountTrue([]bool{true, false, false, true}) {
		t.Errorf("length %d does not match mask", len(d))
	}
}

func TestFilterPairsLengthMismatch(t *testing.T) {
	_, _, err := FilterPairs([]float64{1, 2}, []float64{1, 2, 3}, []bool{true, true})
	var lme *LengthMismatchError
	if !errors.As(err, &lme) {
		t.Fatalf("have %v, want *LengthMismatchError", err)
	}
	if !reflect.DeepEqual(lme.Lengths, []int{2, 3, 2}) {
		t.Errorf("lengths: have %v", lme.Lengths)
	}
	want := "array lengths differ: distance=2, height=3, mask=2"
	if err.Error() != want {
		t.Errorf("have %q, want %q", err.Error(), want)
	}
}

func TestMissingFieldError(t *testing.T) {
	err := &MissingFieldError{Path: "gt1l/heights/h_ph", File: "ATL03_x.h5"}
	if err.Error() != "gt1l/heights/h_ph not found in ATL03_x.h5" {
		t.Errorf("have %q", err.Error())
	}
}
