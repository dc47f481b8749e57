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
	"math/rand"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestReconstructDistance(t *testing.T) {
	seg := SegmentTable{
		StartIndex:  []int64{1, 4},
		PhotonCount: []int64{3, 2},
		Distance:    []float64{100.0, 200.0},
	}
	distPhAlong := []float64{0.0, 0.5, 1.0, 0.0, 0.2}
	have, err := ReconstructDistance(seg, distPhAlong)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{100.0, 100.5, 101.0, 200.0, 200.2}
	if diff := cmp.Diff(want, have, approx); diff != "" {
		t.Errorf("distance mismatch (-want +have):\n%s", diff)
	}
}

func TestReconstructDistanceEmptySegments(t *testing.T) {
	// ATL03 stores a start index of 0 for segments without photons.
	seg := SegmentTable{
		StartIndex:  []int64{0, 1, 0, 3},
		PhotonCount: []int64{0, 2, 0, 1},
		Distance:    []float64{10, 20, 40, 60},
	}
	have, err := ReconstructDistance(seg, []float64{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{21, 22, 63}
	if !reflect.DeepEqual(have, want) {
		t.Errorf("have %v, want %v", have, want)
	}
}

func TestReconstructDistanceInconsistent(t *testing.T) {
	tests := []struct {
		name        string
		seg         SegmentTable
		distPhAlong []float64
	}{
		{
			name: "too many photons counted",
			seg: SegmentTable{
				StartIndex:  []int64{1, 4},
				PhotonCount: []int64{3, 3},
				Distance:    []float64{100, 200},
			},
			distPhAlong: []float64{0, 0.5, 1, 0, 0.2},
		},
		{
			name: "too few photons counted",
			seg: SegmentTable{
				StartIndex:  []int64{1, 4},
				PhotonCount: []int64{3, 1},
				Distance:    []float64{100, 200},
			},
			distPhAlong: []float64{0, 0.5, 1, 0, 0.2},
		},
		{
			name: "overlap",
			seg: SegmentTable{
				StartIndex:  []int64{1, 3},
				PhotonCount: []int64{3, 2},
				Distance:    []float64{100, 200},
			},
			distPhAlong: []float64{0, 0.5, 1, 0, 0.2},
		},
		{
			name: "gap",
			seg: SegmentTable{
				StartIndex:  []int64{1, 5},
				PhotonCount: []int64{3, 1},
				Distance:    []float64{100, 200},
			},
			distPhAlong: []float64{0, 0.5, 1, 0},
		},
		{
			name: "ragged segment arrays",
			seg: SegmentTable{
				StartIndex:  []int64{1, 4},
				PhotonCount: []int64{3, 2},
				Distance:    []float64{100},
			},
			distPhAlong: []float64{0, 0.5, 1, 0, 0.2},
		},
		{
			name: "negative count",
			seg: SegmentTable{
				StartIndex:  []int64{1},
				PhotonCount: []int64{-1},
				Distance:    []float64{100},
			},
			distPhAlong: []float64{},
		},
		{
			name: "zero start with photons",
			seg: SegmentTable{
				StartIndex:  []int64{0},
				PhotonCount: []int64{2},
				Distance:    []float64{100},
			},
			distPhAlong: []float64{0, 1},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d, err := ReconstructDistance(test.seg, test.distPhAlong)
			var iie *InconsistentIndexError
			if !errors.As(err, &iie) {
				t.Fatalf("have error %v, want *InconsistentIndexError", err)
			}
			if d != nil {
				t.Errorf("partial output produced: %v", d)
			}
		})
	}
}

// randomTable creates a well-formed segment table with strictly
// increasing segment distances and non-decreasing, non-negative offsets.
func randomTable(r *rand.Rand, nSeg int) (SegmentTable, []float64) {
	var seg SegmentTable
	var offsets []float64
	start := int64(1)
	dist := 0.0
	for i := 0; i < nSeg; i++ {
		n := int64(r.Intn(5))
		if n == 0 {
			seg.StartIndex = append(seg.StartIndex, 0)
		} else {
			seg.StartIndex = append(seg.StartIndex, start)
		}
		seg.PhotonCount = append(seg.PhotonCount, n)
		seg.Distance = append(seg.Distance, dist)
		o := 0.0
		for j := int64(0); j < n; j++ {
			o += r.Float64() * 2
			offsets = append(offsets, o)
		}
		start += n
		dist += o + 20 + r.Float64()
	}
	return seg, offsets
}

func TestReconstructDistanceProperties(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		seg, offsets := randomTable(r, 1+r.Intn(40))
		d, err := ReconstructDistance(seg, offsets)
		if err != nil {
			t.Fatal(err)
		}
		if len(d) != len(offsets) {
			t.Fatalf("length: have %d, want %d", len(d), len(offsets))
		}
		for k := 1; k < len(d); k++ {
			if d[k] < d[k-1] {
				t.Fatalf("distance decreases at photon %d: %g < %g", k, d[k], d[k-1])
			}
		}
		d2, err := ReconstructDistance(seg, offsets)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(d, d2) {
			t.Errorf("repeated calls differ")
		}
	}
}

func TestSegmentTablePhotons(t *testing.T) {
	seg := SegmentTable{PhotonCount: []int64{3, 0, 2}}
	if n := seg.Photons(); n != 5 {
		t.Errorf("have %d, want 5", n)
	}
}
