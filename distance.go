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

// SegmentTable holds the per-segment photon bookkeeping of one ground
// track, as stored in the ATL03 /gtXX/geolocation group. The three fields
// are aligned by segment position and segments are listed in increasing
// along-track order.
type SegmentTable struct {
	// StartIndex is the 1-based index of the first photon of each
	// segment (ph_index_beg). Segments without photons may hold 0.
	StartIndex []int64

	// PhotonCount is the number of photons in each segment
	// (segment_ph_cnt).
	PhotonCount []int64

	// Distance is the along-track distance from the equator crossing
	// of each segment's reference point in meters (segment_dist_x).
	Distance []float64
}

// Len returns the number of segments in the table.
func (s SegmentTable) Len() int { return len(s.StartIndex) }

// Photons returns the total number of photons referenced by the table.
func (s SegmentTable) Photons() int64 {
	var n int64
	for _, c := range s.PhotonCount {
		n += c
	}
	return n
}

// Check verifies that the segment table partitions nPhotons photons
// contiguously, without gaps or overlaps.
func (s SegmentTable) Check(nPhotons int) error {
	if len(s.PhotonCount) != len(s.StartIndex) || len(s.Distance) != len(s.StartIndex) {
		return inconsistent("segment arrays have lengths ph_index_beg=%d, segment_ph_cnt=%d, segment_dist_x=%d",
			len(s.StartIndex), len(s.PhotonCount), len(s.Distance))
	}
	var next int64 // 0-based index where the next non-empty segment must begin.
	for i, count := range s.PhotonCount {
		if count < 0 {
			return inconsistent("segment %d has negative photon count %d", i, count)
		}
		if count == 0 {
			continue
		}
		start := s.StartIndex[i] - 1
		if start < 0 {
			return inconsistent("segment %d has %d photons but start index %d", i, count, s.StartIndex[i])
		}
		if start < next {
			return inconsistent("segment %d starts at photon %d, overlapping the previous segment which ends at %d",
				i, s.StartIndex[i], next)
		}
		if start != next {
			return inconsistent("segment %d starts at photon %d, leaving a gap after photon %d",
				i, s.StartIndex[i], next)
		}
		next = start + count
		if next > int64(nPhotons) {
			return inconsistent("segment %d ends at photon %d but only %d photons are available", i, next, nPhotons)
		}
	}
	if next != int64(nPhotons) {
		return inconsistent("segments account for %d photons but dist_ph_along has %d", next, nPhotons)
	}
	return nil
}

// ReconstructDistance returns the absolute along-track distance of every
// photon: the distance of the photon's segment reference point plus the
// photon's offset from it (dist_ph_along). The result is aligned 1:1 with
// distPhAlong. An *InconsistentIndexError is returned, and no distances,
// if the segment table does not exactly consume distPhAlong.
func ReconstructDistance(seg SegmentTable, distPhAlong []float64) ([]float64, error) {
	if err := seg.Check(len(distPhAlong)); err != nil {
		return nil, err
	}
	distance := make([]float64, len(distPhAlong))
	j := 0
	for i, count := range seg.PhotonCount {
		if count == 0 {
			continue
		}
		start := seg.StartIndex[i] - 1
		for _, offset := range distPhAlong[start : start+count] {
			distance[j] = seg.Distance[i] + offset
			j++
		}
	}
	return distance, nil
}
