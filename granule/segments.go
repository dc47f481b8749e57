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

package granule

import (
	"path"

	"github.com/icesat2/atltools"
)

// ATL03 dataset names relative to a ground track group.
const (
	PhIndexBeg   = "geolocation/ph_index_beg"
	SegmentPhCnt = "geolocation/segment_ph_cnt"
	SegmentDistX = "geolocation/segment_dist_x"
	DistPhAlong  = "heights/dist_ph_along"
	HPh          = "heights/h_ph"
	SignalConfPh = "heights/signal_conf_ph"
)

// TrackPath joins a ground track name and a dataset name.
func TrackPath(track, name string) string {
	return path.Join(track, name)
}

// ReadSegmentTable reads the segment bookkeeping of the given ATL03
// ground track.
func ReadSegmentTable(g Granule, track string) (atltools.SegmentTable, error) {
	var seg atltools.SegmentTable
	var err error
	if seg.StartIndex, err = g.Int64s(TrackPath(track, PhIndexBeg)); err != nil {
		return seg, err
	}
	if seg.PhotonCount, err = g.Int64s(TrackPath(track, SegmentPhCnt)); err != nil {
		return seg, err
	}
	if seg.Distance, err = g.Float64s(TrackPath(track, SegmentDistX)); err != nil {
		return seg, err
	}
	return seg, nil
}
