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

// Package landice reads ATL06 land ice segment heights for all six
// beams of a granule, keeps good-quality data inside an optional
// bounding box, and splits each beam into ascending and descending
// passes.
package landice

import (
	"fmt"
	"math"
	"path"

	"github.com/icesat2/atltools"
	"github.com/icesat2/atltools/granule"
)

// ATL06 dataset names relative to a beam group.
const (
	Latitude       = "land_ice_segments/latitude"
	Longitude      = "land_ice_segments/longitude"
	HLi            = "land_ice_segments/h_li"
	DeltaTime      = "land_ice_segments/delta_time"
	QualitySummary = "land_ice_segments/atl06_quality_summary"

	// GPSEpoch is the number of GPS seconds between the GPS epoch and
	// the ATLAS Standard Data Product epoch.
	GPSEpoch = "/ancillary_data/atlas_sdp_gps_epoch"
)

// MaxHeight is the largest absolute land ice height [m] that is kept.
const MaxHeight = 10e3

// Beam holds the land ice segments of one beam.
type Beam struct {
	// ID is the beam number, 1 through 6 for gt1l through gt3r.
	ID int

	Lat, Lon, HLi, DeltaTime []float64
	Quality                  []int64
}

// Len returns the number of segments in the beam.
func (b *Beam) Len() int { return len(b.Lat) }

// ReadBeam reads the land ice segments for the beam with the given
// ground track name.
func ReadBeam(g granule.Granule, track string) (*Beam, error) {
	id := 0
	for i, gt := range atltools.GroundTracks {
		if gt == track {
			id = i + 1
		}
	}
	if id == 0 {
		return nil, fmt.Errorf("landice: invalid beam %q", track)
	}
	b := &Beam{ID: id}
	var err error
	fields := []struct {
		name string
		dst  *[]float64
	}{
		{Latitude, &b.Lat},
		{Longitude, &b.Lon},
		{HLi, &b.HLi},
		{DeltaTime, &b.DeltaTime},
	}
	for _, f := range fields {
		if *f.dst, err = g.Float64s(path.Join(track, f.name)); err != nil {
			return nil, err
		}
	}
	if b.Quality, err = g.Int64s(path.Join(track, QualitySummary)); err != nil {
		return nil, err
	}
	n := len(b.Lat)
	if len(b.Lon) != n || len(b.HLi) != n || len(b.DeltaTime) != n || len(b.Quality) != n {
		return nil, &atltools.LengthMismatchError{
			Names:   []string{"latitude", "longitude", "h_li", "delta_time", "atl06_quality_summary"},
			Lengths: []int{n, len(b.Lon), len(b.HLi), len(b.DeltaTime), len(b.Quality)},
		}
	}
	return b, nil
}

// Keep returns a mask that is true for segments with a quality summary
// of 0 (good), an absolute height below MaxHeight, and, if bbox is not
// nil, a location inside bbox.
func (b *Beam) Keep(bbox *atltools.BBox) []bool {
	mask := make([]bool, b.Len())
	for i := range mask {
		mask[i] = b.Quality[i] == 0 && math.Abs(b.HLi[i]) < MaxHeight &&
			(bbox == nil || bbox.Contains(b.Lon[i], b.Lat[i]))
	}
	return mask
}

// Pass holds the kept segments of one pass direction, from any number
// of beams.
type Pass struct {
	Lon, Lat, HLi, TYear []float64
	Beam                 []int32
}

// Len returns the number of segments in the pass.
func (p *Pass) Len() int { return len(p.Lat) }

func (p *Pass) add(lon, lat, h, tyr float64, beam int) {
	p.Lon = append(p.Lon, lon)
	p.Lat = append(p.Lat, lat)
	p.HLi = append(p.HLi, h)
	p.TYear = append(p.TYear, tyr)
	p.Beam = append(p.Beam, int32(beam))
}

// Split filters b using Keep, converts times to decimal years using the
// granule's GPS epoch offset, and appends each kept segment to asc or des
// according to the direction of its pass.
func (b *Beam) Split(bbox *atltools.BBox, epoch float64, asc, des *Pass) {
	mask := b.Keep(bbox)
	var lat, lon, h, tGPS []float64
	for i, keep := range mask {
		if !keep {
			continue
		}
		lat = append(lat, b.Lat[i])
		lon = append(lon, b.Lon[i])
		h = append(h, b.HLi[i])
		tGPS = append(tGPS, b.DeltaTime[i]+epoch)
	}
	if len(lat) == 0 {
		return
	}
	isAsc := TrackType(tGPS, lat)
	for i := range lat {
		p := des
		if isAsc[i] {
			p = asc
		}
		p.add(lon[i], lat[i], h[i], DecimalYear(tGPS[i]), b.ID)
	}
}
