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
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"gonum.org/v1/gonum/floats"
)

// gpsEpoch is the start of GPS time.
var gpsEpoch = time.Date(1980, time.January, 6, 0, 0, 0, 0, time.UTC)

// GPSTime converts seconds since the GPS epoch to a time. Leap seconds
// are not applied, so the result is on the GPS time scale.
func GPSTime(seconds float64) time.Time {
	whole, frac := math.Modf(seconds)
	return gpsEpoch.Add(time.Duration(whole) * time.Second).
		Add(time.Duration(math.Round(frac * 1e9)))
}

// DecimalYear converts seconds since the GPS epoch to a decimal year,
// e.g. 2019.5 for noon on 2 July 2019.
func DecimalYear(seconds float64) float64 {
	t := GPSTime(seconds)
	y := t.Year()
	days := 365
	if julian.LeapYearGregorian(y) {
		days = 366
	}
	start := time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)
	return float64(y) + t.Sub(start).Seconds()/(float64(days)*86400)
}

// TrackType determines which points of a beam belong to ascending
// passes. The beam is split into two tracks at the point of maximum
// absolute latitude; each track with at least two points is ascending
// if its latitude increases from its earliest to its latest time.
// Points not marked ascending are descending.
func TrackType(t, lat []float64) []bool {
	asc := make([]bool, len(lat))
	if len(lat) == 0 {
		return asc
	}
	absLat := make([]float64, len(lat))
	for i, l := range lat {
		absLat[i] = math.Abs(l)
	}
	split := floats.MaxIdx(absLat)
	for _, track := range [][2]int{{0, split}, {split, len(lat)}} {
		begin, end := track[0], track[1]
		if end-begin < 2 {
			continue
		}
		tt := t[begin:end]
		iMin := begin + floats.MinIdx(tt)
		iMax := begin + floats.MaxIdx(tt)
		if lat[iMax]-lat[iMin] > 0 {
			for i := begin; i < end; i++ {
				asc[i] = true
			}
		}
	}
	return asc
}
