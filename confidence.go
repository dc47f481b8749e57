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
	"path"
	"strings"
)

// ConfidenceMask returns a mask that is true for each photon whose signal
// confidence reaches minConfidence for at least one surface type.
// signalConf holds one row per photon and one column per surface type.
func ConfidenceMask(signalConf [][]int64, minConfidence int64) []bool {
	mask := make([]bool, len(signalConf))
	for i, row := range signalConf {
		for _, c := range row {
			if c >= minConfidence {
				mask[i] = true
				break
			}
		}
	}
	return mask
}

// CheckConfidence returns an error if c is not one of the signal
// confidence levels defined for ATL03.
func CheckConfidence(c int64) error {
	if c < ConfidenceTEP || c > ConfidenceHigh {
		return fmt.Errorf("signal confidence must be between %d and %d, but is %d",
			ConfidenceTEP, ConfidenceHigh, c)
	}
	return nil
}

// NormalizeTrack strips any leading or trailing slashes from a ground
// track name ("/gt1l/" becomes "gt1l") and checks that the result is
// one of GroundTracks.
func NormalizeTrack(track string) (string, error) {
	t := strings.Trim(path.Clean("/"+track), "/")
	for _, gt := range GroundTracks {
		if t == gt {
			return t, nil
		}
	}
	return t, fmt.Errorf("invalid ground track %q; should be one of %s",
		track, strings.Join(GroundTracks, ", "))
}
