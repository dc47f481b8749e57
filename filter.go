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

// FilterPairs returns the elements of distance and height for which mask
// is true, preserving their order. A *LengthMismatchError is returned if
// the three arrays are not all the same length.
func FilterPairs(distance, height []float64, mask []bool) ([]float64, []float64, error) {
	if len(distance) != len(mask) || len(height) != len(mask) {
		return nil, nil, &LengthMismatchError{
			Names:   []string{"distance", "height", "mask"},
			Lengths: []int{len(distance), len(height), len(mask)},
		}
	}
	n := CountTrue(mask)
	d := make([]float64, 0, n)
	h := make([]float64, 0, n)
	for i, keep := range mask {
		if keep {
			d = append(d, distance[i])
			h = append(h, height[i])
		}
	}
	return d, h, nil
}

// CountTrue returns the number of true values in mask.
func CountTrue(mask []bool) int {
	n := 0
	for _, m := range mask {
		if m {
			n++
		}
	}
	return n
}
