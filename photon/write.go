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

package photon

import (
	"bufio"
	"fmt"
	"io"

	"github.com/icesat2/atltools"
	"github.com/spf13/afero"
)

// TableHeader is the first line of a photon height table.
const TableHeader = "#  Distance (m)     Height (m)"

// WriteTable writes distance and height to outfile as two fixed-width
// columns.
func WriteTable(fs afero.Fs, outfile string, distance, height []float64, overwrite bool) error {
	if len(distance) != len(height) {
		return &atltools.LengthMismatchError{
			Names:   []string{"distance", "height"},
			Lengths: []int{len(distance), len(height)},
		}
	}
	if err := atltools.CheckOverwrite(fs, overwrite, outfile); err != nil {
		return err
	}
	f, err := fs.Create(outfile)
	if err != nil {
		return fmt.Errorf("photon: creating output file: %w", err)
	}
	if err := writeTable(f, distance, height); err != nil {
		f.Close()
		return fmt.Errorf("photon: writing %s: %w", outfile, err)
	}
	return f.Close()
}

func writeTable(w io.Writer, distance, height []float64) error {
	b := bufio.NewWriter(w)
	fmt.Fprintln(b, TableHeader)
	for i := range distance {
		fmt.Fprintf(b, "%15.3f%15.3f\n", distance[i], height[i])
	}
	return b.Flush()
}
