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
	"strings"
)

// MissingFieldError is returned when a required dataset or group is
// absent from a granule.
type MissingFieldError struct {
	// Path is the dataset path within the granule.
	Path string

	// File is the name of the granule, if known.
	File string
}

func (e *MissingFieldError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("%s not found", e.Path)
	}
	return fmt.Sprintf("%s not found in %s", e.Path, e.File)
}

// InconsistentIndexError is returned when the segment bookkeeping of a
// granule does not reconcile with its photon arrays.
type InconsistentIndexError struct {
	Reason string
}

func (e *InconsistentIndexError) Error() string {
	return "inconsistent segment index: " + e.Reason
}

func inconsistent(format string, args ...interface{}) error {
	return &InconsistentIndexError{Reason: fmt.Sprintf(format, args...)}
}

// LengthMismatchError is returned when arrays that are zipped together
// element-wise have different lengths.
type LengthMismatchError struct {
	// Names and Lengths describe the arrays that were compared.
	Names   []string
	Lengths []int
}

func (e *LengthMismatchError) Error() string {
	parts := make([]string, len(e.Lengths))
	for i, n := range e.Lengths {
		name := "array"
		if i < len(e.Names) {
			name = e.Names[i]
		}
		parts[i] = fmt.Sprintf("%s=%d", name, n)
	}
	return "array lengths differ: " + strings.Join(parts, ", ")
}
