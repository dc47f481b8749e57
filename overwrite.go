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

	"github.com/spf13/afero"
)

// OverwriteError is returned when an output file already exists and
// overwriting was not requested.
type OverwriteError struct {
	Path string
}

func (e *OverwriteError) Error() string {
	return e.Path + " already exists and overwrite set to false"
}

// CheckOverwrite returns an *OverwriteError for the first of paths that
// exists, unless overwrite is true. Callers check every output they
// will produce before writing any of them.
func CheckOverwrite(fs afero.Fs, overwrite bool, paths ...string) error {
	if overwrite {
		return nil
	}
	for _, p := range paths {
		exists, err := afero.Exists(fs, p)
		if err != nil {
			return fmt.Errorf("checking %s: %w", p, err)
		}
		if exists {
			return &OverwriteError{Path: p}
		}
	}
	return nil
}
