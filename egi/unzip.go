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

package egi

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Unzip extracts the HDF5 files in the zip archive at zipFile into dir.
// The directory structure of the archive is discarded, so each granule
// is written directly into dir. Other files are ignored. It returns the
// paths of the extracted files.
func Unzip(zipFile, dir string) ([]string, error) {
	r, err := zip.OpenReader(zipFile)
	if err != nil {
		return nil, fmt.Errorf("egi: opening %s: %w", zipFile, err)
	}
	defer r.Close()

	var files []string
	for _, zf := range r.File {
		if zf.FileInfo().IsDir() || !strings.HasSuffix(zf.Name, ".h5") {
			continue
		}
		out := filepath.Join(dir, path.Base(zf.Name))
		if err := extract(zf, out); err != nil {
			return files, err
		}
		files = append(files, out)
	}
	return files, nil
}

func extract(zf *zip.File, out string) error {
	rc, err := zf.Open()
	if err != nil {
		return fmt.Errorf("egi: extracting %s: %w", zf.Name, err)
	}
	defer rc.Close()
	w, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("egi: extracting %s: %w", zf.Name, err)
	}
	if _, err := io.Copy(w, rc); err != nil {
		w.Close()
		return fmt.Errorf("egi: extracting %s: %w", zf.Name, err)
	}
	return w.Close()
}
