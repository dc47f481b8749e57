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
	"errors"
	"testing"

	"github.com/spf13/afero"
)

func TestCheckOverwrite(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "out/b.pdf", []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := CheckOverwrite(fs, false, "out/a.txt"); err != nil {
		t.Errorf("new file: %v", err)
	}
	err := CheckOverwrite(fs, false, "out/a.txt", "out/b.pdf")
	var oe *OverwriteError
	if !errors.As(err, &oe) {
		t.Fatalf("have %v, want *OverwriteError", err)
	}
	if oe.Path != "out/b.pdf" {
		t.Errorf("path: have %s, want out/b.pdf", oe.Path)
	}
	if want := "out/b.pdf already exists and overwrite set to false"; err.Error() != want {
		t.Errorf("message: have %q, want %q", err.Error(), want)
	}
	if err := CheckOverwrite(fs, true, "out/a.txt", "out/b.pdf"); err != nil {
		t.Errorf("overwrite: %v", err)
	}
}
