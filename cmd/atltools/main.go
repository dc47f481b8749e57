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

// Command atltools is a command-line interface for working with
// ICESat-2 ATL03, ATL06, and ATL09 data.
package main

import (
	"fmt"
	"os"

	"github.com/icesat2/atltools/atlutil"
)

func main() {
	if err := atlutil.Root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "atltools: error:", err)
		os.Exit(1)
	}
}
