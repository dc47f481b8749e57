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
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"github.com/spf13/afero"
)

// TokenFile is the name of the file holding the NSIDC access token.
const TokenFile = "NSIDC_token.txt"

// ErrNoToken is returned when no access token can be found.
var ErrNoToken = errors.New("egi: missing token string")

var tokenRE = regexp.MustCompile(`<id>(.*)</id>`)

// ReadToken returns the token from the <id> element of an NSIDC token
// response. If there is more than one, the last is used.
func ReadToken(r io.Reader) (string, error) {
	var token string
	s := bufio.NewScanner(r)
	for s.Scan() {
		if m := tokenRE.FindStringSubmatch(s.Text()); m != nil {
			token = m[1]
		}
	}
	if err := s.Err(); err != nil {
		return "", fmt.Errorf("egi: reading token: %w", err)
	}
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

// TokenDirs returns the directories searched for TokenFile: the
// working directory and then the directory of the running executable.
func TokenDirs() []string {
	dirs := []string{"."}
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Dir(exe))
	}
	return dirs
}

// FindToken reads the token from the first of dirs that contains
// TokenFile.
func FindToken(fs afero.Fs, dirs ...string) (string, error) {
	for _, dir := range dirs {
		f, err := fs.Open(filepath.Join(dir, TokenFile))
		if os.IsNotExist(err) {
			continue
		} else if err != nil {
			return "", fmt.Errorf("egi: opening token file: %w", err)
		}
		defer f.Close()
		return ReadToken(f)
	}
	return "", fmt.Errorf("%w: %s not found in %v", ErrNoToken, TokenFile, dirs)
}
