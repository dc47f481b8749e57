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

// Package granule provides lookup-by-path access to the datasets in an
// ICESat-2 HDF5 granule.
package granule

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/batchatco/go-native-netcdf/netcdf"
	"github.com/batchatco/go-native-netcdf/netcdf/api"
	"github.com/icesat2/atltools"
)

// Granule is a hierarchical file of named datasets. Paths are
// '/'-separated, with or without a leading slash, e.g.
// "gt1l/heights/h_ph". Methods that read a dataset return a
// *atltools.MissingFieldError if the path does not exist.
type Granule interface {
	// Name returns the file name of the granule.
	Name() string

	// Has returns whether a group or dataset exists at path.
	Has(path string) bool

	Float64s(path string) ([]float64, error)
	Int64s(path string) ([]int64, error)

	// Int64Matrix returns a two-dimensional dataset one row at a time.
	Int64Matrix(path string) ([][]int64, error)

	// Attribute returns the string attribute of the dataset at path.
	Attribute(path, name string) (string, bool)

	Close() error
}

// File is a Granule stored in an HDF5 file on disk.
type File struct {
	name string
	root api.Group
}

// Open opens the HDF5 granule at path for reading.
func Open(path string) (*File, error) {
	g, err := netcdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("granule: opening %s: %w", path, err)
	}
	return &File{name: path, root: g}, nil
}

// Name implements Granule.
func (f *File) Name() string { return f.name }

// Close implements Granule.
func (f *File) Close() error {
	f.root.Close()
	return nil
}

// splitPath splits a dataset path into its group components and the
// final element name.
func splitPath(path string) (groups []string, name string) {
	parts := strings.FieldsFunc(path, func(r rune) bool { return r == '/' })
	if len(parts) == 0 {
		return nil, ""
	}
	return parts[:len(parts)-1], parts[len(parts)-1]
}

// group walks down to the group holding the final element of path.
// The returned release function closes any intermediate groups.
func (f *File) group(groups []string) (api.Group, func(), error) {
	g := f.root
	var opened []api.Group
	release := func() {
		for i := len(opened) - 1; i >= 0; i-- {
			opened[i].Close()
		}
	}
	for _, name := range groups {
		sub, err := g.GetGroup(name)
		if err != nil {
			release()
			return nil, func() {}, err
		}
		opened = append(opened, sub)
		g = sub
	}
	return g, release, nil
}

func contains(list []string, s string) bool {
	for _, l := range list {
		if l == s {
			return true
		}
	}
	return false
}

// Has implements Granule.
func (f *File) Has(path string) bool {
	groups, name := splitPath(path)
	if name == "" {
		return true
	}
	g, release, err := f.group(groups)
	if err != nil {
		return false
	}
	defer release()
	return contains(g.ListVariables(), name) || contains(g.ListSubgroups(), name)
}

func (f *File) variable(path string) (*api.Variable, error) {
	groups, name := splitPath(path)
	missing := &atltools.MissingFieldError{Path: path, File: filepath.Base(f.name)}
	g, release, err := f.group(groups)
	if err != nil {
		return nil, missing
	}
	defer release()
	if !contains(g.ListVariables(), name) {
		return nil, missing
	}
	v, err := g.GetVariable(name)
	if err != nil {
		return nil, fmt.Errorf("granule: reading %s from %s: %w", path, f.name, err)
	}
	return v, nil
}

// Float64s implements Granule.
func (f *File) Float64s(path string) ([]float64, error) {
	v, err := f.variable(path)
	if err != nil {
		return nil, err
	}
	o, err := ToFloat64s(v.Values)
	if err != nil {
		return nil, fmt.Errorf("granule: %s: %w", path, err)
	}
	return o, nil
}

// Int64s implements Granule.
func (f *File) Int64s(path string) ([]int64, error) {
	v, err := f.variable(path)
	if err != nil {
		return nil, err
	}
	o, err := ToInt64s(v.Values)
	if err != nil {
		return nil, fmt.Errorf("granule: %s: %w", path, err)
	}
	return o, nil
}

// Int64Matrix implements Granule.
func (f *File) Int64Matrix(path string) ([][]int64, error) {
	v, err := f.variable(path)
	if err != nil {
		return nil, err
	}
	o, err := ToInt64Matrix(v.Values)
	if err != nil {
		return nil, fmt.Errorf("granule: %s: %w", path, err)
	}
	return o, nil
}

// Attribute implements Granule.
func (f *File) Attribute(path, name string) (string, bool) {
	v, err := f.variable(path)
	if err != nil || v.Attributes == nil {
		return "", false
	}
	a, ok := v.Attributes.Get(name)
	if !ok {
		return "", false
	}
	return attributeString(a)
}
