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

package granule

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/icesat2/atltools"
)

// Memory is a Granule held in memory. Datasets are keyed by path
// and hold any value accepted by ToFloat64s, ToInt64s or ToInt64Matrix.
// Groups exist implicitly for every prefix of a dataset path.
type Memory struct {
	File     string
	Datasets map[string]interface{}

	// Attrs holds dataset attributes keyed by path and then by
	// attribute name.
	Attrs map[string]map[string]string

	closed bool
}

// NewMemory returns an empty in-memory granule with the given file name.
func NewMemory(name string) *Memory {
	return &Memory{
		File:     name,
		Datasets: make(map[string]interface{}),
		Attrs:    make(map[string]map[string]string),
	}
}

func cleanPath(path string) string {
	return strings.Trim(filepath.ToSlash(filepath.Clean("/"+path)), "/")
}

// Set adds a dataset to the granule.
func (m *Memory) Set(path string, values interface{}) *Memory {
	m.Datasets[cleanPath(path)] = values
	return m
}

// SetAttribute adds an attribute to the dataset at path.
func (m *Memory) SetAttribute(path, name, value string) *Memory {
	p := cleanPath(path)
	if m.Attrs[p] == nil {
		m.Attrs[p] = make(map[string]string)
	}
	m.Attrs[p][name] = value
	return m
}

// Name implements Granule.
func (m *Memory) Name() string { return m.File }

// Closed returns whether Close has been called.
func (m *Memory) Closed() bool { return m.closed }

// Close implements Granule.
func (m *Memory) Close() error {
	m.closed = true
	return nil
}

// Has implements Granule.
func (m *Memory) Has(path string) bool {
	p := cleanPath(path)
	if p == "" {
		return true
	}
	if _, ok := m.Datasets[p]; ok {
		return true
	}
	for k := range m.Datasets {
		if strings.HasPrefix(k, p+"/") {
			return true
		}
	}
	return false
}

func (m *Memory) get(path string) (interface{}, error) {
	v, ok := m.Datasets[cleanPath(path)]
	if !ok {
		return nil, &atltools.MissingFieldError{Path: path, File: filepath.Base(m.File)}
	}
	return v, nil
}

// Float64s implements Granule.
func (m *Memory) Float64s(path string) ([]float64, error) {
	v, err := m.get(path)
	if err != nil {
		return nil, err
	}
	o, err := ToFloat64s(v)
	if err != nil {
		return nil, fmt.Errorf("granule: %s: %w", path, err)
	}
	return o, nil
}

// Int64s implements Granule.
func (m *Memory) Int64s(path string) ([]int64, error) {
	v, err := m.get(path)
	if err != nil {
		return nil, err
	}
	o, err := ToInt64s(v)
	if err != nil {
		return nil, fmt.Errorf("granule: %s: %w", path, err)
	}
	return o, nil
}

// Int64Matrix implements Granule.
func (m *Memory) Int64Matrix(path string) ([][]int64, error) {
	v, err := m.get(path)
	if err != nil {
		return nil, err
	}
	o, err := ToInt64Matrix(v)
	if err != nil {
		return nil, fmt.Errorf("granule: %s: %w", path, err)
	}
	return o, nil
}

// Attribute implements Granule.
func (m *Memory) Attribute(path, name string) (string, bool) {
	a, ok := m.Attrs[cleanPath(path)]
	if !ok {
		return "", false
	}
	v, ok := a[name]
	return v, ok
}
