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
	"reflect"
	"strings"

	"github.com/spf13/cast"
)

// ToFloat64s converts a one-dimensional numeric slice of any fixed-width
// element type to []float64. Scalars are returned as a one-element slice.
func ToFloat64s(v interface{}) ([]float64, error) {
	switch t := v.(type) {
	case []float64:
		o := make([]float64, len(t))
		copy(o, t)
		return o, nil
	case []float32:
		o := make([]float64, len(t))
		for i, x := range t {
			o[i] = float64(x)
		}
		return o, nil
	case []int32:
		o := make([]float64, len(t))
		for i, x := range t {
			o[i] = float64(x)
		}
		return o, nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		x, err := cast.ToFloat64E(v)
		if err != nil {
			return nil, fmt.Errorf("cannot convert %T to float64", v)
		}
		return []float64{x}, nil
	}
	o := make([]float64, rv.Len())
	for i := range o {
		x, err := cast.ToFloat64E(rv.Index(i).Interface())
		if err != nil {
			return nil, fmt.Errorf("cannot convert %T element to float64", v)
		}
		o[i] = x
	}
	return o, nil
}

// ToInt64s converts a one-dimensional integer slice of any fixed-width
// element type to []int64. Scalars are returned as a one-element slice.
func ToInt64s(v interface{}) ([]int64, error) {
	switch t := v.(type) {
	case []int64:
		o := make([]int64, len(t))
		copy(o, t)
		return o, nil
	case []int32:
		o := make([]int64, len(t))
		for i, x := range t {
			o[i] = int64(x)
		}
		return o, nil
	case []int8:
		o := make([]int64, len(t))
		for i, x := range t {
			o[i] = int64(x)
		}
		return o, nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		x, err := toInt64(v)
		if err != nil {
			return nil, err
		}
		return []int64{x}, nil
	}
	o := make([]int64, rv.Len())
	for i := range o {
		x, err := toInt64(rv.Index(i).Interface())
		if err != nil {
			return nil, err
		}
		o[i] = x
	}
	return o, nil
}

func toInt64(v interface{}) (int64, error) {
	switch v.(type) {
	case float32, float64:
		return 0, fmt.Errorf("cannot convert floating point %T to int64", v)
	}
	x, err := cast.ToInt64E(v)
	if err != nil {
		return 0, fmt.Errorf("cannot convert %T to int64", v)
	}
	return x, nil
}

// ToInt64Matrix converts a two-dimensional integer slice (e.g. [][]int8)
// to [][]int64.
func ToInt64Matrix(v interface{}) ([][]int64, error) {
	if t, ok := v.([][]int64); ok {
		o := make([][]int64, len(t))
		for i, row := range t {
			o[i] = append([]int64(nil), row...)
		}
		return o, nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return nil, fmt.Errorf("cannot convert %T to a matrix", v)
	}
	o := make([][]int64, rv.Len())
	for i := range o {
		row := rv.Index(i)
		if row.Kind() != reflect.Slice {
			return nil, fmt.Errorf("cannot convert %T to a matrix", v)
		}
		r, err := ToInt64s(row.Interface())
		if err != nil {
			return nil, err
		}
		o[i] = r
	}
	return o, nil
}

// attributeString converts an attribute value to a string. HDF5 string
// attributes may be stored as strings, byte slices or string slices.
func attributeString(a interface{}) (string, bool) {
	switch t := a.(type) {
	case string:
		return strings.TrimRight(t, "\x00"), true
	case []byte:
		return strings.TrimRight(string(t), "\x00"), true
	case []string:
		if len(t) == 0 {
			return "", false
		}
		return strings.TrimRight(t[0], "\x00"), true
	}
	s, err := cast.ToStringE(a)
	if err != nil {
		return "", false
	}
	return s, true
}
