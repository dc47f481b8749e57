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
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"

	"github.com/batchatco/go-native-netcdf/netcdf/api"
	"github.com/icesat2/atltools"
)

type attrMap map[string]interface{}

func (m attrMap) Keys() []string {
	var k []string
	for key := range m {
		k = append(k, key)
	}
	sort.Strings(k)
	return k
}

func (m attrMap) Get(key string) (interface{}, bool) {
	v, ok := m[key]
	return v, ok
}

func (m attrMap) GetType(string) (string, bool)   { return "", false }
func (m attrMap) GetGoType(string) (string, bool) { return "", false }

// hdfGroup is an api.Group laid out the way go-native-netcdf presents
// an HDF5 group: subgroups are listed separately from variables.
type hdfGroup struct {
	vars   map[string]*api.Variable
	groups map[string]*hdfGroup
	broken map[string]bool
	open   *int
}

func newGroup(open *int) *hdfGroup {
	return &hdfGroup{
		vars:   make(map[string]*api.Variable),
		groups: make(map[string]*hdfGroup),
		broken: make(map[string]bool),
		open:   open,
	}
}

func (g *hdfGroup) sub(name string) *hdfGroup {
	if s, ok := g.groups[name]; ok {
		return s
	}
	s := newGroup(g.open)
	g.groups[name] = s
	return s
}

func (g *hdfGroup) Close()                       { *g.open-- }
func (g *hdfGroup) Attributes() api.AttributeMap { return attrMap{} }
func (g *hdfGroup) ListTypes() []string          { return nil }
func (g *hdfGroup) GetType(string) (string, bool) {
	return "", false
}
func (g *hdfGroup) GetGoType(string) (string, bool) { return "", false }
func (g *hdfGroup) ListDimensions() []string        { return nil }
func (g *hdfGroup) GetDimension(string) (uint64, bool) {
	return 0, false
}

func (g *hdfGroup) ListVariables() []string {
	var names []string
	for n := range g.vars {
		names = append(names, n)
	}
	for n := range g.broken {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (g *hdfGroup) ListSubgroups() []string {
	var names []string
	for n := range g.groups {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (g *hdfGroup) GetVariable(name string) (*api.Variable, error) {
	if g.broken[name] {
		return nil, errors.New("bad chunk")
	}
	v, ok := g.vars[name]
	if !ok {
		return nil, errors.New("variable not found")
	}
	return v, nil
}

func (g *hdfGroup) GetVarGetter(name string) (api.VarGetter, error) {
	return nil, errors.New("not implemented")
}

func (g *hdfGroup) GetGroup(name string) (api.Group, error) {
	s, ok := g.groups[name]
	if !ok {
		return nil, errors.New("group not found")
	}
	*g.open++
	return s, nil
}

// testFile returns an ATL03-shaped granule with two segments of three
// and two photons on gt1l.
func testFile() (*File, *int) {
	open := new(int)
	root := newGroup(open)
	gt := root.sub("gt1l")
	geo := gt.sub("geolocation")
	geo.vars["ph_index_beg"] = &api.Variable{Values: []int32{1, 4}}
	geo.vars["segment_ph_cnt"] = &api.Variable{Values: []int32{3, 2}}
	geo.vars["segment_dist_x"] = &api.Variable{Values: []float64{100, 200}}
	h := gt.sub("heights")
	h.vars["dist_ph_along"] = &api.Variable{
		Values: []float32{0, 0.5, 1, 0, 0.25},
		Attributes: attrMap{
			"long_name": []byte("Distance from equator crossing\x00"),
			"units":     "meters",
		},
	}
	h.vars["h_ph"] = &api.Variable{Values: []float32{10, 11, 12, 13, 14}}
	h.vars["signal_conf_ph"] = &api.Variable{
		Values: [][]int8{{0, 4}, {2, 1}, {4, 4}, {3, -1}, {-1, 4}},
	}
	h.broken["lat_ph"] = true
	anc := root.sub("ancillary_data")
	anc.vars["atlas_sdp_gps_epoch"] = &api.Variable{Values: 1198800018.0}
	return &File{name: "/data/ATL03_test.h5", root: root}, open
}

func TestFileHas(t *testing.T) {
	f, open := testFile()
	for path, want := range map[string]bool{
		"":                                true,
		"/gt1l":                           true,
		"gt1l/heights":                    true,
		"/gt1l/heights/h_ph":              true,
		"gt1l/geolocation/segment_dist_x": true,
		"gt1r":                            false,
		"gt1l/heights/missing":            false,
		"gt2l/heights/h_ph":               false,
	} {
		if have := f.Has(path); have != want {
			t.Errorf("Has(%q): have %v, want %v", path, have, want)
		}
	}
	if *open != 0 {
		t.Errorf("%d groups left open", *open)
	}
}

func TestFileRead(t *testing.T) {
	f, open := testFile()
	d, err := f.Float64s("/gt1l/heights/dist_ph_along")
	if err != nil {
		t.Fatal(err)
	}
	if want := []float64{0, 0.5, 1, 0, 0.25}; !reflect.DeepEqual(d, want) {
		t.Errorf("dist_ph_along: have %v, want %v", d, want)
	}
	conf, err := f.Int64Matrix("gt1l/heights/signal_conf_ph")
	if err != nil {
		t.Fatal(err)
	}
	if want := [][]int64{{0, 4}, {2, 1}, {4, 4}, {3, -1}, {-1, 4}}; !reflect.DeepEqual(conf, want) {
		t.Errorf("signal_conf_ph: have %v, want %v", conf, want)
	}
	epoch, err := f.Float64s("/ancillary_data/atlas_sdp_gps_epoch")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(epoch, []float64{1198800018}) {
		t.Errorf("epoch: have %v", epoch)
	}
	seg, err := ReadSegmentTable(f, "gt1l")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(seg.StartIndex, []int64{1, 4}) || !reflect.DeepEqual(seg.PhotonCount, []int64{3, 2}) {
		t.Errorf("segment table: have %+v", seg)
	}
	if *open != 0 {
		t.Errorf("%d groups left open", *open)
	}
}

func TestFileAttribute(t *testing.T) {
	f, _ := testFile()
	if s, ok := f.Attribute("gt1l/heights/dist_ph_along", "long_name"); !ok || s != "Distance from equator crossing" {
		t.Errorf("long_name: have %q, %v", s, ok)
	}
	if s, ok := f.Attribute("gt1l/heights/dist_ph_along", "units"); !ok || s != "meters" {
		t.Errorf("units: have %q, %v", s, ok)
	}
	if _, ok := f.Attribute("gt1l/heights/dist_ph_along", "source"); ok {
		t.Error("unexpected source attribute")
	}
	if _, ok := f.Attribute("gt1l/heights/h_ph", "units"); ok {
		t.Error("h_ph has no attributes")
	}
	if _, ok := f.Attribute("gt1l/heights/missing", "units"); ok {
		t.Error("missing dataset has no attributes")
	}
}

func TestFileMissing(t *testing.T) {
	f, open := testFile()
	for _, path := range []string{
		"gt1l/heights/missing",
		"gt3r/heights/h_ph",
		"gt1l/heights", // a group, not a dataset
	} {
		_, err := f.Float64s(path)
		var mfe *atltools.MissingFieldError
		if !errors.As(err, &mfe) {
			t.Fatalf("%s: have %v, want *MissingFieldError", path, err)
		}
		if mfe.Path != path || mfe.File != "ATL03_test.h5" {
			t.Errorf("%s: have %+v", path, mfe)
		}
	}

	// A dataset that exists but cannot be read is not reported as missing.
	_, err := f.Float64s("gt1l/heights/lat_ph")
	var mfe *atltools.MissingFieldError
	if err == nil || errors.As(err, &mfe) {
		t.Errorf("have %v, want a read error", err)
	}

	if _, err := f.Int64s("gt1l/heights/dist_ph_along"); err == nil {
		t.Error("expected an error reading floats as integers")
	}
	if *open != 0 {
		t.Errorf("%d groups left open", *open)
	}
}

func TestOpenInvalid(t *testing.T) {
	dir := t.TempDir()
	if _, err := Open(filepath.Join(dir, "missing.h5")); err == nil {
		t.Error("expected an error for a missing file")
	}
	bad := filepath.Join(dir, "bad.h5")
	if err := os.WriteFile(bad, []byte("not an HDF5 file"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(bad); err == nil {
		t.Error("expected an error for a file that is not HDF5")
	}
}
