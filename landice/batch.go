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

package landice

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/icesat2/atltools"
	"github.com/icesat2/atltools/granule"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

// Config holds the settings for processing ATL06 granules.
type Config struct {
	// OutDir is the directory the pass files are written to.
	OutDir string

	// BBox, if not nil, restricts the kept segments to a region.
	BBox *atltools.BBox

	// Workers is the maximum number of granules processed at once.
	// Values less than 1 mean one worker.
	Workers int

	Overwrite bool
}

// Opener opens a granule file.
type Opener func(path string) (granule.Granule, error)

// OpenFile opens an HDF5 granule from the local file system.
func OpenFile(path string) (granule.Granule, error) { return granule.Open(path) }

// ListGranules returns the HDF5 files under dir, skipping files that
// look like pass outputs (ending in _A.h5 or _D.h5).
func ListGranules(fs afero.Fs, dir string) ([]string, error) {
	var files []string
	err := afero.Walk(fs, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || filepath.Ext(path) != ".h5" {
			return nil
		}
		if strings.HasSuffix(path, "_A.h5") || strings.HasSuffix(path, "_D.h5") {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("landice: listing %s: %w", dir, err)
	}
	sort.Strings(files)
	return files, nil
}

// OutputNames returns the ascending and descending pass file names for
// the granule at path.
func OutputNames(outDir, path string) (asc, des string) {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return filepath.Join(outDir, base+"_A.nc"), filepath.Join(outDir, base+"_D.nc")
}

// ProcessFile reads all beams of the ATL06 granule at path and writes
// its ascending and descending passes to cfg.OutDir. A beam that cannot
// be read is logged and skipped; an error is returned only if no beam
// could be read or an output cannot be written, in which case any pass
// file written by this call is removed. A pass with fewer than two
// segments is not written.
func ProcessFile(fs afero.Fs, open Opener, path string, cfg Config, log logrus.FieldLogger) error {
	log = log.WithField("file", filepath.Base(path))
	ascFile, desFile := OutputNames(cfg.OutDir, path)
	if err := atltools.CheckOverwrite(fs, cfg.Overwrite, ascFile, desFile); err != nil {
		return err
	}

	g, err := open(path)
	if err != nil {
		return fmt.Errorf("landice: opening %s: %w", path, err)
	}
	defer g.Close()

	epoch, err := g.Float64s(GPSEpoch)
	if err != nil {
		return err
	}
	if len(epoch) == 0 {
		return &atltools.MissingFieldError{Path: GPSEpoch, File: filepath.Base(path)}
	}

	var asc, des Pass
	var nBeams int
	var firstErr error
	for _, track := range atltools.GroundTracks {
		b, err := ReadBeam(g, track)
		if err != nil {
			log.WithError(err).WithField("beam", track).Warn("skipping beam")
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		nBeams++
		b.Split(cfg.BBox, epoch[0], &asc, &des)
	}
	if nBeams == 0 {
		return fmt.Errorf("landice: no readable beams in %s: %w", path, firstErr)
	}
	log.WithFields(logrus.Fields{
		"beams":      nBeams,
		"ascending":  asc.Len(),
		"descending": des.Len(),
	}).Debug("split passes")

	if err := fs.MkdirAll(cfg.OutDir, 0755); err != nil {
		return fmt.Errorf("landice: creating output directory: %w", err)
	}
	var written []string
	for _, o := range []struct {
		name string
		p    *Pass
	}{{ascFile, &asc}, {desFile, &des}} {
		if o.p.Len() <= 1 {
			continue
		}
		written = append(written, o.name)
		if err := WritePass(fs, o.name, o.p); err != nil {
			removeAll(fs, written, log)
			return err
		}
		log.Infof("wrote %d segments to %s", o.p.Len(), o.name)
	}
	return nil
}

// removeAll removes the partial outputs of a failed granule.
func removeAll(fs afero.Fs, files []string, log logrus.FieldLogger) {
	for _, f := range files {
		if err := fs.Remove(f); err != nil && !os.IsNotExist(err) {
			log.WithError(err).Warnf("unable to remove %s", f)
		}
	}
}

// Report holds the outcome of a batch run: the error for each file, or
// nil if it was processed successfully.
type Report map[string]error

// Failed returns the names of the files that could not be processed.
func (r Report) Failed() []string {
	var failed []string
	for f, err := range r {
		if err != nil {
			failed = append(failed, f)
		}
	}
	sort.Strings(failed)
	return failed
}

// Summary returns a one-line description of the report.
func (r Report) Summary() string {
	failed := len(r.Failed())
	return fmt.Sprintf("processed %d of %d files (%d failed)", len(r)-failed, len(r), failed)
}

// Batch processes files in parallel using up to cfg.Workers workers.
// The failure of one file does not stop the others. If ctx is canceled,
// files that have not been started are reported with the context's
// error.
func Batch(ctx context.Context, fs afero.Fs, open Opener, files []string, cfg Config, log logrus.FieldLogger) Report {
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	var mu sync.Mutex
	report := make(Report, len(files))
	set := func(f string, err error) {
		mu.Lock()
		report[f] = err
		mu.Unlock()
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for _, f := range files {
		f := f
		if err := ctx.Err(); err != nil {
			set(f, err)
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				set(f, err)
				return nil
			}
			err := ProcessFile(fs, open, f, cfg, log)
			if err != nil {
				log.WithError(err).WithField("file", f).Error("processing failed")
			}
			set(f, err)
			return nil
		})
	}
	g.Wait()
	return report
}
