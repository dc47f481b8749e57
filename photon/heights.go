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

// Package photon extracts reference photon heights along an ATL03
// ground track, writes them to a text table and plots them.
package photon

import (
	"fmt"
	"path/filepath"

	"github.com/icesat2/atltools"
	"github.com/icesat2/atltools/granule"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Config specifies a photon height extraction.
type Config struct {
	// Track is the ground track to read: gt1l, gt1r, gt2l, gt2r, gt3l or gt3r.
	Track string

	// OutRoot is the root name of the output files. The table is
	// written to OutRoot.txt and the plot to OutRoot.pdf.
	OutRoot string

	// MinConfidence is the minimum signal confidence of photons to keep.
	MinConfidence int64

	// Plot turns on plotting and Show opens the saved plot in the
	// system viewer.
	Plot bool
	Show bool

	// Overwrite allows existing output files to be replaced.
	Overwrite bool
}

// Result holds the photons that passed the confidence mask.
type Result struct {
	Distance []float64 // along-track distance [m]
	Height   []float64 // photon height [m]

	// Total is the number of photons read before masking.
	Total int

	Title, XLabel, YLabel string
}

// Heights reads the photons of cfg.Track from g and returns the distance
// and height of those with signal confidence of at least
// cfg.MinConfidence. Every input is read and checked before anything is
// returned.
func Heights(g granule.Granule, cfg Config, log logrus.FieldLogger) (*Result, error) {
	track, err := atltools.NormalizeTrack(cfg.Track)
	if err != nil {
		return nil, err
	}
	if !g.Has(track) {
		return nil, &atltools.MissingFieldError{Path: "/" + track, File: filepath.Base(g.Name())}
	}

	xName := granule.TrackPath(track, granule.DistPhAlong)
	distPhAlong, err := g.Float64s(xName)
	if err != nil {
		return nil, err
	}
	seg, err := granule.ReadSegmentTable(g, track)
	if err != nil {
		return nil, err
	}
	distance, err := atltools.ReconstructDistance(seg, distPhAlong)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", filepath.Base(g.Name()), track, err)
	}

	yName := granule.TrackPath(track, granule.HPh)
	height, err := g.Float64s(yName)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"photons": len(distance),
		"track":   track,
		"file":    g.Name(),
	}).Debug("read photons")

	conf, err := g.Int64Matrix(granule.TrackPath(track, granule.SignalConfPh))
	if err != nil {
		return nil, err
	}
	mask := atltools.ConfidenceMask(conf, cfg.MinConfidence)
	d, h, err := atltools.FilterPairs(distance, height, mask)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", filepath.Base(g.Name()), track, err)
	}
	log.WithFields(logrus.Fields{
		"photons":    len(d),
		"confidence": cfg.MinConfidence,
	}).Debug("applied signal confidence mask")

	return &Result{
		Distance: d,
		Height:   h,
		Total:    len(distance),
		Title:    filepath.Base(g.Name()),
		XLabel:   axisLabel(g, xName),
		YLabel:   axisLabel(g, yName),
	}, nil
}

// axisLabel builds a label such as "Distance (meters)" from the
// long_name and units attributes of a dataset.
func axisLabel(g granule.Granule, name string) string {
	longName, ok := g.Attribute(name, "long_name")
	if !ok {
		longName = filepath.Base(name)
	}
	if units, ok := g.Attribute(name, "units"); ok {
		return longName + " (" + units + ")"
	}
	return longName
}

// Run extracts photon heights from g and writes them to cfg.OutRoot.txt,
// plotting them to cfg.OutRoot.pdf if cfg.Plot is true.
func Run(fs afero.Fs, g granule.Granule, cfg Config, log logrus.FieldLogger) (*Result, error) {
	outfile := cfg.OutRoot + ".txt"
	pdffile := cfg.OutRoot + ".pdf"
	outputs := []string{outfile}
	if cfg.Plot {
		outputs = append(outputs, pdffile)
	}
	if err := atltools.CheckOverwrite(fs, cfg.Overwrite, outputs...); err != nil {
		return nil, err
	}

	r, err := Heights(g, cfg, log)
	if err != nil {
		return nil, err
	}
	if err := WriteTable(fs, outfile, r.Distance, r.Height, cfg.Overwrite); err != nil {
		return nil, err
	}
	log.Debugf("wrote %d photons to %s", len(r.Distance), outfile)

	if cfg.Plot {
		log.Debugf("plotting %d data points to %s", len(r.Distance), pdffile)
		if err := Plot(fs, pdffile, r); err != nil {
			return nil, err
		}
		if cfg.Show {
			if err := Show(pdffile); err != nil {
				log.WithError(err).Warn("unable to open plot")
			}
		}
	}
	return r, nil
}
