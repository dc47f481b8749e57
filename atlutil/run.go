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

package atlutil

import (
	"context"
	"fmt"
	"io"

	"github.com/icesat2/atltools/egi"
	"github.com/icesat2/atltools/granule"
	"github.com/icesat2/atltools/landice"
	"github.com/icesat2/atltools/photon"
	"github.com/spf13/afero"
)

// Photon extracts the photon heights from the ATL03 granule infile as
// specified by cfg.
func Photon(infile string, cfg photon.Config) error {
	g, err := granule.Open(infile)
	if err != nil {
		return err
	}
	defer g.Close()
	r, err := photon.Run(afero.NewOsFs(), g, cfg, log)
	if err != nil {
		return err
	}
	log.Infof("kept %d of %d photons on %s", len(r.Distance), r.Total, cfg.Track)
	return nil
}

// LandIce processes all ATL06 granules under indir as specified by cfg.
// An error is returned if any granule could not be processed.
func LandIce(ctx context.Context, indir string, cfg landice.Config) error {
	fs := afero.NewOsFs()
	files, err := landice.ListGranules(fs, indir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("atltools: no granules found in %s", indir)
	}
	report := landice.Batch(ctx, fs, landice.OpenFile, files, cfg, log)
	log.Info(report.Summary())
	if failed := report.Failed(); len(failed) > 0 {
		return fmt.Errorf("atltools: %d granules failed: %v", len(failed), failed)
	}
	return nil
}

// Query downloads the granules matching req to dest. With the dryrun
// option the request URL is printed to out instead.
func Query(ctx context.Context, out io.Writer, req *egi.Request, dest string) error {
	c := egi.NewClient(log)
	c.Out = out
	c.DryRun = Cfg.GetBool("dryrun")
	c.MaxRetries = uint64(Cfg.GetInt("retries"))
	files, err := c.Download(ctx, req, dest)
	if err != nil {
		return err
	}
	if !c.DryRun {
		log.Infof("downloaded %d %s granules to %s", len(files), req.Product.ShortName, dest)
	}
	return nil
}
