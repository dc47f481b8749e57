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
	"fmt"
	"os"
	"path/filepath"

	"github.com/icesat2/atltools"
	"github.com/icesat2/atltools/egi"
	"github.com/icesat2/atltools/landice"
	"github.com/icesat2/atltools/photon"
	"github.com/lnashier/viper"
	"github.com/spf13/afero"
	"github.com/spf13/cast"
)

// checkConfidence makes sure the minimum signal confidence is valid.
func checkConfidence(v interface{}) (int64, error) {
	c, err := cast.ToInt64E(v)
	if err != nil {
		return 0, fmt.Errorf("atltools: invalid confidence %v: %v", v, err)
	}
	if err := atltools.CheckConfidence(c); err != nil {
		return 0, err
	}
	return c, nil
}

// checkBBox parses the bounding box option, which may be empty.
func checkBBox(s string) (*atltools.BBox, error) {
	if s == "" {
		return nil, nil
	}
	return atltools.ParseBBox(os.ExpandEnv(s))
}

// checkOutputDir expands any environment variables in an output
// directory and makes sure it exists, creating it if necessary.
func checkOutputDir(dir string) (string, error) {
	dir = os.ExpandEnv(dir)
	if dir == "" {
		return "", fmt.Errorf("atltools: output directory is not specified")
	}
	if egi.IsBlob(dir) {
		return dir, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("atltools: creating output directory: %v", err)
	}
	return dir, nil
}

// checkOutRoot expands any environment variables in an output file root
// name and makes sure its directory exists.
func checkOutRoot(root string) (string, error) {
	root = os.ExpandEnv(root)
	if root == "" {
		return "", fmt.Errorf("atltools: output root name is not specified")
	}
	dir := filepath.Dir(root)
	if _, err := os.Stat(dir); err != nil {
		return "", fmt.Errorf("atltools: the directory for output file root '%s' does not exist", root)
	}
	return root, nil
}

// photonConfig creates a photon configuration from cfg and the command
// arguments.
func photonConfig(cfg *viper.Viper, track, outroot string) (photon.Config, error) {
	c := photon.Config{
		Plot:      cfg.GetBool("plot"),
		Show:      cfg.GetBool("show"),
		Overwrite: cfg.GetBool("force"),
	}
	var err error
	if c.Track, err = atltools.NormalizeTrack(track); err != nil {
		return c, err
	}
	if c.MinConfidence, err = checkConfidence(cfg.Get("confidence")); err != nil {
		return c, err
	}
	c.OutRoot, err = checkOutRoot(outroot)
	return c, err
}

// landiceConfig creates a land ice configuration from cfg and the output
// directory argument.
func landiceConfig(cfg *viper.Viper, outdir string) (landice.Config, error) {
	c := landice.Config{
		Workers:   cfg.GetInt("jobs"),
		Overwrite: cfg.GetBool("force"),
	}
	if c.Workers < 1 {
		return c, fmt.Errorf("atltools: jobs must be at least 1, not %d", c.Workers)
	}
	var err error
	if c.BBox, err = checkBBox(cfg.GetString("bbox")); err != nil {
		return c, err
	}
	c.OutDir, err = checkOutputDir(outdir)
	return c, err
}

// queryConfig creates an EGI request for product from cfg, returning
// it together with the download destination.
func queryConfig(cfg *viper.Viper, product string) (*egi.Request, string, error) {
	p, err := egi.LookupProduct(product)
	if err != nil {
		return nil, "", err
	}
	req := &egi.Request{
		Product: p,
		Version: cfg.GetString("dataversion"),
		Token:   cfg.GetString("token"),
		Subset:  cfg.GetBool("subset"),
		Time:    cfg.GetString("time"),
	}
	if req.BBox, err = checkBBox(cfg.GetString("bbox")); err != nil {
		return nil, "", err
	}
	if req.Token == "" {
		if req.Token, err = egi.FindToken(afero.NewOsFs(), egi.TokenDirs()...); err != nil {
			return nil, "", err
		}
	}
	if err := req.Validate(); err != nil {
		return nil, "", err
	}
	dest := os.ExpandEnv(cfg.GetString("output"))
	if !cfg.GetBool("dryrun") {
		if dest, err = checkOutputDir(dest); err != nil {
			return nil, "", err
		}
	}
	return req, dest, nil
}
