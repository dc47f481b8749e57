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

// Package atlutil implements the atltools command-line interface.
package atlutil

import (
	"fmt"
	"os"
	"strings"

	"github.com/icesat2/atltools"
	"github.com/lnashier/viper"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to atltools.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "verbose",
			usage: `
              verbose turns on debug output, including the
              resolved configuration.`,
			shorthand:  "v",
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "confidence",
			usage: `
              confidence is the minimum signal confidence (-2 to 4) of the
              photons that are kept. The default is 4 (high).`,
			shorthand:  "c",
			defaultVal: int(atltools.DefaultConfidence),
			flagsets:   []*pflag.FlagSet{photonCmd.Flags()},
		},
		{
			name: "plot",
			usage: `
              plot specifies whether to plot the photon heights to
              <outroot>.pdf.`,
			shorthand:  "p",
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{photonCmd.Flags()},
		},
		{
			name: "show",
			usage: `
              show specifies whether to open the plot in the default
              viewer after it is written.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{photonCmd.Flags()},
		},
		{
			name: "force",
			usage: `
              force allows existing output files to be overwritten.`,
			shorthand:  "f",
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{photonCmd.Flags(), landiceCmd.Flags()},
		},
		{
			name: "bbox",
			usage: `
              bbox is a geographic bounding box in degrees, in the
              order west,south,east,north. It restricts the segments kept
              by landice and the region of a query.`,
			shorthand:  "b",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{landiceCmd.Flags(), queryCmd.PersistentFlags()},
		},
		{
			name: "jobs",
			usage: `
              jobs is the number of granules processed in parallel.`,
			shorthand:  "n",
			defaultVal: 1,
			flagsets:   []*pflag.FlagSet{landiceCmd.Flags()},
		},
		{
			name: "subset",
			usage: `
              subset requests granules subsetted to the bounding box (or,
              for ATL09, any subsetting) instead of whole granules.`,
			shorthand:  "s",
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{queryCmd.PersistentFlags()},
		},
		{
			name: "output",
			usage: `
              output is the directory the downloaded granules are saved
              to. It may also be a blob storage location such as
              s3://bucket/prefix, gs://bucket/prefix, or file:///path.`,
			shorthand:  "o",
			defaultVal: ".",
			flagsets:   []*pflag.FlagSet{queryCmd.PersistentFlags()},
		},
		{
			name: "time",
			usage: `
              time is the time range of a query, in the format
              YYYY-MM-DDTHH:MM:SS,YYYY-MM-DDTHH:MM:SS. It is required
              for ATL09.`,
			shorthand:  "t",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{queryCmd.PersistentFlags()},
		},
		{
			name: "dryrun",
			usage: `
              dryrun prints the query URL without downloading anything.`,
			shorthand:  "d",
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{queryCmd.PersistentFlags()},
		},
		{
			name: "dataversion",
			usage: `
              dataversion is the data product version to query. The
              default depends on the product.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{queryCmd.PersistentFlags()},
		},
		{
			name: "token",
			usage: `
              token is the NSIDC access token. If it is not set, the token
              is read from NSIDC_token.txt in the working directory or
              the directory of the executable.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{queryCmd.PersistentFlags()},
		},
		{
			name: "retries",
			usage: `
              retries is the number of times a failed request is retried.`,
			defaultVal: 5,
			flagsets:   []*pflag.FlagSet{queryCmd.PersistentFlags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("ATLTOOLS")
	Cfg.AutomaticEnv()

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(photonCmd)
	Root.AddCommand(landiceCmd)
	Root.AddCommand(queryCmd)
	for _, p := range []string{"ATL03", "ATL06", "ATL09"} {
		queryCmd.AddCommand(newQueryCmd(p))
	}
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("atltools: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "atltools",
	Short: "Utilities for ICESat-2 ATL03, ATL06, and ATL09 data.",
	Long: `atltools reads ICESat-2 photon heights and land ice segments and
downloads granules from the NSIDC. Use the subcommands specified below to
access the functionality.

Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'ATLTOOLS_var' where 'var'
is the name of the variable to be set. Path arguments may contain
environment variables.`,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setConfig(); err != nil {
			return err
		}
		setLogger(cmd)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of atltools.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "atltools v%s\n", atltools.Version)
	},
	DisableAutoGenTag: true,
}

var photonCmd = &cobra.Command{
	Use:   "photon <infile> <track> <outroot>",
	Short: "Extract photon heights along a ground track.",
	Long: `photon reads the photons of one ground track (gt1l, gt1r, gt2l, gt2r,
gt3l, or gt3r) from an ATL03 granule, keeps those with at least the
requested signal confidence, and writes their along-track distance and
height to <outroot>.txt. With --plot the heights are also plotted to
<outroot>.pdf.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := photonConfig(Cfg, args[1], args[2])
		if err != nil {
			return err
		}
		dumpConfig(cfg)
		return Photon(os.ExpandEnv(args[0]), cfg)
	},
	DisableAutoGenTag: true,
}

var landiceCmd = &cobra.Command{
	Use:   "landice <indir> <outdir>",
	Short: "Split ATL06 land ice heights into ascending and descending passes.",
	Long: `landice finds all ATL06 granules under <indir>, keeps the good-quality
land ice segments of all six beams (optionally within --bbox), and writes
the ascending and descending passes of each granule to <outdir> as
<name>_A.nc and <name>_D.nc.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := landiceConfig(Cfg, args[1])
		if err != nil {
			return err
		}
		dumpConfig(cfg)
		return LandIce(cmd.Context(), os.ExpandEnv(args[0]), cfg)
	},
	DisableAutoGenTag: true,
}

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Download granules from the NSIDC.",
	Long: `query downloads ATL03, ATL06, or ATL09 granules from the NSIDC EGI
service. An NSIDC access token is required; it is read from
NSIDC_token.txt in the working directory (first) or the directory of the
executable (second), unless --token is given.`,
	DisableAutoGenTag: true,
}

func newQueryCmd(product string) *cobra.Command {
	return &cobra.Command{
		Use:   strings.ToLower(product),
		Short: "Download " + product + " granules.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, dest, err := queryConfig(Cfg, product)
			if err != nil {
				return err
			}
			redacted := *req
			redacted.Token = "REDACTED"
			dumpConfig(redacted)
			return Query(cmd.Context(), cmd.OutOrStdout(), req, dest)
		},
		DisableAutoGenTag: true,
	}
}
