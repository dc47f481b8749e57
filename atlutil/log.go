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
	"github.com/kr/pretty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// log is the logger used by the commands.
var log = logrus.New()

// setLogger directs log output to the command's error stream and sets
// the level from the verbose option.
func setLogger(cmd *cobra.Command) {
	log.Out = cmd.ErrOrStderr()
	log.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	log.Level = logrus.InfoLevel
	if Cfg.GetBool("verbose") {
		log.Level = logrus.DebugLevel
	}
}

// dumpConfig logs the resolved configuration when running verbosely.
func dumpConfig(v interface{}) {
	if !log.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	log.Debugf("configuration:\n%# v", pretty.Formatter(v))
}
