// This file is part of sram4.
//
// sram4 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// sram4 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with sram4.  If not, see <https://www.gnu.org/licenses/>.

// Package version records the version number of the program.
package version

import (
	"runtime/debug"
)

// The name to use when referring to the application.
const ApplicationName = "sram4"

// Version contains the version string for the current build. If the source
// has been modified but not committed the string is suffixed with "+dirty".
// A value of "local" means no vcs information was available at build time.
var Version string

func init() {
	Version = "local"

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	var revision string
	var modified bool

	for _, v := range info.Settings {
		switch v.Key {
		case "vcs.revision":
			revision = v.Value
		case "vcs.modified":
			modified = v.Value == "true"
		}
	}

	if revision == "" {
		return
	}

	if len(revision) > 7 {
		revision = revision[:7]
	}
	if modified {
		revision += "+dirty"
	}

	Version = revision
}
