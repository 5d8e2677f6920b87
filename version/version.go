// This file is part of Gopher2A03.
//
// Gopher2A03 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2A03 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2A03.  If not, see <https://www.gnu.org/licenses/>.

// Package version reports the version of the emulator. The number is set at
// link time with:
//
//	-ldflags "-X github.com/jetsetilly/gopher2a03/version.number=v0.1.0"
//
// Without it the module version recorded by "go install" is used and, failing
// that, the version control information embedded by the go tool.
package version

import (
	"fmt"
	"runtime/debug"
)

// The name to use when referring to the application.
const ApplicationName = "Gopher2A03"

// set by the linker for numbered releases
var number string

var (
	version  string
	revision string
	release  bool
)

// Version returns the version string, the revision string and whether this is
// a numbered release.
//
// A version of "unreleased" means the binary was built from a checkout
// without a release number. "local" means there is no version control
// information at all, as happens with "go run".
func Version() (string, string, bool) {
	return version, revision, release
}

// String returns the application name and version in the form used in the
// program's output. The short revision is included for unreleased builds.
func String() string {
	if release || revision == "" {
		return fmt.Sprintf("%s %s", ApplicationName, version)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, version, shortRevision(revision))
}

// shortRevision trims a vcs revision to twelve characters, keeping any
// "+dirty" suffix.
func shortRevision(r string) string {
	const dirty = "+dirty"
	var suffix string
	if len(r) > len(dirty) && r[len(r)-len(dirty):] == dirty {
		suffix = dirty
		r = r[:len(r)-len(dirty)]
	}
	if len(r) > 12 {
		r = r[:12]
	}
	return r + suffix
}

func init() {
	info, _ := debug.ReadBuildInfo()
	version, revision, release = fromBuildInfo(number, info)
}

// fromBuildInfo decides the version, revision and release status from the
// link time number and the build information.
func fromBuildInfo(number string, info *debug.BuildInfo) (string, string, bool) {
	var vcs bool
	var rev string
	var modified bool
	var module string

	if info != nil {
		if info.Main.Version != "(devel)" {
			module = info.Main.Version
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				rev = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	if rev != "" && modified {
		rev = fmt.Sprintf("%s+dirty", rev)
	}

	switch {
	case number != "":
		return number, rev, true
	case module != "":
		return module, rev, true
	case vcs:
		return "unreleased", rev, false
	}
	return "local", rev, false
}
