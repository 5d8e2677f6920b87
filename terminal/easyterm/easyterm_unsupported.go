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

//go:build !(linux || darwin || freebsd || openbsd || netbsd)

package easyterm

import (
	"os"

	"github.com/jetsetilly/gopher2a03/curated"
)

// Terminal is a placeholder on platforms without termios support.
type Terminal struct {
	input  *os.File
	output *os.File
}

// Initialise always fails on this platform.
func (pt *Terminal) Initialise(inputFile, outputFile *os.File) error {
	return curated.Errorf(Unsupported)
}

// CleanUp does nothing on this platform.
func (pt *Terminal) CleanUp() {}

// UpdateGeometry does nothing on this platform.
func (pt *Terminal) UpdateGeometry() error { return nil }

// Geometry returns the zero value on this platform.
func (pt *Terminal) Geometry() Geometry { return Geometry{} }

// CanonicalMode does nothing on this platform.
func (pt *Terminal) CanonicalMode() {}

// RawMode does nothing on this platform.
func (pt *Terminal) RawMode() {}

// CBreakMode does nothing on this platform.
func (pt *Terminal) CBreakMode() {}

// Flush does nothing on this platform.
func (pt *Terminal) Flush() error { return nil }

// SuspendProcess does nothing on this platform.
func SuspendProcess() {}
