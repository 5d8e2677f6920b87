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

// Package easyterm is a wrapper for "github.com/pkg/term/termios". It provides
// some features not present in the third-party package, such as terminal
// geometry, and wraps termios methods in functions with friendlier names.
//
// Terminal modes are not available on all platforms. On platforms without
// termios support Initialise() returns the Unsupported error.
package easyterm

import (
	"fmt"
	"os"
)

// Sentinal errors.
const (
	Unsupported = "easyterm: terminal modes not supported on this platform"
)

// Geometry contains the dimensions of a terminal in characters.
type Geometry struct {
	Cols int
	Rows int
}

func (g Geometry) String() string {
	return fmt.Sprintf("%dx%d", g.Cols, g.Rows)
}

// Print writes the formatted string to the output file.
func (pt *Terminal) Print(s string, a ...interface{}) {
	pt.output.WriteString(fmt.Sprintf(s, a...))
	pt.output.Sync()
}

// Output returns the file being used for terminal output.
func (pt *Terminal) Output() *os.File {
	return pt.output
}

// Input returns the file being used for terminal input.
func (pt *Terminal) Input() *os.File {
	return pt.input
}
