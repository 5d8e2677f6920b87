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

package logger

import (
	"io"
	"strings"
)

const (
	ansiTag    = "\033[1;36m"
	ansiDetail = "\033[2;37m"
	ansiNormal = "\033[0m"
)

// Colorizer applies basic coloring to log output. It should only be used
// when the output is a terminal. The caller is expected to decide that.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method of initialisation for the Colorizer
// type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface. Each line is assumed to be a
// single log entry of the form "tag: detail".
func (c Colorizer) Write(p []byte) (n int, err error) {
	for _, l := range strings.SplitAfter(string(p), "\n") {
		if len(l) == 0 {
			continue
		}

		var s string
		tag, detail, ok := strings.Cut(l, ": ")
		if ok {
			s = ansiTag + tag + ": " + ansiDetail + strings.TrimSuffix(detail, "\n") + ansiNormal
		} else {
			s = strings.TrimSuffix(l, "\n")
		}
		if strings.HasSuffix(l, "\n") {
			s += "\n"
		}

		if _, err := io.WriteString(c.out, s); err != nil {
			return n, err
		}
		n += len(l)
	}
	return n, nil
}
