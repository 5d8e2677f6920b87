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

// Package ansi defines ANSI control codes for cursor movement and 24 bit
// colour output.
package ansi

import (
	"fmt"
	"image/color"
)

// CSI sequences used by the terminal display.
const (
	ClearScreen = "\033[2J"
	CursorHome  = "\033[H"
	HideCursor  = "\033[?25l"
	ShowCursor  = "\033[?25h"
	NormalPen   = "\033[0m"
)

// ColorBuild creates the CSI sequence that sets the pen and paper to the
// supplied colours. The alpha channel is ignored.
func ColorBuild(pen color.RGBA, paper color.RGBA) string {
	return fmt.Sprintf("\033[38;2;%d;%d;%dm\033[48;2;%d;%d;%dm",
		pen.R, pen.G, pen.B,
		paper.R, paper.G, paper.B)
}

// CursorMove creates the CSI sequence that moves the cursor to the row and
// column. Both values count from one.
func CursorMove(row int, col int) string {
	return fmt.Sprintf("\033[%d;%dH", row, col)
}
