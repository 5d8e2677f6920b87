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

package terminal

import (
	"bytes"
	"image"
	"image/color"
	"io"

	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/terminal/ansi"
	"github.com/jetsetilly/gopher2a03/terminal/easyterm"
	"golang.org/x/image/draw"
)

// the character used for each cell. the pen colours the upper pixel and the
// paper colours the lower pixel
const halfBlock = "▀"

// Display implements the hardware.Presenter interface.
type Display struct {
	output   io.Writer
	geometry func() easyterm.Geometry

	// frames are scaled into this image before being drawn. reallocated
	// whenever the dimensions of the terminal change
	scaled *image.RGBA

	buf     bytes.Buffer
	cleared bool
}

// NewDisplay is the preferred method of initialisation for the Display type.
// The geometry function is called once per frame and should return the
// current size of the output terminal in characters.
func NewDisplay(output io.Writer, geometry func() easyterm.Geometry) *Display {
	return &Display{
		output:   output,
		geometry: geometry,
	}
}

// fit returns the largest size with the aspect ratio of src that fits in the
// terminal. the height is always a multiple of two.
func fit(src image.Rectangle, g easyterm.Geometry) (int, int) {
	w := src.Dx()
	h := src.Dy()
	if w == 0 || h == 0 {
		return 0, 0
	}

	// leave the bottom row of the terminal free so that the terminal does
	// not scroll
	rows := g.Rows - 1

	tw := g.Cols
	th := tw * h / w
	if th > rows*2 {
		th = rows * 2
		tw = th * w / h
	}
	if tw > w || th > h {
		tw = w
		th = h
	}

	return tw, th &^ 1
}

// Present implements the hardware.Presenter interface.
func (d *Display) Present(frame *image.RGBA) error {
	if frame == nil {
		return nil
	}

	tw, th := fit(frame.Bounds(), d.geometry())
	if tw < 1 || th < 2 {
		return nil
	}

	img := frame
	if tw != frame.Bounds().Dx() || th != frame.Bounds().Dy() {
		if d.scaled == nil || d.scaled.Bounds().Dx() != tw || d.scaled.Bounds().Dy() != th {
			d.scaled = image.NewRGBA(image.Rect(0, 0, tw, th))
			d.cleared = false
		}
		draw.ApproxBiLinear.Scale(d.scaled, d.scaled.Bounds(), frame, frame.Bounds(), draw.Src, nil)
		img = d.scaled
	}

	d.buf.Reset()
	if !d.cleared {
		d.buf.WriteString(ansi.HideCursor)
		d.buf.WriteString(ansi.ClearScreen)
		d.cleared = true
	}

	b := img.Bounds()
	for y := 0; y < th; y += 2 {
		d.buf.WriteString(ansi.CursorMove(y/2+1, 1))

		// colours are only written when they change
		var pen, paper color.RGBA
		first := true

		for x := 0; x < tw; x++ {
			top := img.RGBAAt(b.Min.X+x, b.Min.Y+y)
			bottom := img.RGBAAt(b.Min.X+x, b.Min.Y+y+1)
			top.A = 0
			bottom.A = 0
			if first || top != pen || bottom != paper {
				d.buf.WriteString(ansi.ColorBuild(top, bottom))
				pen = top
				paper = bottom
				first = false
			}
			d.buf.WriteString(halfBlock)
		}
		d.buf.WriteString(ansi.NormalPen)
	}

	if _, err := d.output.Write(d.buf.Bytes()); err != nil {
		return curated.Errorf("terminal: %v", err)
	}

	return nil
}

// CleanUp restores the cursor and moves it below the most recent frame.
func (d *Display) CleanUp() {
	d.output.Write([]byte(ansi.NormalPen))
	d.output.Write([]byte(ansi.ShowCursor))
	d.output.Write([]byte("\n"))
}
