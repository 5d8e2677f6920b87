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

package ppu

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Framebuffer holds the visible area of the frame. Pixels are written at the
// native resolution and scaled when the frame is flushed.
type Framebuffer struct {
	native *image.RGBA
	scaled *image.RGBA
	scale  int
}

// NewFramebuffer is the preferred method of initialisation for the
// Framebuffer type. A scale of less than one is treated as one.
func NewFramebuffer(scale int) *Framebuffer {
	fb := &Framebuffer{
		native: image.NewRGBA(image.Rect(0, 0, VisibleDots, VisibleScanlines)),
	}
	fb.SetScale(scale)
	return fb
}

// SetScale changes the scale of the flushed image. The scaled image is only
// reallocated if the scale changes.
func (fb *Framebuffer) SetScale(scale int) {
	scale = max(scale, 1)
	if fb.scaled != nil && fb.scale == scale {
		return
	}
	fb.scale = scale
	fb.scaled = image.NewRGBA(image.Rect(0, 0, VisibleDots*scale, VisibleScanlines*scale))
}

// Scale returns the current scale.
func (fb *Framebuffer) Scale() int {
	return fb.scale
}

// SetPixel sets the colour of the pixel at the native resolution.
func (fb *Framebuffer) SetPixel(x int, y int, c color.RGBA) {
	fb.native.SetRGBA(x, y, c)
}

// Native returns the unscaled image. The image is written to as the frame is
// generated.
func (fb *Framebuffer) Native() *image.RGBA {
	return fb.native
}

// Fill sets every pixel to the colour.
func (fb *Framebuffer) Fill(c color.RGBA) {
	draw.Draw(fb.native, fb.native.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
}

// Flush scales the native image and returns the result. The returned image is
// reused by the next call to Flush().
func (fb *Framebuffer) Flush() *image.RGBA {
	if fb.scale == 1 {
		draw.Copy(fb.scaled, image.Point{}, fb.native, fb.native.Bounds(), draw.Src, nil)
	} else {
		draw.NearestNeighbor.Scale(fb.scaled, fb.scaled.Bounds(), fb.native, fb.native.Bounds(), draw.Src, nil)
	}
	return fb.scaled
}
