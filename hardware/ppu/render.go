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

// renderPixel composes the background and sprite pixels for the current dot
// and writes the colour to the framebuffer.
func (ppu *PPU) renderPixel() {
	x := ppu.Dot - 1
	y := ppu.Scanline

	bg := ppu.backgroundPixel()
	i, spr := ppu.spritePixel()

	if x < 8 && !ppu.mask.showLeftBackground {
		bg = 0
	}
	if x < 8 && !ppu.mask.showLeftSprites {
		spr = 0
	}

	b := bg&0x03 != 0
	s := spr&0x03 != 0

	// index into palette memory. sprite palettes are in the upper half
	var idx uint8

	switch {
	case !b && !s:
		idx = 0
	case !b && s:
		idx = spr | 0x10
	case b && !s:
		idx = bg
	default:
		if ppu.sprites[i].index == 0 && x < 255 {
			ppu.status.spriteZeroHit = true
		}
		if ppu.sprites[i].behind {
			idx = bg
		} else {
			idx = spr | 0x10
		}
	}

	c := ppu.mem.ReadPalette(idx) & 0x3f
	if ppu.mask.grayscale {
		c &= 0x30
	}

	if ppu.fb != nil {
		ppu.fb.SetPixel(x, y, colour(c, ppu.mask.emphasis))
	}
}
