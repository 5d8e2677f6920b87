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

import "image/color"

// the 64 colours of the NES palette.
var palette = [64]uint32{
	0x666666, 0x002a88, 0x1412a7, 0x3b00a4, 0x5c007e, 0x6e0040, 0x6c0600, 0x561d00,
	0x333500, 0x0b4800, 0x005200, 0x004f08, 0x00404d, 0x000000, 0x000000, 0x000000,
	0xadadad, 0x155fd9, 0x4240ff, 0x7527fe, 0xa01acc, 0xb71e7b, 0xb53120, 0x994e00,
	0x6b6d00, 0x388700, 0x0c9300, 0x008f32, 0x007c8d, 0x000000, 0x000000, 0x000000,
	0xfffeff, 0x64b0ff, 0x9290ff, 0xc676ff, 0xf36aff, 0xfe6ecc, 0xfe8170, 0xea9e22,
	0xbcbe00, 0x88d800, 0x5ce430, 0x45e082, 0x48cdde, 0x4f4f4f, 0x000000, 0x000000,
	0xfffeff, 0xc0dfff, 0xd3d2ff, 0xe8c8ff, 0xfbc2ff, 0xfec4ea, 0xfeccc5, 0xf7d8a5,
	0xe4e594, 0xcfef96, 0xbdf4ab, 0xb3f3cc, 0xb5ebf2, 0xb8b8b8, 0x000000, 0x000000,
}

// emphasised colour channels are kept at full strength and the others are
// attenuated.
const attenuation = 0.75

// colour returns the RGBA value for the palette index with the emphasis bits
// applied.
func colour(idx uint8, emphasis uint8) color.RGBA {
	rgb := palette[idx&0x3f]
	r := uint8(rgb >> 16)
	g := uint8(rgb >> 8)
	b := uint8(rgb)

	if emphasis != 0 {
		if emphasis&0x01 == 0 {
			r = uint8(float32(r) * attenuation)
		}
		if emphasis&0x02 == 0 {
			g = uint8(float32(g) * attenuation)
		}
		if emphasis&0x04 == 0 {
			b = uint8(float32(b) * attenuation)
		}
	}

	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// PaletteColour returns the RGBA value for a palette index without emphasis.
func PaletteColour(idx uint8) color.RGBA {
	return colour(idx, 0)
}
