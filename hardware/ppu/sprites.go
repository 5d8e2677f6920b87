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

// the maximum number of sprites on a scanline.
const maxSprites = 8

// sprite is an entry in the list of sprites for the current scanline.
type sprite struct {
	// eight four bit pixels. flipping has already been applied
	pattern uint32

	x uint8

	// sprite is drawn behind opaque background pixels
	behind bool

	// index of the sprite in OAM. sprite zero is used for hit detection
	index uint8
}

// evaluateSprites builds the list of sprites for the next scanline. sprites
// after the eighth qualifying sprite are dropped and the overflow flag is
// set.
func (ppu *PPU) evaluateSprites() {
	h := ppu.ctrl.spriteHeight()

	count := 0
	for i := range 64 {
		y := ppu.oam[i*4]
		a := ppu.oam[i*4+2]
		x := ppu.oam[i*4+3]

		row := ppu.Scanline - int(y)
		if row < 0 || row >= h {
			continue
		}

		if count < maxSprites {
			ppu.sprites[count] = sprite{
				pattern: ppu.fetchSpritePattern(i, row),
				x:       x,
				behind:  a&0x20 == 0x20,
				index:   uint8(i),
			}
		}
		count++
	}

	if count > maxSprites {
		count = maxSprites
		ppu.status.spriteOverflow = true
	}

	ppu.spriteCount = count
}

// fetchSpritePattern returns the eight pixels of the sprite row.
func (ppu *PPU) fetchSpritePattern(i int, row int) uint32 {
	tile := ppu.oam[i*4+1]
	attr := ppu.oam[i*4+2]

	var address uint16

	if !ppu.ctrl.tallSprites {
		if attr&0x80 == 0x80 {
			row = 7 - row
		}
		address = ppu.ctrl.spriteTable + uint16(tile)*16 + uint16(row)
	} else {
		// tall sprites select the pattern table with the low bit of the tile
		// number
		if attr&0x80 == 0x80 {
			row = 15 - row
		}
		table := uint16(tile&0x01) * 0x1000
		tile &= 0xfe
		if row > 7 {
			tile++
			row -= 8
		}
		address = table + uint16(tile)*16 + uint16(row)
	}

	lo := ppu.mem.Read(address)
	hi := ppu.mem.Read(address + 8)
	palette := (attr & 0x03) << 2

	var data uint32
	for range 8 {
		var p1, p2 uint8
		if attr&0x40 == 0x40 {
			p1 = lo & 0x01
			p2 = (hi & 0x01) << 1
			lo >>= 1
			hi >>= 1
		} else {
			p1 = (lo & 0x80) >> 7
			p2 = (hi & 0x80) >> 6
			lo <<= 1
			hi <<= 1
		}
		data <<= 4
		data |= uint32(palette | p1 | p2)
	}

	return data
}

// spritePixel returns the index into the sprite list and the four bit pixel
// of the first opaque sprite at the current dot. sprites earlier in the list
// are in front of later sprites.
func (ppu *PPU) spritePixel() (int, uint8) {
	if !ppu.mask.showSprites {
		return 0, 0
	}

	for i := range ppu.spriteCount {
		offset := ppu.Dot - 1 - int(ppu.sprites[i].x)
		if offset < 0 || offset > 7 {
			continue
		}
		offset = 7 - offset
		c := uint8((ppu.sprites[i].pattern >> uint(offset*4)) & 0x0f)
		if c&0x03 == 0 {
			continue
		}
		return i, c
	}

	return 0, 0
}
