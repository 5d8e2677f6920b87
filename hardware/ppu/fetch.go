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

// fetch performs the background fetch for the current dot. every eight dots
// the nametable byte, attribute byte and the two pattern bytes for the next
// tile are fetched and then combined into the tile data pipeline. the
// pipeline holds two tiles of four bit pixels, the upper tile being the one
// currently drawn.
func (ppu *PPU) fetch() {
	ppu.tileData <<= 4

	switch ppu.Dot % 8 {
	case 1:
		ppu.nametableByte = ppu.mem.Read(ppu.v.tileAddress())
	case 3:
		a := ppu.mem.Read(ppu.v.attributeAddress())
		ppu.attributeByte = ((a >> ppu.v.attributeShift()) & 0x03) << 2
	case 5:
		ppu.lowTileByte = ppu.mem.Read(ppu.patternAddress())
	case 7:
		ppu.highTileByte = ppu.mem.Read(ppu.patternAddress() + 8)
	case 0:
		ppu.storeTileData()
	}
}

func (ppu *PPU) patternAddress() uint16 {
	return ppu.ctrl.backgroundTable + uint16(ppu.nametableByte)*16 + ppu.v.fineY()
}

// storeTileData combines the attribute and pattern bytes into eight four bit
// pixels in the lower half of the pipeline.
func (ppu *PPU) storeTileData() {
	var data uint32
	for range 8 {
		p1 := (ppu.lowTileByte & 0x80) >> 7
		p2 := (ppu.highTileByte & 0x80) >> 6
		ppu.lowTileByte <<= 1
		ppu.highTileByte <<= 1
		data <<= 4
		data |= uint32(ppu.attributeByte | p1 | p2)
	}
	ppu.tileData |= uint64(data)
}

// backgroundPixel returns the four bit background pixel for the current dot,
// taking fine X scroll into account.
func (ppu *PPU) backgroundPixel() uint8 {
	if !ppu.mask.showBackground {
		return 0
	}
	data := uint32(ppu.tileData>>32) >> ((7 - ppu.x) * 4)
	return uint8(data & 0x0f)
}
