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

// loopy is the fifteen bit internal VRAM address register. The same layout is
// used for the temporary address register:
//
//	yyy NN YYYYY XXXXX
//	||| || ||||| +++++-- coarse X scroll
//	||| || +++++-------- coarse Y scroll
//	||| ++-------------- nametable select
//	+++----------------- fine Y scroll
type loopy uint16

const (
	loopyCoarseX   = 0x001f
	loopyCoarseY   = 0x03e0
	loopyNametable = 0x0c00
	loopyNameH     = 0x0400
	loopyNameV     = 0x0800
	loopyFineY     = 0x7000
	loopyMask      = 0x7fff

	// the bits related to the horizontal and vertical position
	loopyHorizontal = loopyNameH | loopyCoarseX
	loopyVertical   = loopyFineY | loopyNameV | loopyCoarseY
)

func (l loopy) coarseX() uint16 {
	return uint16(l) & loopyCoarseX
}

func (l loopy) coarseY() uint16 {
	return (uint16(l) & loopyCoarseY) >> 5
}

func (l loopy) nametable() uint16 {
	return (uint16(l) & loopyNametable) >> 10
}

func (l loopy) fineY() uint16 {
	return (uint16(l) & loopyFineY) >> 12
}

// incrementX moves to the next tile, switching the horizontal nametable when
// the end of the current nametable is reached.
func (l *loopy) incrementX() {
	if l.coarseX() == 31 {
		*l &^= loopyCoarseX
		*l ^= loopyNameH
	} else {
		*l++
	}
}

// incrementY moves to the next row of pixels. The vertical nametable is
// switched after row 29. Rows 30 and 31 are attribute data and wrap to row 0
// without switching the nametable.
func (l *loopy) incrementY() {
	if l.fineY() < 7 {
		*l += 0x1000
		return
	}

	*l &^= loopyFineY

	y := l.coarseY()
	switch y {
	case 29:
		y = 0
		*l ^= loopyNameV
	case 31:
		y = 0
	default:
		y++
	}

	*l = (*l &^ loopyCoarseY) | loopy(y<<5)
}

// copyX copies the horizontal bits from the other register.
func (l *loopy) copyX(t loopy) {
	*l = (*l &^ loopyHorizontal) | (t & loopyHorizontal)
}

// copyY copies the vertical bits from the other register.
func (l *loopy) copyY(t loopy) {
	*l = (*l &^ loopyVertical) | (t & loopyVertical)
}

// tileAddress is the address of the nametable entry.
func (l loopy) tileAddress() uint16 {
	return 0x2000 | (uint16(l) & 0x0fff)
}

// attributeAddress is the address of the attribute byte for the tile.
func (l loopy) attributeAddress() uint16 {
	v := uint16(l)
	return 0x23c0 | (v & loopyNametable) | ((v >> 4) & 0x38) | ((v >> 2) & 0x07)
}

// attributeShift is the shift required to select the two bit palette for the
// quadrant of the attribute byte.
func (l loopy) attributeShift() uint16 {
	v := uint16(l)
	return ((v >> 4) & 0x04) | (v & 0x02)
}
