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

package cartridge

import (
	"bytes"
	"fmt"

	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/hardware/memory"
)

// Sizes of the parts of an iNES file.
const (
	HeaderSize  = 16
	TrainerSize = 512
	PRGPageSize = 0x4000
	CHRPageSize = 0x2000
)

// the address at which the trainer is placed.
const trainerOrigin = uint16(0x7000)

var magic = []byte{'N', 'E', 'S', 0x1a}

// Header is the decoded iNES header.
type Header struct {
	// number of 16k PRG pages and 8k CHR pages. a CHRPages value of zero
	// indicates that the cartridge uses CHR RAM
	PRGPages int
	CHRPages int

	Mapper    int
	Mirroring memory.Mirroring
	Battery   bool
	Trainer   bool

	// the header is in the NES 2.0 format. only the fields shared with the
	// original format are decoded
	NES2 bool
}

func (h Header) String() string {
	chr := fmt.Sprintf("%dk CHR", h.CHRPages*8)
	if h.CHRPages == 0 {
		chr = "8k CHR RAM"
	}
	return fmt.Sprintf("mapper %d, %dk PRG, %s, %s", h.Mapper, h.PRGPages*16, chr, h.Mirroring)
}

// image is the result of parsing an iNES file.
type image struct {
	header  Header
	trainer []uint8
	prg     []uint8
	chr     []uint8
}

func parse(data []uint8) (image, error) {
	var img image

	if len(data) < HeaderSize {
		return img, curated.Errorf(BadHeader, "file too short")
	}
	if !bytes.Equal(data[:4], magic) {
		return img, curated.Errorf(BadHeader, "not an iNES file")
	}

	flags6 := data[6]
	flags7 := data[7]

	img.header.NES2 = flags7&0x0c == 0x08

	// archaic iNES files often have garbage in the unused bytes. the upper
	// nibble of the mapper number is unreliable in that case
	if !img.header.NES2 && flags7&0x0c == 0x00 && !bytes.Equal(data[12:16], []byte{0, 0, 0, 0}) {
		flags7 = 0x00
	}

	img.header.PRGPages = int(data[4])
	img.header.CHRPages = int(data[5])
	img.header.Mapper = int(flags7&0xf0) | int(flags6>>4)
	img.header.Battery = flags6&0x02 == 0x02
	img.header.Trainer = flags6&0x04 == 0x04

	switch {
	case flags6&0x08 == 0x08:
		img.header.Mirroring = memory.FourScreen
	case flags6&0x01 == 0x01:
		img.header.Mirroring = memory.Vertical
	default:
		img.header.Mirroring = memory.Horizontal
	}

	if img.header.PRGPages == 0 {
		return img, curated.Errorf(BadHeader, "no PRG pages")
	}

	offset := HeaderSize
	size := offset + img.header.PRGPages*PRGPageSize + img.header.CHRPages*CHRPageSize
	if img.header.Trainer {
		size += TrainerSize
	}
	if len(data) < size {
		return img, curated.Errorf(BadHeader, fmt.Sprintf("file truncated (%d bytes of %d)", len(data), size))
	}

	if img.header.Trainer {
		img.trainer = data[offset : offset+TrainerSize]
		offset += TrainerSize
	}

	img.prg = data[offset : offset+img.header.PRGPages*PRGPageSize]
	offset += len(img.prg)

	if img.header.CHRPages > 0 {
		img.chr = data[offset : offset+img.header.CHRPages*CHRPageSize]
	}

	return img, nil
}
