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

import "github.com/jetsetilly/gopher2a03/hardware/memory"

// Mapper implementations place banks of the cartridge ROM into memory and
// respond to writes to the mapper registers.
type Mapper interface {
	// short name of the mapper
	ID() string
	String() string

	// Reset the mapper registers to their power-on state. Banks are not
	// placed until Place() is called
	Reset()

	// Plumb memory into the mapper
	Plumb(mem CPUMemory, vram PPUMemory)

	// Place all currently selected banks into memory
	Place()

	// NotifyWrite is called before every CPU write. Returns false if the
	// write should not reach memory
	NotifyWrite(address uint16, data uint8) bool

	// Snapshot creates a copy of the mapper in its current state
	Snapshot() Mapper
}

// scanlineCounter is implemented by mappers that count scanlines.
type scanlineCounter interface {
	ClockScanline() bool
}

// newMapper returns the mapper for the iNES mapper number. Returns false if
// the mapper number is not supported, in which case an NROM mapper is
// returned.
func newMapper(number int, b banks, h Header) (Mapper, bool) {
	switch number {
	case 0:
		return &nrom{banks: b}, true
	case 1:
		return &mmc1{banks: b}, true
	case 2:
		return &uxrom{banks: b}, true
	case 3:
		return &cnrom{banks: b}, true
	case 4:
		return &mmc3{banks: b, fourScreen: h.Mirroring == memory.FourScreen}, true
	case 7:
		return &axrom{banks: b}, true
	}
	return &nrom{banks: b}, false
}
