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

package memorymap

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case PPU:
		return "PPU"
	case IO:
		return "IO"
	case Expansion:
		return "Expansion"
	case SRAM:
		return "SRAM"
	case Cartridge:
		return "Cartridge"
	}

	return "undefined"
}

// The different memory areas in the NES.
const (
	Undefined Area = iota
	RAM
	PPU
	IO
	Expansion
	SRAM
	Cartridge
)

// The origin and memory top for each area of memory. Checking which area an
// address falls within and forcing the address into the normalised range is
// all handled by the MapAddress() function.
const (
	OriginRAM       = uint16(0x0000)
	MemtopRAM       = uint16(0x1fff)
	OriginPPU       = uint16(0x2000)
	MemtopPPU       = uint16(0x3fff)
	OriginIO        = uint16(0x4000)
	MemtopIO        = uint16(0x401f)
	OriginExpansion = uint16(0x4020)
	MemtopExpansion = uint16(0x5fff)
	OriginSRAM      = uint16(0x6000)
	MemtopSRAM      = uint16(0x7fff)
	OriginCart      = uint16(0x8000)
	MemtopCart      = uint16(0xffff)
)

// Within the RAM and PPU areas there are mirrors of a smaller primary area.
// MaskRAM and MaskPPU keep only the relevant bits of an address. Should only
// be applied to addresses that are definitely in those areas.
const (
	MaskRAM = uint16(0x07ff)
	MaskPPU = uint16(0x2007)
)

// MapAddress translates the address argument from mirror space to primary
// space. Generally, an address should be passed through this function before
// accessing memory.
func MapAddress(address uint16) (uint16, Area) {
	// note that the order of these filters is important

	if address >= OriginCart {
		return address, Cartridge
	}

	if address >= OriginSRAM {
		return address, SRAM
	}

	if address >= OriginExpansion {
		return address, Expansion
	}

	if address >= OriginIO {
		return address, IO
	}

	if address >= OriginPPU {
		return address & MaskPPU, PPU
	}

	return address & MaskRAM, RAM
}

// IsArea returns true if the address is in the specified area.
func IsArea(address uint16, area Area) bool {
	_, a := MapAddress(address)
	return area == a
}
