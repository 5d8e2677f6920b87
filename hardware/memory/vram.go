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

package memory

// Areas of the PPU address space.
const (
	OriginPatterns   = uint16(0x0000)
	MemtopPatterns   = uint16(0x1fff)
	OriginNametables = uint16(0x2000)
	MemtopNametables = uint16(0x3eff)
	OriginPalette    = uint16(0x3f00)
	MemtopPalette    = uint16(0x3fff)

	// the PPU address space is fourteen bits wide
	VRAMMask = uint16(0x3fff)

	// size of each nametable including its attribute table
	NametableSize = uint16(0x0400)
)

// VRAM is the PPU address space.
type VRAM struct {
	// pattern tables are at the start of the array. the four physical
	// nametables follow and the palette is placed at OriginPalette
	data [0x4000]uint8

	Mirroring Mirroring

	// pattern tables are writable when the cartridge has no CHR ROM
	PatternsWritable bool
}

// NewVRAM is the preferred method of initialisation for the VRAM type.
func NewVRAM() *VRAM {
	return &VRAM{}
}

// SetMirroring changes how the nametables are arranged.
func (vram *VRAM) SetMirroring(m Mirroring) {
	vram.Mirroring = m
}

// SetPatternsWritable sets whether the pattern tables can be written to by the
// PPU.
func (vram *VRAM) SetPatternsWritable(writable bool) {
	vram.PatternsWritable = writable
}

// PlacePatterns copies data into the pattern tables starting at origin.
func (vram *VRAM) PlacePatterns(origin uint16, data []uint8) {
	copy(vram.data[origin&MemtopPatterns:MemtopPatterns+1], data)
}

// mapAddress returns the index into the data array for the address.
func (vram *VRAM) mapAddress(address uint16) uint16 {
	address &= VRAMMask

	if address <= MemtopPatterns {
		return address
	}

	if address <= MemtopNametables {
		n := (address - OriginNametables) & 0x0fff
		table := nametableMap[vram.Mirroring][n/NametableSize]
		return OriginNametables + table*NametableSize + n%NametableSize
	}

	return paletteAddress(address)
}

// paletteAddress maps a palette address to the primary palette entry. the
// transparent entry of each sprite palette is a mirror of the equivalent
// background palette entry.
func paletteAddress(address uint16) uint16 {
	address &= 0x001f
	if address&0x0013 == 0x0010 {
		address &^= 0x0010
	}
	return OriginPalette | address
}

// Read value from the PPU address space.
func (vram *VRAM) Read(address uint16) uint8 {
	return vram.data[vram.mapAddress(address)]
}

// Write value to the PPU address space. Writes to the pattern tables are
// ignored if the pattern tables are not writable.
func (vram *VRAM) Write(address uint16, data uint8) {
	address &= VRAMMask
	if address <= MemtopPatterns && !vram.PatternsWritable {
		return
	}
	vram.data[vram.mapAddress(address)] = data
}

// ReadPalette returns the palette entry. Only the low five bits of the index
// are used.
func (vram *VRAM) ReadPalette(idx uint8) uint8 {
	return vram.data[paletteAddress(uint16(idx))]
}

// Snapshot creates a copy of the VRAM.
func (vram *VRAM) Snapshot() *VRAM {
	n := *vram
	return &n
}

// Restore VRAM from a snapshot.
func (vram *VRAM) Restore(s *VRAM) {
	*vram = *s
}
