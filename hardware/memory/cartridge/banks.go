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

// CPUMemory is the part of the CPU address space used by the cartridge.
type CPUMemory interface {
	Place(origin uint16, data []uint8)
}

// PPUMemory is the part of the PPU address space used by the cartridge.
type PPUMemory interface {
	PlacePatterns(origin uint16, data []uint8)
	SetMirroring(m memory.Mirroring)
	SetPatternsWritable(writable bool)
}

// banks holds the ROM data of the cartridge and places banks of it into
// memory. it is embedded in every mapper.
type banks struct {
	prg []uint8

	// nil if the cartridge uses CHR RAM. CHR RAM is the pattern table area
	// of VRAM and is never placed
	chr []uint8

	mem  CPUMemory
	vram PPUMemory
}

// Plumb memory into the mapper.
func (b *banks) Plumb(mem CPUMemory, vram PPUMemory) {
	b.mem = mem
	b.vram = vram
}

// bankIndex returns the index of the bank in a ROM of n banks. negative bank
// numbers count from the end of the ROM.
func bankIndex(bank int, n int) int {
	return ((bank % n) + n) % n
}

func place(origin uint16, rom []uint8, bank int, size int, f func(uint16, []uint8)) {
	if len(rom) == 0 {
		return
	}

	// ROMs smaller than the bank are mirrored to fill it
	if len(rom) < size {
		for o := 0; o < size; o += len(rom) {
			f(origin+uint16(o), rom)
		}
		return
	}

	bank = bankIndex(bank, len(rom)/size)
	f(origin, rom[bank*size:(bank+1)*size])
}

// placePRG copies a bank of PRG ROM to the CPU address space.
func (b *banks) placePRG(origin uint16, bank int, size int) {
	if b.mem == nil {
		return
	}
	place(origin, b.prg, bank, size, b.mem.Place)
}

// placeCHR copies a bank of CHR ROM to the pattern tables.
func (b *banks) placeCHR(origin uint16, bank int, size int) {
	if b.vram == nil || b.chr == nil {
		return
	}
	place(origin, b.chr, bank, size, b.vram.PlacePatterns)
}

func (b *banks) setMirroring(m memory.Mirroring) {
	if b.vram == nil {
		return
	}
	b.vram.SetMirroring(m)
}
