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

// Package cpubus defines the CPU side of the memory bus: the Memory interface
// used by the CPU, the interrupt vectors and the addresses of the memory
// mapped device registers.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. All addresses are valid. Reads and writes of device registers may have
// side effects.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// Interrupt vectors. Each vector is the address of a little-endian 16 bit
// address.
const (
	NMI   = uint16(0xfffa)
	Reset = uint16(0xfffc)
	IRQ   = uint16(0xfffe)

	// BRK shares its vector with IRQ
	BRK = IRQ
)

// Extent of internal RAM and the range over which it is mirrored.
const (
	RAMSize     = 0x0800
	RAMMirror   = 0x07ff
	RAMEnd      = 0x1fff
	StackOrigin = 0x0100
)
