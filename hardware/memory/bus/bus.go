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

package bus

// Device is implemented by hardware with memory mapped registers. The address
// is the address used by the CPU, including any mirror information.
type Device interface {
	// reads may have side effects. for example, reading the PPU status
	// register clears the vblank flag
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// WriteObserver is notified of every CPU write before the value is stored in
// memory. A false return value prevents the value from being stored. Used by
// cartridge mappers to implement bank switching and read-only memory.
type WriteObserver interface {
	NotifyWrite(address uint16, data uint8) bool
}

// DebuggerBus defines the meta-operations for memory. Peek and Poke never
// trigger device side effects.
type DebuggerBus interface {
	Peek(address uint16) uint8
	Poke(address uint16, data uint8)
}
