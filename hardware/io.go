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

package hardware

import "github.com/jetsetilly/gopher2a03/hardware/memory/cpubus"

// the last address of the IO register area.
const ioMemtop = uint16(0x401f)

// ioRegisters dispatches accesses to the audio, OAM DMA and controller
// registers. 0x4017 is the second controller when read and the audio frame
// counter when written.
type ioRegisters struct {
	nes *NES
}

// Read implements the bus.Device interface.
func (r ioRegisters) Read(address uint16) uint8 {
	switch address {
	case cpubus.SNDCHNAddr:
		return r.nes.Audio.ReadStatus()
	case cpubus.JOY1Addr, cpubus.JOY2Addr:
		return r.nes.Input.Read(address)
	}

	// open bus. the upper byte of the address is the last value on the
	// data bus for an absolute read
	return uint8(address >> 8)
}

// Write implements the bus.Device interface.
func (r ioRegisters) Write(address uint16, data uint8) {
	switch {
	case address == cpubus.OAMDMAAddr:
		r.nes.dma(data)
	case address == cpubus.JOY1Addr:
		r.nes.Input.Write(address, data)
	case address <= cpubus.AudioMemtop || address == cpubus.SNDCHNAddr || address == cpubus.JOY2Addr:
		r.nes.Audio.NotifyWrite(address, data)
	}
}
