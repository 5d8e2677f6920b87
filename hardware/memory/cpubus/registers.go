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

package cpubus

import "fmt"

// Register is the canonical name of a memory mapped register.
type Register string

// List of memory mapped registers.
const (
	PPUCTRL   Register = "PPUCTRL"
	PPUMASK   Register = "PPUMASK"
	PPUSTATUS Register = "PPUSTATUS"
	OAMADDR   Register = "OAMADDR"
	OAMDATA   Register = "OAMDATA"
	PPUSCROLL Register = "PPUSCROLL"
	PPUADDR   Register = "PPUADDR"
	PPUDATA   Register = "PPUDATA"
	OAMDMA    Register = "OAMDMA"
	SNDCHN    Register = "SNDCHN"
	JOY1      Register = "JOY1"
	JOY2      Register = "JOY2"
)

// Addresses of the memory mapped registers. Picture unit registers are
// mirrored every eight bytes between PPUOrigin and PPUMemtop.
const (
	PPUOrigin = uint16(0x2000)
	PPUMemtop = uint16(0x3fff)
	PPUMirror = uint16(0x0007)

	PPUCTRLAddr   = uint16(0x2000)
	PPUMASKAddr   = uint16(0x2001)
	PPUSTATUSAddr = uint16(0x2002)
	OAMADDRAddr   = uint16(0x2003)
	OAMDATAAddr   = uint16(0x2004)
	PPUSCROLLAddr = uint16(0x2005)
	PPUADDRAddr   = uint16(0x2006)
	PPUDATAAddr   = uint16(0x2007)

	// the audio registers occupy 0x4000 to 0x4013 as well as SNDCHN and
	// the write side of JOY2
	AudioOrigin = uint16(0x4000)
	AudioMemtop = uint16(0x4013)

	OAMDMAAddr = uint16(0x4014)
	SNDCHNAddr = uint16(0x4015)
	JOY1Addr   = uint16(0x4016)

	// reads from JOY2Addr are from the second controller port. writes are to
	// the frame counter of the audio sequencer
	JOY2Addr = uint16(0x4017)

	// start of cartridge space
	CartridgeOrigin = uint16(0x4020)
)

// ppuRegisters is indexed by the low three bits of the address.
var ppuRegisters = [8]Register{
	PPUCTRL, PPUMASK, PPUSTATUS, OAMADDR, OAMDATA, PPUSCROLL, PPUADDR, PPUDATA,
}

// RegisterName returns the name of the register at the address. Mirrored
// addresses return the name of the canonical register. The boolean return
// value is false if the address is not a register.
func RegisterName(address uint16) (Register, bool) {
	switch {
	case address >= PPUOrigin && address <= PPUMemtop:
		return ppuRegisters[address&PPUMirror], true
	case address == OAMDMAAddr:
		return OAMDMA, true
	case address == SNDCHNAddr:
		return SNDCHN, true
	case address == JOY1Addr:
		return JOY1, true
	case address == JOY2Addr:
		return JOY2, true
	case address >= AudioOrigin && address <= AudioMemtop:
		return Register(fmt.Sprintf("APU%02X", address&0xff)), true
	}
	return "", false
}
