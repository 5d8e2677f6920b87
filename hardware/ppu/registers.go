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

import (
	"github.com/jetsetilly/gopher2a03/hardware/memory/cpubus"
)

// control is the decoded value of the PPUCTRL register.
type control struct {
	nametable       uint8
	increment32     bool
	spriteTable     uint16
	backgroundTable uint16
	tallSprites     bool
	nmiOutput       bool
}

func (c *control) load(data uint8) {
	c.nametable = data & 0x03
	c.increment32 = data&0x04 == 0x04
	c.spriteTable = uint16(data&0x08) << 9
	c.backgroundTable = uint16(data&0x10) << 8
	c.tallSprites = data&0x20 == 0x20
	c.nmiOutput = data&0x80 == 0x80
}

func (c control) spriteHeight() int {
	if c.tallSprites {
		return 16
	}
	return 8
}

// mask is the decoded value of the PPUMASK register.
type mask struct {
	grayscale          bool
	showLeftBackground bool
	showLeftSprites    bool
	showBackground     bool
	showSprites        bool

	// emphasis bits in the order red, green, blue
	emphasis uint8
}

func (m *mask) load(data uint8) {
	m.grayscale = data&0x01 == 0x01
	m.showLeftBackground = data&0x02 == 0x02
	m.showLeftSprites = data&0x04 == 0x04
	m.showBackground = data&0x08 == 0x08
	m.showSprites = data&0x10 == 0x10
	m.emphasis = data >> 5
}

// status is the state of the PPUSTATUS register.
type status struct {
	spriteOverflow bool
	spriteZeroHit  bool
	vblank         bool
}

func (s status) value() uint8 {
	var v uint8
	if s.spriteOverflow {
		v |= 0x20
	}
	if s.spriteZeroHit {
		v |= 0x40
	}
	if s.vblank {
		v |= 0x80
	}
	return v
}

// Read implements the bus.Device interface. Only the low three bits of the
// address are used.
func (ppu *PPU) Read(address uint16) uint8 {
	switch address & cpubus.PPUMirror {
	case cpubus.PPUSTATUSAddr & cpubus.PPUMirror:
		return ppu.readStatus()
	case cpubus.OAMDATAAddr & cpubus.PPUMirror:
		return ppu.readOAMData()
	case cpubus.PPUDATAAddr & cpubus.PPUMirror:
		return ppu.readData()
	}

	// write-only registers
	return ppu.openBus
}

// Write implements the bus.Device interface. Only the low three bits of the
// address are used.
func (ppu *PPU) Write(address uint16, data uint8) {
	ppu.openBus = data

	switch address & cpubus.PPUMirror {
	case cpubus.PPUCTRLAddr & cpubus.PPUMirror:
		ppu.writeControl(data)
	case cpubus.PPUMASKAddr & cpubus.PPUMirror:
		ppu.mask.load(data)
	case cpubus.OAMADDRAddr & cpubus.PPUMirror:
		ppu.oamAddr = data
	case cpubus.OAMDATAAddr & cpubus.PPUMirror:
		ppu.oam[ppu.oamAddr] = data
		ppu.oamAddr++
	case cpubus.PPUSCROLLAddr & cpubus.PPUMirror:
		ppu.writeScroll(data)
	case cpubus.PPUADDRAddr & cpubus.PPUMirror:
		ppu.writeAddress(data)
	case cpubus.PPUDATAAddr & cpubus.PPUMirror:
		ppu.mem.Write(uint16(ppu.v), data)
		ppu.incrementAddress()
	}
}

// writing PPUCTRL selects the nametable in the temporary address register.
// enabling NMI output during vblank raises an NMI immediately.
func (ppu *PPU) writeControl(data uint8) {
	nmi := ppu.ctrl.nmiOutput
	ppu.ctrl.load(data)
	ppu.t = (ppu.t &^ loopyNametable) | loopy(data&0x03)<<10

	if !nmi && ppu.ctrl.nmiOutput && ppu.status.vblank {
		ppu.requestNMI()
	}
}

// PPUSCROLL is written twice. X scroll first and then Y scroll.
func (ppu *PPU) writeScroll(data uint8) {
	if !ppu.w {
		ppu.t = (ppu.t &^ loopyCoarseX) | loopy(data>>3)
		ppu.x = data & 0x07
	} else {
		ppu.t = (ppu.t &^ (loopyFineY | loopyCoarseY)) | loopy(data&0x07)<<12 | loopy(data&0xf8)<<2
	}
	ppu.w = !ppu.w
}

// PPUADDR is written twice. High byte first and then the low byte. The
// internal address register is set from the temporary register after the
// second write.
func (ppu *PPU) writeAddress(data uint8) {
	if !ppu.w {
		ppu.t = (ppu.t & 0x00ff) | loopy(data&0x3f)<<8
	} else {
		ppu.t = (ppu.t & 0xff00) | loopy(data)
		ppu.v = ppu.t
	}
	ppu.w = !ppu.w
}

// reading PPUSTATUS clears the vblank flag and the write latch. the low five
// bits are from the open bus.
func (ppu *PPU) readStatus() uint8 {
	v := ppu.status.value() | ppu.openBus&0x1f
	ppu.status.vblank = false
	ppu.w = false
	return v
}

// the unimplemented bits of the sprite attribute byte are always zero.
func (ppu *PPU) readOAMData() uint8 {
	v := ppu.oam[ppu.oamAddr]
	if ppu.oamAddr&0x03 == 0x02 {
		v &= 0xe3
	}
	return v
}

// reads of PPUDATA are delayed by one read, except for palette reads. the
// read buffer is filled from the nametable underneath the palette.
func (ppu *PPU) readData() uint8 {
	address := uint16(ppu.v) & 0x3fff
	v := ppu.mem.Read(address)

	if address < 0x3f00 {
		v, ppu.readBuffer = ppu.readBuffer, v
	} else {
		ppu.readBuffer = ppu.mem.Read(address - 0x1000)
	}

	ppu.incrementAddress()
	return v
}

func (ppu *PPU) incrementAddress() {
	if ppu.ctrl.increment32 {
		ppu.v += 32
	} else {
		ppu.v++
	}
	ppu.v &= loopyMask
}

// DMA copies a page of CPU memory to OAM, starting at the current OAM
// address. The caller is responsible for the cost in CPU cycles.
func (ppu *PPU) DMA(mem cpubus.Memory, page uint8) {
	address := uint16(page) << 8
	for range 256 {
		ppu.oam[ppu.oamAddr] = mem.Read(address)
		ppu.oamAddr++
		address++
	}
}
