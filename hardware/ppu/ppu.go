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
	"fmt"

	"github.com/jetsetilly/gopher2a03/hardware/instance"
)

// Raster dimensions.
const (
	DotsPerScanline   = 341
	ScanlinesPerFrame = 262

	VisibleScanlines = 240
	VisibleDots      = 256

	PostRenderScanline = 240
	VBlankScanline     = 241
	PreRenderScanline  = 261
)

// Memory is the PPU address space.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
	ReadPalette(idx uint8) uint8
}

// Interrupts is implemented by the CPU.
type Interrupts interface {
	RequestNMI()
	RequestIRQ()
}

// ScanlineCounter is implemented by cartridge mappers that count scanlines by
// watching the PPU address bus. ClockScanline is called once per rendered
// scanline and returns true if an IRQ should be raised.
type ScanlineCounter interface {
	ClockScanline() bool
}

// PPU implements the picture processing unit.
type PPU struct {
	instance   *instance.Instance
	mem        Memory
	interrupts Interrupts
	counter    ScanlineCounter
	fb         *Framebuffer

	// raster position
	Frame    int
	Scanline int
	Dot      int

	// odd frame parity
	oddFrame bool

	// set once per frame when the visible area is complete
	frameReady bool

	// object attribute memory
	oam     [256]uint8
	oamAddr uint8

	// internal registers
	v loopy
	t loopy
	x uint8
	w bool

	// the last value written to any register. returned by reads of write-only
	// registers
	openBus uint8

	// buffered value for PPUDATA reads
	readBuffer uint8

	ctrl   control
	mask   mask
	status status

	// background fetch pipeline
	nametableByte uint8
	attributeByte uint8
	lowTileByte   uint8
	highTileByte  uint8
	tileData      uint64

	// sprites for the current scanline
	sprites     [maxSprites]sprite
	spriteCount int
}

// NewPPU is the preferred method of initialisation for the PPU type. The
// instance argument can be nil.
func NewPPU(instance *instance.Instance, mem Memory, interrupts Interrupts, fb *Framebuffer) *PPU {
	ppu := &PPU{
		instance:   instance,
		mem:        mem,
		interrupts: interrupts,
		fb:         fb,
	}
	ppu.Reset()
	return ppu
}

func (ppu *PPU) String() string {
	return fmt.Sprintf("frame=%d scanline=%d dot=%d v=%04x t=%04x x=%d w=%v",
		ppu.Frame, ppu.Scanline, ppu.Dot, uint16(ppu.v), uint16(ppu.t), ppu.x, ppu.w)
}

// Reset the PPU to its power-up state. The raster position returns to the
// start of the frame.
func (ppu *PPU) Reset() {
	ppu.Frame = 0
	ppu.Scanline = 0
	ppu.Dot = 0
	ppu.oddFrame = false
	ppu.frameReady = false
	ppu.ctrl = control{}
	ppu.mask = mask{}
	ppu.status = status{}
	ppu.w = false
	ppu.t = 0
	ppu.x = 0
	ppu.readBuffer = 0
	ppu.oamAddr = 0
	ppu.spriteCount = 0

	if ppu.instance != nil && ppu.instance.Prefs.RandomState.Get().(bool) {
		ppu.instance.Random.Fill(ppu.oam[:])
	} else {
		clear(ppu.oam[:])
	}
}

// AttachScanlineCounter attaches a cartridge scanline counter. A nil value
// removes the counter.
func (ppu *PPU) AttachScanlineCounter(counter ScanlineCounter) {
	ppu.counter = counter
}

// Snapshot creates a copy of the PPU in its current state.
func (ppu *PPU) Snapshot() *PPU {
	n := *ppu
	return &n
}

// Plumb a new memory, interrupt interface and framebuffer into the PPU. Used
// after restoring a snapshot.
func (ppu *PPU) Plumb(instance *instance.Instance, mem Memory, interrupts Interrupts, fb *Framebuffer) {
	ppu.instance = instance
	ppu.mem = mem
	ppu.interrupts = interrupts
	ppu.fb = fb
}

// Framebuffer returns the framebuffer the PPU is drawing to.
func (ppu *PPU) Framebuffer() *Framebuffer {
	return ppu.fb
}

// RasterPosition implements the random.Source interface.
func (ppu *PPU) RasterPosition() (int, int, int) {
	return ppu.Frame, ppu.Scanline, ppu.Dot
}

// OddFrame returns the frame parity.
func (ppu *PPU) OddFrame() bool {
	return ppu.oddFrame
}

// FrameReady returns true if the visible area of the frame has been
// completed since the last call to FrameReady().
func (ppu *PPU) FrameReady() bool {
	r := ppu.frameReady
	ppu.frameReady = false
	return r
}

// InVBlank returns true if the vblank flag of the status register is set.
func (ppu *PPU) InVBlank() bool {
	return ppu.status.vblank
}

func (ppu *PPU) requestNMI() {
	if ppu.interrupts != nil {
		ppu.interrupts.RequestNMI()
	}
}

func (ppu *PPU) requestIRQ() {
	if ppu.interrupts != nil {
		ppu.interrupts.RequestIRQ()
	}
}

func (ppu *PPU) renderingEnabled() bool {
	return ppu.mask.showBackground || ppu.mask.showSprites
}

// tick advances the raster position by one dot.
func (ppu *PPU) tick() {
	// the first dot of odd frames is skipped when rendering is enabled
	if ppu.oddFrame && ppu.renderingEnabled() && ppu.Scanline == PreRenderScanline && ppu.Dot == DotsPerScanline-2 {
		ppu.Dot = 0
		ppu.Scanline = 0
		ppu.Frame++
		ppu.oddFrame = !ppu.oddFrame
		return
	}

	ppu.Dot++
	if ppu.Dot >= DotsPerScanline {
		ppu.Dot = 0
		ppu.Scanline++
		if ppu.Scanline >= ScanlinesPerFrame {
			ppu.Scanline = 0
			ppu.Frame++
			ppu.oddFrame = !ppu.oddFrame
		}
	}
}

// Step advances the PPU by one dot and performs the work for that dot.
func (ppu *PPU) Step() {
	ppu.tick()

	visibleLine := ppu.Scanline < VisibleScanlines
	preLine := ppu.Scanline == PreRenderScanline
	renderLine := visibleLine || preLine

	visibleDot := ppu.Dot >= 1 && ppu.Dot <= VisibleDots
	prefetchDot := ppu.Dot >= 321 && ppu.Dot <= 336
	fetchDot := visibleDot || prefetchDot

	if visibleLine && visibleDot {
		ppu.renderPixel()
	}

	if ppu.renderingEnabled() {
		if renderLine && fetchDot {
			ppu.fetch()
		}

		if preLine {
			switch {
			case ppu.Dot == 1:
				ppu.v = ppu.t
			case ppu.Dot >= 280 && ppu.Dot <= 304:
				ppu.v.copyY(ppu.t)
			}
		}

		if renderLine {
			if fetchDot && ppu.Dot%8 == 0 {
				ppu.v.incrementX()
			}
			switch ppu.Dot {
			case 256:
				ppu.v.incrementY()
			case 257:
				ppu.v.copyX(ppu.t)
				if visibleLine {
					ppu.evaluateSprites()
				} else {
					ppu.spriteCount = 0
				}
			case 260:
				if ppu.counter != nil && ppu.counter.ClockScanline() {
					ppu.requestIRQ()
				}
			}
		}
	}

	if ppu.Scanline == VBlankScanline && ppu.Dot == 1 {
		ppu.status.vblank = true
		ppu.frameReady = true
		if ppu.ctrl.nmiOutput {
			ppu.requestNMI()
		}
	}

	if preLine && ppu.Dot == 1 {
		ppu.status.vblank = false
		ppu.status.spriteZeroHit = false
		ppu.status.spriteOverflow = false
	}
}
