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
	"testing"

	"github.com/jetsetilly/gopher2a03/hardware/memory"
	"github.com/jetsetilly/gopher2a03/test"
)

type mockInterrupts struct {
	nmi int
	irq int
}

func (m *mockInterrupts) RequestNMI() {
	m.nmi++
}

func (m *mockInterrupts) RequestIRQ() {
	m.irq++
}

type mockCounter struct {
	clocks int
}

func (m *mockCounter) ClockScanline() bool {
	m.clocks++
	return true
}

type mockCPUMemory struct {
	data [0x10000]uint8
}

func (m *mockCPUMemory) Read(address uint16) uint8 {
	return m.data[address]
}

func (m *mockCPUMemory) Write(address uint16, data uint8) {
	m.data[address] = data
}

const dotsPerFrame = DotsPerScanline * ScanlinesPerFrame

func newTestPPU() (*PPU, *memory.VRAM, *mockInterrupts) {
	vram := memory.NewVRAM()
	irq := &mockInterrupts{}
	return NewPPU(nil, vram, irq, NewFramebuffer(1)), vram, irq
}

// stepTo advances the PPU until the raster position is reached.
func stepTo(ppu *PPU, scanline int, dot int) {
	for ppu.Scanline != scanline || ppu.Dot != dot {
		ppu.Step()
	}
}

func TestRasterWrap(t *testing.T) {
	ppu, _, _ := newTestPPU()

	for range dotsPerFrame {
		ppu.Step()
	}
	test.ExpectEquality(t, ppu.Scanline, 0)
	test.ExpectEquality(t, ppu.Dot, 0)
	test.ExpectEquality(t, ppu.Frame, 1)
	test.ExpectSuccess(t, ppu.OddFrame())

	for range dotsPerFrame {
		ppu.Step()
	}
	test.ExpectEquality(t, ppu.Scanline, 0)
	test.ExpectEquality(t, ppu.Dot, 0)
	test.ExpectEquality(t, ppu.Frame, 2)
	test.ExpectFailure(t, ppu.OddFrame())
}

func TestOddFrameSkip(t *testing.T) {
	ppu, _, _ := newTestPPU()
	ppu.Write(0x2001, 0x08)

	// even frame is full length
	for range dotsPerFrame {
		ppu.Step()
	}
	test.ExpectEquality(t, ppu.Scanline, 0)
	test.ExpectEquality(t, ppu.Dot, 0)
	test.ExpectSuccess(t, ppu.OddFrame())

	// odd frame is one dot shorter
	for range dotsPerFrame - 1 {
		ppu.Step()
	}
	test.ExpectEquality(t, ppu.Scanline, 0)
	test.ExpectEquality(t, ppu.Dot, 0)
	test.ExpectFailure(t, ppu.OddFrame())
	test.ExpectEquality(t, ppu.Frame, 2)
}

func TestScrollRoundTrip(t *testing.T) {
	ppu, _, _ := newTestPPU()

	for x := range 256 {
		for y := range 240 {
			for n := range 4 {
				ppu.Read(0x2002)
				ppu.Write(0x2000, uint8(n))
				ppu.Write(0x2005, uint8(x))
				ppu.Write(0x2005, uint8(y))

				if ppu.t.coarseX() != uint16(x>>3) || uint16(ppu.x) != uint16(x&0x07) {
					t.Fatalf("x scroll %d not reproduced", x)
				}
				if ppu.t.coarseY() != uint16(y>>3) || ppu.t.fineY() != uint16(y&0x07) {
					t.Fatalf("y scroll %d not reproduced", y)
				}
				if ppu.t.nametable() != uint16(n) {
					t.Fatalf("nametable %d not reproduced", n)
				}
			}
		}
	}
}

func TestAddressWrites(t *testing.T) {
	ppu, _, _ := newTestPPU()

	ppu.Write(0x2006, 0x23)
	test.ExpectEquality(t, ppu.w, true)
	test.ExpectEquality(t, uint16(ppu.v), uint16(0))
	ppu.Write(0x2006, 0xc5)
	test.ExpectEquality(t, ppu.w, false)
	test.ExpectEquality(t, uint16(ppu.v), uint16(0x23c5))

	// PPUSTATUS read resets the write latch
	ppu.Write(0x2006, 0x3f)
	ppu.Read(0x2002)
	ppu.Write(0x2006, 0x21)
	ppu.Write(0x2006, 0x08)
	test.ExpectEquality(t, uint16(ppu.v), uint16(0x2108))

	// the scroll and address registers share the temporary register and the
	// write latch. the address register is not changed by a scroll write
	ppu.Write(0x2006, 0x04)
	ppu.Write(0x2005, 0x3e)
	test.ExpectEquality(t, uint16(ppu.t), uint16(0x64e8))
	test.ExpectEquality(t, uint16(ppu.v), uint16(0x2108))
}

func TestLoopyIncrement(t *testing.T) {
	var l loopy

	l = 31
	l.incrementX()
	test.ExpectEquality(t, l.coarseX(), uint16(0))
	test.ExpectEquality(t, l.nametable(), uint16(1))

	l = loopy(7<<12 | 29<<5)
	l.incrementY()
	test.ExpectEquality(t, l.fineY(), uint16(0))
	test.ExpectEquality(t, l.coarseY(), uint16(0))
	test.ExpectEquality(t, l.nametable(), uint16(2))

	l = loopy(7<<12 | 31<<5)
	l.incrementY()
	test.ExpectEquality(t, l.coarseY(), uint16(0))
	test.ExpectEquality(t, l.nametable(), uint16(0))

	l = loopy(3 << 12)
	l.incrementY()
	test.ExpectEquality(t, l.fineY(), uint16(4))

	// copyX and copyY between registers
	v := loopy(0)
	tr := loopy(0x7fff)
	v.copyX(tr)
	test.ExpectEquality(t, uint16(v), uint16(0x041f))
	v.copyY(tr)
	test.ExpectEquality(t, uint16(v), uint16(0x7fff))
}

func TestBlankFrame(t *testing.T) {
	ppu, vram, _ := newTestPPU()
	vram.Write(0x3f00, 0x21)
	vram.Write(0x3f01, 0x16)

	for range dotsPerFrame {
		ppu.Step()
	}

	expected := PaletteColour(0x21)
	img := ppu.Framebuffer().Native()
	for y := range VisibleScanlines {
		for x := range VisibleDots {
			if img.RGBAAt(x, y) != expected {
				t.Fatalf("pixel at %d,%d is not the background colour", x, y)
			}
		}
	}
}

func TestVBlank(t *testing.T) {
	ppu, _, irq := newTestPPU()
	ppu.Write(0x2000, 0x80)

	stepTo(ppu, VBlankScanline, 0)
	test.ExpectFailure(t, ppu.FrameReady())
	test.ExpectEquality(t, irq.nmi, 0)

	ppu.Step()
	test.ExpectEquality(t, irq.nmi, 1)
	test.ExpectSuccess(t, ppu.FrameReady())
	test.ExpectFailure(t, ppu.FrameReady())
	test.ExpectSuccess(t, ppu.InVBlank())

	// reading the status register clears the vblank flag
	test.ExpectEquality(t, ppu.Read(0x2002)&0x80, uint8(0x80))
	test.ExpectEquality(t, ppu.Read(0x2002)&0x80, uint8(0x00))

	// re-enabling NMI output while in vblank raises an NMI if the vblank flag
	// is set
	stepTo(ppu, PreRenderScanline, 0)
	test.ExpectEquality(t, irq.nmi, 1)
	ppu.status.vblank = true
	ppu.Write(0x2000, 0x00)
	ppu.Write(0x2000, 0x80)
	test.ExpectEquality(t, irq.nmi, 2)
	ppu.Write(0x2000, 0x80)
	test.ExpectEquality(t, irq.nmi, 2)

	// pre-render scanline clears the flags
	ppu.status.spriteZeroHit = true
	ppu.status.spriteOverflow = true
	stepTo(ppu, PreRenderScanline, 1)
	test.ExpectEquality(t, ppu.Read(0x2002)&0xe0, uint8(0x00))
}

func TestDataPort(t *testing.T) {
	ppu, vram, _ := newTestPPU()
	vram.Write(0x3f00, 0x0f)
	vram.Write(0x2f00, 0x77)

	ppu.Write(0x2006, 0x20)
	ppu.Write(0x2006, 0x00)
	ppu.Write(0x2007, 0x11)
	ppu.Write(0x2007, 0x22)
	test.ExpectEquality(t, vram.Read(0x2000), uint8(0x11))
	test.ExpectEquality(t, vram.Read(0x2001), uint8(0x22))

	// reads are delayed by one
	ppu.Write(0x2006, 0x20)
	ppu.Write(0x2006, 0x00)
	test.ExpectEquality(t, ppu.Read(0x2007), uint8(0x00))
	test.ExpectEquality(t, ppu.Read(0x2007), uint8(0x11))
	test.ExpectEquality(t, ppu.Read(0x2007), uint8(0x22))

	// palette reads are immediate and the buffer is filled from the
	// nametable underneath
	ppu.Write(0x2006, 0x3f)
	ppu.Write(0x2006, 0x00)
	test.ExpectEquality(t, ppu.Read(0x2007), uint8(0x0f))
	test.ExpectEquality(t, ppu.readBuffer, uint8(0x77))

	// increment by 32
	ppu.Write(0x2000, 0x04)
	ppu.Write(0x2006, 0x20)
	ppu.Write(0x2006, 0x00)
	ppu.Write(0x2007, 0x33)
	ppu.Write(0x2007, 0x44)
	test.ExpectEquality(t, vram.Read(0x2000), uint8(0x33))
	test.ExpectEquality(t, vram.Read(0x2020), uint8(0x44))
	test.ExpectEquality(t, uint16(ppu.v), uint16(0x2040))
}

func TestOAMPort(t *testing.T) {
	ppu, _, _ := newTestPPU()

	ppu.Write(0x2003, 0x10)
	ppu.Write(0x2004, 0x01)
	ppu.Write(0x2004, 0x02)
	ppu.Write(0x2004, 0xff)
	test.ExpectEquality(t, ppu.oam[0x10], uint8(0x01))
	test.ExpectEquality(t, ppu.oam[0x12], uint8(0xff))

	ppu.Write(0x2003, 0x11)
	test.ExpectEquality(t, ppu.Read(0x2004), uint8(0x02))

	// unimplemented bits of the attribute byte read as zero
	ppu.Write(0x2003, 0x12)
	test.ExpectEquality(t, ppu.Read(0x2004), uint8(0xe3))
}

func TestOpenBus(t *testing.T) {
	ppu, _, _ := newTestPPU()
	ppu.Write(0x2005, 0x5a)
	test.ExpectEquality(t, ppu.Read(0x2000), uint8(0x5a))
	test.ExpectEquality(t, ppu.Read(0x2001), uint8(0x5a))
	test.ExpectEquality(t, ppu.Read(0x2002), uint8(0x1a))
}

func TestDMA(t *testing.T) {
	ppu, _, _ := newTestPPU()
	mem := &mockCPUMemory{}
	for i := range 256 {
		mem.data[0x0200+i] = uint8(i)
	}

	ppu.Write(0x2003, 0x04)
	ppu.DMA(mem, 0x02)
	test.ExpectEquality(t, ppu.oam[0x04], uint8(0x00))
	test.ExpectEquality(t, ppu.oam[0xff], uint8(0xfb))
	test.ExpectEquality(t, ppu.oam[0x00], uint8(0xfc))
	test.ExpectEquality(t, ppu.oamAddr, uint8(0x04))
}

// opaque background of tile one everywhere with a sprite zero made of the
// same tile.
func prepareSolidScreen(ppu *PPU, vram *memory.VRAM) {
	vram.PatternsWritable = true
	for i := range 8 {
		vram.Write(0x0010+uint16(i), 0xff)
	}
	for i := range 960 {
		vram.Write(0x2000+uint16(i), 0x01)
	}
	vram.Write(0x3f01, 0x16)
	vram.Write(0x3f11, 0x2a)

	// sprite zero at x=20 y=10
	ppu.oam[0] = 10
	ppu.oam[1] = 0x01
	ppu.oam[2] = 0x00
	ppu.oam[3] = 20
}

func TestSpriteZeroHit(t *testing.T) {
	ppu, vram, _ := newTestPPU()
	prepareSolidScreen(ppu, vram)
	ppu.Write(0x2001, 0x1e)

	stepTo(ppu, 11, 0)
	test.ExpectFailure(t, ppu.status.spriteZeroHit)
	stepTo(ppu, 11, 30)
	test.ExpectSuccess(t, ppu.status.spriteZeroHit)

	stepTo(ppu, VBlankScanline, 1)
	img := ppu.Framebuffer().Native()
	test.ExpectEquality(t, img.RGBAAt(24, 11), PaletteColour(0x2a))
	test.ExpectEquality(t, img.RGBAAt(24, 10), PaletteColour(0x16))
	test.ExpectEquality(t, img.RGBAAt(100, 50), PaletteColour(0x16))
}

func TestSpriteBehindBackground(t *testing.T) {
	ppu, vram, _ := newTestPPU()
	prepareSolidScreen(ppu, vram)
	ppu.oam[2] = 0x20
	ppu.Write(0x2001, 0x1e)

	stepTo(ppu, VBlankScanline, 1)
	img := ppu.Framebuffer().Native()
	test.ExpectEquality(t, img.RGBAAt(24, 11), PaletteColour(0x16))

	// sprite zero hit happens regardless of priority
	test.ExpectSuccess(t, ppu.status.spriteZeroHit)
}

func TestSpriteOverflow(t *testing.T) {
	ppu, _, _ := newTestPPU()
	for i := range 9 {
		ppu.oam[i*4] = 30
		ppu.oam[i*4+3] = uint8(i * 8)
	}
	for i := 9; i < 64; i++ {
		ppu.oam[i*4] = 0xff
	}
	ppu.Write(0x2001, 0x18)

	stepTo(ppu, 30, 256)
	test.ExpectFailure(t, ppu.status.spriteOverflow)
	ppu.Step()
	test.ExpectSuccess(t, ppu.status.spriteOverflow)
	test.ExpectEquality(t, ppu.spriteCount, maxSprites)
}

func TestScanlineCounter(t *testing.T) {
	ppu, _, irq := newTestPPU()
	counter := &mockCounter{}
	ppu.AttachScanlineCounter(counter)

	// no clocks while rendering is disabled
	for range dotsPerFrame {
		ppu.Step()
	}
	test.ExpectEquality(t, counter.clocks, 0)

	ppu.Write(0x2001, 0x08)
	for range dotsPerFrame {
		ppu.Step()
	}

	// visible scanlines and the pre-render scanline
	test.ExpectEquality(t, counter.clocks, 241)
	test.ExpectEquality(t, irq.irq, 241)
}

func TestGrayscale(t *testing.T) {
	ppu, vram, _ := newTestPPU()
	vram.Write(0x3f00, 0x21)
	ppu.Write(0x2001, 0x01)

	stepTo(ppu, 1, 0)
	test.ExpectEquality(t, ppu.Framebuffer().Native().RGBAAt(0, 0), PaletteColour(0x20))
}

func TestSnapshot(t *testing.T) {
	ppu, _, _ := newTestPPU()
	stepTo(ppu, 10, 10)
	s := ppu.Snapshot()
	stepTo(ppu, 20, 20)
	f, sl, d := s.RasterPosition()
	test.ExpectEquality(t, f, 0)
	test.ExpectEquality(t, sl, 10)
	test.ExpectEquality(t, d, 10)
}
