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

package hardware_test

import (
	"errors"
	"image"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher2a03/cartridgeloader"
	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/hardware"
	"github.com/jetsetilly/gopher2a03/hardware/cpu"
	"github.com/jetsetilly/gopher2a03/hardware/input"
	"github.com/jetsetilly/gopher2a03/test"
)

// makeImage creates a 16k NROM image with the program at 0x8000. the reset
// vector points to the start of the program.
func makeImage(mapper uint8, program ...uint8) []uint8 {
	data := []uint8{'N', 'E', 'S', 0x1a, 1, 1, mapper << 4, 0, 0, 0, 0, 0, 0, 0, 0, 0}

	prg := make([]uint8, 0x4000)
	copy(prg, program)
	prg[0x3ffc] = 0x00
	prg[0x3ffd] = 0x80

	data = append(data, prg...)
	data = append(data, make([]uint8, 0x2000)...)
	return data
}

func newNES(t *testing.T, program ...uint8) *hardware.NES {
	t.Helper()
	nes, err := hardware.NewNES(hardware.TestEmulation, nil)
	test.DemandSuccess(t, err)
	err = nes.AttachCartridge(cartridgeloader.NewLoaderFromData("test.nes", makeImage(0, program...)))
	test.DemandSuccess(t, err)
	return nes
}

type mockPresenter struct {
	frames int
	bounds image.Rectangle
}

func (p *mockPresenter) Present(frame *image.RGBA) error {
	p.frames++
	p.bounds = frame.Bounds()
	return nil
}

type mockMixer struct {
	samples int
}

func (m *mockMixer) SetAudio(samples []int16) error {
	m.samples += len(samples)
	return nil
}

func TestBoot(t *testing.T) {
	nes := newNES(t,
		0xa9, 0x42, // LDA #$42
		0x8d, 0x00, 0x02, // STA $0200
		0x4c, 0x05, 0x80, // JMP $8005
	)
	test.ExpectEquality(t, nes.CPU.PC.Address(), 0x8000)

	// boot does not run any frames
	test.ExpectEquality(t, nes.PPU.Frame, 0)
	test.ExpectEquality(t, nes.CPU.A.Value(), 0x00)

	test.DemandSuccess(t, nes.Step())
	test.ExpectEquality(t, nes.CPU.A.Value(), 0x42)
	test.ExpectEquality(t, nes.CPU.Status.Zero, false)
	test.ExpectEquality(t, nes.CPU.Status.Sign, false)

	test.DemandSuccess(t, nes.Step())
	test.ExpectEquality(t, nes.Mem.Read(0x0200), 0x42)

	for range 10 {
		test.DemandSuccess(t, nes.Step())
		test.ExpectEquality(t, nes.CPU.PC.Address(), 0x8005)
	}
}

func TestAddition(t *testing.T) {
	nes := newNES(t,
		0x18,       // CLC
		0xa9, 0xff, // LDA #$FF
		0x69, 0x01, // ADC #$01
	)

	for range 3 {
		test.DemandSuccess(t, nes.Step())
	}

	test.ExpectEquality(t, nes.CPU.A.Value(), 0x00)
	test.ExpectEquality(t, nes.CPU.Status.Carry, true)
	test.ExpectEquality(t, nes.CPU.Status.Zero, true)
	test.ExpectEquality(t, nes.CPU.Status.Overflow, false)
	test.ExpectEquality(t, nes.CPU.Status.Sign, false)
}

func TestHalt(t *testing.T) {
	nes := newNES(t, 0xea, 0x02)

	test.DemandSuccess(t, nes.Step())

	err := nes.Step()
	test.DemandFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, hardware.Halted), true)
	test.ExpectEquality(t, curated.Has(err, cpu.UnrecognizedInstruction), true)

	var fault *cpu.FaultError
	test.DemandEquality(t, errors.As(err, &fault), true)
	test.ExpectEquality(t, fault.Opcode, 0x02)
	test.ExpectEquality(t, fault.PC, 0x8001)

	// the fault is sticky
	pc := nes.CPU.PC.Address()
	test.DemandFailure(t, nes.Step())
	test.ExpectEquality(t, nes.Step().Error(), err.Error())
	test.ExpectEquality(t, nes.CPU.PC.Address(), pc)
	test.DemandFailure(t, nes.RunFrame())
	test.ExpectEquality(t, nes.RunFrame().Error(), err.Error())
	test.ExpectFailure(t, nes.Fault())

	// until the NES is booted again
	test.DemandSuccess(t, nes.Boot())
	test.ExpectSuccess(t, nes.Fault())
	test.ExpectSuccess(t, nes.Step())
}

func TestRunFrame(t *testing.T) {
	nes := newNES(t, 0x4c, 0x00, 0x80) // JMP $8000

	presenter := &mockPresenter{}
	mixer := &mockMixer{}
	nes.SetPresenter(presenter)
	nes.SetAudioMixer(mixer)

	err := nes.RunForFrameCount(3, nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, presenter.frames, 3)

	// default display scale is two
	test.ExpectEquality(t, presenter.bounds.Dx(), 512)
	test.ExpectEquality(t, presenter.bounds.Dy(), 480)

	// a full frame is about 735 samples. the first frame is shorter
	test.ExpectSuccess(t, mixer.samples > 2000 && mixer.samples < 2300)

	frame, scanline, _ := nes.RasterPosition()
	test.ExpectEquality(t, frame, 2)
	test.ExpectEquality(t, scanline, 241)

	// continue check stops the run
	err = nes.Run(func() (bool, error) {
		return false, nil
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, presenter.frames, 4)
}

func TestNoCartridge(t *testing.T) {
	nes, err := hardware.NewNES(hardware.TestEmulation, nil)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, nes.RunFrame())
}

func TestDMA(t *testing.T) {
	nes := newNES(t,
		0xa9, 0x02, // LDA #$02
		0x8d, 0x14, 0x40, // STA $4014
		0x4c, 0x05, 0x80, // JMP $8005
	)

	for i := range 256 {
		nes.Mem.Poke(0x0200+uint16(i), uint8(i))
	}

	test.DemandSuccess(t, nes.Step())
	before := nes.CPU.Cycles
	test.DemandSuccess(t, nes.Step())
	test.ExpectSuccess(t, nes.CPU.Cycles-before >= 4+513)

	nes.Mem.Write(0x2003, 0x05)
	test.ExpectEquality(t, nes.Mem.Read(0x2004), 0x05)
	nes.Mem.Write(0x2003, 0x80)
	test.ExpectEquality(t, nes.Mem.Read(0x2004), 0x80)
}

func TestROMWrite(t *testing.T) {
	nes := newNES(t,
		0xa9, 0x55, // LDA #$55
		0x8d, 0x00, 0x80, // STA $8000
		0x8d, 0x00, 0x60, // STA $6000
	)

	for range 3 {
		test.DemandSuccess(t, nes.Step())
	}

	test.ExpectEquality(t, nes.Mem.Read(0x8000), 0xa9)
	test.ExpectEquality(t, nes.Mem.Read(0x6000), 0x55)
}

func TestController(t *testing.T) {
	nes := newNES(t, 0x4c, 0x00, 0x80)

	err := nes.Input.PushEvent(input.Event{Port: input.Player0, Button: input.ButtonA, Pressed: true})
	test.DemandSuccess(t, err)

	// pushed events are processed at the start of the next step
	test.DemandSuccess(t, nes.Step())

	nes.Mem.Write(0x4016, 0x01)
	nes.Mem.Write(0x4016, 0x00)
	test.ExpectEquality(t, nes.Mem.Read(0x4016)&0x01, 0x01)
	test.ExpectEquality(t, nes.Mem.Read(0x4016)&0x01, 0x00)

	// second controller has nothing pressed
	test.ExpectEquality(t, nes.Mem.Read(0x4017)&0x01, 0x00)
}

func TestUnsupportedMapper(t *testing.T) {
	nes, err := hardware.NewNES(hardware.TestEmulation, nil)
	test.DemandSuccess(t, err)

	err = nes.AttachCartridge(cartridgeloader.NewLoaderFromData("test.nes", makeImage(5, 0xa9, 0x42)))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, nes.Cart.ID(), "NROM")

	test.DemandSuccess(t, nes.Step())
	test.ExpectEquality(t, nes.CPU.A.Value(), 0x42)
}

func TestBadCartridge(t *testing.T) {
	nes, err := hardware.NewNES(hardware.TestEmulation, nil)
	test.DemandSuccess(t, err)

	err = nes.AttachCartridge(cartridgeloader.NewLoaderFromData("test.nes", []uint8{0x00}))
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, nes.Cart.IsEjected(), true)
}

func TestTrace(t *testing.T) {
	nes := newNES(t, 0xa9, 0x42)

	var trace strings.Builder
	nes.SetTraceOutput(&trace)
	nes.Instance.Prefs.Trace.Set(true)

	test.DemandSuccess(t, nes.Step())
	test.ExpectSuccess(t, strings.HasPrefix(trace.String(), "8000  A9 42"))
	test.ExpectSuccess(t, strings.Contains(trace.String(), "LDA #$42"))
	test.ExpectSuccess(t, strings.HasSuffix(trace.String(), "\n"))
}

func TestSnapshot(t *testing.T) {
	nes := newNES(t,
		0xee, 0x00, 0x02, // INC $0200
		0x4c, 0x00, 0x80, // JMP $8000
	)

	for range 10 {
		test.DemandSuccess(t, nes.Step())
	}
	test.ExpectEquality(t, nes.Mem.Read(0x0200), 5)

	state := nes.Snapshot()

	for range 10 {
		test.DemandSuccess(t, nes.Step())
	}
	test.ExpectEquality(t, nes.Mem.Read(0x0200), 10)

	nes.Plumb(state)
	test.ExpectEquality(t, nes.Mem.Read(0x0200), 5)
	test.ExpectEquality(t, nes.CPU.PC.Address(), 0x8000)

	// the restored NES still runs and the state can be plumbed again
	test.DemandSuccess(t, nes.Step())
	test.ExpectEquality(t, nes.Mem.Read(0x0200), 6)
	nes.Plumb(state)
	test.ExpectEquality(t, nes.Mem.Read(0x0200), 5)
}

func TestRewind(t *testing.T) {
	nes := newNES(t,
		0xee, 0x00, 0x02, // INC $0200
		0x4c, 0x00, 0x80, // JMP $8000
	)
	nes.EnableRewind(true)

	test.DemandSuccess(t, nes.RunForFrameCount(5, nil))

	rw := nes.Rewind()
	n, pos := rw.State()
	test.ExpectEquality(t, n, 6)
	test.ExpectEquality(t, pos, 5)

	value := nes.Mem.Read(0x0200)

	test.ExpectEquality(t, rw.GotoFrame(2), true)
	frame, _, _ := nes.RasterPosition()
	test.ExpectEquality(t, frame, 2)
	test.ExpectInequality(t, nes.Mem.Read(0x0200), value)

	// running from an earlier frame discards the later frames
	test.DemandSuccess(t, nes.RunFrame())
	n, pos = rw.State()
	test.ExpectEquality(t, n, 5)
	test.ExpectEquality(t, pos, 4)
}
