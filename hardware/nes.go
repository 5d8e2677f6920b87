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

import (
	"fmt"
	"image"
	"io"

	"github.com/jetsetilly/gopher2a03/cartridgeloader"
	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/hardware/audio"
	"github.com/jetsetilly/gopher2a03/hardware/cpu"
	"github.com/jetsetilly/gopher2a03/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher2a03/hardware/input"
	"github.com/jetsetilly/gopher2a03/hardware/instance"
	"github.com/jetsetilly/gopher2a03/hardware/memory"
	"github.com/jetsetilly/gopher2a03/hardware/memory/cartridge"
	"github.com/jetsetilly/gopher2a03/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher2a03/hardware/ppu"
	"github.com/jetsetilly/gopher2a03/hardware/preferences"
	"github.com/jetsetilly/gopher2a03/logger"
)

// Sentinal errors.
const (
	Halted = "nes: halted: %v"
)

// Label identifies the NES instance. Only the MainEmulation is allowed to
// write to the log.
type Label string

// List of valid Label values.
const (
	MainEmulation Label = "main"
	TestEmulation Label = "test"
)

// Presenter receives completed frames. The image is only valid until the
// next call to Present().
type Presenter interface {
	Present(frame *image.RGBA) error
}

// AudioMixer receives the audio samples generated during a frame. Samples
// are mono and signed 16 bit at audio.SampleFreq.
type AudioMixer interface {
	SetAudio(samples []int16) error
}

// NES struct is the main container for the emulated components of the NES.
type NES struct {
	Label    Label
	Instance *instance.Instance

	CPU   *cpu.CPU
	Mem   *memory.Bus
	VRAM  *memory.VRAM
	PPU   *ppu.PPU
	Audio *audio.Audio
	Input *input.Input
	Cart  *cartridge.Cartridge

	io ioRegisters

	presenter Presenter
	mixer     AudioMixer

	// the first error returned by the CPU. Step() returns this error until
	// the NES is booted or reset
	fault error

	// destination for the execution trace. the log is used if trace is
	// enabled and traceOutput is nil
	traceOutput io.Writer

	rewind *Rewind
}

// NewNES creates a new NES and everything associated with the hardware. The
// prefs argument can be nil, in which case default preferences are used.
func NewNES(label Label, prefs *preferences.Preferences) (*NES, error) {
	nes := &NES{
		Label: label,
	}

	var err error

	nes.Instance, err = instance.NewInstance(nil, prefs)
	if err != nil {
		return nil, fmt.Errorf("nes: %w", err)
	}

	table := instructions.NewTable()
	if !nes.Instance.Prefs.UnofficialOpcodes.Get().(bool) {
		table = table.Official()
	}

	nes.Mem = memory.NewBus(nes.Instance)
	nes.VRAM = memory.NewVRAM()
	nes.CPU = cpu.NewCPU(nes.Instance, nes.Mem, table)
	nes.PPU = ppu.NewPPU(nes.Instance, nes.VRAM, nes.CPU,
		ppu.NewFramebuffer(nes.Instance.Prefs.DisplayScale.Get().(int)))
	nes.Audio = audio.NewAudio(nes.Mem)
	nes.Input = input.NewInput()
	nes.Cart = cartridge.NewCartridge()
	nes.io = ioRegisters{nes: nes}

	nes.plumb()

	return nes, nil
}

// plumb the components of the NES together. called on creation and whenever
// a component is replaced with a snapshot.
func (nes *NES) plumb() {
	nes.Instance.Random.Plumb(nes.PPU)

	nes.Mem.Detach()
	nes.Mem.Attach(cpubus.PPUOrigin, cpubus.PPUMemtop, nes.PPU)
	nes.Mem.Attach(cpubus.AudioOrigin, ioMemtop, nes.io)
	nes.Mem.Observe(nes.Cart)

	if nes.Cart.HasScanlineCounter() {
		nes.PPU.AttachScanlineCounter(nes.Cart)
	} else {
		nes.PPU.AttachScanlineCounter(nil)
	}
}

func (nes *NES) String() string {
	return fmt.Sprintf("%s\n%s", nes.CPU, nes.PPU)
}

// AllowLogging implements the logger.Permission interface.
func (nes *NES) AllowLogging() bool {
	return nes.Label == MainEmulation
}

// SetPresenter sets the destination for completed frames. A nil value
// discards frames.
func (nes *NES) SetPresenter(presenter Presenter) {
	nes.presenter = presenter
}

// SetAudioMixer sets the destination for audio samples. A nil value discards
// the samples.
func (nes *NES) SetAudioMixer(mixer AudioMixer) {
	nes.mixer = mixer
}

// SetTraceOutput sets the destination for the execution trace. The trace is
// only produced when the trace preference is set. A nil value sends the trace
// to the log.
func (nes *NES) SetTraceOutput(output io.Writer) {
	nes.traceOutput = output
}

// AttachCartridge attaches the cartridge data from the loader and boots the
// NES. An unsupported mapper is not an error. The NROM mapper is used instead
// and a warning is logged.
func (nes *NES) AttachCartridge(cl cartridgeloader.Loader) error {
	err := nes.Cart.Attach(cl)
	if err != nil {
		if !curated.Is(err, cartridge.UnsupportedMapper) {
			return fmt.Errorf("nes: %w", err)
		}
		logger.Log(nes, "cartridge", err)
	}
	logger.Log(nes, "cartridge", nes.Cart)

	nes.plumb()

	return nes.Boot()
}

// Boot the NES as though it has just been powered on. The cartridge is
// inserted into memory and the CPU loads the reset vector.
//
// No frames are run. The PC is left at the reset vector and the first call to
// Step() executes the first instruction of the program. Use RunFrame() after
// Boot() to reach the end of the first frame.
func (nes *NES) Boot() error {
	nes.fault = nil

	nes.Mem.Reset()
	nes.PPU.Reset()
	nes.Audio.Reset()
	nes.Input.Reset()
	nes.Cart.Insert(nes.Mem, nes.VRAM)
	nes.CPU.Boot()

	if nes.rewind != nil {
		nes.rewind.Reset()
	}

	return nil
}

// Reset emulates the reset button on the console. Memory and the cartridge
// mapper are unaffected.
func (nes *NES) Reset() error {
	nes.fault = nil

	nes.PPU.Reset()
	nes.Audio.Reset()
	nes.CPU.Reset()

	if nes.rewind != nil {
		nes.rewind.Reset()
	}

	return nil
}

// Fault returns the error that halted the NES. Returns nil if the NES is not
// halted.
func (nes *NES) Fault() error {
	return nes.fault
}
