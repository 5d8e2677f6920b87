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

	"github.com/jetsetilly/gopher2a03/curated"
)

// RunFrame runs the emulation until the PPU has completed the visible part of
// a frame. The frame is then presented and the audio samples for the frame
// are sent to the mixer.
func (nes *NES) RunFrame() error {
	if nes.Cart.IsEjected() {
		return curated.Errorf("nes: no cartridge attached")
	}

	for range maxFrameInstructions {
		if err := nes.Step(); err != nil {
			return err
		}

		if nes.PPU.FrameReady() {
			return nes.endFrame()
		}
	}

	return fmt.Errorf("nes: frame did not complete")
}

// endFrame is called once per frame by RunFrame().
func (nes *NES) endFrame() error {
	if nes.rewind != nil {
		nes.rewind.RecordFrame()
	}

	if nes.presenter != nil {
		if err := nes.presenter.Present(nes.PPU.Framebuffer().Flush()); err != nil {
			return fmt.Errorf("nes: %w", err)
		}
	}

	samples := nes.Audio.TakeSamples()
	if nes.mixer != nil {
		if err := nes.mixer.SetAudio(samples); err != nil {
			return fmt.Errorf("nes: %w", err)
		}
	}

	return nil
}

// Run the emulation one frame at a time. The continueCheck function is called
// after every frame and should return false when the emulation should stop. A
// nil continueCheck runs forever or until an error.
func (nes *NES) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	for {
		if err := nes.RunFrame(); err != nil {
			return err
		}

		cont, err := continueCheck()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}

// RunForFrameCount runs the emulation for the specified number of frames.
// Useful for regression tests and digests. The continueCheck function is
// called after every frame with the number of frames run and can be nil.
func (nes *NES) RunForFrameCount(numFrames int, continueCheck func(frame int) (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func(frame int) (bool, error) { return true, nil }
	}

	for frame := 1; frame <= numFrames; frame++ {
		if err := nes.RunFrame(); err != nil {
			return err
		}

		cont, err := continueCheck(frame)
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}

	return nil
}
