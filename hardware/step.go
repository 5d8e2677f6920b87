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
	"github.com/jetsetilly/gopher2a03/hardware/ppu"
	"github.com/jetsetilly/gopher2a03/logger"
)

// the number of PPU dots for every CPU cycle.
const dotsPerCycle = 3

// the number of CPU cycles taken by an OAM DMA transfer. one more cycle is
// taken if the transfer starts on an odd CPU cycle.
const dmaCycles = 513

// Step the emulator state one CPU instruction. The PPU and audio are caught up
// with the CPU before returning.
//
// An error from the CPU halts the NES. The same error is returned by every
// call to Step() until the NES is booted or reset.
func (nes *NES) Step() error {
	if nes.fault != nil {
		return nes.fault
	}

	if err := nes.Input.Process(); err != nil {
		return err
	}

	cycles, err := nes.CPU.ExecuteInstruction()
	if err != nil {
		nes.fault = curated.Errorf(Halted, err)
		logger.Log(nes, "nes", nes.fault)
		return nes.fault
	}

	nes.trace()
	nes.cycle(cycles)

	if nes.Audio.IRQ() {
		nes.CPU.RequestIRQ()
	}

	return nil
}

// cycle advances the PPU and audio by the number of CPU cycles.
func (nes *NES) cycle(cycles int) {
	for range cycles * dotsPerCycle {
		nes.PPU.Step()
	}
	for range cycles {
		nes.Audio.Step()
	}
}

// dma copies a page of CPU memory to OAM. the CPU is stalled for the duration
// of the transfer.
func (nes *NES) dma(page uint8) {
	cycles := dmaCycles
	if nes.CPU.Cycles%2 == 1 {
		cycles++
	}

	nes.PPU.DMA(nes.Mem, page)
	nes.cycle(cycles)
	nes.CPU.Cycles += uint64(cycles)
}

func (nes *NES) trace() {
	if !nes.Instance.Prefs.Trace.Get().(bool) {
		return
	}

	if nes.traceOutput == nil {
		logger.Log(nes, "trace", nes.CPU.LastResult.String())
		return
	}

	fmt.Fprintln(nes.traceOutput, nes.CPU.LastResult.String())
}

// RasterPosition returns the current frame, scanline and dot of the PPU.
func (nes *NES) RasterPosition() (int, int, int) {
	return nes.PPU.RasterPosition()
}

// the number of CPU instructions a frame can take before RunFrame() gives up
// waiting for the PPU. more than the number of cycles in a frame.
const maxFrameInstructions = ppu.DotsPerScanline * ppu.ScanlinesPerFrame
