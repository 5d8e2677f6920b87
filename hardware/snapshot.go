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
	"github.com/jetsetilly/gopher2a03/hardware/audio"
	"github.com/jetsetilly/gopher2a03/hardware/cpu"
	"github.com/jetsetilly/gopher2a03/hardware/input"
	"github.com/jetsetilly/gopher2a03/hardware/memory"
	"github.com/jetsetilly/gopher2a03/hardware/memory/cartridge"
	"github.com/jetsetilly/gopher2a03/hardware/ppu"
)

// State stores the NES sub-systems. It is produced by the Snapshot() function
// and can be restored with the Plumb() function.
type State struct {
	CPU   *cpu.CPU
	Mem   *memory.Bus
	VRAM  *memory.VRAM
	PPU   *ppu.PPU
	Audio *audio.Audio
	Input *input.Input
	Cart  *cartridge.Cartridge
}

// Frame returns the PPU frame number at the time of the snapshot.
func (s *State) Frame() int {
	return s.PPU.Frame
}

// Snapshot the state of the NES sub-systems.
func (nes *NES) Snapshot() *State {
	return &State{
		CPU:   nes.CPU.Snapshot(),
		Mem:   nes.Mem.Snapshot(),
		VRAM:  nes.VRAM.Snapshot(),
		PPU:   nes.PPU.Snapshot(),
		Audio: nes.Audio.Snapshot(),
		Input: nes.Input.Snapshot(),
		Cart:  nes.Cart.Snapshot(),
	}
}

// Plumb a previously snapshotted state into the NES. The state is copied
// before plumbing so it can be plumbed more than once.
func (nes *NES) Plumb(state *State) {
	if state == nil {
		panic("nes: cannot plumb in a nil state")
	}

	// memory is restored into the existing instances so that the bus keeps
	// its bindings
	nes.Mem.Restore(state.Mem)
	nes.VRAM.Restore(state.VRAM)
	nes.Input.Restore(state.Input)

	nes.CPU = state.CPU.Snapshot()
	nes.CPU.Plumb(nes.Instance, nes.Mem)

	nes.PPU = state.PPU.Snapshot()
	nes.PPU.Plumb(nes.Instance, nes.VRAM, nes.CPU, nes.PPU.Framebuffer())

	nes.Audio = state.Audio.Snapshot()
	nes.Audio.Plumb(nes.Mem)

	nes.Cart = state.Cart.Snapshot()
	nes.Cart.Plumb(nes.Mem, nes.VRAM)

	nes.plumb()

	// a fault is not part of the state
	nes.fault = nil
}
