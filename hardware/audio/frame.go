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

package audio

type frameEvent int

const (
	frameNone frameEvent = iota
	frameQuarter
	frameHalf
)

// frame counter steps in CPU cycles.
const (
	frameStep1   = 7457
	frameStep2   = 14913
	frameStep3   = 22371
	frameStep4   = 29829
	frameLength4 = 29830
	frameStep5   = 37281
	frameLength5 = 37282
)

// frameCounter generates the quarter and half frame clocks for the channel
// units. in four step mode the counter raises an IRQ at the end of every
// sequence unless inhibited.
type frameCounter struct {
	fiveStep bool
	inhibit  bool
	cycle    int
	irq      bool
}

func (f *frameCounter) step() frameEvent {
	f.cycle++

	switch f.cycle {
	case frameStep1, frameStep3:
		return frameQuarter
	case frameStep2:
		return frameHalf
	case frameStep4:
		if f.fiveStep {
			return frameNone
		}
		if !f.inhibit {
			f.irq = true
		}
		return frameHalf
	case frameLength4:
		if !f.fiveStep {
			f.cycle = 0
		}
	case frameStep5:
		return frameHalf
	case frameLength5:
		f.cycle = 0
	}

	return frameNone
}
