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

import "fmt"

var dutyTable = [4][8]uint8{
	{0, 1, 0, 0, 0, 0, 0, 0},
	{0, 1, 1, 0, 0, 0, 0, 0},
	{0, 1, 1, 1, 1, 0, 0, 0},
	{1, 0, 0, 1, 1, 1, 1, 1},
}

// pulse is a square wave channel with a variable duty cycle.
type pulse struct {
	// the first pulse channel differs from the second in how the sweep unit
	// negates the period
	onesComplement bool

	duty     uint8
	sequence uint8

	period uint16
	timer  uint16

	length   lengthCounter
	envelope envelope
	sweep    sweep
}

func (p *pulse) String() string {
	return fmt.Sprintf("duty=%d period=%03x len=%d vol=%d", p.duty, p.period, p.length.counter, p.output())
}

func (p *pulse) write(reg uint16, data uint8) {
	switch reg {
	case 0:
		p.duty = data >> 6
		p.length.halt = data&0x20 == 0x20
		p.envelope.load(data)
	case 1:
		p.sweep.load(data)
	case 2:
		p.period = (p.period & 0x0700) | uint16(data)
	case 3:
		p.period = (p.period & 0x00ff) | uint16(data&0x07)<<8
		p.length.load(data >> 3)
		p.sequence = 0
		p.envelope.start = true
	}
}

// clocked every other CPU cycle.
func (p *pulse) clock() {
	if p.timer == 0 {
		p.timer = p.period
		p.sequence = (p.sequence + 1) & 0x07
	} else {
		p.timer--
	}
}

func (p *pulse) output() uint8 {
	if p.length.counter == 0 || p.sweep.mute(p) || dutyTable[p.duty][p.sequence] == 0 {
		return 0
	}
	return p.envelope.volume()
}
