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

var triangleTable = [32]uint8{
	15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0,
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
}

// linearCounter is the additional length counter of the triangle channel with
// a resolution of a quarter frame.
type linearCounter struct {
	control bool
	period  uint8
	counter uint8
	reload  bool
}

func (l *linearCounter) clock() {
	if l.reload {
		l.counter = l.period
	} else if l.counter > 0 {
		l.counter--
	}
	if !l.control {
		l.reload = false
	}
}

// triangle is the triangle wave channel. it has no volume control.
type triangle struct {
	sequence uint8
	period   uint16
	timer    uint16

	length lengthCounter
	linear linearCounter
}

func (t *triangle) String() string {
	return fmt.Sprintf("period=%03x len=%d lin=%d", t.period, t.length.counter, t.linear.counter)
}

func (t *triangle) write(reg uint16, data uint8) {
	switch reg {
	case 0:
		t.linear.control = data&0x80 == 0x80
		t.length.halt = t.linear.control
		t.linear.period = data & 0x7f
	case 2:
		t.period = (t.period & 0x0700) | uint16(data)
	case 3:
		t.period = (t.period & 0x00ff) | uint16(data&0x07)<<8
		t.length.load(data >> 3)
		t.linear.reload = true
	}
}

// clocked every CPU cycle. the sequence only advances while both counters
// are non-zero.
func (t *triangle) clock() {
	if t.timer == 0 {
		t.timer = t.period
		if t.length.counter > 0 && t.linear.counter > 0 {
			t.sequence = (t.sequence + 1) & 0x1f
		}
	} else {
		t.timer--
	}
}

// ultrasonic periods are silenced rather than producing the hardware's
// popping.
func (t *triangle) output() uint8 {
	if t.period < 2 {
		return 7
	}
	return triangleTable[t.sequence]
}
