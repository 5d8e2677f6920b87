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

// noise timer periods in CPU cycles.
var noiseTable = [16]uint16{
	4, 8, 16, 32, 64, 96, 128, 160, 202, 254, 380, 508, 762, 1016, 2034, 4068,
}

// noise is the pseudo-random noise channel. the output is driven by a fifteen
// bit linear feedback shift register.
type noise struct {
	mode   bool
	period uint16
	timer  uint16
	shift  uint16

	length   lengthCounter
	envelope envelope
}

func (n *noise) String() string {
	return fmt.Sprintf("mode=%v period=%d len=%d", n.mode, n.period, n.length.counter)
}

func (n *noise) write(reg uint16, data uint8) {
	switch reg {
	case 0:
		n.length.halt = data&0x20 == 0x20
		n.envelope.load(data)
	case 2:
		n.mode = data&0x80 == 0x80
		n.period = noiseTable[data&0x0f]
	case 3:
		n.length.load(data >> 3)
		n.envelope.start = true
	}
}

func (n *noise) clock() {
	if n.timer > 0 {
		n.timer--
		return
	}
	n.timer = n.period

	tap := uint16(1)
	if n.mode {
		tap = 6
	}
	feedback := (n.shift & 0x01) ^ ((n.shift >> tap) & 0x01)
	n.shift = n.shift>>1 | feedback<<14
}

func (n *noise) output() uint8 {
	if n.length.counter == 0 || n.shift&0x01 == 0x01 {
		return 0
	}
	return n.envelope.volume()
}
