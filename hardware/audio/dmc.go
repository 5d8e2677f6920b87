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

import (
	"fmt"

	"github.com/jetsetilly/gopher2a03/hardware/memory/cpubus"
)

// dmc rates in CPU cycles.
var dmcTable = [16]uint16{
	428, 380, 340, 320, 286, 254, 226, 214, 190, 160, 142, 128, 106, 84, 72, 54,
}

// dmc is the delta modulation channel. sample bytes are fetched from CPU
// memory and each bit moves the output level up or down by two.
type dmc struct {
	irqEnabled bool
	loop       bool
	period     uint16
	timer      uint16

	level uint8

	sampleAddress uint16
	sampleLength  uint16

	// the current address and the number of bytes remaining in the sample
	address   uint16
	remaining uint16

	// the shift register and the number of bits remaining in it
	shift    uint8
	bits     uint8
	silence  bool
	buffer   uint8
	buffered bool

	irq bool
}

func (d *dmc) String() string {
	return fmt.Sprintf("level=%d addr=%04x remaining=%d", d.level, d.address, d.remaining)
}

func (d *dmc) reset() {
	*d = dmc{}
	d.period = dmcTable[0]
	d.bits = 8
	d.silence = true
}

func (d *dmc) write(reg uint16, data uint8) {
	switch reg {
	case 0:
		d.irqEnabled = data&0x80 == 0x80
		if !d.irqEnabled {
			d.irq = false
		}
		d.loop = data&0x40 == 0x40
		d.period = dmcTable[data&0x0f]
	case 1:
		d.level = data & 0x7f
	case 2:
		d.sampleAddress = 0xc000 | uint16(data)<<6
	case 3:
		d.sampleLength = uint16(data)<<4 | 0x0001
	}
}

func (d *dmc) restart() {
	d.address = d.sampleAddress
	d.remaining = d.sampleLength
}

// enabling the channel restarts the sample if it has finished. disabling it
// stops the sample. the IRQ flag is always cleared.
func (d *dmc) enable(on bool) {
	d.irq = false
	if !on {
		d.remaining = 0
		return
	}
	if d.remaining == 0 {
		d.restart()
	}
}

// fill the sample buffer from memory if it is empty.
func (d *dmc) fetch(mem cpubus.Memory) {
	if d.buffered || d.remaining == 0 || mem == nil {
		return
	}

	d.buffer = mem.Read(d.address)
	d.buffered = true

	// the address wraps around to the start of cartridge space
	d.address++
	if d.address == 0x0000 {
		d.address = 0x8000
	}

	d.remaining--
	if d.remaining == 0 {
		if d.loop {
			d.restart()
		} else if d.irqEnabled {
			d.irq = true
		}
	}
}

func (d *dmc) clock(mem cpubus.Memory) {
	d.fetch(mem)

	if d.timer > 0 {
		d.timer--
		return
	}
	d.timer = d.period

	if !d.silence {
		if d.shift&0x01 == 0x01 {
			if d.level <= 125 {
				d.level += 2
			}
		} else if d.level >= 2 {
			d.level -= 2
		}
	}
	d.shift >>= 1

	d.bits--
	if d.bits == 0 {
		d.bits = 8
		d.silence = !d.buffered
		if d.buffered {
			d.shift = d.buffer
			d.buffered = false
		}
	}
}

func (d *dmc) output() uint8 {
	return d.level
}
