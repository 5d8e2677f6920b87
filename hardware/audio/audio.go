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

// Sequencer is the interface to the audio unit used by the rest of the
// emulation.
type Sequencer interface {
	NotifyWrite(address uint16, data uint8)
	ReadStatus() uint8
	Step()
	IRQ() bool
}

var _ Sequencer = (*Audio)(nil)

// The frequency of the CPU clock.
const CPUClock = 1789773

// The frequency at which samples are generated.
const SampleFreq = 44100

// Audio is the implementation of the audio processing unit.
type Audio struct {
	mem cpubus.Memory

	Pulse1   pulse
	Pulse2   pulse
	Triangle triangle
	Noise    noise
	DMC      dmc

	frame frameCounter

	// number of CPU cycles since reset
	cycles uint64

	// accumulator for sample generation
	sampleAcc int
	samples   []int16
}

// NewAudio is the preferred method of initialisation for the Audio type. The
// memory is used by the DMC to fetch sample data.
func NewAudio(mem cpubus.Memory) *Audio {
	au := &Audio{
		mem:     mem,
		samples: make([]int16, 0, SampleFreq/50),
	}
	au.Reset()
	return au
}

// Reset the audio unit to its power-on state.
func (au *Audio) Reset() {
	au.Pulse1 = pulse{onesComplement: true}
	au.Pulse2 = pulse{}
	au.Triangle = triangle{}
	au.Noise = noise{shift: 1}
	au.DMC = dmc{}
	au.DMC.reset()
	au.frame = frameCounter{}
	au.cycles = 0
	au.sampleAcc = 0
	au.samples = au.samples[:0]
}

// Plumb a new memory into the audio unit. Used after restoring a snapshot.
func (au *Audio) Plumb(mem cpubus.Memory) {
	au.mem = mem
}

// Snapshot creates a copy of the audio unit in its current state. Samples
// that have not been taken are not copied.
func (au *Audio) Snapshot() *Audio {
	n := *au
	n.samples = nil
	return &n
}

func (au *Audio) String() string {
	return fmt.Sprintf("p1: %s  p2: %s  tri: %s  noise: %s  dmc: %s",
		&au.Pulse1, &au.Pulse2, &au.Triangle, &au.Noise, &au.DMC)
}

// NotifyWrite is called when the CPU writes to an audio register. Writes to
// addresses outside of the audio registers are ignored.
func (au *Audio) NotifyWrite(address uint16, data uint8) {
	switch address {
	case 0x4000, 0x4001, 0x4002, 0x4003:
		au.Pulse1.write(address&0x03, data)
	case 0x4004, 0x4005, 0x4006, 0x4007:
		au.Pulse2.write(address&0x03, data)
	case 0x4008, 0x400a, 0x400b:
		au.Triangle.write(address&0x03, data)
	case 0x400c, 0x400e, 0x400f:
		au.Noise.write(address&0x03, data)
	case 0x4010, 0x4011, 0x4012, 0x4013:
		au.DMC.write(address&0x03, data)
	case cpubus.SNDCHNAddr:
		au.writeControl(data)
	case cpubus.JOY2Addr:
		au.writeFrameCounter(data)
	}
}

// SNDCHN write. Disabling a channel clears its length counter.
func (au *Audio) writeControl(data uint8) {
	au.Pulse1.length.enable(data&0x01 == 0x01)
	au.Pulse2.length.enable(data&0x02 == 0x02)
	au.Triangle.length.enable(data&0x04 == 0x04)
	au.Noise.length.enable(data&0x08 == 0x08)
	au.DMC.enable(data&0x10 == 0x10)
}

// frame counter write. the five step mode clocks the units immediately.
func (au *Audio) writeFrameCounter(data uint8) {
	au.frame.fiveStep = data&0x80 == 0x80
	au.frame.inhibit = data&0x40 == 0x40
	if au.frame.inhibit {
		au.frame.irq = false
	}
	au.frame.cycle = 0
	if au.frame.fiveStep {
		au.quarterFrame()
		au.halfFrame()
	}
}

// ReadStatus returns the value of the SNDCHN register. Reading the register
// clears the frame IRQ flag.
func (au *Audio) ReadStatus() uint8 {
	var v uint8
	if au.Pulse1.length.counter > 0 {
		v |= 0x01
	}
	if au.Pulse2.length.counter > 0 {
		v |= 0x02
	}
	if au.Triangle.length.counter > 0 {
		v |= 0x04
	}
	if au.Noise.length.counter > 0 {
		v |= 0x08
	}
	if au.DMC.remaining > 0 {
		v |= 0x10
	}
	if au.frame.irq {
		v |= 0x40
	}
	if au.DMC.irq {
		v |= 0x80
	}
	au.frame.irq = false
	return v
}

// IRQ returns true if either the frame counter or the DMC is asserting the
// IRQ line.
func (au *Audio) IRQ() bool {
	return au.frame.irq || au.DMC.irq
}

// Step the audio unit by one CPU cycle.
func (au *Audio) Step() {
	au.cycles++

	// the triangle timer is clocked every CPU cycle. the other timers every
	// other cycle
	au.Triangle.clock()
	if au.cycles&0x01 == 0x00 {
		au.Pulse1.clock()
		au.Pulse2.clock()
	}
	au.Noise.clock()
	au.DMC.clock(au.mem)

	switch au.frame.step() {
	case frameQuarter:
		au.quarterFrame()
	case frameHalf:
		au.quarterFrame()
		au.halfFrame()
	}

	au.sampleAcc += SampleFreq
	if au.sampleAcc >= CPUClock {
		au.sampleAcc -= CPUClock
		au.samples = append(au.samples, au.mix())
	}
}

func (au *Audio) quarterFrame() {
	au.Pulse1.envelope.clock()
	au.Pulse2.envelope.clock()
	au.Triangle.linear.clock()
	au.Noise.envelope.clock()
}

func (au *Audio) halfFrame() {
	au.Pulse1.length.clock()
	au.Pulse1.sweep.clock(&au.Pulse1)
	au.Pulse2.length.clock()
	au.Pulse2.sweep.clock(&au.Pulse2)
	au.Triangle.length.clock()
	au.Noise.length.clock()
}

// TakeSamples returns the samples generated since the previous call. The
// returned slice is only valid until the next call to Step().
func (au *Audio) TakeSamples() []int16 {
	s := au.samples
	au.samples = au.samples[:0]
	return s
}
