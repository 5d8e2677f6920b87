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
	"testing"

	"github.com/jetsetilly/gopher2a03/test"
)

type mockMem struct {
	data [0x10000]uint8
}

func (m *mockMem) Read(address uint16) uint8 {
	return m.data[address]
}

func (m *mockMem) Write(address uint16, data uint8) {
	m.data[address] = data
}

func stepN(seq Sequencer, n int) {
	for range n {
		seq.Step()
	}
}

func TestLengthCounter(t *testing.T) {
	au := NewAudio(nil)

	// length counter is not loaded while the channel is disabled
	au.NotifyWrite(0x4003, 0x08)
	test.ExpectEquality(t, au.ReadStatus()&0x01, uint8(0x00))

	au.NotifyWrite(0x4015, 0x01)
	au.NotifyWrite(0x4003, 0x08)
	test.ExpectEquality(t, au.Pulse1.length.counter, uint8(254))
	test.ExpectEquality(t, au.ReadStatus()&0x01, uint8(0x01))

	// two half frames in the first sequence of the frame counter
	stepN(au, frameStep4)
	test.ExpectEquality(t, au.Pulse1.length.counter, uint8(252))

	// halted counters do not decrease
	au.NotifyWrite(0x4000, 0x20)
	stepN(au, frameLength4)
	test.ExpectEquality(t, au.Pulse1.length.counter, uint8(252))

	// disabling the channel clears the counter
	au.NotifyWrite(0x4015, 0x00)
	test.ExpectEquality(t, au.ReadStatus()&0x01, uint8(0x00))
}

func TestSequencer(t *testing.T) {
	var seq Sequencer = NewAudio(nil)

	// the frame IRQ is inhibited by bit 6 of the frame counter register
	seq.NotifyWrite(0x4017, 0x40)
	stepN(seq, frameLength4)
	test.ExpectFailure(t, seq.IRQ())
	test.ExpectEquality(t, seq.ReadStatus()&0x40, uint8(0x00))

	seq.NotifyWrite(0x4017, 0x00)
	stepN(seq, frameLength4)
	test.ExpectSuccess(t, seq.IRQ())
	test.ExpectEquality(t, seq.ReadStatus()&0x40, uint8(0x40))
	test.ExpectFailure(t, seq.IRQ())
}

func TestFrameIRQ(t *testing.T) {
	au := NewAudio(nil)

	stepN(au, frameStep4-1)
	test.ExpectFailure(t, au.IRQ())
	au.Step()
	test.ExpectSuccess(t, au.IRQ())

	// reading the status register clears the frame IRQ
	test.ExpectEquality(t, au.ReadStatus()&0x40, uint8(0x40))
	test.ExpectFailure(t, au.IRQ())
	test.ExpectEquality(t, au.ReadStatus()&0x40, uint8(0x00))

	// inhibited
	au.NotifyWrite(0x4017, 0x40)
	stepN(au, frameLength4*2)
	test.ExpectFailure(t, au.IRQ())

	// five step mode never raises an IRQ
	au.NotifyWrite(0x4017, 0x80)
	stepN(au, frameLength5*2)
	test.ExpectFailure(t, au.IRQ())
}

func TestFiveStepImmediateClock(t *testing.T) {
	au := NewAudio(nil)
	au.NotifyWrite(0x4015, 0x01)
	au.NotifyWrite(0x4003, 0x08)
	au.NotifyWrite(0x4017, 0x80)
	test.ExpectEquality(t, au.Pulse1.length.counter, uint8(253))
}

func TestSweep(t *testing.T) {
	au := NewAudio(nil)

	au.Pulse1.period = 0x100
	au.Pulse2.period = 0x100
	au.NotifyWrite(0x4001, 0x89)
	au.NotifyWrite(0x4005, 0x89)
	test.ExpectEquality(t, au.Pulse1.sweep.target(&au.Pulse1), uint16(0x7f))
	test.ExpectEquality(t, au.Pulse2.sweep.target(&au.Pulse2), uint16(0x80))

	// a target above 0x7ff mutes the channel
	au.Pulse1.period = 0x700
	au.NotifyWrite(0x4001, 0x01)
	test.ExpectSuccess(t, au.Pulse1.sweep.mute(&au.Pulse1))
}

func TestEnvelope(t *testing.T) {
	var e envelope
	e.load(0x02)
	e.start = true
	e.clock()
	test.ExpectEquality(t, e.volume(), uint8(15))

	// the divider period is the low four bits plus one
	for range 3 {
		e.clock()
	}
	test.ExpectEquality(t, e.volume(), uint8(14))

	e.load(0x17)
	test.ExpectEquality(t, e.volume(), uint8(7))
}

func TestSamples(t *testing.T) {
	au := NewAudio(nil)
	stepN(au, frameLength4)
	test.ExpectEquality(t, len(au.TakeSamples()), 735)
	test.ExpectEquality(t, len(au.TakeSamples()), 0)

	// a pulse wave of about 440Hz at full volume
	au.NotifyWrite(0x4015, 0x01)
	au.NotifyWrite(0x4000, 0xbf)
	au.NotifyWrite(0x4002, 0xfd)
	au.NotifyWrite(0x4003, 0x00)
	stepN(au, frameLength4)

	var lo, hi int16 = 0x7fff, 0
	for _, s := range au.TakeSamples() {
		lo = min(lo, s)
		hi = max(hi, s)
	}
	test.ExpectSuccess(t, hi > lo)
}

func TestDMC(t *testing.T) {
	mem := &mockMem{}
	mem.data[0xc040] = 0xff

	au := NewAudio(mem)
	au.NotifyWrite(0x4010, 0x8f)
	au.NotifyWrite(0x4011, 0x40)
	au.NotifyWrite(0x4012, 0x01)
	au.NotifyWrite(0x4013, 0x00)
	test.ExpectEquality(t, au.DMC.output(), uint8(0x40))

	au.NotifyWrite(0x4015, 0x10)
	test.ExpectEquality(t, au.ReadStatus()&0x10, uint8(0x10))

	au.Step()
	test.ExpectEquality(t, au.ReadStatus()&0x10, uint8(0x00))
	test.ExpectSuccess(t, au.IRQ())

	// eight bits of ones raise the output level by sixteen
	stepN(au, 2000)
	test.ExpectEquality(t, au.DMC.output(), uint8(0x50))

	// writing to the control register clears the DMC IRQ
	au.NotifyWrite(0x4015, 0x00)
	test.ExpectFailure(t, au.IRQ())
}

func TestNoise(t *testing.T) {
	au := NewAudio(nil)
	au.NotifyWrite(0x4015, 0x08)
	au.NotifyWrite(0x400c, 0x3f)
	au.NotifyWrite(0x400e, 0x00)
	au.NotifyWrite(0x400f, 0x08)

	// the shift register never reaches zero
	seen := make(map[uint16]bool)
	for range 0x10000 {
		au.Noise.clock()
		if au.Noise.shift == 0 {
			t.Fatalf("noise shift register is zero")
		}
		seen[au.Noise.shift] = true
	}
	test.ExpectSuccess(t, len(seen) > 1000)
}

func TestSnapshot(t *testing.T) {
	au := NewAudio(nil)
	au.NotifyWrite(0x4015, 0x01)
	au.NotifyWrite(0x4003, 0x08)
	s := au.Snapshot()
	au.NotifyWrite(0x4015, 0x00)
	test.ExpectEquality(t, s.Pulse1.length.counter, uint8(254))
	test.ExpectEquality(t, au.Pulse1.length.counter, uint8(0))
}
