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

var lengthTable = [32]uint8{
	10, 254, 20, 2, 40, 4, 80, 6, 160, 8, 60, 10, 14, 12, 26, 14,
	12, 16, 24, 18, 48, 20, 96, 22, 192, 24, 72, 26, 16, 28, 32, 30,
}

// lengthCounter silences a channel after a number of half frames.
type lengthCounter struct {
	enabled bool
	halt    bool
	counter uint8
}

// load the counter from the five bit index. the counter is only loaded if the
// channel is enabled.
func (l *lengthCounter) load(idx uint8) {
	if l.enabled {
		l.counter = lengthTable[idx&0x1f]
	}
}

func (l *lengthCounter) enable(on bool) {
	l.enabled = on
	if !on {
		l.counter = 0
	}
}

func (l *lengthCounter) clock() {
	if !l.halt && l.counter > 0 {
		l.counter--
	}
}

// envelope generates a decaying volume or a constant volume.
type envelope struct {
	start    bool
	loop     bool
	constant bool
	period   uint8
	divider  uint8
	decay    uint8
}

// load from the low six bits of the first register of the pulse and noise
// channels.
func (e *envelope) load(data uint8) {
	e.loop = data&0x20 == 0x20
	e.constant = data&0x10 == 0x10
	e.period = data & 0x0f
}

func (e *envelope) clock() {
	if e.start {
		e.start = false
		e.decay = 15
		e.divider = e.period
		return
	}

	if e.divider > 0 {
		e.divider--
		return
	}

	e.divider = e.period
	if e.decay > 0 {
		e.decay--
	} else if e.loop {
		e.decay = 15
	}
}

func (e *envelope) volume() uint8 {
	if e.constant {
		return e.period
	}
	return e.decay
}

// sweep periodically adjusts the timer period of a pulse channel.
type sweep struct {
	enabled bool
	negate  bool
	shift   uint8
	period  uint8
	divider uint8
	reload  bool
}

func (s *sweep) load(data uint8) {
	s.enabled = data&0x80 == 0x80
	s.period = (data >> 4) & 0x07
	s.negate = data&0x08 == 0x08
	s.shift = data & 0x07
	s.reload = true
}

// target returns the period the sweep unit would change the pulse channel to.
// the first pulse channel negates with ones' complement.
func (s *sweep) target(p *pulse) uint16 {
	change := p.period >> s.shift
	if !s.negate {
		return p.period + change
	}
	if p.onesComplement {
		change++
	}
	if change > p.period {
		return 0
	}
	return p.period - change
}

// the channel is muted if the current period is too small or the target
// period is too big, even if the sweep is disabled.
func (s *sweep) mute(p *pulse) bool {
	return p.period < 8 || s.target(p) > 0x7ff
}

func (s *sweep) clock(p *pulse) {
	if s.divider == 0 && s.enabled && s.shift > 0 && !s.mute(p) {
		p.period = s.target(p)
	}
	if s.divider == 0 || s.reload {
		s.divider = s.period
		s.reload = false
	} else {
		s.divider--
	}
}
