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

import "fmt"

// the maximum number of frames to store before the earliest frames are
// forgotten.
const maxRewindSteps = 100

// Rewind keeps a snapshot of the NES at the end of recent frames. Moving to
// an earlier position plumbs that snapshot into the NES. Recording a frame at
// an earlier position discards the frames that came after it.
type Rewind struct {
	nes      *NES
	steps    []*State
	position int
}

// EnableRewind creates the rewind history. A snapshot of the current state is
// taken immediately and then at the end of every frame run by RunFrame().
// Disabling rewind discards the history.
func (nes *NES) EnableRewind(enable bool) {
	if !enable {
		nes.rewind = nil
		return
	}

	nes.rewind = &Rewind{
		nes:   nes,
		steps: make([]*State, 0, maxRewindSteps),
	}
	nes.rewind.Reset()
}

// Rewind returns the rewind history. Returns nil if rewind is not enabled.
func (nes *NES) Rewind() *Rewind {
	return nes.rewind
}

func (r *Rewind) String() string {
	if len(r.steps) == 0 {
		return "empty"
	}
	return fmt.Sprintf("%d frames [%d to %d] at %d", len(r.steps),
		r.steps[0].Frame(), r.steps[len(r.steps)-1].Frame(), r.steps[r.position].Frame())
}

// Reset rewind history, taking a snapshot of the current state.
func (r *Rewind) Reset() {
	r.steps = r.steps[:0]
	r.position = 0
	r.append(r.nes.Snapshot())
}

// RecordFrame takes a snapshot of the current state.
func (r *Rewind) RecordFrame() {
	r.append(r.nes.Snapshot())
}

func (r *Rewind) append(s *State) {
	// discard any frames after the current position
	if len(r.steps) > 0 {
		r.steps = r.steps[:r.position+1]
	}

	r.steps = append(r.steps, s)

	// maintain maximum length
	if len(r.steps) > maxRewindSteps {
		r.steps = r.steps[1:]
	}

	r.position = len(r.steps) - 1
}

// State returns the number of frames in the history and the current position.
func (r *Rewind) State() (int, int) {
	return len(r.steps), r.position
}

// SetPosition plumbs the snapshot at the position into the NES. The position
// is clamped to the available history.
func (r *Rewind) SetPosition(pos int) {
	pos = max(0, min(pos, len(r.steps)-1))
	r.nes.Plumb(r.steps[pos])
	r.position = pos
}

// GotoFrame searches the history for the frame number. Goes to the nearest
// earlier frame if the frame number is not present. Returns true if the exact
// frame number was found.
func (r *Rewind) GotoFrame(frame int) bool {
	// binary search for frame number
	b := 0
	t := len(r.steps) - 1
	for b <= t {
		m := (t + b) / 2

		fn := r.steps[m].Frame()
		if fn == frame {
			r.SetPosition(m)
			return true
		}

		if fn < frame {
			b = m + 1
		} else {
			t = m - 1
		}
	}

	r.SetPosition(t)
	return false
}
