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

import "math"

// lookup tables for the non-linear mixing of the channels.
var (
	pulseMix [31]float32
	tndMix   [203]float32
)

func init() {
	for i := 1; i < len(pulseMix); i++ {
		pulseMix[i] = 95.52 / (8128.0/float32(i) + 100)
	}
	for i := 1; i < len(tndMix); i++ {
		tndMix[i] = 163.67 / (24329.0/float32(i) + 100)
	}
}

// mix the output of the five channels into a single sample.
func (au *Audio) mix() int16 {
	p := au.Pulse1.output() + au.Pulse2.output()
	tnd := 3*uint16(au.Triangle.output()) + 2*uint16(au.Noise.output()) + uint16(au.DMC.output())
	v := pulseMix[p] + tndMix[tnd]
	return int16(v * math.MaxInt16)
}
