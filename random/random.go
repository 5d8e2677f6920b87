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

package random

import (
	"math/rand"
	"time"
)

// Source implementations provide the raster position that seeds the random
// number generator.
type Source interface {
	RasterPosition() (frame int, scanline int, dot int)
}

// the base seed used when ZeroSeed is false.
var baseSeed = int64(time.Now().Nanosecond())

// the dimensions of a frame used when combining the raster position into a
// single value.
const (
	dotsPerScanline = 341
	dotsPerFrame    = dotsPerScanline * 262
)

// Random is a random number generator seeded from the raster position.
type Random struct {
	src Source

	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type. A
// nil Source is allowed and is treated as though the raster position is
// always zero.
func NewRandom(src Source) *Random {
	return &Random{
		src: src,
	}
}

// Plumb a new source into the Random instance.
func (rnd *Random) Plumb(src Source) {
	rnd.src = src
}

func (rnd *Random) rand() *rand.Rand {
	var seed int64
	if rnd.src != nil {
		f, s, d := rnd.src.RasterPosition()
		seed = int64(f*dotsPerFrame + s*dotsPerScanline + d)
	}
	if !rnd.ZeroSeed {
		seed += baseSeed
	}
	return rand.New(rand.NewSource(seed))
}

// Intn returns a random number in the range [0,n).
func (rnd *Random) Intn(n int) int {
	return rnd.rand().Intn(n)
}

// Fill fills the slice with random bytes. A single generator is used for
// the entire slice.
func (rnd *Random) Fill(b []uint8) {
	r := rnd.rand()
	for i := range b {
		b[i] = uint8(r.Intn(256))
	}
}
