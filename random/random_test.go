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

package random_test

import (
	"testing"

	"github.com/jetsetilly/gopher2a03/random"
	"github.com/jetsetilly/gopher2a03/test"
)

type raster struct {
	frame, scanline, dot int
}

func (r *raster) RasterPosition() (int, int, int) {
	return r.frame, r.scanline, r.dot
}

func TestRandom(t *testing.T) {
	pos := &raster{frame: 100, scanline: 32, dot: 10}
	a := random.NewRandom(pos)
	b := random.NewRandom(pos)
	a.ZeroSeed = true
	b.ZeroSeed = true

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Intn(i), b.Intn(i))
	}

	fa := make([]uint8, 64)
	fb := make([]uint8, 64)
	a.Fill(fa)
	b.Fill(fb)
	test.ExpectEquality(t, string(fa), string(fb))
}

func TestNilSource(t *testing.T) {
	a := random.NewRandom(nil)
	a.ZeroSeed = true
	b := random.NewRandom(&raster{})
	b.ZeroSeed = true
	test.ExpectEquality(t, a.Intn(1000), b.Intn(1000))
}
