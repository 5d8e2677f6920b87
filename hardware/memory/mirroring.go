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

package memory

// Mirroring describes how the four logical nametables are arranged in
// physical memory.
type Mirroring int

// List of valid Mirroring values.
const (
	Horizontal Mirroring = iota
	Vertical
	SingleScreenLower
	SingleScreenUpper
	FourScreen
)

func (m Mirroring) String() string {
	switch m {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case SingleScreenLower:
		return "single screen (lower)"
	case SingleScreenUpper:
		return "single screen (upper)"
	case FourScreen:
		return "four screen"
	}
	return "unknown mirroring"
}

// physical nametable for each logical nametable, indexed by Mirroring value.
var nametableMap = [...][4]uint16{
	Horizontal:        {0, 0, 1, 1},
	Vertical:          {0, 1, 0, 1},
	SingleScreenLower: {0, 0, 0, 0},
	SingleScreenUpper: {1, 1, 1, 1},
	FourScreen:        {0, 1, 2, 3},
}
