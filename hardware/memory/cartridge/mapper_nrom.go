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

package cartridge

import "fmt"

// nrom has no registers. 16k ROMs are mirrored in the upper half of the
// address space.
type nrom struct {
	banks
}

func (m *nrom) ID() string {
	return "NROM"
}

func (m *nrom) String() string {
	return fmt.Sprintf("%s: %dk PRG", m.ID(), len(m.prg)/1024)
}

func (m *nrom) Reset() {
}

func (m *nrom) Place() {
	m.placePRG(0x8000, 0, PRGPageSize)
	m.placePRG(0xc000, -1, PRGPageSize)
	m.placeCHR(0x0000, 0, CHRPageSize)
}

func (m *nrom) NotifyWrite(address uint16, data uint8) bool {
	return address < 0x8000
}

func (m *nrom) Snapshot() Mapper {
	n := *m
	return &n
}
