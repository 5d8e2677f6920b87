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

// cnrom switches the 8k CHR bank. PRG placement is the same as NROM.
type cnrom struct {
	banks
	bank uint8
}

func (m *cnrom) ID() string {
	return "CNROM"
}

func (m *cnrom) String() string {
	return fmt.Sprintf("%s: chr=%d", m.ID(), m.bank)
}

func (m *cnrom) Reset() {
	m.bank = 0
}

func (m *cnrom) Place() {
	m.placePRG(0x8000, 0, PRGPageSize)
	m.placePRG(0xc000, -1, PRGPageSize)
	m.placeCHR(0x0000, int(m.bank), CHRPageSize)
}

func (m *cnrom) NotifyWrite(address uint16, data uint8) bool {
	if address < 0x8000 {
		return true
	}
	m.bank = data & 0x03
	m.placeCHR(0x0000, int(m.bank), CHRPageSize)
	return false
}

func (m *cnrom) Snapshot() Mapper {
	n := *m
	return &n
}
