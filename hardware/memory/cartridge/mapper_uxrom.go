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

// uxrom switches the 16k bank at 0x8000. the last bank is fixed at 0xc000.
type uxrom struct {
	banks
	bank uint8
}

func (m *uxrom) ID() string {
	return "UxROM"
}

func (m *uxrom) String() string {
	return fmt.Sprintf("%s: bank=%d", m.ID(), m.bank)
}

func (m *uxrom) Reset() {
	m.bank = 0
}

func (m *uxrom) Place() {
	m.placePRG(0x8000, int(m.bank), PRGPageSize)
	m.placePRG(0xc000, -1, PRGPageSize)
	m.placeCHR(0x0000, 0, CHRPageSize)
}

func (m *uxrom) NotifyWrite(address uint16, data uint8) bool {
	if address < 0x8000 {
		return true
	}
	m.bank = data
	m.placePRG(0x8000, int(m.bank), PRGPageSize)
	return false
}

func (m *uxrom) Snapshot() Mapper {
	n := *m
	return &n
}
