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

import (
	"fmt"

	"github.com/jetsetilly/gopher2a03/hardware/memory"
)

// axrom switches all 32k of PRG and selects a single screen nametable.
type axrom struct {
	banks
	bank   uint8
	screen memory.Mirroring
}

func (m *axrom) ID() string {
	return "AxROM"
}

func (m *axrom) String() string {
	return fmt.Sprintf("%s: bank=%d %s", m.ID(), m.bank, m.screen)
}

func (m *axrom) Reset() {
	m.bank = 0
	m.screen = memory.SingleScreenLower
}

func (m *axrom) Place() {
	m.setMirroring(m.screen)
	m.placePRG(0x8000, int(m.bank), 2*PRGPageSize)
	m.placeCHR(0x0000, 0, CHRPageSize)
}

func (m *axrom) NotifyWrite(address uint16, data uint8) bool {
	if address < 0x8000 {
		return true
	}
	m.bank = data & 0x07
	if data&0x10 == 0x10 {
		m.screen = memory.SingleScreenUpper
	} else {
		m.screen = memory.SingleScreenLower
	}
	m.setMirroring(m.screen)
	m.placePRG(0x8000, int(m.bank), 2*PRGPageSize)
	return false
}

func (m *axrom) Snapshot() Mapper {
	n := *m
	return &n
}
