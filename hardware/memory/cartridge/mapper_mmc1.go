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

// mmc1 registers are loaded serially, one bit per write, through a five bit
// shift register.
type mmc1 struct {
	banks

	shift uint8
	count int

	control uint8
	chr0    uint8
	chr1    uint8
	prg     uint8
}

func (m *mmc1) ID() string {
	return "MMC1"
}

func (m *mmc1) String() string {
	return fmt.Sprintf("%s: control=%05b prg=%d chr=%d/%d", m.ID(), m.control, m.prg, m.chr0, m.chr1)
}

func (m *mmc1) Reset() {
	m.shift = 0
	m.count = 0
	m.control = 0x0c
	m.chr0 = 0
	m.chr1 = 0
	m.prg = 0
}

func (m *mmc1) Place() {
	switch m.control & 0x03 {
	case 0:
		m.setMirroring(memory.SingleScreenLower)
	case 1:
		m.setMirroring(memory.SingleScreenUpper)
	case 2:
		m.setMirroring(memory.Vertical)
	case 3:
		m.setMirroring(memory.Horizontal)
	}

	prg := int(m.prg & 0x0f)
	switch (m.control >> 2) & 0x03 {
	case 0, 1:
		m.placePRG(0x8000, prg>>1, 2*PRGPageSize)
	case 2:
		m.placePRG(0x8000, 0, PRGPageSize)
		m.placePRG(0xc000, prg, PRGPageSize)
	case 3:
		m.placePRG(0x8000, prg, PRGPageSize)
		m.placePRG(0xc000, -1, PRGPageSize)
	}

	if m.control&0x10 == 0x00 {
		m.placeCHR(0x0000, int(m.chr0>>1), CHRPageSize)
	} else {
		m.placeCHR(0x0000, int(m.chr0), CHRPageSize/2)
		m.placeCHR(0x1000, int(m.chr1), CHRPageSize/2)
	}
}

func (m *mmc1) NotifyWrite(address uint16, data uint8) bool {
	if address < 0x8000 {
		return true
	}

	if data&0x80 == 0x80 {
		m.shift = 0
		m.count = 0
		m.control |= 0x0c
		m.Place()
		return false
	}

	m.shift |= (data & 0x01) << m.count
	m.count++
	if m.count < 5 {
		return false
	}

	switch (address >> 13) & 0x03 {
	case 0:
		m.control = m.shift
	case 1:
		m.chr0 = m.shift
	case 2:
		m.chr1 = m.shift
	case 3:
		m.prg = m.shift
	}
	m.shift = 0
	m.count = 0
	m.Place()

	return false
}

func (m *mmc1) Snapshot() Mapper {
	n := *m
	return &n
}
