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

const mmc3BankSize = 0x2000
const mmc3CHRBankSize = 0x0400

// mmc3 has eight bank registers, switchable PRG and CHR layouts, and a
// scanline counter that raises an IRQ when it reaches zero.
type mmc3 struct {
	banks

	// four screen mirroring is provided by the cartridge board and cannot be
	// changed by the mirroring register
	fourScreen bool

	bankSelect uint8
	registers  [8]uint8
	mirroring  uint8

	irqLatch   uint8
	irqCounter uint8
	irqReload  bool
	irqEnabled bool
}

func (m *mmc3) ID() string {
	return "MMC3"
}

func (m *mmc3) String() string {
	return fmt.Sprintf("%s: select=%02x regs=% 02x irq=%d/%d enabled=%v",
		m.ID(), m.bankSelect, m.registers, m.irqCounter, m.irqLatch, m.irqEnabled)
}

func (m *mmc3) Reset() {
	m.bankSelect = 0
	m.registers = [8]uint8{0, 2, 4, 5, 6, 7, 0, 1}
	m.mirroring = 0
	m.irqLatch = 0
	m.irqCounter = 0
	m.irqReload = false
	m.irqEnabled = false
}

func (m *mmc3) placeMirroring() {
	switch {
	case m.fourScreen:
		m.setMirroring(memory.FourScreen)
	case m.mirroring == 0:
		m.setMirroring(memory.Vertical)
	default:
		m.setMirroring(memory.Horizontal)
	}
}

func (m *mmc3) placeBanks() {
	r6 := int(m.registers[6] & 0x3f)
	r7 := int(m.registers[7] & 0x3f)

	if m.bankSelect&0x40 == 0x00 {
		m.placePRG(0x8000, r6, mmc3BankSize)
		m.placePRG(0xc000, -2, mmc3BankSize)
	} else {
		m.placePRG(0x8000, -2, mmc3BankSize)
		m.placePRG(0xc000, r6, mmc3BankSize)
	}
	m.placePRG(0xa000, r7, mmc3BankSize)
	m.placePRG(0xe000, -1, mmc3BankSize)

	// 2k banks are placed in the lower pattern table unless CHR inversion is
	// set
	lo := uint16(0x0000)
	hi := uint16(0x1000)
	if m.bankSelect&0x80 == 0x80 {
		lo, hi = hi, lo
	}

	r := m.registers
	m.placeCHR(lo+0x0000, int(r[0]&0xfe), mmc3CHRBankSize)
	m.placeCHR(lo+0x0400, int(r[0]|0x01), mmc3CHRBankSize)
	m.placeCHR(lo+0x0800, int(r[1]&0xfe), mmc3CHRBankSize)
	m.placeCHR(lo+0x0c00, int(r[1]|0x01), mmc3CHRBankSize)
	m.placeCHR(hi+0x0000, int(r[2]), mmc3CHRBankSize)
	m.placeCHR(hi+0x0400, int(r[3]), mmc3CHRBankSize)
	m.placeCHR(hi+0x0800, int(r[4]), mmc3CHRBankSize)
	m.placeCHR(hi+0x0c00, int(r[5]), mmc3CHRBankSize)
}

func (m *mmc3) Place() {
	m.placeMirroring()
	m.placeBanks()
}

func (m *mmc3) NotifyWrite(address uint16, data uint8) bool {
	if address < 0x8000 {
		return true
	}

	even := address&0x01 == 0x00

	switch {
	case address <= 0x9fff:
		if even {
			m.bankSelect = data
		} else {
			m.registers[m.bankSelect&0x07] = data
		}
		m.placeBanks()
	case address <= 0xbfff:
		// odd addresses are PRG RAM protect, which is not emulated
		if even {
			m.mirroring = data & 0x01
			m.placeMirroring()
		}
	case address <= 0xdfff:
		if even {
			m.irqLatch = data
		} else {
			m.irqCounter = 0
			m.irqReload = true
		}
	default:
		m.irqEnabled = !even
	}

	return false
}

// ClockScanline is called once per scanline while rendering is enabled.
// Returns true if an IRQ should be raised.
func (m *mmc3) ClockScanline() bool {
	if m.irqCounter == 0 || m.irqReload {
		m.irqCounter = m.irqLatch
		m.irqReload = false
	} else {
		m.irqCounter--
	}
	return m.irqCounter == 0 && m.irqEnabled
}

func (m *mmc3) Snapshot() Mapper {
	n := *m
	return &n
}
