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

package disassembly_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher2a03/disassembly"
	"github.com/jetsetilly/gopher2a03/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher2a03/test"
)

type mockMem struct {
	data [0x10000]uint8
}

func (m *mockMem) Peek(address uint16) uint8 {
	return m.data[address]
}

func (m *mockMem) Poke(address uint16, data uint8) {
	m.data[address] = data
}

func (m *mockMem) load(origin uint16, program ...uint8) {
	copy(m.data[origin:], program)
}

func TestLinear(t *testing.T) {
	var mem mockMem
	mem.load(0x8000,
		0xa9, 0x42, // LDA #$42
		0x8d, 0x00, 0x02, // STA $0200
		0xd0, 0xf9, // BNE $8000
		0x20, 0x0d, 0x80, // JSR $800d
		0x4c, 0x0a, 0x80, // JMP $800a
		0x60, // RTS
	)

	dsm, err := disassembly.FromMemory(&mem, instructions.NewTable(), 0x8000, 0x800d)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(dsm.Entries), 6)

	e, ok := dsm.Get(0x8000)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.Instruction(), "LDA #$42")
	test.ExpectEquality(t, e.Bytecode(), "A9 42")
	test.ExpectEquality(t, e.Label, "L8000")

	// no instruction starts at this address
	_, ok = dsm.Get(0x8001)
	test.ExpectFailure(t, ok)

	e, _ = dsm.Get(0x8005)
	test.ExpectEquality(t, e.Instruction(), "BNE $8000")
	test.ExpectEquality(t, e.Label, "")

	e, _ = dsm.Get(0x800a)
	test.ExpectEquality(t, e.Label, "L800A")
	e, _ = dsm.Get(0x800d)
	test.ExpectEquality(t, e.Instruction(), "RTS")
	test.ExpectEquality(t, e.Label, "L800D")

	var out strings.Builder
	test.ExpectSuccess(t, dsm.Write(&out, disassembly.WriteAttr{ByteCode: true}))
	lines := strings.Split(out.String(), "\n")
	test.ExpectEquality(t, lines[0], "L8000:")
	test.ExpectEquality(t, lines[1], "8000  A9 42     LDA #$42")
	test.ExpectEquality(t, lines[2], "8002  8D 00 02  STA $0200")
}

func TestUnofficial(t *testing.T) {
	var mem mockMem
	mem.load(0x8000, 0xa7, 0x10) // LAX $10

	dsm, err := disassembly.FromMemory(&mem, instructions.NewTable(), 0x8000, 0x8001)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(dsm.Entries), 1)
	test.ExpectEquality(t, dsm.Entries[0].Instruction(), "*LAX $10")

	// the same bytes with a table of official opcodes only
	dsm, err = disassembly.FromMemory(&mem, instructions.NewTable().Official(), 0x8000, 0x8001)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(dsm.Entries), 2)
	test.ExpectFailure(t, dsm.Entries[0].Valid())

	var out strings.Builder
	test.ExpectSuccess(t, disassembly.WriteEntry(&out, disassembly.WriteAttr{}, dsm.Entries[0]))
	test.ExpectEquality(t, out.String(), "8000  .byte $A7\n")
}

func TestEndOfMemory(t *testing.T) {
	var mem mockMem
	mem.load(0xfffe, 0x4c, 0x00)

	// the instruction at the end of memory overlaps the end of the range
	dsm, err := disassembly.FromMemory(&mem, instructions.NewTable(), 0xfff0, 0xffff)
	test.DemandSuccess(t, err)
	e, ok := dsm.Get(0xfffe)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.ByteCount, 3)

	_, err = disassembly.FromMemory(&mem, instructions.NewTable(), 0x8000, 0x7fff)
	test.ExpectFailure(t, err)
}

func TestVectors(t *testing.T) {
	var mem mockMem
	mem.load(0xfffa, 0x00, 0x90, 0x00, 0x80, 0x34, 0x12)
	nmi, reset, irq := disassembly.Vectors(&mem)
	test.ExpectEquality(t, nmi, uint16(0x9000))
	test.ExpectEquality(t, reset, uint16(0x8000))
	test.ExpectEquality(t, irq, uint16(0x1234))
}
