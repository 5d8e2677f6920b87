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

package disassembly

import (
	"fmt"

	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher2a03/hardware/memory/bus"
)

// Sentinal errors.
const (
	BadRange = "disassembly: bad address range (%04x to %04x)"
)

// Disassembly is the result of a linear disassembly.
type Disassembly struct {
	Entries []Entry

	// index into Entries by address
	byAddress map[uint16]int
}

// FromMemory disassembles memory between the origin and memtop addresses
// (inclusive). The table argument defines which opcodes are recognised.
// Unrecognised opcodes are added to the disassembly as single byte entries
// with a nil instruction definition.
func FromMemory(mem bus.DebuggerBus, table *instructions.Table, origin uint16, memtop uint16) (*Disassembly, error) {
	if memtop < origin {
		return nil, curated.Errorf(BadRange, origin, memtop)
	}

	dsm := &Disassembly{
		byAddress: make(map[uint16]int),
	}

	address := uint32(origin)
	for address <= uint32(memtop) {
		e := decode(mem, table, uint16(address))
		dsm.byAddress[e.Address] = len(dsm.Entries)
		dsm.Entries = append(dsm.Entries, e)
		address += uint32(e.ByteCount)
	}

	dsm.label()

	return dsm, nil
}

func decode(mem bus.DebuggerBus, table *instructions.Table, address uint16) Entry {
	e := Entry{}
	e.Address = address
	e.Bytes[0] = mem.Peek(address)
	e.ByteCount = 1

	defn := table.Lookup(e.Bytes[0])
	if defn == nil {
		return e
	}

	e.Defn = defn
	e.ByteCount = defn.Bytes
	for i := 1; i < defn.Bytes; i++ {
		e.Bytes[i] = mem.Peek(address + uint16(i))
	}

	switch defn.Bytes {
	case 2:
		e.InstructionData = uint16(e.Bytes[1])
	case 3:
		e.InstructionData = uint16(e.Bytes[1]) | uint16(e.Bytes[2])<<8
	}

	return e
}

// target returns the address that control might be transferred to by the
// instruction.
func target(e Entry) (uint16, bool) {
	if e.Defn == nil {
		return 0, false
	}

	if e.Defn.IsBranch() {
		return e.Address + 2 + uint16(int16(int8(e.InstructionData))), true
	}

	if e.Defn.Effect == instructions.Flow || e.Defn.Effect == instructions.Subroutine {
		if e.Defn.AddressingMode == instructions.Absolute {
			return e.InstructionData, true
		}
	}

	return 0, false
}

// label entries that are the target of another instruction.
func (dsm *Disassembly) label() {
	for _, e := range dsm.Entries {
		if t, ok := target(e); ok {
			if i, ok := dsm.byAddress[t]; ok {
				dsm.Entries[i].Label = fmt.Sprintf("L%04X", t)
			}
		}
	}
}

// Get returns the entry at the address. Returns false if no instruction begins
// at that address.
func (dsm *Disassembly) Get(address uint16) (Entry, bool) {
	i, ok := dsm.byAddress[address]
	if !ok {
		return Entry{}, false
	}
	return dsm.Entries[i], true
}

// Vectors returns the NMI, reset and IRQ vectors.
func Vectors(mem bus.DebuggerBus) (nmi uint16, reset uint16, irq uint16) {
	read := func(address uint16) uint16 {
		return uint16(mem.Peek(address)) | uint16(mem.Peek(address+1))<<8
	}
	return read(0xfffa), read(0xfffc), read(0xfffe)
}
