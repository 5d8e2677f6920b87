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

package instructions

import (
	"fmt"
)

// Definition defines each instruction in the instruction set; one per instruction.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	Bytes          int
	Cycles         int
	AddressingMode AddressingMode
	PageSensitive  bool
	Effect         EffectCategory

	// unofficial instructions are those not documented by the manufacturer
	Unofficial bool
}

// Mnemonic returns the assembly mnemonic for the instruction. Unofficial
// instructions are prefixed with an asterisk.
func (defn Definition) Mnemonic() string {
	if defn.Unofficial {
		return "*" + defn.Operator.String()
	}
	return defn.Operator.String()
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s pagesens=%t effect=%s]",
		defn.OpCode, defn.Mnemonic(), defn.Bytes, defn.Cycles, defn.AddressingMode, defn.PageSensitive, defn.Effect)
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Effect == Flow
}

// Table is the complete lookup table of instruction definitions, indexed by
// opcode. An entry is nil if the opcode is not defined.
type Table [256]*Definition

// NewTable creates the table of instruction definitions.
func NewTable() *Table {
	var t Table
	for _, e := range opcodes {
		t[e.opcode] = &Definition{
			OpCode:         e.opcode,
			Operator:       e.op,
			Bytes:          e.mode.Bytes(),
			Cycles:         e.cycles,
			AddressingMode: e.mode,
			PageSensitive:  e.pageSensitive,
			Effect:         e.op.effect(e.mode),
			Unofficial:     e.unofficial,
		}
	}
	return &t
}

// Official returns a copy of the table with the unofficial instructions
// removed.
func (t *Table) Official() *Table {
	var o Table
	for i, d := range t {
		if d != nil && !d.Unofficial {
			o[i] = d
		}
	}
	return &o
}

// Lookup returns the definition for the opcode. Returns nil if the opcode is
// not defined.
func (t *Table) Lookup(opcode uint8) *Definition {
	return t[opcode]
}

// Count returns the number of defined instructions in the table.
func (t *Table) Count() int {
	var n int
	for _, d := range t {
		if d != nil {
			n++
		}
	}
	return n
}
