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

package execution

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher2a03/hardware/cpu/instructions"
)

// Result records the state/result of the most recent CPU instruction.
type Result struct {
	// a copy of the last instruction details. will be nil if the result is
	// for an interrupt
	Defn *instructions.Definition

	// the address at which the instruction began
	Address uint16

	// the bytes of the instruction, including the opcode. only the first
	// ByteCount entries are valid
	Bytes     [3]uint8
	ByteCount int

	// instruction data is the actual instruction data. so, for example, in
	// the case of ZeroPageIndexedX, this is the zero page address before
	// indexing
	InstructionData uint16

	// the actual number of cycles taken by the instruction, including page
	// crossing and branch penalties
	Cycles int

	// whether an extra cycle was required because of 8 bit adder overflow
	PageFault bool

	// whether the branch of a branch instruction was taken
	BranchSuccess bool

	// a note on any known CPU quirk triggered by the instruction
	CPUBug string

	// the name of the interrupt being serviced. empty if the result is for an
	// instruction
	Interrupt string

	// whether this data has been finalised
	Final bool

	// register state before the instruction was executed
	A, X, Y, P, SP uint8

	// the number of CPU cycles elapsed before the instruction was executed
	TotalCycles uint64
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

// operand returns the operand of the instruction formatted in the usual
// assembly manner.
func (r Result) operand() string {
	d := r.InstructionData
	switch r.Defn.AddressingMode {
	case instructions.Implied:
		return ""
	case instructions.Accumulator:
		return "A"
	case instructions.Immediate:
		return fmt.Sprintf("#$%02X", d)
	case instructions.Relative:
		return fmt.Sprintf("$%04X", r.Address+2+uint16(int16(int8(d))))
	case instructions.Absolute:
		return fmt.Sprintf("$%04X", d)
	case instructions.ZeroPage:
		return fmt.Sprintf("$%02X", d)
	case instructions.Indirect:
		return fmt.Sprintf("($%04X)", d)
	case instructions.IndexedIndirect:
		return fmt.Sprintf("($%02X,X)", d)
	case instructions.IndirectIndexed:
		return fmt.Sprintf("($%02X),Y", d)
	case instructions.AbsoluteIndexedX:
		return fmt.Sprintf("$%04X,X", d)
	case instructions.AbsoluteIndexedY:
		return fmt.Sprintf("$%04X,Y", d)
	case instructions.ZeroPageIndexedX:
		return fmt.Sprintf("$%02X,X", d)
	case instructions.ZeroPageIndexedY:
		return fmt.Sprintf("$%02X,Y", d)
	}
	return ""
}

// Instruction returns the instruction in the usual assembly form. For
// example, "LDA #$42".
func (r Result) Instruction() string {
	if r.Defn == nil {
		return "???"
	}
	return strings.TrimSpace(fmt.Sprintf("%s %s", r.Defn.Mnemonic(), r.operand()))
}

func (r Result) String() string {
	regs := fmt.Sprintf("A:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%d", r.A, r.X, r.Y, r.P, r.SP, r.TotalCycles)

	if r.Interrupt != "" {
		return fmt.Sprintf("%04X  %-8s  %-31s %s", r.Address, "", r.Interrupt, regs)
	}

	if r.Defn == nil {
		return fmt.Sprintf("%04X  %02X        %-31s %s", r.Address, r.Bytes[0], "???", regs)
	}

	b := strings.Builder{}
	for i := 0; i < r.ByteCount && i < len(r.Bytes); i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(fmt.Sprintf("%02X", r.Bytes[i]))
	}

	ins := r.Instruction()

	// unofficial mnemonics are prefixed by an asterisk which takes the place
	// of the preceding space
	sep := " "
	if r.Defn.Unofficial {
		sep = ""
	}

	return fmt.Sprintf("%04X  %-8s %s%-31s %s", r.Address, b.String(), sep, ins, regs)
}
