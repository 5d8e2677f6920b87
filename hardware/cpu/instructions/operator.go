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

// Operator defines which function the instruction performs. Instructions
// with different addressing modes share an Operator.
type Operator int

// List of valid Operator values. The unofficial operators are named after
// the most common of their mnemonics.
const (
	Nop Operator = iota
	Adc
	And
	Asl
	Bcc
	Bcs
	Beq
	Bit
	Bmi
	Bne
	Bpl
	Brk
	Bvc
	Bvs
	Clc
	Cld
	Cli
	Clv
	Cmp
	Cpx
	Cpy
	Dec
	Dex
	Dey
	Eor
	Inc
	Inx
	Iny
	Jmp
	Jsr
	Lda
	Ldx
	Ldy
	Lsr
	Ora
	Pha
	Php
	Pla
	Plp
	Rol
	Ror
	Rti
	Rts
	Sbc
	Sec
	Sed
	Sei
	Sta
	Stx
	Sty
	Tax
	Tay
	Tsx
	Txa
	Txs
	Tya

	// unofficial operators
	Lax
	Sax
	Dcp
	Isc
	Slo
	Rla
	Sre
	Rra
	Anc
	Alr
	Arr
	Xaa
	Axs
	Ahx
	Tas
	Shy
	Shx
	Las

	numOperators
)

var operatorNames = [numOperators]string{
	"NOP", "ADC", "AND", "ASL", "BCC", "BCS", "BEQ", "BIT", "BMI", "BNE",
	"BPL", "BRK", "BVC", "BVS", "CLC", "CLD", "CLI", "CLV", "CMP", "CPX",
	"CPY", "DEC", "DEX", "DEY", "EOR", "INC", "INX", "INY", "JMP", "JSR",
	"LDA", "LDX", "LDY", "LSR", "ORA", "PHA", "PHP", "PLA", "PLP", "ROL",
	"ROR", "RTI", "RTS", "SBC", "SEC", "SED", "SEI", "STA", "STX", "STY",
	"TAX", "TAY", "TSX", "TXA", "TXS", "TYA",
	"LAX", "SAX", "DCP", "ISC", "SLO", "RLA", "SRE", "RRA", "ANC", "ALR",
	"ARR", "XAA", "AXS", "AHX", "TAS", "SHY", "SHX", "LAS",
}

func (op Operator) String() string {
	if op < 0 || op >= numOperators {
		return "???"
	}
	return operatorNames[op]
}

// effect returns the effect category for the operator when used with the
// addressing mode.
func (op Operator) effect(mode AddressingMode) EffectCategory {
	switch op {
	case Bcc, Bcs, Beq, Bmi, Bne, Bpl, Bvc, Bvs, Jmp:
		return Flow
	case Jsr, Rts:
		return Subroutine
	case Brk, Rti:
		return Interrupt
	case Sta, Stx, Sty, Sax, Ahx, Tas, Shy, Shx:
		return Write
	case Asl, Lsr, Rol, Ror, Inc, Dec, Slo, Rla, Sre, Rra, Dcp, Isc:
		if mode == Accumulator {
			return Read
		}
		return RMW
	}
	return Read
}
