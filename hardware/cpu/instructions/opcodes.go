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

type entry struct {
	opcode        uint8
	op            Operator
	mode          AddressingMode
	cycles        int
	pageSensitive bool
	unofficial    bool
}

// abbreviations of the addressing modes to keep the opcode list readable.
const (
	imp = Implied
	acc = Accumulator
	imm = Immediate
	rel = Relative
	abs = Absolute
	zpg = ZeroPage
	ind = Indirect
	izx = IndexedIndirect
	izy = IndirectIndexed
	abx = AbsoluteIndexedX
	aby = AbsoluteIndexedY
	zpx = ZeroPageIndexedX
	zpy = ZeroPageIndexedY
)

// page sensitive and unofficial markers.
const (
	p = true
	u = true
)

// cycle counts are the base counts. page sensitive instructions take an
// additional cycle if the indexed address crosses a page boundary. branch
// instructions take an additional cycle if the branch is taken and a further
// cycle if the branch crosses a page boundary.
var opcodes = []entry{
	{0x00, Brk, imp, 7, false, false},
	{0x01, Ora, izx, 6, false, false},
	{0x03, Slo, izx, 8, false, u},
	{0x04, Nop, zpg, 3, false, u},
	{0x05, Ora, zpg, 3, false, false},
	{0x06, Asl, zpg, 5, false, false},
	{0x07, Slo, zpg, 5, false, u},
	{0x08, Php, imp, 3, false, false},
	{0x09, Ora, imm, 2, false, false},
	{0x0a, Asl, acc, 2, false, false},
	{0x0b, Anc, imm, 2, false, u},
	{0x0c, Nop, abs, 4, false, u},
	{0x0d, Ora, abs, 4, false, false},
	{0x0e, Asl, abs, 6, false, false},
	{0x0f, Slo, abs, 6, false, u},

	{0x10, Bpl, rel, 2, false, false},
	{0x11, Ora, izy, 5, p, false},
	{0x13, Slo, izy, 8, false, u},
	{0x14, Nop, zpx, 4, false, u},
	{0x15, Ora, zpx, 4, false, false},
	{0x16, Asl, zpx, 6, false, false},
	{0x17, Slo, zpx, 6, false, u},
	{0x18, Clc, imp, 2, false, false},
	{0x19, Ora, aby, 4, p, false},
	{0x1a, Nop, imp, 2, false, u},
	{0x1b, Slo, aby, 7, false, u},
	{0x1c, Nop, abx, 4, p, u},
	{0x1d, Ora, abx, 4, p, false},
	{0x1e, Asl, abx, 7, false, false},
	{0x1f, Slo, abx, 7, false, u},

	{0x20, Jsr, abs, 6, false, false},
	{0x21, And, izx, 6, false, false},
	{0x23, Rla, izx, 8, false, u},
	{0x24, Bit, zpg, 3, false, false},
	{0x25, And, zpg, 3, false, false},
	{0x26, Rol, zpg, 5, false, false},
	{0x27, Rla, zpg, 5, false, u},
	{0x28, Plp, imp, 4, false, false},
	{0x29, And, imm, 2, false, false},
	{0x2a, Rol, acc, 2, false, false},
	{0x2b, Anc, imm, 2, false, u},
	{0x2c, Bit, abs, 4, false, false},
	{0x2d, And, abs, 4, false, false},
	{0x2e, Rol, abs, 6, false, false},
	{0x2f, Rla, abs, 6, false, u},

	{0x30, Bmi, rel, 2, false, false},
	{0x31, And, izy, 5, p, false},
	{0x33, Rla, izy, 8, false, u},
	{0x34, Nop, zpx, 4, false, u},
	{0x35, And, zpx, 4, false, false},
	{0x36, Rol, zpx, 6, false, false},
	{0x37, Rla, zpx, 6, false, u},
	{0x38, Sec, imp, 2, false, false},
	{0x39, And, aby, 4, p, false},
	{0x3a, Nop, imp, 2, false, u},
	{0x3b, Rla, aby, 7, false, u},
	{0x3c, Nop, abx, 4, p, u},
	{0x3d, And, abx, 4, p, false},
	{0x3e, Rol, abx, 7, false, false},
	{0x3f, Rla, abx, 7, false, u},

	{0x40, Rti, imp, 6, false, false},
	{0x41, Eor, izx, 6, false, false},
	{0x43, Sre, izx, 8, false, u},
	{0x44, Nop, zpg, 3, false, u},
	{0x45, Eor, zpg, 3, false, false},
	{0x46, Lsr, zpg, 5, false, false},
	{0x47, Sre, zpg, 5, false, u},
	{0x48, Pha, imp, 3, false, false},
	{0x49, Eor, imm, 2, false, false},
	{0x4a, Lsr, acc, 2, false, false},
	{0x4b, Alr, imm, 2, false, u},
	{0x4c, Jmp, abs, 3, false, false},
	{0x4d, Eor, abs, 4, false, false},
	{0x4e, Lsr, abs, 6, false, false},
	{0x4f, Sre, abs, 6, false, u},

	{0x50, Bvc, rel, 2, false, false},
	{0x51, Eor, izy, 5, p, false},
	{0x53, Sre, izy, 8, false, u},
	{0x54, Nop, zpx, 4, false, u},
	{0x55, Eor, zpx, 4, false, false},
	{0x56, Lsr, zpx, 6, false, false},
	{0x57, Sre, zpx, 6, false, u},
	{0x58, Cli, imp, 2, false, false},
	{0x59, Eor, aby, 4, p, false},
	{0x5a, Nop, imp, 2, false, u},
	{0x5b, Sre, aby, 7, false, u},
	{0x5c, Nop, abx, 4, p, u},
	{0x5d, Eor, abx, 4, p, false},
	{0x5e, Lsr, abx, 7, false, false},
	{0x5f, Sre, abx, 7, false, u},

	{0x60, Rts, imp, 6, false, false},
	{0x61, Adc, izx, 6, false, false},
	{0x63, Rra, izx, 8, false, u},
	{0x64, Nop, zpg, 3, false, u},
	{0x65, Adc, zpg, 3, false, false},
	{0x66, Ror, zpg, 5, false, false},
	{0x67, Rra, zpg, 5, false, u},
	{0x68, Pla, imp, 4, false, false},
	{0x69, Adc, imm, 2, false, false},
	{0x6a, Ror, acc, 2, false, false},
	{0x6b, Arr, imm, 2, false, u},
	{0x6c, Jmp, ind, 5, false, false},
	{0x6d, Adc, abs, 4, false, false},
	{0x6e, Ror, abs, 6, false, false},
	{0x6f, Rra, abs, 6, false, u},

	{0x70, Bvs, rel, 2, false, false},
	{0x71, Adc, izy, 5, p, false},
	{0x73, Rra, izy, 8, false, u},
	{0x74, Nop, zpx, 4, false, u},
	{0x75, Adc, zpx, 4, false, false},
	{0x76, Ror, zpx, 6, false, false},
	{0x77, Rra, zpx, 6, false, u},
	{0x78, Sei, imp, 2, false, false},
	{0x79, Adc, aby, 4, p, false},
	{0x7a, Nop, imp, 2, false, u},
	{0x7b, Rra, aby, 7, false, u},
	{0x7c, Nop, abx, 4, p, u},
	{0x7d, Adc, abx, 4, p, false},
	{0x7e, Ror, abx, 7, false, false},
	{0x7f, Rra, abx, 7, false, u},

	{0x80, Nop, imm, 2, false, u},
	{0x81, Sta, izx, 6, false, false},
	{0x82, Nop, imm, 2, false, u},
	{0x83, Sax, izx, 6, false, u},
	{0x84, Sty, zpg, 3, false, false},
	{0x85, Sta, zpg, 3, false, false},
	{0x86, Stx, zpg, 3, false, false},
	{0x87, Sax, zpg, 3, false, u},
	{0x88, Dey, imp, 2, false, false},
	{0x89, Nop, imm, 2, false, u},
	{0x8a, Txa, imp, 2, false, false},
	{0x8b, Xaa, imm, 2, false, u},
	{0x8c, Sty, abs, 4, false, false},
	{0x8d, Sta, abs, 4, false, false},
	{0x8e, Stx, abs, 4, false, false},
	{0x8f, Sax, abs, 4, false, u},

	{0x90, Bcc, rel, 2, false, false},
	{0x91, Sta, izy, 6, false, false},
	{0x93, Ahx, izy, 6, false, u},
	{0x94, Sty, zpx, 4, false, false},
	{0x95, Sta, zpx, 4, false, false},
	{0x96, Stx, zpy, 4, false, false},
	{0x97, Sax, zpy, 4, false, u},
	{0x98, Tya, imp, 2, false, false},
	{0x99, Sta, aby, 5, false, false},
	{0x9a, Txs, imp, 2, false, false},
	{0x9b, Tas, aby, 5, false, u},
	{0x9c, Shy, abx, 5, false, u},
	{0x9d, Sta, abx, 5, false, false},
	{0x9e, Shx, aby, 5, false, u},
	{0x9f, Ahx, aby, 5, false, u},

	{0xa0, Ldy, imm, 2, false, false},
	{0xa1, Lda, izx, 6, false, false},
	{0xa2, Ldx, imm, 2, false, false},
	{0xa3, Lax, izx, 6, false, u},
	{0xa4, Ldy, zpg, 3, false, false},
	{0xa5, Lda, zpg, 3, false, false},
	{0xa6, Ldx, zpg, 3, false, false},
	{0xa7, Lax, zpg, 3, false, u},
	{0xa8, Tay, imp, 2, false, false},
	{0xa9, Lda, imm, 2, false, false},
	{0xaa, Tax, imp, 2, false, false},
	{0xab, Lax, imm, 2, false, u},
	{0xac, Ldy, abs, 4, false, false},
	{0xad, Lda, abs, 4, false, false},
	{0xae, Ldx, abs, 4, false, false},
	{0xaf, Lax, abs, 4, false, u},

	{0xb0, Bcs, rel, 2, false, false},
	{0xb1, Lda, izy, 5, p, false},
	{0xb3, Lax, izy, 5, p, u},
	{0xb4, Ldy, zpx, 4, false, false},
	{0xb5, Lda, zpx, 4, false, false},
	{0xb6, Ldx, zpy, 4, false, false},
	{0xb7, Lax, zpy, 4, false, u},
	{0xb8, Clv, imp, 2, false, false},
	{0xb9, Lda, aby, 4, p, false},
	{0xba, Tsx, imp, 2, false, false},
	{0xbb, Las, aby, 4, p, u},
	{0xbc, Ldy, abx, 4, p, false},
	{0xbd, Lda, abx, 4, p, false},
	{0xbe, Ldx, aby, 4, p, false},
	{0xbf, Lax, aby, 4, p, u},

	{0xc0, Cpy, imm, 2, false, false},
	{0xc1, Cmp, izx, 6, false, false},
	{0xc2, Nop, imm, 2, false, u},
	{0xc3, Dcp, izx, 8, false, u},
	{0xc4, Cpy, zpg, 3, false, false},
	{0xc5, Cmp, zpg, 3, false, false},
	{0xc6, Dec, zpg, 5, false, false},
	{0xc7, Dcp, zpg, 5, false, u},
	{0xc8, Iny, imp, 2, false, false},
	{0xc9, Cmp, imm, 2, false, false},
	{0xca, Dex, imp, 2, false, false},
	{0xcb, Axs, imm, 2, false, u},
	{0xcc, Cpy, abs, 4, false, false},
	{0xcd, Cmp, abs, 4, false, false},
	{0xce, Dec, abs, 6, false, false},
	{0xcf, Dcp, abs, 6, false, u},

	{0xd0, Bne, rel, 2, false, false},
	{0xd1, Cmp, izy, 5, p, false},
	{0xd3, Dcp, izy, 8, false, u},
	{0xd4, Nop, zpx, 4, false, u},
	{0xd5, Cmp, zpx, 4, false, false},
	{0xd6, Dec, zpx, 6, false, false},
	{0xd7, Dcp, zpx, 6, false, u},
	{0xd8, Cld, imp, 2, false, false},
	{0xd9, Cmp, aby, 4, p, false},
	{0xda, Nop, imp, 2, false, u},
	{0xdb, Dcp, aby, 7, false, u},
	{0xdc, Nop, abx, 4, p, u},
	{0xdd, Cmp, abx, 4, p, false},
	{0xde, Dec, abx, 7, false, false},
	{0xdf, Dcp, abx, 7, false, u},

	{0xe0, Cpx, imm, 2, false, false},
	{0xe1, Sbc, izx, 6, false, false},
	{0xe2, Nop, imm, 2, false, u},
	{0xe3, Isc, izx, 8, false, u},
	{0xe4, Cpx, zpg, 3, false, false},
	{0xe5, Sbc, zpg, 3, false, false},
	{0xe6, Inc, zpg, 5, false, false},
	{0xe7, Isc, zpg, 5, false, u},
	{0xe8, Inx, imp, 2, false, false},
	{0xe9, Sbc, imm, 2, false, false},
	{0xea, Nop, imp, 2, false, false},
	{0xeb, Sbc, imm, 2, false, u},
	{0xec, Cpx, abs, 4, false, false},
	{0xed, Sbc, abs, 4, false, false},
	{0xee, Inc, abs, 6, false, false},
	{0xef, Isc, abs, 6, false, u},

	{0xf0, Beq, rel, 2, false, false},
	{0xf1, Sbc, izy, 5, p, false},
	{0xf3, Isc, izy, 8, false, u},
	{0xf4, Nop, zpx, 4, false, u},
	{0xf5, Sbc, zpx, 4, false, false},
	{0xf6, Inc, zpx, 6, false, false},
	{0xf7, Isc, zpx, 6, false, u},
	{0xf8, Sed, imp, 2, false, false},
	{0xf9, Sbc, aby, 4, p, false},
	{0xfa, Nop, imp, 2, false, u},
	{0xfb, Isc, aby, 7, false, u},
	{0xfc, Nop, abx, 4, p, u},
	{0xfd, Sbc, abx, 4, p, false},
	{0xfe, Inc, abx, 7, false, false},
	{0xff, Isc, abx, 7, false, u},
}
