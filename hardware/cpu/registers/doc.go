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

// Package registers implements the three types of registers found in the 6502
// family of CPUs: the general purpose 8 bit register, the 16 bit program
// counter and the status register. The stack pointer is a specialisation of
// the 8 bit register.
//
// The 8 bit Register type implements arithmetic and logical operations. The
// Add() function returns the carry and overflow flags that result from the
// addition. Subtract() is implemented as an addition with the ones complement
// of the operand, in the same way as the real CPU.
//
// The AddDecimal() and SubtractDecimal() functions implement decimal mode
// arithmetic. Note that the 2A03 has no decimal mode circuitry and the
// decimal flag is normally inert. The decimal functions exist for
// compatibility with a legacy behaviour that treats the hexadecimal digits of
// each operand as decimal digits. The results deviate from true BCD
// arithmetic for operands that are not valid BCD values.
package registers
