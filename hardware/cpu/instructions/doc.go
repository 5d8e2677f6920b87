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

// Package instructions defines the instruction set of the 2A03. Each of the
// 256 possible opcodes is described by a Definition, which gives the operator,
// addressing mode, number of bytes and number of cycles of the instruction.
//
// The unofficial (or illegal) opcodes are included. Only the twelve opcodes
// that jam a real CPU are left undefined. The CPU treats an undefined opcode
// as an unrecognised instruction.
//
// The Table type is immutable once created with NewTable() and is intended to
// be shared by reference between CPU instances.
package instructions
