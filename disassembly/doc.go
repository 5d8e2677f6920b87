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

// Package disassembly produces a linear disassembly of NES program memory.
//
// Every address in the range is decoded as though it is the start of an
// instruction, unless the address is covered by the previous instruction. The
// downside of this method is that data in the program will also be presented
// as instructions.
//
// Memory is read with the Peek() function of the DebuggerBus so disassembly
// never triggers the side effects of memory mapped registers. Disassembly of
// bank switched cartridges covers only the banks currently visible to the CPU.
package disassembly
