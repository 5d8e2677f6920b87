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

// Package cpu emulates the 2A03 CPU, a 6502 without decimal mode circuitry.
// The CPU executes one instruction (or services one interrupt) at a time with
// the ExecuteInstruction() function, which returns the number of cycles
// consumed. The caller is responsible for running the rest of the hardware
// for the same number of cycles.
//
//	cycles, err := mc.ExecuteInstruction()
//
// The instruction table is created by the instructions package and shared
// between CPU instances.
//
// Interrupts are requested with the RequestNMI() and RequestIRQ() functions.
// Requests are serviced at the beginning of the next call to
// ExecuteInstruction(). A maskable interrupt request remains pending until
// the InterruptDisable flag is clear.
//
// An opcode with no definition in the instruction table causes
// ExecuteInstruction() to return an UnrecognizedInstruction error. The error
// wraps a FaultError, which records the opcode and the address at which it
// was found.
package cpu
