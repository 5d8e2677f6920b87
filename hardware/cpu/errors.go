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

package cpu

import "fmt"

// Sentinal errors.
const (
	UnrecognizedInstruction = "cpu: unrecognized instruction: %v"
)

// FaultError records the opcode and address of an unrecognized instruction.
type FaultError struct {
	Opcode uint8
	PC     uint16
}

func (e *FaultError) Error() string {
	return fmt.Sprintf("opcode %#02x at %#04x", e.Opcode, e.PC)
}
