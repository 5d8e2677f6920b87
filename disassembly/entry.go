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
	"strings"

	"github.com/jetsetilly/gopher2a03/hardware/cpu/execution"
)

// Entry is a single decoded instruction.
type Entry struct {
	execution.Result

	// the label of an address that is the target of a branch, jump or
	// subroutine call. empty if the address is not a target
	Label string
}

// Bytecode returns the bytes of the instruction as hex values.
func (e Entry) Bytecode() string {
	b := strings.Builder{}
	for i := 0; i < e.ByteCount && i < len(e.Bytes); i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(fmt.Sprintf("%02X", e.Bytes[i]))
	}
	return b.String()
}

// Valid returns false if the entry does not decode to a known instruction.
func (e Entry) Valid() bool {
	return e.Defn != nil
}
