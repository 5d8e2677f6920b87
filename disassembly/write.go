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
	"io"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode bool
}

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	for _, e := range dsm.Entries {
		if err := WriteEntry(output, attr, e); err != nil {
			return err
		}
	}
	return nil
}

// WriteEntry writes a single entry to io.Writer. The label, if there is one,
// is written on its own line before the instruction.
func WriteEntry(output io.Writer, attr WriteAttr, e Entry) error {
	if e.Label != "" {
		if _, err := fmt.Fprintf(output, "%s:\n", e.Label); err != nil {
			return err
		}
	}

	ins := e.Instruction()
	if !e.Valid() {
		ins = fmt.Sprintf(".byte $%02X", e.Bytes[0])
	}

	var err error
	if attr.ByteCode {
		_, err = fmt.Fprintf(output, "%04X  %-8s  %s\n", e.Address, e.Bytecode(), ins)
	} else {
		_, err = fmt.Fprintf(output, "%04X  %s\n", e.Address, ins)
	}
	return err
}
