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

package registers

import "fmt"

// the stack always lives in the second page of memory.
const stackPage = 0x0100

// StackPointer is an 8 bit register that indexes into the stack page. Push
// and pull operations wrap within the page.
type StackPointer struct {
	Register
}

// NewStackPointer is the preferred method of initialisation for StackPointer.
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{Register: NewRegister(val, "SP")}
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("%02x", sp.value)
}

// Address returns the address in memory that the stack pointer is pointing to.
func (sp StackPointer) Address() uint16 {
	return stackPage | uint16(sp.value)
}

// Push returns the address to write to for a push operation and then moves
// the stack pointer down by one.
func (sp *StackPointer) Push() uint16 {
	a := sp.Address()
	sp.value--
	return a
}

// Pull moves the stack pointer up by one and returns the address to read
// from for a pull operation.
func (sp *StackPointer) Pull() uint16 {
	sp.value++
	return sp.Address()
}
