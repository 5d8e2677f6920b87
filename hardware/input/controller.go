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

package input

import (
	"fmt"
	"strings"
)

// Button identifies a button on the standard controller. The values are in
// the order the buttons are read serially.
type Button int

// List of valid Button values.
const (
	ButtonA Button = iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight

	NumButtons
)

var buttonNames = [NumButtons]string{"A", "B", "Select", "Start", "Up", "Down", "Left", "Right"}

func (b Button) String() string {
	if b < 0 || b >= NumButtons {
		return fmt.Sprintf("Button(%d)", int(b))
	}
	return buttonNames[b]
}

// ParseButton returns the Button with the name. The match is not case
// sensitive.
func ParseButton(name string) (Button, bool) {
	for i, n := range buttonNames {
		if strings.EqualFold(n, name) {
			return Button(i), true
		}
	}
	return ButtonA, false
}

// Controller is the standard eight button controller.
type Controller struct {
	buttons [NumButtons]bool
	strobe  bool

	// the latched state of the buttons. shifted right on every read when the
	// strobe is low
	shift uint8
}

func (c *Controller) String() string {
	s := strings.Builder{}
	for i, p := range c.buttons {
		if p {
			s.WriteString(buttonNames[i][:1])
		} else {
			s.WriteRune('-')
		}
	}
	return s.String()
}

// Set the pressed state of a button.
func (c *Controller) Set(b Button, pressed bool) {
	if b < 0 || b >= NumButtons {
		return
	}
	c.buttons[b] = pressed
}

// Pressed returns the state of the button.
func (c *Controller) Pressed(b Button) bool {
	if b < 0 || b >= NumButtons {
		return false
	}
	return c.buttons[b]
}

// Release all buttons.
func (c *Controller) Release() {
	clear(c.buttons[:])
}

func (c *Controller) latch() {
	c.shift = 0
	for i := NumButtons - 1; i >= 0; i-- {
		c.shift <<= 1
		if c.buttons[i] {
			c.shift |= 0x01
		}
	}
}

// Strobe sets the strobe line. The buttons are latched while the strobe is
// high and when it falls.
func (c *Controller) Strobe(on bool) {
	if on || c.strobe {
		c.latch()
	}
	c.strobe = on
}

// Read the next bit of the serial output. The upper bits of the return value
// are from the open bus and are always 0x40.
func (c *Controller) Read() uint8 {
	if c.strobe {
		c.latch()
	}
	v := c.shift & 0x01
	if !c.strobe {
		// the register fills with ones once all buttons have been read
		c.shift = c.shift>>1 | 0x80
	}
	return v | 0x40
}
