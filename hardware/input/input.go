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

	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/hardware/memory/cpubus"
)

// PortID identifies a controller port.
type PortID int

// List of valid PortID values. NoPort is not a valid port but is useful as a
// zero value.
const (
	NoPort PortID = iota
	Player0
	Player1
)

func (id PortID) String() string {
	switch id {
	case Player0:
		return "Player0"
	case Player1:
		return "Player1"
	}
	return "NoPort"
}

// Event is a change in the state of a button on a controller.
type Event struct {
	Port    PortID
	Button  Button
	Pressed bool
}

func (ev Event) String() string {
	if ev.Pressed {
		return fmt.Sprintf("%s: %s pressed", ev.Port, ev.Button)
	}
	return fmt.Sprintf("%s: %s released", ev.Port, ev.Button)
}

// Sentinal errors.
const (
	UnknownPort = "input: unknown port (%v)"
)

// Input handles all forms of input into the NES.
type Input struct {
	player0 Controller
	player1 Controller

	// events pushed onto the input queue
	pushed chan Event
}

// NewInput is the preferred method of initialisation for the Input type.
func NewInput() *Input {
	return &Input{
		pushed: make(chan Event, 64),
	}
}

func (inp *Input) String() string {
	return fmt.Sprintf("%s %s", &inp.player0, &inp.player1)
}

// Controller returns the controller plugged into the port. Returns nil if the
// port is not valid.
func (inp *Input) Controller(id PortID) *Controller {
	switch id {
	case Player0:
		return &inp.player0
	case Player1:
		return &inp.player1
	}
	return nil
}

// HandleEvent forwards an input event to the controller in the specified port.
func (inp *Input) HandleEvent(ev Event) error {
	c := inp.Controller(ev.Port)
	if c == nil {
		return curated.Errorf(UnknownPort, ev.Port)
	}
	c.Set(ev.Button, ev.Pressed)
	return nil
}

// Process handles events that have been pushed onto the queue.
func (inp *Input) Process() error {
	return inp.handlePushed()
}

// Reset releases all buttons and discards pending events.
func (inp *Input) Reset() {
	inp.player0 = Controller{}
	inp.player1 = Controller{}
	for {
		select {
		case <-inp.pushed:
		default:
			return
		}
	}
}

// Snapshot creates a copy of the controller state. The queue of pushed events
// is not copied and the snapshot should not be used to receive events.
func (inp *Input) Snapshot() *Input {
	return &Input{
		player0: inp.player0,
		player1: inp.player1,
	}
}

// Restore controller state from a snapshot.
func (inp *Input) Restore(s *Input) {
	inp.player0 = s.player0
	inp.player1 = s.player1
}

// Read implements the bus.Device interface. Reading JOY1 returns the next bit
// from the first controller and reading JOY2 the next bit from the second
// controller.
func (inp *Input) Read(address uint16) uint8 {
	switch address {
	case cpubus.JOY1Addr:
		return inp.player0.Read()
	case cpubus.JOY2Addr:
		return inp.player1.Read()
	}
	return 0
}

// Write implements the bus.Device interface. Writing to JOY1 sets the strobe
// of both controllers. Writes to JOY2 are ignored.
func (inp *Input) Write(address uint16, data uint8) {
	if address != cpubus.JOY1Addr {
		return
	}
	strobe := data&0x01 == 0x01
	inp.player0.Strobe(strobe)
	inp.player1.Strobe(strobe)
}
