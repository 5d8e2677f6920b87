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

// Package input coordinates input into the NES. Input arrives in two ways:
//
// 1) Immediate input from the host, with the HandleEvent() function
//
// 2) Pushed events, with the PushEvent() function
//
// Pushed events are events that have arrived from a different goroutine. For
// an example of pushed events see the keyboard handling in the terminal
// package. Pushed events are handled when the Process() function is called,
// which the emulation does once per instruction.
//
// The package also provides the standard controller. The controller is
// read serially through the JOY1 and JOY2 registers. Writing to bit 0 of JOY1
// sets the strobe of both controllers. While the strobe is high the state of
// the buttons is latched continuously. When the strobe is low every read
// returns the next button in the sequence A, B, Select, Start, Up, Down,
// Left, Right. After eight reads the controller returns 1.
package input
