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

// Package terminal implements a text terminal front-end for the NES. The
// Display type presents frames using ANSI 24 bit colour and half-block
// characters, two pixels to each character cell. The Keyboard type translates
// key presses on the terminal into controller events for player zero.
//
// Terminals do not report key releases so a pressed button is held for
// HoldFrames frames after the most recent press of that key. Key repeat on the
// host keeps the button held for as long as the key is down.
//
// The easyterm package is used to put the terminal into raw mode so that key
// presses are received without waiting for the return key.
package terminal
