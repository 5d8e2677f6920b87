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

// Package audio implements the audio processing unit of the 2A03. The unit
// has five channels: two pulse channels, a triangle channel, a noise channel
// and the delta modulation channel (DMC).
//
// The registers of the unit are written with NotifyWrite() and the status
// register is read with ReadStatus(). Step() should be called once per CPU
// cycle. Samples are generated at SampleFreq and collected until they are
// taken with TakeSamples().
//
// The frame counter and the DMC can both raise an IRQ. The IRQ line is level
// triggered and should be polled with IRQ() after every instruction.
package audio
