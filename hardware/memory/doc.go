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

// Package memory implements the two address spaces of the NES. The Bus is the
// 64KB address space of the CPU and the VRAM is the 16KB address space of
// the PPU.
//
// The Bus is a flat array of bytes. Device registers are attached to ranges of
// the array with the Attach() function. Reads of an attached range are
// directed to the device. Writes are stored in the array and then forwarded
// to the device. Internal RAM is mirrored every 2KB up to address 0x1fff.
//
// A cartridge mapper observes all writes through the WriteObserver interface
// and can prevent a write from being stored. Program banks are placed into the
// array with the Place() function.
//
// The VRAM arranges the four logical nametables into physical memory according
// to the Mirroring value. Palette entries 0x3f10, 0x3f14, 0x3f18 and 0x3f1c
// are mirrors of 0x3f00, 0x3f04, 0x3f08 and 0x3f0c.
package memory
