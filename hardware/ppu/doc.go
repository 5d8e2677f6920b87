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

// Package ppu emulates the picture processing unit of the NES. The PPU is
// advanced one dot at a time with the Step() function. The CPU drives the PPU
// for three dots for every CPU cycle.
//
// The raster is 341 dots wide and 262 scanlines high. Scanlines 0 to 239 are
// visible, scanline 240 is idle, the vertical blank starts on scanline 241
// and scanline 261 is the pre-render scanline. On odd frames the first dot of
// the frame is skipped if rendering is enabled.
//
// The PPU is attached to the CPU bus as a device. The eight registers are
// mirrored throughout the range 0x2000 to 0x3fff.
//
// Pixels are written to a Framebuffer as they are generated. The FrameReady()
// function returns true once the visible area of the frame is complete. The
// vertical blank NMI is raised at the same point.
package ppu
