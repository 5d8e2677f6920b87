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

// Package cartridge parses iNES program images and implements the mappers
// that place program (PRG) and graphics (CHR) banks into the address spaces
// of the CPU and PPU.
//
// A mapper is selected by the mapper number in the iNES header, or by the
// Mapper field of the cartridgeloader.Loader. Supported mappers are:
//
//	0 NROM
//	1 MMC1
//	2 UxROM
//	3 CNROM
//	4 MMC3
//	7 AxROM
//
// Unsupported mapper numbers fall back to the NROM placement. The Attach()
// function returns an UnsupportedMapper error in that case but the cartridge
// is still usable.
//
// Banks are copied into CPU memory and VRAM when the cartridge is inserted
// and again whenever a mapper register changes the bank selection. The
// cartridge observes CPU writes with NotifyWrite() and vetoes writes to ROM.
package cartridge
