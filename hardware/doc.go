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

// Package hardware is the base package for the NES emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The NES type is the root of the emulation and contains external references
// to all the NES sub-systems. From here, the emulation can either be run one
// frame at a time with RunFrame(), run continuously with Run(), or stepped
// one CPU instruction at a time with Step().
//
// After every CPU instruction the PPU is stepped three dots for every CPU
// cycle consumed and the audio sequencer once for every CPU cycle. A write to
// the OAM DMA register stalls the CPU and the PPU and audio are advanced
// inline for the duration of the transfer.
//
// Completed frames are handed to the Presenter and audio samples to the
// AudioMixer at the end of every call to RunFrame(). Both are optional.
package hardware
