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

// Package logger is the central log repository for Gopher2A03. There is a
// single central log which can be added to with Log() and Logf(). Tags
// identify the component responsible for the log entry.
//
//	logger.Log(logger.Allow, "cartridge", "mapper 1 (MMC1)")
//
// Consecutive identical entries are folded into a single entry with a repeat
// count. The log is capped and the oldest entries are discarded when the
// maximum number of entries is reached.
//
// The Permission argument allows the caller to suppress logging at the point
// of the call. For example, the NES type implements Permission so that
// rewinding or headless digest runs can stay quiet.
//
// For testing or for local logging needs, a Logger instance can be created
// with NewLogger(). The package level functions all operate on the central
// instance.
package logger
