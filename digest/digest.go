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

// Package digest contains implementations of the hardware.Presenter and
// hardware.AudioMixer interfaces that produce a cryptographic hash of the
// output. The hash can be used to compare output from subsequent emulation
// executions. If a new hash differs from a previously recorded value then
// something has changed. This is the basis for regression tests.
//
// Each hash is chained to the previous hash so the final value depends on
// every frame or sample that was presented, and on the order in which they
// were presented.
package digest

// Digest implementations should return a cryptographic hash in response to a
// Hash() request.
type Digest interface {
	Hash() string
	ResetDigest()
}
