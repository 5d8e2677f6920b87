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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a failure with t.Errorf() and allow the test
// to continue. The Demand*() functions report failures with t.Fatalf() and
// should be used when the value being tested is required for the rest of the
// test to make sense. For example, testing the length of a slice before
// iterating over it.
//
// The ExpectSuccess() and ExpectFailure() functions test for success under
// generic conditions. A bool value of true is a success, as is a nil error. It
// is worth describing how nil is handled because it is not obvious: the nil
// type is considered a success and consequently will cause ExpectFailure() to
// fail and ExpectSuccess() to succeed. This is because of how errors usually
// work in Go (nil to indicate no error).
package test
