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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. Patterns are normally stored as a package level const
// string, for example the cpu package defines:
//
//	const UnrecognizedInstruction = "cpu: unrecognized instruction (%#02x) at (%#04x)"
//
// and the orchestrator can test for it with:
//
//	if curated.Is(err, cpu.UnrecognizedInstruction) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). We can think of the difference as being 'expected' and
// 'unexpected' errors.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. For example, a pattern of "nes: %v" wrapping an
// error with the message "nes: halted" will be printed as:
//
//	nes: halted
//
// and not:
//
//	nes: nes: halted
//
// Chains are composed of parts separated by the sub-string ': '.
//
// Curated errors can wrap plain errors. The first error value in the list of
// placeholder values is returned by Unwrap(), meaning that the errors.As()
// function in the standard library will find typed errors inside a curated
// error.
package curated
