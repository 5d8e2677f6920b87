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

// Package macro runs a Lua script alongside the emulation. The script can
// press and release controller buttons and inspect or change memory. It is
// useful for automating input in a repeatable manner, for example when
// collating screenshots or preparing a regression test.
//
// The script is run once when the macro is loaded. Any function named frame
// is then called at the end of every frame with the frame number as the only
// argument.
//
//	function frame(n)
//		if n == 60 then
//			press("start")
//		elseif n == 62 then
//			release("start")
//		end
//		if peek("$0200") == 0xff then
//			quit()
//		end
//	end
//
// The following functions are available to the script:
//
//	press(button [, player])     player is 0 or 1 and defaults to 0
//	release(button [, player])
//	peek(address)
//	poke(address, value)
//	log(detail)
//	quit()
//
// Button names are those recognised by input.ParseButton(). Addresses can be
// numbers or strings. Strings prefixed with $ are hexadecimal.
//
// Any errors in a macro script will result in a log entry and the termination
// of the macro execution. The emulation continues to run.
package macro
