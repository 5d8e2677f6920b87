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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and of allowing different flags for each mode.
//
// At its simplest it can be used as a replacement for the flag package, with
// some differences. The first is that a Modes instance is created and
// initialised with the argument list:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//
// Flags are added to the Modes instance in much the same way as the flag
// package. The program modes are added with AddSubModes(). The first sub-mode
// added is the default mode, selected when the first argument after the flags
// does not name a mode.
//
//	frames := md.AddInt("frames", 0, "number of frames to run")
//	md.AddSubModes("RUN", "DIGEST", "TRACE", "VERSION")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		...
//	}
//
// Calling NewMode() after Parse() begins a new set of flags for the selected
// mode. The remaining arguments are carried over. Mode names are case
// insensitive on the command line and are always upper case in the Mode()
// and Path() results.
package modalflag
