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

// Package prefs facilitates the storage of preferential values in the
// Gopher2A03 system. It is intended to be used for values that should persist
// between sessions, for example the choice of power-on state for the CPU.
//
// Preference values are typed. The Bool, Int, Float and String types can be
// stored on a Disk instance.
//
//	dsk, _ := prefs.NewDisk(pth)
//	var decimal prefs.Bool
//	_ = dsk.Add("hardware.cpu.decimal", &decimal)
//	_ = dsk.Load()
//
// The file format is a simple key/value list, one per line, with the key and
// value separated by " :: ". Entries in the file that are not registered with
// the Disk instance are preserved when the file is saved. This allows more
// than one Disk instance to share the same file.
//
// Values can be overridden on the command line with the
// PushCommandLineStack() function. Overridden values are consumed the first
// time a matching key is loaded. Overridden values are never saved to disk
// unless the value is explicitly Set() afterwards.
package prefs
