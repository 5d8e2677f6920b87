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

// Package preferences contains the preference values for the emulated
// hardware. The values are stored on disk with the prefs package.
package preferences

import (
	"fmt"

	"github.com/jetsetilly/gopher2a03/prefs"
)

// Preferences defines and collates all the preference values used by the
// hardware emulation.
type Preferences struct {
	dsk *prefs.Disk
	pth string

	// apply decimal mode arithmetic when the decimal flag is set. the 2A03
	// has no decimal mode so this is normally false
	DecimalMode prefs.Bool

	// initialise hardware to unknown state after reset
	RandomState prefs.Bool

	// scaling of the framebuffer presented to the host
	DisplayScale prefs.Int

	// whether the CPU recognises the unofficial opcodes
	UnofficialOpcodes prefs.Bool

	// write an execution trace of every instruction to the log
	Trace prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// maximum display scale.
const MaxDisplayScale = 8

// NewPreferences is the preferred method of initialisation for the
// Preferences type. If the path is empty then the preferences are not bound
// to a file and the Load() and Save() functions do nothing.
func NewPreferences(pth string) (*Preferences, error) {
	p := &Preferences{pth: pth}
	p.SetDefaults()

	p.DisplayScale.SetHookPre(func(v prefs.Value) error {
		s := v.(int)
		if s < 1 || s > MaxDisplayScale {
			return fmt.Errorf("display scale must be between 1 and %d", MaxDisplayScale)
		}
		return nil
	})

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.cpu.decimal", &p.DecimalMode)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.randstate", &p.RandomState)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.ppu.scale", &p.DisplayScale)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.cpu.unofficial", &p.UnofficialOpcodes)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.cpu.trace", &p.Trace)
	if err != nil {
		return nil, err
	}

	err = p.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	p.DecimalMode.Set(false)
	p.RandomState.Set(false)
	p.DisplayScale.Set(2)
	p.UnofficialOpcodes.Set(true)
	p.Trace.Set(false)
}

// Load hardware preferences from disk.
func (p *Preferences) Load() error {
	if p.pth == "" {
		return nil
	}
	return p.dsk.Load()
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	if p.pth == "" {
		return nil
	}
	return p.dsk.Save()
}
