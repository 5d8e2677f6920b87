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

package preferences_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher2a03/hardware/preferences"
	"github.com/jetsetilly/gopher2a03/prefs"
	"github.com/jetsetilly/gopher2a03/test"
)

func TestDefaults(t *testing.T) {
	p, err := preferences.NewPreferences("")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.DecimalMode.Get().(bool), false)
	test.ExpectEquality(t, p.UnofficialOpcodes.Get().(bool), true)
	test.ExpectEquality(t, p.DisplayScale.Get().(int), 2)

	// out of range display scale is rejected
	test.ExpectFailure(t, p.DisplayScale.Set(0))
	test.ExpectFailure(t, p.DisplayScale.Set(preferences.MaxDisplayScale+1))
	test.ExpectEquality(t, p.DisplayScale.Get().(int), 2)

	// unbound preferences can be saved without error
	test.ExpectSuccess(t, p.Save())
}

func TestSaveLoad(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")

	p, err := preferences.NewPreferences(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.DecimalMode.Set(true))
	test.ExpectSuccess(t, p.DisplayScale.Set(3))
	test.DemandSuccess(t, p.Save())

	q, err := preferences.NewPreferences(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.DecimalMode.Get().(bool), true)
	test.ExpectEquality(t, q.DisplayScale.Get().(int), 3)

	q.SetDefaults()
	test.ExpectEquality(t, q.DecimalMode.Get().(bool), false)
}

func TestCommandLine(t *testing.T) {
	prefs.PushCommandLineStack("hardware.cpu.unofficial::false")
	defer prefs.PopCommandLineStack()

	p, err := preferences.NewPreferences("")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.UnofficialOpcodes.Get().(bool), false)
}
