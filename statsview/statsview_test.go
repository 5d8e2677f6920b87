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

//go:build !statsview

package statsview_test

import (
	"bytes"
	"testing"

	"github.com/jetsetilly/gopher2a03/statsview"
	"github.com/jetsetilly/gopher2a03/test"
)

func TestStub(t *testing.T) {
	var out bytes.Buffer
	statsview.Launch(&out, "")
	test.ExpectFailure(t, statsview.Available())
	test.ExpectEquality(t, out.Len(), 0)
}
