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

package cartridgeloader_test

import (
	"archive/zip"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher2a03/cartridgeloader"
	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/test"
)

func TestNewLoader(t *testing.T) {
	cl, err := cartridgeloader.NewLoader("roms/test.NeS", "")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cl.Mapper, cartridgeloader.AutoMapper)
	test.ExpectEquality(t, cl.ShortName(), "test")

	cl, err = cartridgeloader.NewLoader("roms/test.nes", "mmc3")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cl.Mapper, 4)

	cl, err = cartridgeloader.NewLoader("roms/test.nes", "66")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cl.Mapper, 66)

	_, err = cartridgeloader.NewLoader("roms/test.nes", "foo")
	test.ExpectFailure(t, err)

	_, err = cartridgeloader.NewLoader("roms/test.a26", "")
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.UnknownExtension))

	_, err = cartridgeloader.NewLoader("", "")
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.NoFilename))
}

func TestLoadFile(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "test.nes")
	test.DemandSuccess(t, os.WriteFile(pth, []byte("NES\x1a"), 0o600))

	cl, err := cartridgeloader.NewLoader(pth, "")
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, cl.HasLoaded())
	test.DemandSuccess(t, cl.Load())
	test.ExpectSuccess(t, cl.HasLoaded())
	test.ExpectEquality(t, string(cl.Data), "NES\x1a")
	test.ExpectEquality(t, len(cl.Hash), 40)

	// a known hash that does not match the data
	cl, err = cartridgeloader.NewLoader(pth, "")
	test.DemandSuccess(t, err)
	cl.Hash = "0000"
	err = cl.Load()
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.HashMismatch))
	test.ExpectFailure(t, cl.HasLoaded())

	cl = cartridgeloader.Loader{Filename: filepath.Join(t.TempDir(), "missing.nes")}
	test.ExpectFailure(t, cl.Load())
}

func TestLoadHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "NES\x1a")
	}))
	defer srv.Close()

	cl := cartridgeloader.Loader{Filename: srv.URL + "/test.nes"}
	test.DemandSuccess(t, cl.Load())
	test.ExpectEquality(t, string(cl.Data), "NES\x1a")
}

func TestFromData(t *testing.T) {
	a := cartridgeloader.NewLoaderFromData("a", []byte{1, 2, 3})
	b := cartridgeloader.NewLoaderFromData("b", []byte{1, 2, 3})
	test.ExpectSuccess(t, a.HasLoaded())
	test.ExpectEquality(t, a.Hash, b.Hash)
	test.DemandSuccess(t, a.Load())
}

func TestLoadArchive(t *testing.T) {
	dir := t.TempDir()
	pth := filepath.Join(dir, "collection.zip")

	f, err := os.Create(pth)
	test.DemandSuccess(t, err)
	zw := zip.NewWriter(f)
	for _, n := range []string{"readme.txt", "game.nes"} {
		w, err := zw.Create(n)
		test.DemandSuccess(t, err)
		_, err = w.Write([]byte(n))
		test.DemandSuccess(t, err)
	}
	test.DemandSuccess(t, zw.Close())
	test.DemandSuccess(t, f.Close())

	// the first cartridge file in the archive
	cl, err := cartridgeloader.NewLoader(pth, "")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cl.ShortName(), "collection")
	test.DemandSuccess(t, cl.Load())
	test.ExpectEquality(t, string(cl.Data), "game.nes")

	// a named file in the archive
	cl, err = cartridgeloader.NewLoader(filepath.Join(pth, "game.nes"), "")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cl.ShortName(), "game")
	test.DemandSuccess(t, cl.Load())
	test.ExpectEquality(t, string(cl.Data), "game.nes")

	// an archive with no cartridge
	empty := filepath.Join(dir, "empty.zip")
	f, err = os.Create(empty)
	test.DemandSuccess(t, err)
	zw = zip.NewWriter(f)
	test.DemandSuccess(t, zw.Close())
	test.DemandSuccess(t, f.Close())

	cl, err = cartridgeloader.NewLoader(empty, "")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, curated.Is(cl.Load(), cartridgeloader.NoCartridge))
}
