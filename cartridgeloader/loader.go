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

package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher2a03/archivefs"
	"github.com/jetsetilly/gopher2a03/curated"
)

// Sentinal errors.
const (
	NoFilename       = "cartridgeloader: no filename"
	UnknownExtension = "cartridgeloader: unrecognised file extension (%s)"
	HashMismatch     = "cartridgeloader: unexpected hash value"
	NoCartridge      = "cartridgeloader: no cartridge file in archive (%s)"
)

// AutoMapper indicates that the mapper number should be taken from the
// cartridge header.
const AutoMapper = -1

// Loader is used to specify the cartridge to use when attaching to the NES.
type Loader struct {
	// filename of cartridge to load
	Filename string

	// mapper number to use instead of the value in the cartridge header.
	// AutoMapper indicates that the value in the header should be used
	Mapper int

	// expected hash of the loaded cartridge. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
//
// The mapper argument will be used to set the Mapper field, unless the
// argument is either "AUTO" or the empty string. The mapper can be specified
// by number or by one of the names recognised by MapperNumber().
//
// File extensions are checked against the FileExtensions list and can be in
// upper or lower case or a mixture of both.
func NewLoader(filename string, mapper string) (Loader, error) {
	cl := Loader{
		Filename: filename,
		Mapper:   AutoMapper,
	}

	if filename == "" {
		return cl, curated.Errorf(NoFilename)
	}

	ext := strings.ToUpper(filepath.Ext(filename))
	if !slices.Contains(FileExtensions[:], ext) && !archivefs.IsArchiveExt(filename) {
		return cl, curated.Errorf(UnknownExtension, ext)
	}

	mapper = strings.TrimSpace(strings.ToUpper(mapper))
	if mapper != "AUTO" && mapper != "" {
		n, ok := MapperNumber(mapper)
		if !ok {
			return cl, curated.Errorf("cartridgeloader: unrecognised mapper (%s)", mapper)
		}
		cl.Mapper = n
	}

	return cl, nil
}

// NewLoaderFromData creates a Loader for data that is already in memory. The
// name is used as the filename.
func NewLoaderFromData(name string, data []byte) Loader {
	cl := Loader{
		Filename: name,
		Mapper:   AutoMapper,
		Data:     data,
	}
	cl.Hash = fmt.Sprintf("%x", sha1.Sum(cl.Data))
	return cl
}

// the names of the supported mappers.
var mapperNames = map[string]int{
	"NROM":  0,
	"MMC1":  1,
	"UXROM": 2,
	"CNROM": 3,
	"MMC3":  4,
	"AXROM": 7,
}

// MapperNumber returns the iNES mapper number for the name. Numbers are also
// accepted.
func MapperNumber(name string) (int, bool) {
	name = strings.ToUpper(name)
	if n, ok := mapperNames[name]; ok {
		return n, true
	}
	n, err := strconv.Atoi(name)
	if err != nil || n < 0 || n > 255 {
		return 0, false
	}
	return n, true
}

// ShortName returns a shortened version of the Loader filename.
func (cl Loader) ShortName() string {
	shortCartName := archivefs.TrimArchiveExt(filepath.Base(cl.Filename))
	shortCartName = strings.TrimSuffix(shortCartName, filepath.Ext(shortCartName))
	return shortCartName
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the cartridge data. Loader filenames with a valid schema will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	if cl.Filename == "" {
		return curated.Errorf(NoFilename)
	}

	scheme := "file"

	url, err := url.Parse(cl.Filename)
	if err == nil && len(url.Scheme) > 1 {
		scheme = url.Scheme
	}

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(cl.Filename)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf("cartridgeloader: %v", resp.Status)
		}

		cl.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}

	case "file":
		cl.Data, err = loadFile(cl.Filename)
		if err != nil {
			return err
		}

	default:
		return curated.Errorf("cartridgeloader: %v", fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	hash := fmt.Sprintf("%x", sha1.Sum(cl.Data))

	// check for hash consistency
	if cl.Hash != "" && cl.Hash != hash {
		cl.Data = nil
		return curated.Errorf(HashMismatch)
	}

	cl.Hash = hash

	return nil
}

// loadFile reads the named file. The file may be inside an archive. If the
// filename is an archive then the first file in the root of the archive with
// a cartridge file extension is loaded.
func loadFile(filename string) ([]byte, error) {
	var afs archivefs.Path
	defer afs.Close()

	if err := afs.Set(filename); err != nil {
		return nil, curated.Errorf("cartridgeloader: %v", err)
	}

	if afs.IsDir() {
		if !afs.InArchive() {
			return nil, curated.Errorf("cartridgeloader: %v", fmt.Sprintf("%s is a directory", filename))
		}

		entries, err := afs.List()
		if err != nil {
			return nil, curated.Errorf("cartridgeloader: %v", err)
		}

		idx := slices.IndexFunc(entries, func(e archivefs.Node) bool {
			return !e.IsDir && slices.Contains(FileExtensions[:], strings.ToUpper(filepath.Ext(e.Name)))
		})
		if idx == -1 {
			return nil, curated.Errorf(NoCartridge, filename)
		}

		if err := afs.Set(filepath.Join(filename, entries[idx].Name)); err != nil {
			return nil, curated.Errorf("cartridgeloader: %v", err)
		}
	}

	r, sz, err := afs.Open()
	if err != nil {
		return nil, curated.Errorf("cartridgeloader: %v", err)
	}
	if c, ok := r.(io.Closer); ok {
		defer c.Close()
	}

	data := make([]byte, sz)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, curated.Errorf("cartridgeloader: %v", err)
	}

	return data, nil
}
