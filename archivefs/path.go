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

package archivefs

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// Node represents a single entry in a directory or archive.
type Node struct {
	Name string

	// a recognised archive file is also considered to be directory
	IsDir     bool
	IsArchive bool
}

func (e Node) String() string {
	return e.Name
}

// Path represents a single destination in the file system.
type Path struct {
	current string
	isDir   bool

	zf *zip.ReadCloser

	// the location inside the zip file. paths inside a zip file always use
	// forward slashes
	inZipPath string
	inZipFile string
}

// String returns the current path.
func (afs Path) String() string {
	return afs.current
}

// IsDir returns true if Path is currently set to a directory. For the purposes
// of archivefs, the root of an archive is treated as a directory.
func (afs Path) IsDir() bool {
	return afs.isDir
}

// InArchive returns true if path is currently inside an archive.
func (afs Path) InArchive() bool {
	return afs.zf != nil
}

// Close any open zip files and reset path.
func (afs *Path) Close() {
	afs.current = ""
	afs.isDir = false
	afs.inZipPath = ""
	afs.inZipFile = ""
	if afs.zf != nil {
		afs.zf.Close()
		afs.zf = nil
	}
}

// Set the path. The path may pass through one archive file.
func (afs *Path) Set(pth string) error {
	afs.Close()

	pth = filepath.Clean(pth)
	lst := strings.Split(pth, string(filepath.Separator))

	// strings.Split() loses the leading separator of an absolute path
	if lst[0] == "" {
		lst[0] = string(filepath.Separator)
	}

	pth = ""
	for _, l := range lst {
		pth = filepath.Join(pth, l)

		if afs.zf != nil {
			p := path.Join(afs.inZipPath, l)

			f, err := afs.zf.Open(p)
			if err != nil {
				afs.Close()
				return fmt.Errorf("archivefs: %w", err)
			}
			fi, err := f.Stat()
			f.Close()
			if err != nil {
				afs.Close()
				return fmt.Errorf("archivefs: %w", err)
			}

			afs.isDir = fi.IsDir()
			if afs.isDir {
				afs.inZipPath = p
				afs.inZipFile = ""
			} else {
				afs.inZipFile = l
			}
			continue
		}

		fi, err := os.Stat(pth)
		if err != nil {
			afs.Close()
			return fmt.Errorf("archivefs: %w", err)
		}

		afs.isDir = fi.IsDir()
		if afs.isDir {
			continue
		}

		afs.zf, err = zip.OpenReader(pth)
		if err == nil {
			afs.isDir = true
			continue
		}
		afs.zf = nil

		if !errors.Is(err, zip.ErrFormat) {
			afs.Close()
			return fmt.Errorf("archivefs: %w", err)
		}
	}

	afs.current = pth

	return nil
}

// Open the file previously set by the Set() function. Files inside an archive
// are read into memory.
//
// Returns the io.ReadSeeker, the size of the data behind the ReadSeeker and any
// errors.
func (afs Path) Open() (io.ReadSeeker, int, error) {
	if afs.isDir {
		return nil, 0, fmt.Errorf("archivefs: %s is a directory", afs.current)
	}

	if afs.zf != nil {
		f, err := afs.zf.Open(path.Join(afs.inZipPath, afs.inZipFile))
		if err != nil {
			return nil, 0, fmt.Errorf("archivefs: %w", err)
		}
		defer f.Close()

		b, err := io.ReadAll(f)
		if err != nil {
			return nil, 0, fmt.Errorf("archivefs: %w", err)
		}

		return bytes.NewReader(b), len(b), nil
	}

	f, err := os.Open(afs.current)
	if err != nil {
		return nil, 0, fmt.Errorf("archivefs: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("archivefs: %w", err)
	}

	return f, int(info.Size()), nil
}

// List returns the child entries for the current path location. If the current
// path is a file then the list will be the contents of the containing
// directory of that file. Directories are listed first.
func (afs Path) List() ([]Node, error) {
	var ent []Node

	if afs.zf != nil {
		for _, f := range afs.zf.File {
			name := strings.TrimSuffix(f.Name, "/")
			if path.Dir(name) != afs.inZipPath && !(afs.inZipPath == "" && path.Dir(name) == ".") {
				continue
			}

			fi := f.FileInfo()
			ent = append(ent, Node{
				Name:  fi.Name(),
				IsDir: fi.IsDir(),
			})
		}
	} else {
		dir := afs.current
		if !afs.isDir {
			dir = filepath.Dir(dir)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("archivefs: %w", err)
		}

		for _, d := range entries {
			// os.Stat() follows links to directories
			fi, err := os.Stat(filepath.Join(dir, d.Name()))
			if err != nil {
				continue
			}

			n := Node{
				Name:  d.Name(),
				IsDir: fi.IsDir(),
			}
			if !n.IsDir && IsArchiveExt(d.Name()) {
				n.IsDir = true
				n.IsArchive = true
			}
			ent = append(ent, n)
		}
	}

	sort.SliceStable(ent, func(i int, j int) bool {
		if ent[i].IsDir != ent[j].IsDir {
			return ent[i].IsDir
		}
		return strings.ToLower(ent[i].Name) < strings.ToLower(ent[j].Name)
	})

	return ent, nil
}
