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

package cartridge

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher2a03/cartridgeloader"
	"github.com/jetsetilly/gopher2a03/curated"
)

// Sentinal errors.
const (
	BadHeader         = "cartridge: bad header: %v"
	UnsupportedMapper = "cartridge: unsupported mapper (%d): using NROM"
)

// Cartridge is the NES cartridge. It is empty until Attach() succeeds.
type Cartridge struct {
	Filename  string
	ShortName string
	Hash      string
	Header    Header

	trainer []uint8
	mapper  Mapper
}

// NewCartridge is the preferred method of initialisation for the Cartridge
// type.
func NewCartridge() *Cartridge {
	return &Cartridge{}
}

// Attach the cartridge data from the loader. The cartridge is usable even if
// an UnsupportedMapper error is returned. Any other error leaves the
// cartridge unchanged.
func (cart *Cartridge) Attach(cl cartridgeloader.Loader) error {
	if !cl.HasLoaded() {
		if err := cl.Load(); err != nil {
			return err
		}
	}

	img, err := parse(cl.Data)
	if err != nil {
		return err
	}

	number := img.header.Mapper
	if cl.Mapper != cartridgeloader.AutoMapper {
		number = cl.Mapper
	}

	mapper, ok := newMapper(number, banks{prg: img.prg, chr: img.chr}, img.header)

	cart.Filename = cl.Filename
	cart.ShortName = cl.ShortName()
	cart.Hash = cl.Hash
	cart.Header = img.header
	cart.trainer = img.trainer
	cart.mapper = mapper
	cart.mapper.Reset()

	if !ok {
		return curated.Errorf(UnsupportedMapper, number)
	}

	return nil
}

// Eject removes the cartridge data.
func (cart *Cartridge) Eject() {
	*cart = Cartridge{}
}

// IsEjected returns true if no cartridge data has been attached.
func (cart *Cartridge) IsEjected() bool {
	return cart.mapper == nil
}

// ID returns the short name of the mapper.
func (cart *Cartridge) ID() string {
	if cart.mapper == nil {
		return "ejected"
	}
	return cart.mapper.ID()
}

func (cart *Cartridge) String() string {
	if cart.mapper == nil {
		return "ejected"
	}
	s := strings.Builder{}
	s.WriteString(cart.ShortName)
	s.WriteString(fmt.Sprintf(" [%s]", cart.Header))
	s.WriteString("\n")
	s.WriteString(cart.mapper.String())
	return s.String()
}

// Insert the cartridge into memory. The mapper is reset and its initial banks
// placed.
func (cart *Cartridge) Insert(mem CPUMemory, vram PPUMemory) {
	if cart.mapper == nil {
		return
	}

	vram.SetMirroring(cart.Header.Mirroring)
	vram.SetPatternsWritable(cart.Header.CHRPages == 0)

	if cart.trainer != nil {
		mem.Place(trainerOrigin, cart.trainer)
	}

	cart.mapper.Reset()
	cart.mapper.Plumb(mem, vram)
	cart.mapper.Place()
}

// Plumb memory into the mapper and place the currently selected banks. Used
// when restoring a snapshot.
func (cart *Cartridge) Plumb(mem CPUMemory, vram PPUMemory) {
	if cart.mapper == nil {
		return
	}
	vram.SetPatternsWritable(cart.Header.CHRPages == 0)
	cart.mapper.Plumb(mem, vram)
	cart.mapper.Place()
}

// NotifyWrite implements the bus.WriteObserver interface.
func (cart *Cartridge) NotifyWrite(address uint16, data uint8) bool {
	if cart.mapper == nil {
		return true
	}
	return cart.mapper.NotifyWrite(address, data)
}

// HasScanlineCounter returns true if the mapper counts scanlines.
func (cart *Cartridge) HasScanlineCounter() bool {
	_, ok := cart.mapper.(scanlineCounter)
	return ok
}

// ClockScanline implements the ppu.ScanlineCounter interface.
func (cart *Cartridge) ClockScanline() bool {
	if sc, ok := cart.mapper.(scanlineCounter); ok {
		return sc.ClockScanline()
	}
	return false
}

// Snapshot creates a copy of the cartridge in its current state. The ROM data
// is shared with the copy.
func (cart *Cartridge) Snapshot() *Cartridge {
	n := *cart
	if cart.mapper != nil {
		n.mapper = cart.mapper.Snapshot()
	}
	return &n
}
