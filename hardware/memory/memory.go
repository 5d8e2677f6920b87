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

package memory

import (
	"fmt"

	"github.com/jetsetilly/gopher2a03/hardware/instance"
	"github.com/jetsetilly/gopher2a03/hardware/memory/bus"
	"github.com/jetsetilly/gopher2a03/hardware/memory/memorymap"
)

// binding of a device to a range of addresses.
type binding struct {
	origin uint16
	memtop uint16
	device bus.Device
}

// Bus is the CPU address space.
type Bus struct {
	instance *instance.Instance

	data [0x10000]uint8

	bindings []binding
	observer bus.WriteObserver

	// the address and value of the most recent CPU access
	LastAccessAddress uint16
	LastAccessValue   uint8
	LastAccessWrite   bool
}

// NewBus is the preferred method of initialisation for the Bus type. The
// instance argument can be nil.
func NewBus(instance *instance.Instance) *Bus {
	mem := &Bus{
		instance: instance,
	}
	mem.Reset()
	return mem
}

func (mem *Bus) String() string {
	return fmt.Sprintf("%d bindings, last access %#04x", len(mem.bindings), mem.LastAccessAddress)
}

// Reset contents of internal RAM. The contents are randomised if the random
// state preference is set. Cartridge space is unaffected.
func (mem *Bus) Reset() {
	ram := mem.data[:memorymap.MaskRAM+1]
	if mem.instance != nil && mem.instance.Prefs.RandomState.Get().(bool) {
		mem.instance.Random.Fill(ram)
		return
	}
	clear(ram)
}

// Attach a device to the range of addresses origin to memtop inclusive. Ranges
// should not overlap. If they do, the most recently attached device is used.
func (mem *Bus) Attach(origin uint16, memtop uint16, device bus.Device) {
	mem.bindings = append([]binding{{origin: origin, memtop: memtop, device: device}}, mem.bindings...)
}

// Detach all devices and the write observer.
func (mem *Bus) Detach() {
	mem.bindings = mem.bindings[:0]
	mem.observer = nil
}

// Observe sets the write observer. A nil value removes the observer.
func (mem *Bus) Observe(observer bus.WriteObserver) {
	mem.observer = observer
}

func (mem *Bus) device(address uint16) bus.Device {
	for _, b := range mem.bindings {
		if address >= b.origin && address <= b.memtop {
			return b.device
		}
	}
	return nil
}

// Read implements the cpubus.Memory interface.
func (mem *Bus) Read(address uint16) uint8 {
	var v uint8

	if address <= memorymap.MemtopRAM {
		v = mem.data[address&memorymap.MaskRAM]
	} else if d := mem.device(address); d != nil {
		v = d.Read(address)
	} else {
		v = mem.data[address]
	}

	mem.LastAccessAddress = address
	mem.LastAccessValue = v
	mem.LastAccessWrite = false

	return v
}

// Write implements the cpubus.Memory interface.
func (mem *Bus) Write(address uint16, data uint8) {
	mem.LastAccessAddress = address
	mem.LastAccessValue = data
	mem.LastAccessWrite = true

	if mem.observer != nil && !mem.observer.NotifyWrite(address, data) {
		return
	}

	if address <= memorymap.MemtopRAM {
		mem.data[address&memorymap.MaskRAM] = data
		return
	}

	mem.data[address] = data

	if d := mem.device(address); d != nil {
		d.Write(address, data)
	}
}

// ReadNoSideEffect returns the value stored in memory at the address. Device
// registers are not consulted. For a register address the value is the last
// value written to that address.
func (mem *Bus) ReadNoSideEffect(address uint16) uint8 {
	if address <= memorymap.MemtopRAM {
		return mem.data[address&memorymap.MaskRAM]
	}
	return mem.data[address]
}

// Peek implements the bus.DebuggerBus interface.
func (mem *Bus) Peek(address uint16) uint8 {
	return mem.ReadNoSideEffect(address)
}

// Poke implements the bus.DebuggerBus interface. The write observer and
// attached devices are not notified.
func (mem *Bus) Poke(address uint16, data uint8) {
	if address <= memorymap.MemtopRAM {
		mem.data[address&memorymap.MaskRAM] = data
		return
	}
	mem.data[address] = data
}

// Place copies data into memory starting at origin. Data that would extend
// beyond the top of memory is ignored.
func (mem *Bus) Place(origin uint16, data []uint8) {
	copy(mem.data[origin:], data)
}

// Snapshot creates a copy of the memory contents. The copy has no attached
// devices or write observer.
func (mem *Bus) Snapshot() *Bus {
	return &Bus{
		instance:          mem.instance,
		data:              mem.data,
		LastAccessAddress: mem.LastAccessAddress,
		LastAccessValue:   mem.LastAccessValue,
		LastAccessWrite:   mem.LastAccessWrite,
	}
}

// Restore memory contents from a snapshot. Attached devices and the write
// observer are kept.
func (mem *Bus) Restore(s *Bus) {
	mem.data = s.data
	mem.LastAccessAddress = s.LastAccessAddress
	mem.LastAccessValue = s.LastAccessValue
	mem.LastAccessWrite = s.LastAccessWrite
}
