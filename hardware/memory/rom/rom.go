// This file is part of mos6502.
//
// mos6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mos6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with mos6502.  If not, see <https://www.gnu.org/licenses/>.

// Package rom implements a block of read-only memory suitable for registering
// with the bus.
//
// Writes from the CPU are discarded and logged. The Poke() function allows a
// debugger to alter the contents of the ROM.
package rom

import (
	"fmt"

	"github.com/jetsetilly/mos6502/curated"
	"github.com/jetsetilly/mos6502/logger"
)

// ImportOverflow is the error pattern returned when Import() is given more
// data than will fit.
const ImportOverflow = "rom: import of %d bytes at offset %#04x overflows %d bytes of rom"

// ROM is a block of read-only memory.
type ROM struct {
	origin  uint16
	data    []uint8
	ignored int
}

// NewROM is the preferred method of initialisation for the ROM type. The data
// is copied and the size of the ROM is the length of the data.
func NewROM(origin uint16, data []uint8) *ROM {
	r := &ROM{
		origin: origin,
		data:   make([]uint8, len(data)),
	}
	if len(r.data) == 0 {
		r.data = []uint8{0x00}
	}
	copy(r.data, data)
	return r
}

func (r *ROM) String() string {
	return fmt.Sprintf("rom %#04x (%d bytes)", r.origin, len(r.data))
}

// Origin returns the address of the first byte of ROM.
func (r *ROM) Origin() uint16 {
	return r.origin
}

// Memtop returns the address of the last byte of ROM.
func (r *ROM) Memtop() uint16 {
	return r.origin + uint16(len(r.data)-1)
}

// Size returns the number of bytes in the ROM.
func (r *ROM) Size() int {
	return len(r.data)
}

// Ignored returns the number of writes that have been discarded.
func (r *ROM) Ignored() int {
	return r.ignored
}

func (r *ROM) offset(address uint16) int {
	return int(address-r.origin) % len(r.data)
}

// Read implements the bus.Device interface.
func (r *ROM) Read(address uint16) uint8 {
	return r.data[r.offset(address)]
}

// Write implements the bus.Device interface. The write is discarded.
func (r *ROM) Write(address uint16, data uint8) {
	r.ignored++
	logger.Logf(logger.Allow, "rom", "write to rom at %#04x ignored (%#02x)", address, data)
}

// Poke implements the bus.Poker interface.
func (r *ROM) Poke(address uint16, data uint8) {
	r.data[r.offset(address)] = data
}

// Import copies data into the ROM starting at the offset. Intended for
// loading the ROM after creation, not for use during emulation.
func (r *ROM) Import(data []uint8, offset int) error {
	if offset < 0 || offset+len(data) > len(r.data) {
		return curated.Errorf(ImportOverflow, len(data), offset, len(r.data))
	}
	copy(r.data[offset:], data)
	return nil
}

// Export returns a copy of the ROM contents from offset for length bytes. The
// copy is truncated if the range extends beyond the end of the ROM.
func (r *ROM) Export(offset int, length int) []uint8 {
	if offset < 0 || offset >= len(r.data) || length <= 0 {
		return []uint8{}
	}
	if offset+length > len(r.data) {
		length = len(r.data) - offset
	}
	d := make([]uint8, length)
	copy(d, r.data[offset:offset+length])
	return d
}
