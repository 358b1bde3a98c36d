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

// Package ram implements a block of read/write memory suitable for
// registering with the bus.
//
// The RAM is created with an origin and a size. Addresses given to Read() and
// Write() are full bus addresses and are converted to an offset into the
// RAM by subtracting the origin. Addresses beyond the end of the RAM wrap
// around to the beginning, meaning that a RAM registered for a range larger
// than itself will appear mirrored.
package ram

import (
	"fmt"

	"github.com/jetsetilly/mos6502/curated"
)

// ImportOverflow is the error pattern returned when Import() is given more
// data than will fit.
const ImportOverflow = "ram: import of %d bytes at offset %#04x overflows %d bytes of ram"

// RAM is a block of read/write memory.
type RAM struct {
	origin uint16
	data   []uint8
}

// NewRAM is the preferred method of initialisation for the RAM type. The
// contents are zeroed.
func NewRAM(origin uint16, size int) *RAM {
	if size <= 0 {
		size = 1
	}
	return &RAM{
		origin: origin,
		data:   make([]uint8, size),
	}
}

func (r *RAM) String() string {
	return fmt.Sprintf("ram %#04x (%d bytes)", r.origin, len(r.data))
}

// Origin returns the address of the first byte of RAM.
func (r *RAM) Origin() uint16 {
	return r.origin
}

// Memtop returns the address of the last byte of RAM. Memtop will wrap around
// if the RAM extends beyond the top of the address space.
func (r *RAM) Memtop() uint16 {
	return r.origin + uint16(len(r.data)-1)
}

// Size returns the number of bytes in the RAM.
func (r *RAM) Size() int {
	return len(r.data)
}

func (r *RAM) offset(address uint16) int {
	return int(address-r.origin) % len(r.data)
}

// Read implements the bus.Device interface.
func (r *RAM) Read(address uint16) uint8 {
	return r.data[r.offset(address)]
}

// Write implements the bus.Device interface.
func (r *RAM) Write(address uint16, data uint8) {
	r.data[r.offset(address)] = data
}

// Import copies data into the RAM starting at the offset.
func (r *RAM) Import(data []uint8, offset int) error {
	if offset < 0 || offset+len(data) > len(r.data) {
		return curated.Errorf(ImportOverflow, len(data), offset, len(r.data))
	}
	copy(r.data[offset:], data)
	return nil
}

// Export returns a copy of the RAM contents from offset for length bytes. The
// copy is truncated if the range extends beyond the end of the RAM.
func (r *RAM) Export(offset int, length int) []uint8 {
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
