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

// Package memorymap describes the fixed landmarks of the 6502 address space.
// Everything else about the address space is decided by what devices are
// registered with the bus.
//
// The stack is hardwired to page one. The interrupt vectors occupy the last
// six bytes of memory, each vector being a little-endian 16 bit address.
package memorymap

// Memtop is the highest address reachable by the 16 bit address bus.
const Memtop = uint16(0xffff)

// The stack always occupies page one. The stack pointer is an offset into
// this page.
const (
	OriginStack = uint16(0x0100)
	MemtopStack = uint16(0x01ff)
)

// Addresses of the interrupt vectors. The BRK instruction shares the IRQ
// vector.
const (
	NMI   = uint16(0xfffa)
	Reset = uint16(0xfffc)
	IRQ   = uint16(0xfffe)
	BRK   = IRQ
)

// Stack returns the stack address for the stack pointer value.
func Stack(sp uint8) uint16 {
	return OriginStack | uint16(sp)
}

// Page returns the page number for the address.
func Page(address uint16) uint8 {
	return uint8(address >> 8)
}

// SamePage returns true if both addresses are in the same 256 byte page.
func SamePage(a, b uint16) bool {
	return a&0xff00 == b&0xff00
}
