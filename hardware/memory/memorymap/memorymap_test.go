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

package memorymap_test

import (
	"testing"

	"github.com/jetsetilly/mos6502/hardware/memory/memorymap"
	"github.com/jetsetilly/mos6502/test"
)

func TestStack(t *testing.T) {
	test.Equate(t, memorymap.Stack(0x00), 0x0100)
	test.Equate(t, memorymap.Stack(0xff), 0x01ff)
	test.Equate(t, memorymap.Stack(0xfd), 0x01fd)
}

func TestPages(t *testing.T) {
	test.Equate(t, memorymap.Page(0x12ff), 0x12)
	test.Equate(t, memorymap.SamePage(0x1200, 0x12ff), true)
	test.Equate(t, memorymap.SamePage(0x12ff, 0x1300), false)
	test.Equate(t, memorymap.SamePage(0xffff, 0x0000), false)
}
