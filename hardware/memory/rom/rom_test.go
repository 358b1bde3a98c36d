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

package rom_test

import (
	"testing"

	"github.com/jetsetilly/mos6502/hardware/memory/rom"
	"github.com/jetsetilly/mos6502/test"
)

func TestWriteIgnored(t *testing.T) {
	r := rom.NewROM(0xfffa, []uint8{0x00, 0x10, 0x00, 0x20, 0x00, 0x30})
	test.Equate(t, r.Memtop(), 0xffff)
	test.Equate(t, r.Read(0xfffc), 0x00)
	test.Equate(t, r.Read(0xfffd), 0x20)

	r.Write(0xfffd, 0x55)
	test.Equate(t, r.Read(0xfffd), 0x20)
	test.Equate(t, r.Ignored(), 1)

	r.Poke(0xfffd, 0x55)
	test.Equate(t, r.Read(0xfffd), 0x55)
	test.Equate(t, r.Ignored(), 1)
}

func TestImport(t *testing.T) {
	r := rom.NewROM(0xf000, make([]uint8, 0x1000))
	test.ExpectedSuccess(t, r.Import([]uint8{0x4c, 0x00, 0xf0}, 0))
	test.Equate(t, r.Read(0xf000), 0x4c)
	test.ExpectedFailure(t, r.Import([]uint8{0x00, 0x00}, 0xfff))

	d := r.Export(0, 3)
	test.DemandEquality(t, len(d), 3)
	test.Equate(t, d[2], 0xf0)
}
