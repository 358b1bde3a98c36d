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

package clocks_test

import (
	"testing"

	"github.com/jetsetilly/mos6502/curated"
	"github.com/jetsetilly/mos6502/hardware/clocks"
	"github.com/jetsetilly/mos6502/test"
)

func TestParse(t *testing.T) {
	v, err := clocks.Parse("apple2")
	test.ExpectedSuccess(t, err)
	test.DemandEquality(t, v, clocks.Apple2)

	v, err = clocks.Parse(" NES_PAL ")
	test.ExpectedSuccess(t, err)
	test.DemandEquality(t, v, clocks.NES_PAL)

	v, err = clocks.Parse("1000000")
	test.ExpectedSuccess(t, err)
	test.DemandEquality(t, v, 1000000)

	for _, s := range []string{"", "zx81", "-5", "0", "12abc"} {
		_, err = clocks.Parse(s)
		test.DemandEquality(t, curated.Is(err, clocks.UnknownClock), true)
	}
}

func TestNames(t *testing.T) {
	n := clocks.Names()
	test.DemandEquality(t, len(n), 8)
	test.DemandEquality(t, n[0], "APPLE2")
	for _, s := range n {
		_, err := clocks.Parse(s)
		test.ExpectedSuccess(t, err)
	}
}
