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

package test_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/mos6502/test"
)

func TestExpectedFailure(t *testing.T) {
	test.ExpectedFailure(t, false)
	test.ExpectedFailure(t, errors.New("test"))
}

func TestExpectedSuccess(t *testing.T) {
	test.ExpectedSuccess(t, true)
	var err error
	test.ExpectedSuccess(t, err)
	test.ExpectedSuccess(t, nil)
}

func TestEquate(t *testing.T) {
	test.Equate(t, uint8(0xff), 255)
	test.Equate(t, uint16(0x1234), 0x1234)
	test.Equate(t, uint16(0x1234), uint16(0x1234))
	test.Equate(t, "sv-bdizc", "sv-bdizc")
	test.Equate(t, 10, 5+5)
}

func TestWriter(t *testing.T) {
	w := &test.Writer{}
	_, _ = w.Write([]byte("hello"))
	test.ExpectedSuccess(t, w.Compare("hello"))
	w.Clear()
	test.ExpectedSuccess(t, w.Compare(""))
}
