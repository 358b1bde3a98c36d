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

package digest_test

import (
	"testing"

	"github.com/jetsetilly/mos6502/digest"
	"github.com/jetsetilly/mos6502/hardware/cpu/microcode"
	"github.com/jetsetilly/mos6502/hardware/peripherals/speaker"
	"github.com/jetsetilly/mos6502/test"
)

// the interfaces the digests are used as
var _ digest.Digest = (*digest.Bus)(nil)
var _ digest.Digest = (*digest.Audio)(nil)
var _ speaker.SampleSink = (*digest.Audio)(nil)

func steps(dig *digest.Bus, n int, data uint8) {
	for i := 0; i < n; i++ {
		_ = dig.Cycle(microcode.Step{
			Kind:    microcode.ReadOperand,
			Address: uint16(i),
			Data:    data,
		})
	}
}

func TestBus(t *testing.T) {
	a := digest.NewBus()
	b := digest.NewBus()
	empty := a.Hash()

	// enough steps to cause more than one flush of the chain
	steps(a, 3000, 0x01)
	steps(b, 3000, 0x01)
	test.DemandEquality(t, a.Hash(), b.Hash())
	test.DemandEquality(t, a.Cycles(), 3000)

	// a single different cycle changes the hash
	steps(b, 1, 0x02)
	steps(a, 1, 0x03)
	test.DemandEquality(t, a.Hash() != b.Hash(), true)

	// hash is not altered by being read
	h := a.Hash()
	test.DemandEquality(t, a.Hash(), h)

	a.ResetDigest()
	test.DemandEquality(t, a.Hash(), empty)
	test.DemandEquality(t, a.Cycles(), 0)
}

func TestAudio(t *testing.T) {
	a := digest.NewAudio()
	b := digest.NewAudio()

	for i := 0; i < 10000; i++ {
		a.AddSample(uint8(i))
		b.AddSample(uint8(i))
	}
	test.DemandEquality(t, a.Hash(), b.Hash())

	b.AddSample(0)
	test.DemandEquality(t, a.Hash() != b.Hash(), true)
}
