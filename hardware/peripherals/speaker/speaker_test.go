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

package speaker_test

import (
	"testing"

	"github.com/jetsetilly/mos6502/hardware/peripherals/speaker"
	"github.com/jetsetilly/mos6502/test"
)

type sink struct {
	samples []uint8
}

func (s *sink) AddSample(v uint8) {
	s.samples = append(s.samples, v)
}

func TestToggle(t *testing.T) {
	spk, err := speaker.NewSpeaker(0xc030, speaker.DefaultClock, speaker.DefaultSampleRate, nil)
	test.DemandSuccess(t, err)

	test.Equate(t, spk.Level(), false)
	spk.Read(0xc030)
	test.Equate(t, spk.Level(), true)
	spk.Write(0xc030, 0x00)
	test.Equate(t, spk.Level(), false)
	test.Equate(t, spk.Toggles(), 2)

	// peeking does not move the cone
	spk.Peek(0xc030)
	test.Equate(t, spk.Level(), false)
	test.Equate(t, spk.Toggles(), 2)

	// no sink is fine
	spk.Tick()
}

func TestSamples(t *testing.T) {
	s := &sink{}

	// one sample every four ticks
	spk, err := speaker.NewSpeaker(0xc030, 4, 1, s)
	test.DemandSuccess(t, err)

	for i := 0; i < 4; i++ {
		spk.Tick()
	}
	test.Equate(t, len(s.samples), 1)
	test.Equate(t, s.samples[0], 0x40)

	spk.Read(0xc030)
	for i := 0; i < 4; i++ {
		spk.Tick()
	}
	test.Equate(t, len(s.samples), 2)
	test.Equate(t, s.samples[1], 0xc0)

	// half the ticks at each position
	spk.Tick()
	spk.Tick()
	spk.Read(0xc030)
	spk.Tick()
	spk.Tick()
	test.Equate(t, len(s.samples), 3)
	test.Equate(t, s.samples[2], 0x80)
}

func TestBadRate(t *testing.T) {
	_, err := speaker.NewSpeaker(0xc030, 100, 200, nil)
	test.ExpectedFailure(t, err)
}
