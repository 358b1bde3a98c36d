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

// Package speaker implements a one bit speaker of the type found in early
// home computers. Any access to the speaker's address, read or write, toggles
// the position of the speaker cone. The sound is determined entirely by the
// timing of the accesses made by the program.
//
// Because every bus cycle is significant, the speaker is also a useful check
// of the CPU's cycle timing. The dummy accesses made by read-modify-write
// instructions toggle the speaker more than once.
//
// The speaker is a bus.Ticker. On every tick the cone position is sampled and
// at the output sample rate the average position is sent to the SampleSink.
package speaker

import (
	"fmt"

	"github.com/jetsetilly/mos6502/curated"
	"github.com/jetsetilly/mos6502/hardware/clocks"
	"github.com/jetsetilly/mos6502/hardware/memory/bus"
)

// DefaultClock is the CPU clock rate in Hz used to pace the output samples.
const DefaultClock = clocks.Apple2

// DefaultSampleRate is the default output sample rate in Hz.
const DefaultSampleRate = 44100

// the output range of samples. unsigned 8 bit audio with silence at the
// midpoint
const (
	sampleLow  = 0x40
	sampleHigh = 0xc0
)

// SampleSink receives unsigned 8 bit mono samples.
type SampleSink interface {
	AddSample(v uint8)
}

// Speaker implements the bus.Device, bus.Ticker and bus.Peeker interfaces.
type Speaker struct {
	address uint16

	// position of the cone
	level bool

	// total number of accesses
	toggles int

	clock int
	rate  int
	sink  SampleSink

	// phase accumulates the sample rate on every tick. a sample is emitted
	// whenever the phase exceeds the clock rate
	phase int

	// ticks at the high position and all ticks since the last sample
	high  int
	ticks int
}

// NewSpeaker is the preferred method of initialisation for the Speaker type.
// The sink can be nil in which case no samples are produced.
func NewSpeaker(address uint16, clock int, rate int, sink SampleSink) (*Speaker, error) {
	if clock <= 0 || rate <= 0 || rate > clock {
		return nil, curated.Errorf("speaker: sample rate (%d) not compatible with clock (%d)", rate, clock)
	}
	return &Speaker{
		address: address,
		clock:   clock,
		rate:    rate,
		sink:    sink,
	}, nil
}

func (spk *Speaker) String() string {
	return fmt.Sprintf("speaker at %#04x: level=%v toggles=%d", spk.address, spk.level, spk.toggles)
}

// Address returns the address of the speaker.
func (spk *Speaker) Address() uint16 {
	return spk.address
}

// Level returns the position of the speaker cone.
func (spk *Speaker) Level() bool {
	return spk.level
}

// Toggles returns the number of times the speaker has been accessed.
func (spk *Speaker) Toggles() int {
	return spk.toggles
}

func (spk *Speaker) toggle() {
	spk.level = !spk.level
	spk.toggles++
}

// Read implements the bus.Device interface. The speaker has no data to
// return.
func (spk *Speaker) Read(_ uint16) uint8 {
	spk.toggle()
	return bus.OpenBusValue
}

// Write implements the bus.Device interface. The data is ignored.
func (spk *Speaker) Write(_ uint16, _ uint8) {
	spk.toggle()
}

// Peek implements the bus.Peeker interface. Does not move the cone.
func (spk *Speaker) Peek(_ uint16) uint8 {
	return bus.OpenBusValue
}

// Tick implements the bus.Ticker interface.
func (spk *Speaker) Tick() {
	if spk.level {
		spk.high++
	}
	spk.ticks++

	spk.phase += spk.rate
	if spk.phase < spk.clock {
		return
	}
	spk.phase -= spk.clock

	if spk.sink != nil {
		v := sampleLow + (sampleHigh-sampleLow)*spk.high/spk.ticks
		spk.sink.AddSample(uint8(v))
	}

	spk.high = 0
	spk.ticks = 0
}
