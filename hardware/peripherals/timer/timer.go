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

// Package timer implements a programmable interval timer in the style of the
// timer found in the 6532 RIOT. The timer is mapped onto the bus at an origin
// of the host's choosing and occupies Size bytes.
//
// Writing to one of the four interval registers sets the timer value and the
// number of CPU cycles between each decrement. When the value passes through
// zero the interrupt flag is raised and the value then decrements once per
// cycle. Reading the INTIM register clears the flag and restores the
// interval.
//
// If enabled, the interrupt flag drives the IRQ line.
package timer

import (
	"fmt"

	"github.com/jetsetilly/mos6502/hardware/memory/bus"
)

// Register offsets from the origin of the timer.
const (
	TIM1T  = 0x00
	TIM8T  = 0x01
	TIM64T = 0x02
	T1024T = 0x03
	INTIM  = 0x04
	TIMINT = 0x05
	IRQEN  = 0x06

	Size = 0x08
)

// Interval indicates how often (in CPU cycles) the timer value decreases.
type Interval int

// List of valid Interval values.
const (
	Interval1    Interval = 1
	Interval8    Interval = 8
	Interval64   Interval = 64
	Interval1024 Interval = 1024
)

func (in Interval) String() string {
	switch in {
	case Interval1:
		return "TIM1T"
	case Interval8:
		return "TIM8T"
	case Interval64:
		return "TIM64T"
	case Interval1024:
		return "T1024T"
	}
	return fmt.Sprintf("unknown interval (%d)", int(in))
}

// Timer implements the bus.Device, bus.Ticker, bus.Peeker and
// bus.InterruptSource interfaces.
type Timer struct {
	origin uint16

	// the interval value most recently requested by the CPU
	Divider Interval

	// the current timer value. reflected in the INTIM register
	INTIMvalue uint8

	// the state of the interrupt flag
	TIMINT bool

	// the number of CPU cycles remaining before the value is decreased.
	//	* set to 0 when new timer is set
	//	* causes value to decrease whenever it reaches -1
	//	* is reset to divider whenever value is decreased
	//
	// with regards to the last point, note that the effective divider is
	// one once the interrupt flag has been raised
	TicksRemaining int

	// whether TIMINT drives the IRQ line
	IRQEnabled bool
}

// NewTimer is the preferred method of initialisation of the Timer type.
func NewTimer(origin uint16) *Timer {
	return &Timer{
		origin:         origin,
		Divider:        Interval1024,
		TicksRemaining: int(Interval1024),
	}
}

// Origin returns the first address of the timer.
func (tmr *Timer) Origin() uint16 {
	return tmr.origin
}

// Memtop returns the last address of the timer.
func (tmr *Timer) Memtop() uint16 {
	return tmr.origin + Size - 1
}

func (tmr *Timer) String() string {
	return fmt.Sprintf("INTIM=%#02x remn=%#02x intv=%s TIMINT=%v",
		tmr.INTIMvalue,
		tmr.TicksRemaining,
		tmr.Divider,
		tmr.TIMINT,
	)
}

// Peek implements the bus.Peeker interface.
func (tmr *Timer) Peek(address uint16) uint8 {
	switch address - tmr.origin {
	case INTIM:
		return tmr.INTIMvalue
	case TIMINT:
		if tmr.TIMINT {
			return 0x80
		}
		return 0x00
	case IRQEN:
		if tmr.IRQEnabled {
			return 0x01
		}
		return 0x00
	}
	return bus.OpenBusValue
}

// Read implements the bus.Device interface.
func (tmr *Timer) Read(address uint16) uint8 {
	v := tmr.Peek(address)

	// reading INTIM acknowledges the interrupt and the decrement reverts to
	// once per timer interval
	if address-tmr.origin == INTIM && tmr.TIMINT {
		tmr.TIMINT = false
		tmr.TicksRemaining = int(tmr.Divider) - 1
	}

	return v
}

// Write implements the bus.Device interface.
func (tmr *Timer) Write(address uint16, data uint8) {
	switch address - tmr.origin {
	case TIM1T:
		tmr.set(Interval1, data)
	case TIM8T:
		tmr.set(Interval8, data)
	case TIM64T:
		tmr.set(Interval64, data)
	case T1024T:
		tmr.set(Interval1024, data)
	case IRQEN:
		tmr.IRQEnabled = data&0x01 == 0x01
	}
}

func (tmr *Timer) set(divider Interval, value uint8) {
	tmr.Divider = divider
	tmr.INTIMvalue = value
	tmr.TIMINT = false
	tmr.TicksRemaining = 0
}

// Tick implements the bus.Ticker interface. Moves the timer forward one
// cycle.
func (tmr *Timer) Tick() {
	tmr.TicksRemaining--
	if tmr.TicksRemaining < 0 {
		tmr.INTIMvalue--
		if tmr.INTIMvalue == 0xff {
			tmr.TIMINT = true
		}

		if tmr.TIMINT {
			tmr.TicksRemaining = 0
		} else {
			tmr.TicksRemaining = int(tmr.Divider) - 1
		}
	}
}

// IRQ implements the bus.InterruptSource interface.
func (tmr *Timer) IRQ() bool {
	return tmr.IRQEnabled && tmr.TIMINT
}

// NMI implements the bus.InterruptSource interface. The timer never asserts
// NMI.
func (tmr *Timer) NMI() bool {
	return false
}
