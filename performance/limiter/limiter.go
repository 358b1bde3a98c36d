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

// Package limiter provides a rough and ready way of limiting the emulation
// to the speed of real hardware.
//
// A second is divided into a number of slices. Emulated cycles are reported
// to the Limiter with Wait() and when a slice's worth of cycles has been
// reported the function blocks until the real time allotted to the slice has
// passed. For example:
//
//	lim, _ := limiter.NewLimiter(clocks.Apple2, 100)
//	for {
//		n, _ := m.Step()
//		lim.Wait(n)
//	}
package limiter

import (
	"time"

	"github.com/jetsetilly/mos6502/curated"
)

// InvalidLimit is the error pattern returned by NewLimiter().
const InvalidLimit = "limiter: invalid limit (%d Hz in %d slices)"

// Limiter stalls the emulation to keep it at a fixed clock rate.
type Limiter struct {
	cyclesPerSlice int
	slice          time.Duration

	// cycles reported since the end of the last slice
	count int

	// when the current slice ends
	deadline time.Time
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
// The clock is in Hz and slicesPerSecond says how often the limiter will
// stall. The clock must be at least as large as the number of slices.
func NewLimiter(clock int, slicesPerSecond int) (*Limiter, error) {
	if slicesPerSecond <= 0 || clock < slicesPerSecond {
		return nil, curated.Errorf(InvalidLimit, clock, slicesPerSecond)
	}

	lim := &Limiter{
		cyclesPerSlice: clock / slicesPerSecond,
		slice:          time.Second / time.Duration(slicesPerSecond),
	}
	lim.Reset()

	return lim, nil
}

// Reset the limiter. The next slice begins now.
func (lim *Limiter) Reset() {
	lim.count = 0
	lim.deadline = time.Now().Add(lim.slice)
}

// Wait reports the number of cycles that have been emulated. Blocks if a
// slice has been completed and the real time for the slice has not yet
// elapsed.
func (lim *Limiter) Wait(cycles int) {
	lim.count += cycles
	for lim.count >= lim.cyclesPerSlice {
		lim.count -= lim.cyclesPerSlice

		now := time.Now()
		if now.Before(lim.deadline) {
			time.Sleep(lim.deadline.Sub(now))
			lim.deadline = lim.deadline.Add(lim.slice)
		} else if now.Sub(lim.deadline) > lim.slice {
			// too far behind to catch up. start again from now
			lim.deadline = now.Add(lim.slice)
		} else {
			lim.deadline = lim.deadline.Add(lim.slice)
		}
	}
}
