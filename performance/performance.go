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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/mos6502/govern"
	"github.com/jetsetilly/mos6502/hardware"
	"github.com/jetsetilly/mos6502/logger"
)

// sentinal error returned by Run() loop.
var timedOut = errors.New("performance timed out")

// Check the performance of the emulation. The machine should be ready to run
// and should not halt before the duration has elapsed.
//
// The measurement begins after the leadtime has elapsed, allowing the host
// to settle. The clock argument is the speed of the real hardware in Hz.
func Check(output io.Writer, m *hardware.Machine, profile Profile, clock int, leadtime time.Duration, duration time.Duration) error {
	var startCycles uint64
	var startTime time.Time
	var endTime time.Time

	runner := func() error {
		// false is sent on the channel when the leadtime has elapsed. true
		// when the measurement period has ended
		timerChan := make(chan bool, 1)

		time.AfterFunc(leadtime, func() {
			timerChan <- false
		})

		// checking the timerChan is relatively expensive so it is only
		// checked every PerformanceBrake instructions
		performanceBrake := 0

		return m.Run(func() (govern.State, error) {
			performanceBrake++
			if performanceBrake < hardware.PerformanceBrake {
				return govern.Running, nil
			}
			performanceBrake = 0

			select {
			case v := <-timerChan:
				if v {
					endTime = time.Now()
					return govern.Ending, timedOut
				}

				// leadtime has concluded. start measuring
				startCycles = m.CPU.Cycles()
				startTime = time.Now()
				time.AfterFunc(duration, func() {
					timerChan <- true
				})
			default:
			}

			return govern.Running, nil
		})
	}

	err := RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return err
	}

	cycles := m.CPU.Cycles() - startCycles
	seconds := endTime.Sub(startTime).Seconds()
	mhz, accuracy := CalcMHz(cycles, seconds, clock)

	logger.Logf(logger.Allow, "performance", "%d cycles in %.2f seconds", cycles, seconds)
	fmt.Fprintf(output, "%.2f MHz (%d cycles in %.2f seconds) %.1f%%\n", mhz, cycles, seconds, accuracy)

	return nil
}
