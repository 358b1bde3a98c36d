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

// Package clocks defines the speed of the main clock in some well known 6502
// machines. Peripherals that measure time in CPU cycles, the speaker for
// example, use these values to convert cycles into real time.
//
// Values are in Hz.
package clocks

import (
	"sort"
	"strconv"
	"strings"

	"github.com/jetsetilly/mos6502/curated"
)

// List of clock speeds.
const (
	Apple2   = 1020484
	VCS_NTSC = 1193182
	VCS_PAL  = 1182298
	NES_NTSC = 1789773
	NES_PAL  = 1662607
	C64_NTSC = 1022727
	C64_PAL  = 985248
	BBC      = 2000000
)

// UnknownClock is the error pattern returned by Parse().
const UnknownClock = "clocks: unknown clock (%s)"

var named = map[string]int{
	"APPLE2":   Apple2,
	"VCS_NTSC": VCS_NTSC,
	"VCS_PAL":  VCS_PAL,
	"NES_NTSC": NES_NTSC,
	"NES_PAL":  NES_PAL,
	"C64_NTSC": C64_NTSC,
	"C64_PAL":  C64_PAL,
	"BBC":      BBC,
}

// Parse returns the clock speed for the named machine. The name is not case
// sensitive. A plain number is accepted as a speed in Hz.
func Parse(s string) (int, error) {
	n := strings.ToUpper(strings.TrimSpace(s))
	if v, ok := named[n]; ok {
		return v, nil
	}

	if v, err := strconv.Atoi(n); err == nil && v > 0 {
		return v, nil
	}

	return 0, curated.Errorf(UnknownClock, s)
}

// Names returns the names accepted by Parse() in alphabetical order.
func Names() []string {
	n := make([]string, 0, len(named))
	for k := range named {
		n = append(n, k)
	}
	sort.Strings(n)
	return n
}
