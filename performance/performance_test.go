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

package performance_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/mos6502/curated"
	"github.com/jetsetilly/mos6502/hardware"
	"github.com/jetsetilly/mos6502/hardware/clocks"
	"github.com/jetsetilly/mos6502/hardware/cpu"
	"github.com/jetsetilly/mos6502/hardware/memory/ram"
	"github.com/jetsetilly/mos6502/performance"
	"github.com/jetsetilly/mos6502/test"
)

func TestParseProfile(t *testing.T) {
	for _, c := range []struct {
		s string
		p performance.Profile
	}{
		{"", performance.ProfileNone},
		{"none", performance.ProfileNone},
		{"CPU", performance.ProfileCPU},
		{"mem", performance.ProfileMem},
		{"Both", performance.ProfileCPU | performance.ProfileMem},
	} {
		p, err := performance.ParseProfile(c.s)
		test.ExpectedSuccess(t, err)
		test.DemandEquality(t, p, c.p)
	}

	_, err := performance.ParseProfile("trace")
	test.DemandEquality(t, curated.Is(err, performance.UnknownProfile), true)

	test.DemandEquality(t, (performance.ProfileCPU | performance.ProfileMem).String(), "BOTH")
}

func TestCalcMHz(t *testing.T) {
	mhz, accuracy := performance.CalcMHz(clocks.Apple2, 1.0, clocks.Apple2)
	test.DemandEquality(t, mhz, 1.020484)
	test.DemandEquality(t, accuracy, 100.0)

	mhz, accuracy = performance.CalcMHz(2000000, 2.0, clocks.BBC)
	test.DemandEquality(t, mhz, 1.0)
	test.DemandEquality(t, accuracy, 50.0)

	mhz, _ = performance.CalcMHz(1000, 0, clocks.BBC)
	test.DemandEquality(t, mhz, 0.0)
}

func TestRunProfiler(t *testing.T) {
	header := filepath.Join(t.TempDir(), "test")

	ran := false
	err := performance.RunProfiler(performance.ProfileCPU|performance.ProfileMem, header, func() error {
		ran = true
		return nil
	})
	test.ExpectedSuccess(t, err)
	test.DemandEquality(t, ran, true)

	_, err = os.Stat(header + "_cpu.profile")
	test.ExpectedSuccess(t, err)
	_, err = os.Stat(header + "_mem.profile")
	test.ExpectedSuccess(t, err)
}

func TestCheck(t *testing.T) {
	m := hardware.NewMachine(cpu.NewPreferences())
	mem := ram.NewRAM(0x0000, 0x10000)
	test.DemandSuccess(t, m.Attach(0x0000, 0xffff, mem, "ram"))

	// JMP $0400 forever
	test.DemandSuccess(t, mem.Import([]uint8{0x4c, 0x00, 0x04}, 0x0400))
	test.DemandSuccess(t, mem.Import([]uint8{0x00, 0x04}, 0xfffc))
	m.Reset()

	w := &test.Writer{}
	err := performance.Check(w, m, performance.ProfileNone, clocks.Apple2, 10*time.Millisecond, 50*time.Millisecond)
	test.ExpectedSuccess(t, err)
	test.DemandEquality(t, strings.Contains(w.String(), " MHz ("), true)
	test.DemandEquality(t, m.CPU.Cycles() > 0, true)
}
