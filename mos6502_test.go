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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/mos6502/curated"
	"github.com/jetsetilly/mos6502/hardware/clocks"
	"github.com/jetsetilly/mos6502/hardware/cpu"
	"github.com/jetsetilly/mos6502/hardware/memory/memorymap"
	"github.com/jetsetilly/mos6502/hardware/peripherals/speaker"
	"github.com/jetsetilly/mos6502/modalflag"
	"github.com/jetsetilly/mos6502/random"
	"github.com/jetsetilly/mos6502/test"
)

// writes a byte to the speaker in an endless loop
var speakerLoop = []uint8{
	0xa9, 0x01, // LDA #$01
	0x8d, 0x30, 0xc0, // STA $C030
	0x4c, 0x00, 0x04, // JMP $0400
}

func TestDefaultROM(t *testing.T) {
	data := defaultROM(0x1234)
	test.DemandEquality(t, len(data), defaultROMSize)

	origin := memorymap.Memtop - defaultROMSize + 1
	test.DemandEquality(t, data[0], uint8(0x40))
	test.DemandEquality(t, data[memorymap.Reset-origin], uint8(0x34))
	test.DemandEquality(t, data[memorymap.Reset-origin+1], uint8(0x12))
	test.DemandEquality(t, data[memorymap.IRQ-origin+1], uint8(0xff))
	test.DemandEquality(t, data[memorymap.NMI-origin], uint8(0x00))
}

func TestSystem(t *testing.T) {
	sys, err := newSystem(cpu.NewPreferences(), speaker.DefaultClock, defaultROM(0x0400), nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, sys.load(speakerLoop, 0x0400))

	sys.machine.Reset()
	n, err := sys.machine.RunForCycles(20, nil)
	test.ExpectedSuccess(t, err)
	test.DemandEquality(t, n, uint64(22))
	test.DemandEquality(t, sys.speaker.Toggles(), 2)
	test.DemandEquality(t, sys.machine.CPU.A().Value(), uint8(0x01))
	test.DemandEquality(t, sys.machine.Bus.Strays(), 0)
}

func TestSystemROMSize(t *testing.T) {
	_, err := newSystem(cpu.NewPreferences(), speaker.DefaultClock, nil, nil)
	test.DemandEquality(t, curated.Is(err, romEmpty), true)

	_, err = newSystem(cpu.NewPreferences(), speaker.DefaultClock, make([]uint8, 0x4000), nil)
	test.DemandEquality(t, curated.Is(err, romTooLarge), true)

	// largest ROM image fits exactly between the timer and the top of memory
	_, err = newSystem(cpu.NewPreferences(), speaker.DefaultClock, make([]uint8, 0x3f00), nil)
	test.ExpectedSuccess(t, err)
}

func TestSystemRandomise(t *testing.T) {
	sys, err := newSystem(cpu.NewPreferences(), speaker.DefaultClock, defaultROM(0x0400), nil)
	test.DemandSuccess(t, err)

	rnd := random.NewRandom(sys.machine.CPU)
	rnd.ZeroSeed = true
	test.ExpectedSuccess(t, sys.randomise(rnd))

	nonZero := 0
	for _, v := range sys.ram.Export(0, sys.ram.Size()) {
		if v != 0 {
			nonZero++
		}
	}
	test.DemandEquality(t, nonZero > sys.ram.Size()/2, true)
}

func TestRandomFlag(t *testing.T) {
	fn := writeProgram(t, speakerLoop)

	out, err := emulateArgs(t, "RUN", "-random", "-load", "$0400", "-cycles", "100", fn)
	test.ExpectedSuccess(t, err)
	test.DemandEquality(t, strings.Contains(out, "speaker toggles:"), true)
}

func TestSystemLoadOverflow(t *testing.T) {
	sys, err := newSystem(cpu.NewPreferences(), speaker.DefaultClock, defaultROM(0x0400), nil)
	test.DemandSuccess(t, err)
	test.ExpectedFailure(t, sys.load(speakerLoop, 0xbffe))
}

// emulateArgs runs the emulate() function as the main() function would.
func emulateArgs(t *testing.T, args ...string) (string, error) {
	t.Helper()

	md := &modalflag.Modes{Output: &test.Writer{}}
	md.NewArgs(args)
	md.AddSubModes("RUN", "TRACE")

	p, err := md.Parse()
	test.DemandEquality(t, p, modalflag.ParseContinue)
	test.DemandSuccess(t, err)

	w := &test.Writer{}
	err = emulate(md, w, make(chan os.Signal, 1), md.Mode() == "TRACE")
	return w.String(), err
}

func writeProgram(t *testing.T, data []uint8) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "program.bin")
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o644))
	return fn
}

func TestRunMode(t *testing.T) {
	fn := writeProgram(t, speakerLoop)

	out, err := emulateArgs(t, "RUN", "-load", "$0400", "-cycles", "20", fn)
	test.ExpectedSuccess(t, err)
	test.DemandEquality(t, strings.Contains(out, "cycles: 22\n"), true)
	test.DemandEquality(t, strings.Contains(out, "speaker toggles: 2\n"), true)
}

func TestTraceMode(t *testing.T) {
	fn := writeProgram(t, speakerLoop)

	out, err := emulateArgs(t, "TRACE", "-load", "$0400", "-cycles", "20", fn)
	test.ExpectedSuccess(t, err)
	test.DemandEquality(t, strings.Contains(out, "reset [7]\n"), true)
	test.DemandEquality(t, strings.Contains(out, "LDA #$01 [2]\n"), true)
	test.DemandEquality(t, strings.Contains(out, "SPKR\n"), true)
	test.DemandEquality(t, strings.Contains(out, "RESET\n"), true)
}

func TestTraceEffectiveAddress(t *testing.T) {
	// LDX #$01; LDA $04ff,X; JAM
	fn := writeProgram(t, []uint8{0xa2, 0x01, 0xbd, 0xff, 0x04, 0x02})

	out, err := emulateArgs(t, "TRACE", "-load", "$0400", fn)
	test.ExpectedSuccess(t, err)
	test.DemandEquality(t, strings.Contains(out, "LDA $04ff,X [5] page-fault  -> $0500 (page crossed)\n"), true)

	// instructions that are not indexed or indirect are not resolved
	test.DemandEquality(t, strings.Contains(out, "LDX #$01 [2]\n"), true)
}

func TestTrapMode(t *testing.T) {
	fn := writeProgram(t, []uint8{0x02})

	out, err := emulateArgs(t, "RUN", "-load", "0x400", fn)
	test.ExpectedSuccess(t, err)
	test.DemandEquality(t, strings.Contains(out, "illegal opcode"), true)
}

func TestBadPolicy(t *testing.T) {
	fn := writeProgram(t, speakerLoop)

	_, err := emulateArgs(t, "RUN", "-policy", "ignore", fn)
	test.ExpectedFailure(t, err)
}

func TestBadClock(t *testing.T) {
	fn := writeProgram(t, speakerLoop)

	_, err := emulateArgs(t, "RUN", "-clock", "zx81", fn)
	test.DemandEquality(t, curated.Is(err, clocks.UnknownClock), true)
}

func TestWavAndMemviz(t *testing.T) {
	fn := writeProgram(t, speakerLoop)
	dir := t.TempDir()
	wav := filepath.Join(dir, "out.wav")
	dot := filepath.Join(dir, "cpu.dot")

	_, err := emulateArgs(t, "RUN", "-load", "$0400", "-cycles", "1000", "-wav", wav, "-memviz", dot, fn)
	test.ExpectedSuccess(t, err)

	st, err := os.Stat(wav)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, st.Size() > 44, true)

	d, err := os.ReadFile(dot)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, strings.Contains(string(d), "digraph"), true)
}

func TestPerformanceMode(t *testing.T) {
	if testing.Short() {
		t.Skip("performance check takes more than two seconds")
	}

	fn := writeProgram(t, speakerLoop)

	md := &modalflag.Modes{Output: &test.Writer{}}
	md.NewArgs([]string{"PERFORMANCE", "-load", "$0400", "-duration", "10ms", fn})
	md.AddSubModes("RUN", "TRACE", "PERFORMANCE")

	p, err := md.Parse()
	test.DemandEquality(t, p, modalflag.ParseContinue)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, md.Mode(), "PERFORMANCE")

	w := &test.Writer{}
	err = perform(md, w)
	test.ExpectedSuccess(t, err)
	test.DemandEquality(t, strings.Contains(w.String(), " MHz ("), true)
}

func TestDigest(t *testing.T) {
	fn := writeProgram(t, speakerLoop)
	wav := filepath.Join(t.TempDir(), "out.wav")

	a, err := emulateArgs(t, "RUN", "-load", "$0400", "-cycles", "5000", "-digest", fn)
	test.ExpectedSuccess(t, err)
	b, err := emulateArgs(t, "RUN", "-load", "$0400", "-cycles", "5000", "-digest", "-wav", wav, fn)
	test.ExpectedSuccess(t, err)

	test.DemandEquality(t, strings.Contains(a, "bus digest: "), true)
	test.DemandEquality(t, a, b)

	// tracing does not alter the bus activity. both cycle counts end on the
	// same instruction boundary
	c, err := emulateArgs(t, "TRACE", "-load", "$0400", "-cycles", "5001", "-digest", fn)
	test.ExpectedSuccess(t, err)
	digestLine := func(s string) string {
		i := strings.Index(s, "bus digest: ")
		return s[i:]
	}
	test.DemandEquality(t, digestLine(a), digestLine(c))
}

func TestRealtime(t *testing.T) {
	fn := writeProgram(t, speakerLoop)

	// 20000 cycles at 1MHz is 20ms of real time
	start := time.Now()
	out, err := emulateArgs(t, "RUN", "-load", "$0400", "-cycles", "20000", "-clock", "1000000", "-realtime", fn)
	test.ExpectedSuccess(t, err)
	test.DemandEquality(t, time.Since(start) >= 10*time.Millisecond, true)
	test.DemandEquality(t, strings.Contains(out, "cycles: "), true)
}
