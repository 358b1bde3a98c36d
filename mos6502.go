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
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/mos6502/curated"
	"github.com/jetsetilly/mos6502/digest"
	"github.com/jetsetilly/mos6502/easyterm"
	"github.com/jetsetilly/mos6502/govern"
	"github.com/jetsetilly/mos6502/hardware"
	"github.com/jetsetilly/mos6502/hardware/clocks"
	"github.com/jetsetilly/mos6502/hardware/cpu"
	"github.com/jetsetilly/mos6502/hardware/cpu/microcode"
	"github.com/jetsetilly/mos6502/hardware/peripherals/speaker"
	"github.com/jetsetilly/mos6502/logger"
	"github.com/jetsetilly/mos6502/modalflag"
	"github.com/jetsetilly/mos6502/performance"
	"github.com/jetsetilly/mos6502/performance/limiter"
	"github.com/jetsetilly/mos6502/random"
	"github.com/jetsetilly/mos6502/statsview"
	"github.com/jetsetilly/mos6502/wavwriter"
)

// time allowed for the host to settle before a performance measurement
// begins.
const performanceLeadtime = 2 * time.Second

// number of times per second the realtime limiter stalls the emulation.
const limiterSlices = 100

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "TRACE", "PERFORMANCE")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	// ctrl-c ends the emulation at the next instruction boundary
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	switch md.Mode() {
	case "RUN":
		err = emulate(md, os.Stdout, intChan, false)
	case "TRACE":
		err = emulate(md, os.Stdout, intChan, true)
	case "PERFORMANCE":
		err = perform(md, os.Stdout)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		os.Exit(20)
	}
}

// machineFlags are the flags that describe the system to be emulated. They
// are common to every mode.
type machineFlags struct {
	load   *uint16
	origin *uint16
	rom    *string
	clock  *string
	policy *string
	random *bool
	log    *bool
}

func addMachineFlags(md *modalflag.Modes) machineFlags {
	return machineFlags{
		load:   md.AddAddress("load", 0x0000, "address in RAM at which the program is loaded"),
		origin: md.AddAddress("origin", 0x0400, "entry point of the program. ignored if -rom is specified"),
		rom:    md.AddString("rom", "", "ROM image mapped to the top of memory. must contain the vectors"),
		clock: md.AddString("clock", "APPLE2", fmt.Sprintf("CPU clock in Hz or one of: %s",
			strings.Join(clocks.Names(), ", "))),
		policy: md.AddString("policy", cpu.TrapIllegal.String(), "illegal opcode policy: TRAP, EMULATE"),
		random: md.AddBool("random", false, "randomise RAM contents before loading the program"),
		log:    md.AddBool("log", false, "echo log to stdout"),
	}
}

// newSystemFromFlags creates the system described by the flags and loads the
// program named on the command line.
func newSystemFromFlags(md *modalflag.Modes, output io.Writer, mf machineFlags, sink speaker.SampleSink) (*system, int, error) {
	if *mf.log {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}

	var program string
	switch len(md.RemainingArgs()) {
	case 0:
		if *mf.rom == "" {
			return nil, 0, curated.Errorf("program or rom required for %s mode", md)
		}
	case 1:
		program = md.GetArg(0)
	default:
		return nil, 0, curated.Errorf("too many arguments for %s mode", md)
	}

	prefs := cpu.NewPreferences()
	policy, err := cpu.ParseIllegalPolicy(*mf.policy)
	if err != nil {
		return nil, 0, err
	}
	prefs.IllegalOpcodes = policy

	clock, err := clocks.Parse(*mf.clock)
	if err != nil {
		return nil, 0, err
	}

	romData := defaultROM(*mf.origin)
	if *mf.rom != "" {
		romData, err = os.ReadFile(*mf.rom)
		if err != nil {
			return nil, 0, curated.Errorf("rom: %v", err)
		}
	}

	sys, err := newSystem(prefs, clock, romData, sink)
	if err != nil {
		return nil, 0, err
	}

	if *mf.random {
		err = sys.randomise(random.NewRandom(sys.machine.CPU))
		if err != nil {
			return nil, 0, err
		}
	}

	if program != "" {
		data, err := os.ReadFile(program)
		if err != nil {
			return nil, 0, curated.Errorf("program: %v", err)
		}
		err = sys.load(data, *mf.load)
		if err != nil {
			return nil, 0, err
		}
	}

	return sys, clock, nil
}

func emulate(md *modalflag.Modes, output io.Writer, intChan chan os.Signal, trace bool) error {
	md.NewMode()

	mf := addMachineFlags(md)
	sym := md.AddString("sym", "", "DASM symbols file")
	cycles := md.AddUint64("cycles", 0, "number of cycles to run for. zero runs until halted")
	wav := md.AddString("wav", "", "record speaker audio to wav file")
	mv := md.AddString("memviz", "", "write graph of the CPU to a dot file at end of emulation")
	stats := md.AddBool("stats", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	realtime := md.AddBool("realtime", false, "limit emulation to the speed of the CPU clock")
	dig := md.AddBool("digest", false, "print a hash of the bus activity and of the speaker output")

	step := new(bool)
	if trace {
		step = md.AddBool("step", false, "wait for a keypress after every instruction. q to quit")
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var sinks sampleSinks
	var aw *wavwriter.WavWriter
	if *wav != "" {
		aw, err = wavwriter.New(*wav, speaker.DefaultSampleRate)
		if err != nil {
			return err
		}
		sinks = append(sinks, aw)
	}

	var busDigest *digest.Bus
	var audioDigest *digest.Audio
	if *dig {
		busDigest = digest.NewBus()
		audioDigest = digest.NewAudio()
		sinks = append(sinks, audioDigest)
	}

	var sink speaker.SampleSink
	if len(sinks) > 0 {
		sink = sinks
	}

	sys, clock, err := newSystemFromFlags(md, output, mf, sink)
	if err != nil {
		return err
	}

	var lim *limiter.Limiter
	var limCycles uint64
	if *realtime {
		lim, err = limiter.NewLimiter(clock, limiterSlices)
		if err != nil {
			return err
		}
	}

	if *sym != "" {
		err = sys.symbols.ReadSymbolsFile(*sym)
		if err != nil {
			return err
		}
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(output)
		} else {
			fmt.Fprintln(output, "* stats server not available in this build")
		}
	}

	var stepper *easyterm.Terminal
	if *step {
		stepper, err = easyterm.NewTerminal(os.Stdin)
		if err != nil {
			return err
		}
		err = stepper.CBreakMode()
		if err != nil {
			return err
		}
		defer stepper.CanonicalMode()
	}

	if trace || busDigest != nil {
		sys.machine.SetCycleCallback(func(step microcode.Step) error {
			if trace {
				sys.traceCycle(output, step)
			}
			if busDigest != nil {
				return busDigest.Cycle(step)
			}
			return nil
		})
	}

	continueCheck := func() (govern.State, error) {
		select {
		case <-intChan:
			return govern.Ending, nil
		default:
		}

		if trace {
			sys.traceInstruction(output)
		}

		if lim != nil {
			c := sys.machine.CPU.Cycles()
			lim.Wait(int(c - limCycles))
			limCycles = c
		}

		if stepper != nil {
			k, err := stepper.ReadKey()
			if err != nil {
				return govern.Ending, err
			}
			if k == 'q' || k == 'Q' {
				return govern.Ending, nil
			}
		}

		return govern.Running, nil
	}

	sys.machine.Reset()
	if lim != nil {
		lim.Reset()
	}

	if *cycles > 0 {
		_, err = sys.machine.RunForCycles(*cycles, continueCheck)
	} else {
		err = sys.machine.Run(continueCheck)
	}

	sys.summary(output)
	if busDigest != nil {
		fmt.Fprintf(output, "bus digest: %s\n", busDigest.Hash())
		fmt.Fprintf(output, "audio digest: %s\n", audioDigest.Hash())
	}

	// a halted CPU is reported but is not an error of the emulation
	if curated.Is(err, cpu.IllegalOpcode) || curated.Is(err, cpu.Jammed) {
		fmt.Fprintf(output, "* %v\n", err)
		err = nil
	}

	if aw != nil {
		if werr := aw.EndMixing(); werr != nil && err == nil {
			err = werr
		}
	}

	if *mv != "" {
		if merr := writeMemviz(*mv, sys.machine); merr != nil && err == nil {
			err = merr
		}
	}

	return err
}

func perform(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	mf := addMachineFlags(md)
	duration := md.AddDuration("duration", 5*time.Second, "run performance check for duration")
	profile := md.AddString("profile", "NONE", "run performance check with profiling: NONE, CPU, MEM, BOTH")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	sys, clock, err := newSystemFromFlags(md, output, mf, nil)
	if err != nil {
		return err
	}

	sys.machine.Reset()

	return performance.Check(output, sys.machine, prf, clock, performanceLeadtime, *duration)
}

// writeMemviz writes a graph of the machine's CPU to a dot file.
func writeMemviz(filename string, m *hardware.Machine) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("memviz: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf("memviz: %v", err)
		}
	}()

	memviz.Map(f, m.CPU)
	logger.Logf(logger.Allow, "memviz", "cpu graph written to %s", filename)

	return nil
}
