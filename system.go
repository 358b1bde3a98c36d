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

	"github.com/jetsetilly/mos6502/curated"
	"github.com/jetsetilly/mos6502/hardware"
	"github.com/jetsetilly/mos6502/hardware/cpu"
	"github.com/jetsetilly/mos6502/hardware/cpu/addressing"
	"github.com/jetsetilly/mos6502/hardware/cpu/instructions"
	"github.com/jetsetilly/mos6502/hardware/cpu/microcode"
	"github.com/jetsetilly/mos6502/hardware/memory/memorymap"
	"github.com/jetsetilly/mos6502/hardware/memory/ram"
	"github.com/jetsetilly/mos6502/hardware/memory/rom"
	"github.com/jetsetilly/mos6502/hardware/peripherals/speaker"
	"github.com/jetsetilly/mos6502/hardware/peripherals/timer"
	"github.com/jetsetilly/mos6502/random"
	"github.com/jetsetilly/mos6502/symbols"
)

// the layout of the host system.
const (
	ramOrigin = uint16(0x0000)
	ramMemtop = uint16(0xbfff)

	speakerAddress = uint16(0xc030)
	timerOrigin    = uint16(0xc040)

	// lowest address a ROM image can start at
	romLowest = uint16(0xc100)

	// size of the ROM created when no ROM image is supplied
	defaultROMSize = 0x100
)

// Sentinal error patterns.
const (
	romTooLarge = "rom: image of %d bytes is larger than %d bytes"
	romEmpty    = "rom: image is empty"
)

// sampleSinks sends speaker samples to more than one sink.
type sampleSinks []speaker.SampleSink

// AddSample implements the speaker.SampleSink interface.
func (s sampleSinks) AddSample(v uint8) {
	for _, k := range s {
		k.AddSample(v)
	}
}

// system is a machine with the host's devices attached.
type system struct {
	machine *hardware.Machine
	ram     *ram.RAM
	rom     *rom.ROM
	speaker *speaker.Speaker
	timer   *timer.Timer
	symbols *symbols.Symbols

	// effective address of the instruction at the PC, resolved before the
	// instruction is executed. only indexed and indirect instructions are
	// resolved
	upcoming struct {
		address    uint16
		resolution addressing.Resolution
		valid      bool
	}
}

// defaultROM creates a ROM image with the reset vector pointing to entry
// and the IRQ and NMI vectors pointing to an RTI instruction.
func defaultROM(entry uint16) []uint8 {
	data := make([]uint8, defaultROMSize)
	origin := memorymap.Memtop - defaultROMSize + 1

	// RTI at the start of the ROM
	data[0] = 0x40

	vector := func(address uint16, v uint16) {
		data[address-origin] = uint8(v)
		data[address-origin+1] = uint8(v >> 8)
	}
	vector(memorymap.NMI, origin)
	vector(memorymap.Reset, entry)
	vector(memorymap.IRQ, origin)

	return data
}

// newSystem creates a machine with RAM, the speaker, the timer and a ROM
// mapped to the top of memory. The clock is the CPU speed in Hz. The sink can
// be nil.
func newSystem(prefs cpu.Preferences, clock int, romData []uint8, sink speaker.SampleSink) (*system, error) {
	if len(romData) == 0 {
		return nil, curated.Errorf(romEmpty)
	}
	if len(romData) > int(memorymap.Memtop-romLowest)+1 {
		return nil, curated.Errorf(romTooLarge, len(romData), int(memorymap.Memtop-romLowest)+1)
	}

	sys := &system{
		machine: hardware.NewMachine(prefs),
		ram:     ram.NewRAM(ramOrigin, int(ramMemtop-ramOrigin)+1),
		timer:   timer.NewTimer(timerOrigin),
		symbols: symbols.NewSymbols(),
	}

	var err error

	sys.speaker, err = speaker.NewSpeaker(speakerAddress, clock, speaker.DefaultSampleRate, sink)
	if err != nil {
		return nil, err
	}

	romOrigin := uint16(int(memorymap.Memtop) - len(romData) + 1)
	sys.rom = rom.NewROM(romOrigin, romData)

	err = sys.machine.Attach(ramOrigin, ramMemtop, sys.ram, "ram")
	if err != nil {
		return nil, err
	}
	err = sys.machine.Attach(speakerAddress, speakerAddress, sys.speaker, "speaker")
	if err != nil {
		return nil, err
	}
	err = sys.machine.Attach(timerOrigin, sys.timer.Memtop(), sys.timer, "timer")
	if err != nil {
		return nil, err
	}
	err = sys.machine.Attach(romOrigin, memorymap.Memtop, sys.rom, "rom")
	if err != nil {
		return nil, err
	}

	sys.symbols.AddRegister(speakerAddress, "SPKR")
	sys.symbols.AddWrite(timerOrigin+timer.TIM1T, "TIM1T")
	sys.symbols.AddWrite(timerOrigin+timer.TIM8T, "TIM8T")
	sys.symbols.AddWrite(timerOrigin+timer.TIM64T, "TIM64T")
	sys.symbols.AddWrite(timerOrigin+timer.T1024T, "T1024T")
	sys.symbols.AddRead(timerOrigin+timer.INTIM, "INTIM")
	sys.symbols.AddRead(timerOrigin+timer.TIMINT, "TIMINT")
	sys.symbols.AddRegister(timerOrigin+timer.IRQEN, "IRQEN")

	return sys, nil
}

// randomise the contents of RAM, as it would be at power on.
func (sys *system) randomise(rnd *random.Random) error {
	data := make([]uint8, sys.ram.Size())
	rnd.Fill(data)
	return sys.ram.Import(data, 0)
}

// load program data into RAM at the address.
func (sys *system) load(data []uint8, address uint16) error {
	return sys.ram.Import(data, int(address-ramOrigin))
}

// traceCycle writes a single line describing the cycle.
func (sys *system) traceCycle(output io.Writer, step microcode.Step) {
	if step.Kind.IsRead() || step.Kind.IsWrite() {
		sym := sys.symbols.Describe(step.Address, step.Kind.IsWrite())
		if sym[0] != '$' {
			fmt.Fprintf(output, "    %s  %s\n", step, sym)
			return
		}
	}
	fmt.Fprintf(output, "    %s\n", step)
}

// traceInstruction writes a single line describing the most recent
// instruction. Indexed and indirect instructions are followed by the
// effective address of the operand.
func (sys *system) traceInstruction(output io.Writer) {
	res := sys.machine.CPU.LastResult
	if l, ok := sys.symbols.GetLabel(res.Address); ok && !res.Reset {
		fmt.Fprintf(output, "%s:\n", l)
	}

	if !res.Reset && sys.upcoming.valid && sys.upcoming.address == res.Address {
		fmt.Fprintf(output, "%s  -> %s\n", res.String(), sys.upcoming.resolution)
	} else {
		fmt.Fprintf(output, "%s\n", res.String())
	}

	sys.resolveUpcoming()
}

// resolveUpcoming resolves the effective address of the instruction at the
// PC. Memory is peeked so the resolution has no effect on the devices.
func (sys *system) resolveUpcoming() {
	sys.upcoming.valid = false

	mc := sys.machine.CPU
	if mc.Halted() != nil {
		return
	}

	pc := mc.PC().Address()
	defn := instructions.Lookup(sys.machine.Bus.Peek(pc))
	if !defn.AddressingMode.IsIndexed() && defn.AddressingMode != instructions.Indirect {
		return
	}

	operand := uint16(sys.machine.Bus.Peek(pc + 1))
	if defn.Bytes == 3 {
		operand |= uint16(sys.machine.Bus.Peek(pc+2)) << 8
	}

	regs := addressing.Registers{
		PC: pc + uint16(defn.Bytes),
		X:  mc.X().Value(),
		Y:  mc.Y().Value(),
	}

	sys.upcoming.address = pc
	sys.upcoming.resolution = addressing.Resolve(defn.AddressingMode, operand, regs, sys.machine.Bus)
	sys.upcoming.valid = true
}

// summary of the machine state.
func (sys *system) summary(output io.Writer) {
	fmt.Fprintf(output, "%s\n", sys.machine.CPU)
	fmt.Fprintf(output, "cycles: %d\n", sys.machine.CPU.Cycles())
	if n := sys.machine.Bus.Strays(); n > 0 {
		fmt.Fprintf(output, "open bus accesses: %d\n", n)
	}
	if n := sys.speaker.Toggles(); n > 0 {
		fmt.Fprintf(output, "speaker toggles: %d\n", n)
	}
}
