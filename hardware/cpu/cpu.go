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

package cpu

import (
	"fmt"
	"sync/atomic"

	"github.com/jetsetilly/mos6502/curated"
	"github.com/jetsetilly/mos6502/hardware/cpu/execution"
	"github.com/jetsetilly/mos6502/hardware/cpu/instructions"
	"github.com/jetsetilly/mos6502/hardware/cpu/microcode"
	"github.com/jetsetilly/mos6502/hardware/cpu/registers"
	"github.com/jetsetilly/mos6502/hardware/memory/bus"
	"github.com/jetsetilly/mos6502/hardware/memory/memorymap"
)

// Error patterns returned by the CPU.
const (
	IllegalOpcode  = "cpu: illegal opcode %#02x at %#04x"
	Jammed         = "cpu: jammed by opcode %#02x at %#04x"
	MidInstruction = "cpu: %s invalid mid-instruction"
)

// the state of the cycle engine between calls to StepCycle()
type state int

const (
	// performing the reset sequence
	stateReset state = iota

	// at an instruction boundary. the next cycle fetches an opcode
	stateFetch

	// performing the microcode program of an instruction
	stateExecute

	// performing an IRQ or NMI sequence
	stateInterrupt

	// halted by an illegal opcode or a JAM. only Reset() will clear this
	// state
	stateHalted
)

// CPU implements the NMOS 6502. Register logic is implemented by the types
// in the registers sub-package.
type CPU struct {
	pc     registers.ProgramCounter
	a      registers.Register
	x      registers.Register
	y      registers.Register
	sp     registers.StackPointer
	status registers.StatusRegister

	mem   bus.Memory
	prefs Preferences

	// last result. refers to the reset sequence until the first instruction
	// has been fetched
	LastResult execution.Result

	// the cycle engine. program is the microcode for the current
	// instruction, interrupt or reset and idx is the next op to perform
	state   state
	program microcode.Program
	idx     int
	defn    *instructions.Definition

	// the reason for stateHalted
	halt error

	// the access made by the most recent cycle
	step microcode.Step

	// latches used by the microcode ops. they are valid for the duration of
	// one program only
	address uint16
	fixed   uint16
	crossed bool
	pointer uint8
	value   uint8
	offset  uint8
	taken   bool
	lo      uint8
	baseHi  uint8
	vector  uint16

	// interrupt lines. irq is level sensitive and nmi is the pending edge
	irq atomic.Bool
	nmi atomic.Bool

	// total number of cycles since the CPU was created
	cycles uint64
}

// NewCPU is the preferred method of initialisation for the CPU structure.
// The CPU begins in the reset state so the first cycle executed will be the
// first cycle of the reset sequence.
func NewCPU(mem bus.Memory, prefs Preferences) *CPU {
	mc := &CPU{
		mem:    mem,
		prefs:  prefs,
		pc:     registers.NewProgramCounter(0),
		a:      registers.NewRegister(0, "A"),
		x:      registers.NewRegister(0, "X"),
		y:      registers.NewRegister(0, "Y"),
		sp:     registers.NewStackPointer(0),
		status: registers.NewStatusRegister(),
	}
	mc.Reset()
	return mc
}

// Preferences returns the preferences the CPU was created with.
func (mc *CPU) Preferences() Preferences {
	return mc.prefs
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.pc.Label(), mc.pc, mc.a.Label(), mc.a,
		mc.x.Label(), mc.x, mc.y.Label(), mc.y,
		mc.sp.Label(), mc.sp, mc.status.Label(), mc.status)
}

// Reset puts the CPU into the reset state. The reset sequence itself is
// performed by the following seven cycles, at the end of which the PC has
// been loaded from the reset vector.
//
// The A, X and Y registers are not changed. The stack pointer is decremented
// three times by the sequence, without any writes to the stack, and the
// interrupt disable flag is set. Pending interrupts are forgotten.
func (mc *CPU) Reset() {
	mc.state = stateReset
	mc.program = microcode.Reset
	mc.idx = 0
	mc.defn = nil
	mc.halt = nil
	mc.clearLatches()
	mc.vector = memorymap.Reset
	mc.nmi.Store(false)
	mc.LastResult = execution.Result{Reset: true}
}

func (mc *CPU) clearLatches() {
	mc.address = 0
	mc.fixed = 0
	mc.crossed = false
	mc.pointer = 0
	mc.value = 0
	mc.offset = 0
	mc.taken = false
	mc.lo = 0
	mc.baseHi = 0
	mc.vector = 0
}

// SetIRQ sets the level of the IRQ line. The line is level sensitive and is
// sampled at the end of every instruction. The interrupt will be serviced if
// the line is active at that point and the interrupt disable flag is clear.
func (mc *CPU) SetIRQ(active bool) {
	mc.irq.Store(active)
}

// IRQ returns the level of the IRQ line.
func (mc *CPU) IRQ() bool {
	return mc.irq.Load()
}

// TriggerNMI signals an edge on the NMI line. The NMI sequence will begin at
// the end of the current instruction. Multiple triggers before then result in
// one NMI.
func (mc *CPU) TriggerNMI() {
	mc.nmi.Store(true)
}

// NMIPending returns true if an NMI has been triggered but not yet serviced.
func (mc *CPU) NMIPending() bool {
	return mc.nmi.Load()
}

// AtBoundary returns true if the next cycle will fetch an opcode.
func (mc *CPU) AtBoundary() bool {
	return mc.state == stateFetch
}

// Halted returns the reason the CPU has halted or nil if it has not.
func (mc *CPU) Halted() error {
	return mc.halt
}

// Cycles returns the number of cycles executed since the CPU was created.
func (mc *CPU) Cycles() uint64 {
	return mc.cycles
}

// PC returns a copy of the program counter.
func (mc *CPU) PC() registers.ProgramCounter {
	return mc.pc
}

// A returns a copy of the accumulator.
func (mc *CPU) A() registers.Register {
	return mc.a
}

// X returns a copy of the X register.
func (mc *CPU) X() registers.Register {
	return mc.x
}

// Y returns a copy of the Y register.
func (mc *CPU) Y() registers.Register {
	return mc.y
}

// SP returns a copy of the stack pointer.
func (mc *CPU) SP() registers.StackPointer {
	return mc.sp
}

// Status returns a copy of the status register.
func (mc *CPU) Status() registers.StatusRegister {
	return mc.status
}

// LoadPC loads the address into the PC. Only valid at an instruction
// boundary.
func (mc *CPU) LoadPC(address uint16) error {
	if mc.state != stateFetch {
		return curated.Errorf(MidInstruction, "load PC")
	}
	mc.pc.Load(address)
	return nil
}
