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

// Package cpu emulates the NMOS 6502 microprocessor at the level of single
// clock cycles. Like all 8-bit processors of the era, the 6502 executes
// instructions according to the single byte value read from an address
// pointed to by the program counter. This single byte is the opcode and is
// looked up in the instruction table. The microcode program for that opcode
// then drives the bus, one access per cycle.
//
// The instance of the CPU type requires an implementation of the bus.Memory
// interface. Every cycle performs exactly one Read() or Write() on that
// interface, including the dummy accesses that the real chip makes.
//
// There are two ways of driving the CPU. StepCycle() advances the CPU by
// exactly one cycle and returns a description of the bus access that took
// place. ExecuteInstruction() advances the CPU to the next instruction
// boundary, calling the supplied callback after every cycle.
//
// Let's assume mem is an instance of the bus.Memory interface loaded with
// 6502 instructions and a reset vector.
//
//	mc := cpu.NewCPU(mem, cpu.NewPreferences())
//
//	numCycles := 0
//	numInstructions := 0
//
//	for {
//		_, err := mc.ExecuteInstruction(func(_ microcode.Step) error {
//			numCycles++
//			return nil
//		})
//		if err != nil {
//			break
//		}
//		numInstructions++
//	}
//
// The CPU starts in the reset state and so the first call to
// ExecuteInstruction() performs the seven cycle reset sequence.
//
// The LastResult field can be probed for information about the last
// instruction executed, or about the current instruction being executed if
// accessed from ExecuteInstruction()'s callback function. See the execution
// package for more information.
//
// Interrupt lines are set with SetIRQ() and TriggerNMI(). These are safe to
// call from other goroutines but the lines are only sampled at the end of an
// instruction.
package cpu
