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
	"github.com/jetsetilly/mos6502/curated"
	"github.com/jetsetilly/mos6502/hardware/cpu/addressing"
	"github.com/jetsetilly/mos6502/hardware/cpu/execution"
	"github.com/jetsetilly/mos6502/hardware/cpu/instructions"
	"github.com/jetsetilly/mos6502/hardware/cpu/microcode"
	"github.com/jetsetilly/mos6502/hardware/memory/memorymap"
	"github.com/jetsetilly/mos6502/logger"
)

// ExecuteInstruction steps the CPU until the next instruction boundary. The
// cycleCallback function is called after every cycle with a description of
// the bus access made during that cycle. It can be nil.
//
// If the instruction is followed by an IRQ or NMI sequence then that sequence
// is also performed. Similarly, if the CPU is in the reset state then the
// reset sequence is performed and nothing else.
//
// Returns the number of cycles executed. An error from the callback stops
// execution immediately, leaving the CPU mid-instruction. A following call
// will continue from where the CPU left off.
func (mc *CPU) ExecuteInstruction(cycleCallback func(microcode.Step) error) (int, error) {
	if mc.state == stateHalted {
		return 0, mc.halt
	}

	n := 0
	for {
		step, err := mc.StepCycle()
		n++

		if cycleCallback != nil {
			if cerr := cycleCallback(step); cerr != nil {
				return n, cerr
			}
		}

		if err != nil {
			return n, err
		}

		if mc.state == stateFetch {
			return n, nil
		}
	}
}

// StepCycle advances the CPU by exactly one cycle. Every cycle makes exactly
// one access on the bus and the returned Step describes it.
//
// An error is returned on the cycle that halts the CPU. A halted CPU makes no
// bus access and the returned Step has the InternalCycle kind.
func (mc *CPU) StepCycle() (microcode.Step, error) {
	switch mc.state {
	case stateHalted:
		mc.cycles++
		return microcode.Step{Kind: microcode.InternalCycle, Op: microcode.Jam, Address: mc.pc.Address()}, nil
	case stateFetch:
		return mc.fetchOpcode()
	}

	op := mc.program[mc.idx]
	mc.idx++

	if mc.state == stateInterrupt {
		mc.LastResult.InterruptCycles++
	} else {
		mc.LastResult.Cycles++
	}
	mc.cycles++

	if err := mc.perform(op); err != nil {
		return mc.step, err
	}

	// conditional ops that are not required do not take a cycle
	for mc.idx < len(mc.program) && !mc.wanted(mc.program[mc.idx]) {
		mc.idx++
	}

	if mc.idx >= len(mc.program) {
		mc.complete()
	}

	return mc.step, nil
}

// the first cycle of every instruction
func (mc *CPU) fetchOpcode() (microcode.Step, error) {
	address := mc.pc.Address()
	opcode := mc.read(microcode.Opcode, microcode.FetchOpcode, address)
	mc.pc.Increment()
	mc.cycles++

	defn := instructions.Lookup(opcode)

	mc.LastResult = execution.Result{
		Address:   address,
		Defn:      defn,
		ByteCount: 1,
		Cycles:    1,
	}

	if defn.Undocumented && mc.prefs.IllegalOpcodes == TrapIllegal {
		mc.pc.Load(address)
		mc.halt = curated.Errorf(IllegalOpcode, opcode, address)
		mc.state = stateHalted
		logger.Log(logger.Allow, "cpu", mc.halt)
		return mc.step, mc.halt
	}

	mc.defn = defn
	mc.program = microcode.Sequence(defn)
	mc.idx = 0
	mc.state = stateExecute
	mc.clearLatches()

	if defn.Operator == instructions.Brk {
		mc.vector = memorymap.BRK
	}

	return mc.step, nil
}

// conditional ops are only performed if the condition has been met by an
// earlier op in the program
func (mc *CPU) wanted(op microcode.Op) bool {
	switch op {
	case microcode.ReadFixed, microcode.BranchFix:
		return mc.crossed
	case microcode.BranchTaken:
		return mc.taken
	}
	return true
}

// complete is called when the last op of a program has been performed
func (mc *CPU) complete() {
	switch mc.state {
	case stateReset:
		mc.LastResult.Final = true
		mc.state = stateFetch
		logger.Logf(logger.Allow, "cpu", "reset: PC=%#04x", mc.pc.Address())

	case stateExecute:
		if mc.defn.Effect == instructions.Read {
			mc.operate()
		}
		mc.LastResult.Final = true
		mc.interruptCheck()

	case stateInterrupt:
		mc.state = stateFetch
	}
}

// interruptCheck samples the interrupt lines. NMI has priority over IRQ and
// IRQ is ignored if the interrupt disable flag is set
func (mc *CPU) interruptCheck() {
	if mc.nmi.Swap(false) {
		mc.interrupt(execution.NMI, memorymap.NMI)
		return
	}
	if mc.irq.Load() && !mc.status.InterruptDisable {
		mc.interrupt(execution.IRQ, memorymap.IRQ)
		return
	}
	mc.state = stateFetch
}

func (mc *CPU) interrupt(kind execution.Interrupt, vector uint16) {
	mc.state = stateInterrupt
	mc.program = microcode.Interrupt
	mc.idx = 0
	mc.clearLatches()
	mc.vector = vector
	mc.LastResult.Interrupt = kind
}

func (mc *CPU) read(op microcode.Op, kind microcode.Kind, address uint16) uint8 {
	data := mc.mem.Read(address)
	mc.step = microcode.Step{Kind: kind, Op: op, Address: address, Data: data}
	return data
}

func (mc *CPU) write(op microcode.Op, kind microcode.Kind, address uint16, data uint8) {
	mc.mem.Write(address, data)
	mc.step = microcode.Step{Kind: kind, Op: op, Address: address, Data: data}
}

// read the byte pointed to by the PC as part of the instruction
func (mc *CPU) fetchOperand(op microcode.Op) uint8 {
	v := mc.read(op, microcode.ReadOperand, mc.pc.Address())
	mc.pc.Increment()
	mc.LastResult.ByteCount++
	return v
}

func (mc *CPU) bug(bug execution.Bug) {
	if mc.LastResult.CPUBug == execution.NoBug {
		mc.LastResult.CPUBug = bug
	}
}

// perform the op. every op makes exactly one bus access
func (mc *CPU) perform(op microcode.Op) error {
	switch op {
	case microcode.FetchAddressLo:
		mc.address = uint16(mc.fetchOperand(op))
		mc.LastResult.InstructionData = mc.address

	case microcode.FetchAddressHi:
		mc.address |= uint16(mc.fetchOperand(op)) << 8
		mc.LastResult.InstructionData = mc.address

	case microcode.FetchAddressHiIndexX, microcode.FetchAddressHiIndexY:
		mc.baseHi = mc.fetchOperand(op)
		base := mc.address | uint16(mc.baseHi)<<8
		mc.LastResult.InstructionData = base
		idx := mc.x.Value()
		if op == microcode.FetchAddressHiIndexY {
			idx = mc.y.Value()
		}
		mc.fixed, mc.address, mc.crossed = addressing.Index(base, idx)

	case microcode.FetchAddressHiJump:
		// the PC is not incremented past the operand because it is replaced
		hi := mc.read(op, microcode.ReadOperand, mc.pc.Address())
		mc.LastResult.ByteCount++
		mc.address |= uint16(hi) << 8
		mc.LastResult.InstructionData = mc.address
		mc.pc.Load(mc.address)

	case microcode.FetchImmediate:
		mc.value = mc.fetchOperand(op)
		mc.LastResult.InstructionData = uint16(mc.value)

	case microcode.FetchOffset:
		mc.offset = mc.fetchOperand(op)
		mc.LastResult.InstructionData = uint16(mc.offset)
		mc.taken = mc.branchCondition()
		mc.LastResult.BranchSuccess = mc.taken

	case microcode.FetchPointer:
		mc.pointer = mc.fetchOperand(op)
		mc.LastResult.InstructionData = uint16(mc.pointer)

	case microcode.DummyReadPC:
		mc.read(op, microcode.DummyRead, mc.pc.Address())

	case microcode.DummyReadPCIncrement:
		mc.read(op, microcode.DummyRead, mc.pc.Address())
		mc.pc.Increment()

	case microcode.IndexZeroPageX, microcode.IndexZeroPageY:
		mc.read(op, microcode.DummyRead, mc.address)
		idx := mc.x.Value()
		if op == microcode.IndexZeroPageY {
			idx = mc.y.Value()
		}
		if mc.address+uint16(idx) > 0xff {
			mc.bug(execution.ZeroPageIndexBug)
		}
		mc.address = addressing.ZeroPageIndex(uint8(mc.address), idx)

	case microcode.IndexPointerX:
		mc.read(op, microcode.DummyRead, uint16(mc.pointer))
		if uint16(mc.pointer)+uint16(mc.x.Value()) > 0xff {
			mc.bug(execution.ZeroPageIndexBug)
		}
		mc.pointer = uint8(addressing.ZeroPageIndex(mc.pointer, mc.x.Value()))

	case microcode.ReadPointerLo:
		mc.address = uint16(mc.read(op, microcode.ReadOperand, uint16(mc.pointer)))

	case microcode.ReadPointerHi:
		hi := mc.read(op, microcode.ReadOperand, addressing.ZeroPagePointerHi(mc.pointer))
		if mc.pointer == 0xff {
			mc.bug(execution.IndexedIndirectAddressingBug)
		}
		mc.address |= uint16(hi) << 8

	case microcode.ReadPointerHiIndexY:
		mc.baseHi = mc.read(op, microcode.ReadOperand, addressing.ZeroPagePointerHi(mc.pointer))
		if mc.pointer == 0xff {
			mc.bug(execution.IndexedIndirectAddressingBug)
		}
		base := mc.address | uint16(mc.baseHi)<<8
		mc.fixed, mc.address, mc.crossed = addressing.Index(base, mc.y.Value())

	case microcode.ReadIndexed:
		if mc.crossed {
			mc.read(op, microcode.DummyRead, mc.address)
			mc.address = mc.fixed
		} else {
			mc.value = mc.read(op, microcode.ReadOperand, mc.address)
		}

	case microcode.ReadFixed:
		mc.value = mc.read(op, microcode.ReadOperand, mc.address)
		mc.LastResult.PageFault = true

	case microcode.DummyReadIndexed:
		mc.read(op, microcode.DummyRead, mc.address)
		mc.address = mc.fixed

	case microcode.ReadEffective:
		mc.value = mc.read(op, microcode.ReadOperand, mc.address)

	case microcode.WriteEffective:
		v := mc.store()
		mc.write(op, microcode.WriteOperand, mc.address, v)

	case microcode.ModifyDummyWrite:
		// the unmodified value is written back while the ALU works
		mc.write(op, microcode.DummyWrite, mc.address, mc.value)
		mc.value = mc.modify(mc.value)

	case microcode.ModifyWrite:
		mc.write(op, microcode.WriteOperand, mc.address, mc.value)

	case microcode.ReadIndirectLo:
		mc.lo = mc.read(op, microcode.ReadOperand, mc.address)

	case microcode.ReadIndirectHiJump:
		address, bug := addressing.IndirectPointerHi(mc.address)
		if bug {
			mc.bug(execution.JmpIndirectAddressingBug)
		}
		hi := mc.read(op, microcode.ReadOperand, address)
		mc.pc.Load(uint16(hi)<<8 | uint16(mc.lo))

	case microcode.BranchTaken:
		mc.read(op, microcode.DummyRead, mc.pc.Address())
		target, unfixed, crossed := addressing.Branch(mc.pc.Address(), mc.offset)
		mc.fixed = target
		mc.crossed = crossed
		mc.pc.Load(unfixed)

	case microcode.BranchFix:
		mc.read(op, microcode.DummyRead, mc.pc.Address())
		mc.pc.Load(mc.fixed)
		mc.LastResult.PageFault = true

	case microcode.StackDummyRead:
		mc.read(op, microcode.DummyRead, mc.sp.Address())

	case microcode.StackDummyIncrement:
		mc.read(op, microcode.DummyRead, mc.sp.Address())
		mc.sp.Increment()

	case microcode.PushA:
		mc.push(op, mc.a.Value())

	case microcode.PushStatus:
		// the break bit is only set when the push is made by an instruction
		mc.push(op, mc.status.Pushed(mc.state == stateExecute))

	case microcode.PushPCH:
		mc.push(op, mc.pc.Hi())

	case microcode.PushPCL:
		mc.push(op, mc.pc.Lo())

	case microcode.PushSuppressed:
		mc.read(op, microcode.DummyRead, mc.sp.Address())
		mc.sp.Decrement()

	case microcode.PullValue:
		mc.value = mc.read(op, microcode.ReadOperand, mc.sp.Address())

	case microcode.PullStatusIncrement:
		mc.status.Load(mc.read(op, microcode.ReadOperand, mc.sp.Address()))
		mc.sp.Increment()

	case microcode.PullPCLIncrement:
		mc.lo = mc.read(op, microcode.ReadOperand, mc.sp.Address())
		mc.sp.Increment()

	case microcode.PullPCH:
		hi := mc.read(op, microcode.ReadOperand, mc.sp.Address())
		mc.pc.Load(uint16(hi)<<8 | uint16(mc.lo))

	case microcode.VectorLo:
		mc.lo = mc.read(op, microcode.ReadOperand, mc.vector)
		mc.status.InterruptDisable = true

	case microcode.VectorHi:
		hi := mc.read(op, microcode.ReadOperand, mc.vector+1)
		mc.pc.Load(uint16(hi)<<8 | uint16(mc.lo))

	case microcode.Jam:
		// the PC is left pointing at the JAM opcode
		mc.pc.Load(mc.LastResult.Address)
		mc.step = microcode.Step{Kind: microcode.InternalCycle, Op: op, Address: mc.pc.Address()}
		mc.halt = curated.Errorf(Jammed, mc.defn.OpCode, mc.LastResult.Address)
		mc.state = stateHalted
		logger.Log(logger.Allow, "cpu", mc.halt)
		return mc.halt

	default:
		panic("cpu: unknown microcode op: " + op.String())
	}

	return nil
}

func (mc *CPU) push(op microcode.Op, data uint8) {
	mc.write(op, microcode.WriteOperand, mc.sp.Address(), data)
	mc.sp.Decrement()
}

func (mc *CPU) branchCondition() bool {
	switch mc.defn.Operator {
	case instructions.Bcc:
		return !mc.status.Carry
	case instructions.Bcs:
		return mc.status.Carry
	case instructions.Beq:
		return mc.status.Zero
	case instructions.Bne:
		return !mc.status.Zero
	case instructions.Bmi:
		return mc.status.Sign
	case instructions.Bpl:
		return !mc.status.Sign
	case instructions.Bvc:
		return !mc.status.Overflow
	case instructions.Bvs:
		return mc.status.Overflow
	}
	return false
}
