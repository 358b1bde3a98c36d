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

package execution

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/mos6502/hardware/cpu/addressing"
	"github.com/jetsetilly/mos6502/hardware/cpu/instructions"
)

// Interrupt indicates which, if any, interrupt sequence was serviced at the
// end of an instruction.
type Interrupt int

// List of valid Interrupt values.
const (
	NoInterrupt Interrupt = iota
	IRQ
	NMI
)

func (i Interrupt) String() string {
	switch i {
	case IRQ:
		return "IRQ"
	case NMI:
		return "NMI"
	}
	return ""
}

// InterruptCycles is the length of the IRQ and NMI sequences.
const InterruptCycles = 7

// ResetCycles is the length of the reset sequence.
const ResetCycles = 7

// Result records the state/result of the most recent CPU instruction.
type Result struct {
	// a reset sequence rather than an instruction. Defn will be nil
	Reset bool

	// address of the opcode
	Address uint16

	// the instruction definition for the opcode
	Defn *instructions.Definition

	// the number of bytes read during instruction decode, including the
	// opcode. if the instruction is Final then this value will be equal to
	// Defn.Bytes
	ByteCount int

	// the operand bytes of the instruction, little endian for two byte
	// operands
	InstructionData uint16

	// the actual number of cycles taken by the instruction, not including
	// any interrupt sequence that followed it
	Cycles int

	// whether an extra cycle was required because of 8 bit adder overflow
	PageFault bool

	// whether a branch instruction took the branch
	BranchSuccess bool

	// whether a buggy code path was triggered
	CPUBug Bug

	// the interrupt sequence serviced after the instruction and the number
	// of cycles it took
	Interrupt       Interrupt
	InterruptCycles int

	// whether this data has been finalised
	Final bool
}

// Operand returns the operand formatted in the assembler syntax for the
// instruction's addressing mode.
func (r Result) Operand() string {
	if r.Defn == nil {
		return ""
	}

	switch r.Defn.AddressingMode {
	case instructions.Implied:
		return ""
	case instructions.Accumulator:
		return "A"
	case instructions.Immediate:
		return fmt.Sprintf("#$%02x", r.InstructionData)
	case instructions.Relative:
		target, _, _ := addressing.Branch(r.Address+2, uint8(r.InstructionData))
		return fmt.Sprintf("$%04x", target)
	case instructions.Absolute:
		return fmt.Sprintf("$%04x", r.InstructionData)
	case instructions.ZeroPage:
		return fmt.Sprintf("$%02x", r.InstructionData)
	case instructions.Indirect:
		return fmt.Sprintf("($%04x)", r.InstructionData)
	case instructions.IndexedIndirect:
		return fmt.Sprintf("($%02x,X)", r.InstructionData)
	case instructions.IndirectIndexed:
		return fmt.Sprintf("($%02x),Y", r.InstructionData)
	case instructions.AbsoluteIndexedX:
		return fmt.Sprintf("$%04x,X", r.InstructionData)
	case instructions.AbsoluteIndexedY:
		return fmt.Sprintf("$%04x,Y", r.InstructionData)
	case instructions.ZeroPageIndexedX:
		return fmt.Sprintf("$%02x,X", r.InstructionData)
	case instructions.ZeroPageIndexedY:
		return fmt.Sprintf("$%02x,Y", r.InstructionData)
	}

	return ""
}

func (r Result) String() string {
	if r.Reset {
		if !r.Final {
			return "reset [v]"
		}
		return fmt.Sprintf("reset [%d]", r.Cycles)
	}

	if r.Defn == nil {
		return ""
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("$%04x  %s", r.Address, r.Defn.Operator))
	if op := r.Operand(); op != "" {
		s.WriteString(" ")
		s.WriteString(op)
	}

	if r.Final {
		s.WriteString(fmt.Sprintf(" [%d]", r.Cycles))
	} else {
		s.WriteString(" [v]")
	}

	if r.PageFault {
		s.WriteString(" page-fault")
	}
	if r.CPUBug != NoBug {
		s.WriteString(fmt.Sprintf(" * %s *", r.CPUBug))
	}
	if r.Interrupt != NoInterrupt {
		s.WriteString(fmt.Sprintf(" +%s [%d]", r.Interrupt, r.InterruptCycles))
	}

	return s.String()
}
