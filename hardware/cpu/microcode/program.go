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

package microcode

import (
	"strings"

	"github.com/jetsetilly/mos6502/hardware/cpu/instructions"
)

// Program is the list of ops for an instruction, not including the opcode
// fetch.
type Program []Op

func (p Program) String() string {
	s := make([]string, len(p))
	for i, op := range p {
		s[i] = op.String()
	}
	return strings.Join(s, " ")
}

// MinCycles returns the number of cycles the program takes if no conditional
// op occurs. The opcode fetch is included in the count.
func (p Program) MinCycles() int {
	n := 1
	for _, op := range p {
		if !op.Conditional() {
			n++
		}
	}
	return n
}

// Reset is the program for the reset sequence. The reset sequence behaves
// like an interrupt but the stack writes are suppressed.
var Reset = Program{DummyReadPC, DummyReadPC, PushSuppressed, PushSuppressed, PushSuppressed, VectorLo, VectorHi}

// Interrupt is the program for the IRQ and NMI sequences. The opcode fetch
// that would have started the next instruction is replaced by the first
// dummy read.
var Interrupt = Program{DummyReadPC, DummyReadPC, PushPCH, PushPCL, PushStatus, VectorLo, VectorHi}

// programs are built once for every opcode
var programs [256]Program

func init() {
	for i := range programs {
		programs[i] = build(instructions.Lookup(uint8(i)))
	}
}

// Sequence returns the program for the instruction definition. The returned
// program is shared and must not be altered.
func Sequence(defn *instructions.Definition) Program {
	return programs[defn.OpCode]
}

// build creates the program for an instruction definition. Instructions with
// unique sequences are handled first and everything else is built from the
// addressing mode and the effect category.
func build(defn *instructions.Definition) Program {
	switch defn.Operator {
	case instructions.Brk:
		return Program{DummyReadPCIncrement, PushPCH, PushPCL, PushStatus, VectorLo, VectorHi}
	case instructions.Jsr:
		return Program{FetchAddressLo, StackDummyRead, PushPCH, PushPCL, FetchAddressHiJump}
	case instructions.Rts:
		return Program{DummyReadPC, StackDummyIncrement, PullPCLIncrement, PullPCH, DummyReadPCIncrement}
	case instructions.Rti:
		return Program{DummyReadPC, StackDummyIncrement, PullStatusIncrement, PullPCLIncrement, PullPCH}
	case instructions.Pha:
		return Program{DummyReadPC, PushA}
	case instructions.Php:
		return Program{DummyReadPC, PushStatus}
	case instructions.Pla, instructions.Plp:
		return Program{DummyReadPC, StackDummyIncrement, PullValue}
	case instructions.Jam:
		return Program{Jam}
	case instructions.Jmp:
		if defn.AddressingMode == instructions.Indirect {
			return Program{FetchAddressLo, FetchAddressHi, ReadIndirectLo, ReadIndirectHiJump}
		}
		return Program{FetchAddressLo, FetchAddressHiJump}
	}

	var p Program

	switch defn.AddressingMode {
	case instructions.Implied, instructions.Accumulator:
		return Program{DummyReadPC}
	case instructions.Immediate:
		return Program{FetchImmediate}
	case instructions.Relative:
		return Program{FetchOffset, BranchTaken, BranchFix}
	case instructions.ZeroPage:
		p = Program{FetchAddressLo}
	case instructions.ZeroPageIndexedX:
		p = Program{FetchAddressLo, IndexZeroPageX}
	case instructions.ZeroPageIndexedY:
		p = Program{FetchAddressLo, IndexZeroPageY}
	case instructions.Absolute:
		p = Program{FetchAddressLo, FetchAddressHi}
	case instructions.IndexedIndirect:
		p = Program{FetchPointer, IndexPointerX, ReadPointerLo, ReadPointerHi}
	case instructions.AbsoluteIndexedX:
		return append(Program{FetchAddressLo, FetchAddressHiIndexX}, indexedAccess(defn.Effect)...)
	case instructions.AbsoluteIndexedY:
		return append(Program{FetchAddressLo, FetchAddressHiIndexY}, indexedAccess(defn.Effect)...)
	case instructions.IndirectIndexed:
		return append(Program{FetchPointer, ReadPointerLo, ReadPointerHiIndexY}, indexedAccess(defn.Effect)...)
	}

	return append(p, access(defn.Effect)...)
}

// access cycles for the non-indexed memory modes
func access(effect instructions.EffectCategory) Program {
	switch effect {
	case instructions.Write:
		return Program{WriteEffective}
	case instructions.RMW:
		return Program{ReadEffective, ModifyDummyWrite, ModifyWrite}
	}
	return Program{ReadEffective}
}

// access cycles for the indexed memory modes that can cross a page. reads
// only take the extra cycle when the page is crossed. writes and
// read-modify-writes always take it
func indexedAccess(effect instructions.EffectCategory) Program {
	switch effect {
	case instructions.Write:
		return Program{DummyReadIndexed, WriteEffective}
	case instructions.RMW:
		return Program{DummyReadIndexed, ReadEffective, ModifyDummyWrite, ModifyWrite}
	}
	return Program{ReadIndexed, ReadFixed}
}
