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

// Op is a single cycle of an instruction.
type Op int

// List of valid Op values. The comments describe the bus access and the
// internal effect of each op.
const (
	// read opcode at PC, PC++. not part of any Program
	Opcode Op = iota

	// read PC into address low byte, PC++
	FetchAddressLo

	// read PC into address high byte, PC++
	FetchAddressHi

	// read PC into address high byte, PC++. add X to the address
	FetchAddressHiIndexX

	// read PC into address high byte, PC++. add Y to the address
	FetchAddressHiIndexY

	// read PC into address high byte. PC = address
	FetchAddressHiJump

	// read PC into value, PC++
	FetchImmediate

	// read PC into branch offset, PC++. decide whether branch is taken
	FetchOffset

	// read PC into zero page pointer, PC++
	FetchPointer

	// dummy read of PC
	DummyReadPC

	// dummy read of PC, PC++
	DummyReadPCIncrement

	// dummy read of zero page address. add X to address within page zero
	IndexZeroPageX

	// dummy read of zero page address. add Y to address within page zero
	IndexZeroPageY

	// dummy read of zero page pointer. add X to pointer within page zero
	IndexPointerX

	// read pointer into address low byte
	ReadPointerLo

	// read pointer+1 (within page zero) into address high byte
	ReadPointerHi

	// read pointer+1 (within page zero) into address high byte. add Y to the
	// address
	ReadPointerHiIndexY

	// read of the unfixed address. if the page was not crossed this is the
	// effective read, otherwise it is a dummy read and the address is fixed
	ReadIndexed

	// read of the fixed address. conditional on the page being crossed
	ReadFixed

	// dummy read of the unfixed address. the address is fixed
	DummyReadIndexed

	// read effective address into value
	ReadEffective

	// write value to effective address. the value depends on the operator
	WriteEffective

	// write the unmodified value back to the effective address. the
	// operator is applied to the value
	ModifyDummyWrite

	// write the modified value to the effective address
	ModifyWrite

	// read the address into the low byte of the jump target
	ReadIndirectLo

	// read the address+1 (without carry) into the high byte of the jump
	// target. PC = jump target
	ReadIndirectHiJump

	// dummy read of PC. add offset to low byte of PC. conditional on the
	// branch being taken
	BranchTaken

	// dummy read of PC. fix high byte of PC. conditional on the branch
	// crossing a page
	BranchFix

	// dummy read of stack
	StackDummyRead

	// dummy read of stack, SP++
	StackDummyIncrement

	// write A to stack, SP--
	PushA

	// write status register to stack, SP--
	PushStatus

	// write PC high byte to stack, SP--
	PushPCH

	// write PC low byte to stack, SP--
	PushPCL

	// dummy read of stack, SP--. the write of a push is suppressed during
	// reset
	PushSuppressed

	// read stack into value
	PullValue

	// read stack into status register, SP++
	PullStatusIncrement

	// read stack into PC low byte, SP++
	PullPCLIncrement

	// read stack into PC high byte
	PullPCH

	// read vector low byte. interrupt disable flag is set
	VectorLo

	// read vector high byte. PC = vector
	VectorHi

	// the CPU stops
	Jam
)

var opNames = map[Op]string{
	Opcode:               "Opcode",
	FetchAddressLo:       "FetchAddressLo",
	FetchAddressHi:       "FetchAddressHi",
	FetchAddressHiIndexX: "FetchAddressHiIndexX",
	FetchAddressHiIndexY: "FetchAddressHiIndexY",
	FetchAddressHiJump:   "FetchAddressHiJump",
	FetchImmediate:       "FetchImmediate",
	FetchOffset:          "FetchOffset",
	FetchPointer:         "FetchPointer",
	DummyReadPC:          "DummyReadPC",
	DummyReadPCIncrement: "DummyReadPCIncrement",
	IndexZeroPageX:       "IndexZeroPageX",
	IndexZeroPageY:       "IndexZeroPageY",
	IndexPointerX:        "IndexPointerX",
	ReadPointerLo:        "ReadPointerLo",
	ReadPointerHi:        "ReadPointerHi",
	ReadPointerHiIndexY:  "ReadPointerHiIndexY",
	ReadIndexed:          "ReadIndexed",
	ReadFixed:            "ReadFixed",
	DummyReadIndexed:     "DummyReadIndexed",
	ReadEffective:        "ReadEffective",
	WriteEffective:       "WriteEffective",
	ModifyDummyWrite:     "ModifyDummyWrite",
	ModifyWrite:          "ModifyWrite",
	ReadIndirectLo:       "ReadIndirectLo",
	ReadIndirectHiJump:   "ReadIndirectHiJump",
	BranchTaken:          "BranchTaken",
	BranchFix:            "BranchFix",
	StackDummyRead:       "StackDummyRead",
	StackDummyIncrement:  "StackDummyIncrement",
	PushA:                "PushA",
	PushStatus:           "PushStatus",
	PushPCH:              "PushPCH",
	PushPCL:              "PushPCL",
	PushSuppressed:       "PushSuppressed",
	PullValue:            "PullValue",
	PullStatusIncrement:  "PullStatusIncrement",
	PullPCLIncrement:     "PullPCLIncrement",
	PullPCH:              "PullPCH",
	VectorLo:             "VectorLo",
	VectorHi:             "VectorHi",
	Jam:                  "Jam",
}

func (op Op) String() string {
	if s, ok := opNames[op]; ok {
		return s
	}
	return "unknown op"
}

// Conditional returns true if the op may be skipped. A skipped op does not
// consume a cycle.
func (op Op) Conditional() bool {
	switch op {
	case ReadFixed, BranchTaken, BranchFix:
		return true
	}
	return false
}
