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

package execution_test

import (
	"testing"

	"github.com/jetsetilly/mos6502/hardware/cpu/execution"
	"github.com/jetsetilly/mos6502/hardware/cpu/instructions"
	"github.com/jetsetilly/mos6502/test"
)

func TestReset(t *testing.T) {
	r := execution.Result{Reset: true, Cycles: 7}
	test.ExpectedFailure(t, r.IsValid())

	r.Final = true
	test.ExpectedSuccess(t, r.IsValid())
	test.Equate(t, r.String(), "reset [7]")

	r.Cycles = 6
	test.ExpectedFailure(t, r.IsValid())
}

func TestPageSensitive(t *testing.T) {
	// LDA $1000,X
	r := execution.Result{
		Address:         0x0200,
		Defn:            instructions.Lookup(0xbd),
		ByteCount:       3,
		InstructionData: 0x1000,
		Cycles:          4,
		Final:           true,
	}
	test.ExpectedSuccess(t, r.IsValid())
	test.Equate(t, r.String(), "$0200  LDA $1000,X [4]")

	// the extra cycle is only allowed with a page fault
	r.Cycles = 5
	test.ExpectedFailure(t, r.IsValid())
	r.PageFault = true
	test.ExpectedSuccess(t, r.IsValid())
	test.Equate(t, r.ExpectedCycles(), 5)

	// and then it is required
	r.Cycles = 4
	test.ExpectedFailure(t, r.IsValid())
}

func TestWriteNotPageSensitive(t *testing.T) {
	// STA $1000,X
	r := execution.Result{
		Defn:      instructions.Lookup(0x9d),
		ByteCount: 3,
		Cycles:    5,
		Final:     true,
	}
	test.ExpectedSuccess(t, r.IsValid())

	r.PageFault = true
	test.ExpectedFailure(t, r.IsValid())
}

func TestBranch(t *testing.T) {
	// BNE
	r := execution.Result{
		Address:         0x02f0,
		Defn:            instructions.Lookup(0xd0),
		ByteCount:       2,
		InstructionData: 0x20,
		Cycles:          2,
		Final:           true,
	}
	test.ExpectedSuccess(t, r.IsValid())
	test.Equate(t, r.Operand(), "$0312")

	r.Cycles = 3
	test.ExpectedFailure(t, r.IsValid())
	r.BranchSuccess = true
	test.ExpectedSuccess(t, r.IsValid())

	r.PageFault = true
	test.ExpectedFailure(t, r.IsValid())
	r.Cycles = 4
	test.ExpectedSuccess(t, r.IsValid())

	// a page fault without the branch being taken is not possible
	r.BranchSuccess = false
	test.ExpectedFailure(t, r.IsValid())
}

func TestByteCount(t *testing.T) {
	// JMP $1234
	r := execution.Result{
		Defn:      instructions.Lookup(0x4c),
		ByteCount: 2,
		Cycles:    3,
		Final:     true,
	}
	test.ExpectedFailure(t, r.IsValid())
	r.ByteCount = 3
	test.ExpectedSuccess(t, r.IsValid())
}

func TestInterrupt(t *testing.T) {
	// NOP followed by an IRQ
	r := execution.Result{
		Address:         0x0200,
		Defn:            instructions.Lookup(0xea),
		ByteCount:       1,
		Cycles:          2,
		Interrupt:       execution.IRQ,
		InterruptCycles: 7,
		Final:           true,
	}
	test.ExpectedSuccess(t, r.IsValid())
	test.Equate(t, r.String(), "$0200  NOP [2] +IRQ [7]")

	r.InterruptCycles = 6
	test.ExpectedFailure(t, r.IsValid())

	r.Interrupt = execution.NoInterrupt
	test.ExpectedFailure(t, r.IsValid())
}

func TestString(t *testing.T) {
	r := execution.Result{
		Address:         0x1000,
		Defn:            instructions.Lookup(0x6c),
		ByteCount:       3,
		InstructionData: 0x20ff,
		Cycles:          5,
		CPUBug:          execution.JmpIndirectAddressingBug,
		Final:           true,
	}
	test.Equate(t, r.String(), "$1000  JMP ($20ff) [5] * indirect jump page wrap *")

	r.Final = false
	test.Equate(t, r.String(), "$1000  JMP ($20ff) [v] * indirect jump page wrap *")
}
