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

// Package addressing computes effective addresses for the 6502 addressing
// modes. The functions in this package are pure. They take the values
// required by the calculation and return the result without touching memory
// or registers.
//
// The small helper functions (Index(), ZeroPageIndex(), Branch() etc.) are
// used by the CPU as it works through an instruction cycle by cycle. The
// Resolve() function performs the whole calculation for an instruction in
// one step, reading any pointers it needs through a Peeker. It is used when
// tracing, where the cycle detail is not required.
//
// The hardware quirks of address calculation are reproduced:
//
//	Zero page indexed addresses wrap within page zero
//	The pointer for (zp,X) and (zp),Y wraps within page zero
//	The pointer for JMP (ind) does not carry into the high byte
package addressing

import (
	"fmt"

	"github.com/jetsetilly/mos6502/hardware/cpu/instructions"
)

// Index adds the index to the base address. The fixed address is the correct
// result of the addition. The unfixed address is the address that would
// result if the carry from the low byte was not propagated to the high byte,
// which is the address the CPU accesses first. The crossed value is true if
// the two addresses differ.
func Index(base uint16, index uint8) (fixed uint16, unfixed uint16, crossed bool) {
	fixed = base + uint16(index)
	unfixed = (base & 0xff00) | (fixed & 0x00ff)
	return fixed, unfixed, fixed != unfixed
}

// ZeroPageIndex adds the index to the zero page address. The result wraps
// within page zero.
func ZeroPageIndex(base uint8, index uint8) uint16 {
	return uint16(base + index)
}

// ZeroPagePointerHi returns the address of the high byte of a zero page
// pointer. The address wraps within page zero.
func ZeroPagePointerHi(pointer uint8) uint16 {
	return uint16(pointer + 1)
}

// IndirectPointerHi returns the address of the high byte of the pointer for
// the JMP (ind) instruction. The carry from the low byte is not propagated
// so a pointer at the end of a page takes its high byte from the start of
// the same page. The bug value is true when this happens.
func IndirectPointerHi(pointer uint16) (address uint16, bug bool) {
	address = (pointer & 0xff00) | uint16(uint8(pointer)+1)
	return address, pointer&0x00ff == 0x00ff
}

// Branch returns the target of a relative branch. The PC argument is the
// address following the branch instruction. The offset is a signed value.
//
// The unfixed address is the target without the carry into the high byte
// and the crossed value is true if the branch crosses into another page.
func Branch(pc uint16, offset uint8) (target uint16, unfixed uint16, crossed bool) {
	target = pc + uint16(int8(offset))
	unfixed = (pc & 0xff00) | (target & 0x00ff)
	return target, unfixed, target != unfixed
}

// Kind indicates the target of a resolved operand.
type Kind int

// List of valid Kind values.
const (
	// no operand. implied instructions
	None Kind = iota

	// the operand is the accumulator
	Accumulator

	// the operand is the value in the instruction itself
	Value

	// the operand is in memory at the resolved address. for branch and jump
	// instructions this is the new value of the PC
	Address
)

// Registers are the register values required to resolve an operand.
type Registers struct {
	// the address of the instruction following the one being resolved
	PC uint16
	X  uint8
	Y  uint8
}

// Peeker is used by Resolve() to read pointers from memory.
type Peeker interface {
	Peek(address uint16) uint8
}

// Resolution is the result of Resolve().
type Resolution struct {
	Kind Kind

	// the effective address (or the immediate value) of the operand
	Address uint16

	// for indexed modes the address the CPU accesses before the page
	// correction. the same as Address if the page is not crossed
	Unfixed uint16

	// the effective address is in a different page to the base address
	PageCrossed bool

	// hardware quirk encountered during the address calculation. empty if
	// none
	Bug string
}

func (r Resolution) String() string {
	switch r.Kind {
	case Accumulator:
		return "A"
	case Value:
		return fmt.Sprintf("#$%02x", r.Address)
	case Address:
		if r.PageCrossed {
			return fmt.Sprintf("$%04x (page crossed)", r.Address)
		}
		return fmt.Sprintf("$%04x", r.Address)
	}
	return ""
}

// Resolve computes the effective address for an addressing mode and operand.
// The operand is the one or two bytes following the opcode, little endian
// for two byte operands.
func Resolve(mode instructions.AddressingMode, operand uint16, regs Registers, mem Peeker) Resolution {
	var r Resolution

	switch mode {
	case instructions.Implied:
		r.Kind = None

	case instructions.Accumulator:
		r.Kind = Accumulator

	case instructions.Immediate:
		r.Kind = Value
		r.Address = operand & 0xff
		r.Unfixed = r.Address

	case instructions.Relative:
		r.Kind = Address
		r.Address, r.Unfixed, r.PageCrossed = Branch(regs.PC, uint8(operand))

	case instructions.Absolute:
		r.Kind = Address
		r.Address = operand
		r.Unfixed = operand

	case instructions.ZeroPage:
		r.Kind = Address
		r.Address = operand & 0xff
		r.Unfixed = r.Address

	case instructions.Indirect:
		r.Kind = Address
		hi, bug := IndirectPointerHi(operand)
		r.Address = uint16(mem.Peek(operand)) | uint16(mem.Peek(hi))<<8
		r.Unfixed = r.Address
		if bug {
			r.Bug = "indirect jump page wrap"
		}

	case instructions.IndexedIndirect:
		r.Kind = Address
		ptr := uint8(ZeroPageIndex(uint8(operand), regs.X))
		r.Address = uint16(mem.Peek(uint16(ptr))) | uint16(mem.Peek(ZeroPagePointerHi(ptr)))<<8
		r.Unfixed = r.Address
		if uint16(uint8(operand))+uint16(regs.X) > 0xff {
			r.Bug = "zero page index wrap"
		} else if ptr == 0xff {
			r.Bug = "zero page pointer wrap"
		}

	case instructions.IndirectIndexed:
		r.Kind = Address
		ptr := uint8(operand)
		base := uint16(mem.Peek(uint16(ptr))) | uint16(mem.Peek(ZeroPagePointerHi(ptr)))<<8
		r.Address, r.Unfixed, r.PageCrossed = Index(base, regs.Y)
		if ptr == 0xff {
			r.Bug = "zero page pointer wrap"
		}

	case instructions.AbsoluteIndexedX:
		r.Kind = Address
		r.Address, r.Unfixed, r.PageCrossed = Index(operand, regs.X)

	case instructions.AbsoluteIndexedY:
		r.Kind = Address
		r.Address, r.Unfixed, r.PageCrossed = Index(operand, regs.Y)

	case instructions.ZeroPageIndexedX:
		r.Kind = Address
		r.Address = ZeroPageIndex(uint8(operand), regs.X)
		r.Unfixed = r.Address
		if uint16(uint8(operand))+uint16(regs.X) > 0xff {
			r.Bug = "zero page index wrap"
		}

	case instructions.ZeroPageIndexedY:
		r.Kind = Address
		r.Address = ZeroPageIndex(uint8(operand), regs.Y)
		r.Unfixed = r.Address
		if uint16(uint8(operand))+uint16(regs.Y) > 0xff {
			r.Bug = "zero page index wrap"
		}
	}

	return r
}
