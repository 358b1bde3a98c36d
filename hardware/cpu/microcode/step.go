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

import "fmt"

// Kind describes the bus activity of a single cycle.
type Kind int

// List of valid Kind values.
const (
	// read of the opcode at the PC. the first cycle of every instruction
	FetchOpcode Kind = iota

	// a read that the instruction uses. operand bytes, effective address
	// reads, stack pulls and vector reads
	ReadOperand

	// a write that the instruction intends. stores and stack pushes
	WriteOperand

	// a read the CPU performs but discards. the read still happens and
	// devices with read side effects will see it
	DummyRead

	// the write of the unmodified value during a read-modify-write
	// instruction
	DummyWrite

	// a cycle with no bus access. only a jammed or halted CPU produces these
	InternalCycle
)

func (k Kind) String() string {
	switch k {
	case FetchOpcode:
		return "fetch"
	case ReadOperand:
		return "read"
	case WriteOperand:
		return "write"
	case DummyRead:
		return "dummy read"
	case DummyWrite:
		return "dummy write"
	case InternalCycle:
		return "internal"
	}
	return "unknown"
}

// IsRead returns true if the cycle reads from the bus.
func (k Kind) IsRead() bool {
	return k == FetchOpcode || k == ReadOperand || k == DummyRead
}

// IsWrite returns true if the cycle writes to the bus.
func (k Kind) IsWrite() bool {
	return k == WriteOperand || k == DummyWrite
}

// Step is the bus activity of a single cycle. A Step is only meaningful for
// the cycle that produced it.
type Step struct {
	Kind    Kind
	Op      Op
	Address uint16
	Data    uint8
}

func (s Step) String() string {
	if s.Kind == InternalCycle {
		return s.Kind.String()
	}
	return fmt.Sprintf("%-11s $%04x %02x", s.Kind, s.Address, s.Data)
}
