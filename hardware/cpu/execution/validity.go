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
	"github.com/jetsetilly/mos6502/curated"
)

// ExpectedCycles returns the number of cycles the instruction should have
// taken given the branch and page fault information in the Result.
func (r Result) ExpectedCycles() int {
	if r.Reset {
		return ResetCycles
	}
	if r.Defn == nil {
		return 0
	}

	n := r.Defn.Cycles
	if r.Defn.IsBranch() {
		if r.BranchSuccess {
			n++
			if r.PageFault {
				n++
			}
		}
	} else if r.Defn.PageSensitive && r.PageFault {
		n++
	}
	return n
}

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf("cpu: execution not finalised (bad opcode?)")
	}

	if r.Reset {
		if r.Cycles != ResetCycles {
			return curated.Errorf("cpu: number of cycles wrong for reset (%d instead of %d)", r.Cycles, ResetCycles)
		}
		return nil
	}

	if r.Defn == nil {
		return curated.Errorf("cpu: execution has no instruction definition")
	}

	// is PageFault valid given content of Defn
	if r.PageFault {
		if r.Defn.IsBranch() {
			if !r.BranchSuccess {
				return curated.Errorf("cpu: unexpected page fault for branch not taken")
			}
		} else if !r.Defn.PageSensitive {
			return curated.Errorf("cpu: unexpected page fault")
		}
	}

	if r.BranchSuccess && !r.Defn.IsBranch() {
		return curated.Errorf("cpu: branch success for non-branch opcode %#02x [%s]", r.Defn.OpCode, r.Defn.Operator)
	}

	// byte count
	if r.ByteCount != r.Defn.Bytes {
		return curated.Errorf("cpu: unexpected number of bytes read during decode (%d instead of %d)", r.ByteCount, r.Defn.Bytes)
	}

	if exp := r.ExpectedCycles(); r.Cycles != exp {
		return curated.Errorf("cpu: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)",
			r.Defn.OpCode,
			r.Defn.Operator,
			r.Cycles,
			exp)
	}

	switch r.Interrupt {
	case NoInterrupt:
		if r.InterruptCycles != 0 {
			return curated.Errorf("cpu: interrupt cycles (%d) without an interrupt", r.InterruptCycles)
		}
	default:
		if r.InterruptCycles != InterruptCycles {
			return curated.Errorf("cpu: number of cycles wrong for %s sequence (%d instead of %d)", r.Interrupt, r.InterruptCycles, InterruptCycles)
		}
	}

	return nil
}
