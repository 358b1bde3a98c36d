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
	"strings"

	"github.com/jetsetilly/mos6502/curated"
)

// IllegalPolicy specifies how the CPU treats undocumented opcodes.
type IllegalPolicy int

// List of valid IllegalPolicy values.
const (
	// halt the CPU with an IllegalOpcode error
	TrapIllegal IllegalPolicy = iota

	// execute undocumented opcodes as the NMOS 6502 does. the JAM opcodes
	// halt the CPU with a Jammed error
	EmulateIllegal
)

func (p IllegalPolicy) String() string {
	switch p {
	case TrapIllegal:
		return "TRAP"
	case EmulateIllegal:
		return "EMULATE"
	}
	return fmt.Sprintf("unknown policy (%d)", p)
}

// ParseIllegalPolicy returns the IllegalPolicy named by the string. The
// comparison is not case sensitive.
func ParseIllegalPolicy(s string) (IllegalPolicy, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRAP":
		return TrapIllegal, nil
	case "EMULATE":
		return EmulateIllegal, nil
	}
	return TrapIllegal, curated.Errorf("cpu: unknown illegal opcode policy (%s)", s)
}

// Preferences for the CPU.
type Preferences struct {
	IllegalOpcodes IllegalPolicy
}

// NewPreferences returns the default preferences.
func NewPreferences() Preferences {
	return Preferences{
		IllegalOpcodes: TrapIllegal,
	}
}

func (p Preferences) String() string {
	return fmt.Sprintf("illegal opcodes: %s", p.IllegalOpcodes)
}
