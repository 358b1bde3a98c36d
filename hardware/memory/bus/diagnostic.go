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

package bus

import "fmt"

// DiagnosticKind indicates the type of stray access.
type DiagnosticKind int

// List of valid DiagnosticKind values.
const (
	OpenBusRead DiagnosticKind = iota
	OpenBusWrite
)

func (k DiagnosticKind) String() string {
	switch k {
	case OpenBusRead:
		return "open bus read"
	case OpenBusWrite:
		return "open bus write"
	}
	return "unknown diagnostic"
}

// Diagnostic describes a single access to an unmapped address.
type Diagnostic struct {
	Kind    DiagnosticKind
	Address uint16

	// for OpenBusRead the value is the value returned to the CPU. for
	// OpenBusWrite it is the value that was discarded
	Data uint8
}

func (d Diagnostic) String() string {
	switch d.Kind {
	case OpenBusRead:
		return fmt.Sprintf("%s at %#04x", d.Kind, d.Address)
	}
	return fmt.Sprintf("%s at %#04x (%#02x discarded)", d.Kind, d.Address, d.Data)
}
