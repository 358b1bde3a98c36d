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

package digest

import (
	"github.com/jetsetilly/mos6502/hardware/cpu/microcode"
)

// Bus produces a hash of the bus activity of the CPU.
type Bus struct {
	chain
	cycles int
}

// NewBus is the preferred method of initialisation for the Bus type.
func NewBus() *Bus {
	return &Bus{chain: newChain()}
}

// Cycle adds the step to the hash. It has the signature of a cycle callback
// and never returns an error.
func (dig *Bus) Cycle(step microcode.Step) error {
	dig.add(uint8(step.Kind), uint8(step.Address), uint8(step.Address>>8), step.Data)
	dig.cycles++
	return nil
}

// Cycles returns the number of cycles that have been hashed.
func (dig *Bus) Cycles() int {
	return dig.cycles
}

// Hash implements the digest.Digest interface.
func (dig *Bus) Hash() string {
	return dig.hash()
}

// ResetDigest implements the digest.Digest interface.
func (dig *Bus) ResetDigest() {
	dig.reset()
	dig.cycles = 0
}
