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

package hardware

import (
	"github.com/jetsetilly/mos6502/hardware/cpu/microcode"
)

// Step the machine one CPU instruction, including any interrupt sequence
// that follows the instruction. Returns the number of cycles.
func (m *Machine) Step() (int, error) {
	return m.CPU.ExecuteInstruction(m.cycle)
}

// StepCycle steps the machine one CPU cycle.
func (m *Machine) StepCycle() (microcode.Step, error) {
	step, err := m.CPU.StepCycle()

	// the devices are ticked even on the cycle that halts the CPU
	if cerr := m.cycle(step); cerr != nil {
		return step, cerr
	}

	return step, err
}
