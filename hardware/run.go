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
	"github.com/jetsetilly/mos6502/curated"
	"github.com/jetsetilly/mos6502/govern"
)

// While the continueCheck() function only runs at the end of a CPU
// instruction, it can still be expensive to do a full continue check every
// time.
//
// It depends on context whether it is used or not but the PerformanceBrake is
// a standard value that can be used to filter out expensive code paths within
// a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return govern.Ending, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 100

// Run sets the emulation running as quickly as possible. The continueCheck
// function is called at the end of every instruction. It can be nil, in which
// case the machine runs until the CPU halts.
func (m *Machine) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running

	for state != govern.Ending && state != govern.Initialising {
		switch state {
		case govern.Running, govern.Stepping:
			_, err := m.Step()
			if err != nil {
				return err
			}
		case govern.Paused:
		default:
			return curated.Errorf("machine: unsupported emulation state (%s) in Run() function", state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForCycles sets the emulation running for at least the specified number
// of cycles. The machine always stops at an instruction boundary so the
// number of cycles run may be slightly more than requested.
//
// Returns the number of cycles run.
func (m *Machine) RunForCycles(numCycles uint64, continueCheck func() (govern.State, error)) (uint64, error) {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	start := m.CPU.Cycles()
	target := start + numCycles

	state := govern.Running
	for m.CPU.Cycles() < target && state != govern.Ending {
		_, err := m.Step()
		if err != nil {
			return m.CPU.Cycles() - start, err
		}

		state, err = continueCheck()
		if err != nil {
			return m.CPU.Cycles() - start, err
		}
	}

	return m.CPU.Cycles() - start, nil
}
