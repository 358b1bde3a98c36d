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
	"fmt"

	"github.com/jetsetilly/mos6502/hardware/cpu"
	"github.com/jetsetilly/mos6502/hardware/cpu/microcode"
	"github.com/jetsetilly/mos6502/hardware/memory/bus"
	"github.com/jetsetilly/mos6502/logger"
)

// Machine is the root of the emulation.
type Machine struct {
	CPU *cpu.CPU
	Bus *bus.Controller

	// the level of the NMI line on the previous cycle
	nmiLine bool

	// called after every cycle, after the devices have been ticked
	cycleCallback func(microcode.Step) error
}

// NewMachine creates a new Machine with an empty bus.
func NewMachine(prefs cpu.Preferences) *Machine {
	m := &Machine{
		Bus: bus.NewController(),
	}
	m.CPU = cpu.NewCPU(m.Bus, prefs)
	return m
}

func (m *Machine) String() string {
	return fmt.Sprintf("%s\n%s", m.CPU, m.Bus)
}

// Attach a device to the bus over the range origin to memtop inclusive.
func (m *Machine) Attach(origin uint16, memtop uint16, dev bus.Device, label string) error {
	return m.Bus.Register(origin, memtop, dev, label)
}

// SetCycleCallback sets the function to be called after every cycle. The
// function can be nil.
func (m *Machine) SetCycleCallback(f func(microcode.Step) error) {
	m.cycleCallback = f
}

// Reset the CPU. The reset sequence is performed by the next cycles to be
// run.
func (m *Machine) Reset() {
	m.CPU.Reset()
	m.nmiLine = false
	logger.Log(logger.Allow, "machine", "reset")
}

// cycle is called by the CPU after every cycle
func (m *Machine) cycle(step microcode.Step) error {
	m.Bus.Tick()

	m.CPU.SetIRQ(m.Bus.IRQ())

	nmi := m.Bus.NMI()
	if nmi && !m.nmiLine {
		m.CPU.TriggerNMI()
	}
	m.nmiLine = nmi

	if m.cycleCallback != nil {
		return m.cycleCallback(step)
	}

	return nil
}
