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

// Package hardware is the base package for the 6502 system emulation. It and
// its sub-packages contain everything required for a headless emulation.
//
// The Machine type is the root of the emulation and contains external
// references to all the system sub-components. The CPU is created with the
// Machine and sees the bus Controller as its memory. Devices are added with
// Attach() before the machine is run.
//
// The Machine drives the rest of the system from the CPU's cycle callback.
// After every CPU cycle the bus ticks every device that implements
// bus.Ticker and the interrupt lines of every bus.InterruptSource are copied
// to the CPU. The IRQ line is level sensitive. The NMI line is edge
// triggered and the Machine triggers the CPU's NMI when a source first
// asserts it.
package hardware
