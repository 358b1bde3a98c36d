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

// Package bus connects the CPU to the devices in the address space. Devices
// are registered with a Controller for an inclusive address range. Ranges
// may not overlap and a failed registration leaves the existing mappings
// untouched.
//
// Any access that does not land inside a registered range is an open bus
// access. Open bus reads return OpenBusValue. Open bus writes are discarded.
// Both emit exactly one Diagnostic per access, which is passed to any
// function registered with OnDiagnostic() and logged to the central logger.
//
// Devices may optionally implement the Ticker interface, in which case
// Controller.Tick() will advance them. And devices that can raise interrupts
// implement the InterruptSource interface. The Controller aggregates the
// interrupt lines of all sources. In both cases the Controller only
// aggregates, it is for the machine driving the CPU to decide when to tick
// and when to sample the interrupt lines.
//
// The Peek() and Poke() functions are the debugging equivalents of Read() and
// Write(). They do not emit diagnostics and do not cause side effects in
// devices that implement the Peeker and Poker interfaces.
package bus
