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

// Package memory and its sub-packages implement the memory model of a 6502
// system. The package itself contains no code.
//
// Memory is viewed through the bus. The bus has nothing to do with the real
// hardware, it is purely conceptual and is implemented through Go interfaces.
// The CPU sees the bus as a bus.Memory and devices are registered with the
// bus over an address range:
//
//	CPU ---- bus.Controller ---- RAM
//	              |
//	              +------------- ROM
//	              |
//	              +------------- peripherals
//
// Accesses to addresses that no device has been registered for are open bus
// accesses. Reads return bus.OpenBusValue and writes are discarded. In both
// cases a bus.Diagnostic is emitted.
//
// The memorymap package contains the fixed addresses of the 6502: the
// interrupt vectors and the stack page.
package memory
