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

// Device is implemented by anything that can be attached to the bus. The
// address given to Read() and Write() is the full 16 bit address and not an
// offset into the device.
//
// Neither function can fail. A device that has nothing sensible to return
// should return OpenBusValue and a device that can not accept a write should
// discard it.
type Device interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// Ticker is implemented by devices that need to be advanced once per CPU
// cycle.
type Ticker interface {
	Tick()
}

// InterruptSource is implemented by devices that can assert the IRQ or NMI
// lines.
//
// IRQ is level sensitive. NMI() should return the current level of the NMI
// line and it is for the machine to detect the rising edge.
type InterruptSource interface {
	IRQ() bool
	NMI() bool
}

// Peeker is implemented by devices that have side effects on Read(). Peek()
// should return the same value as Read() but without the side effect.
type Peeker interface {
	Peek(address uint16) uint8
}

// Poker is implemented by devices that do not accept writes in the normal
// way (eg. ROM) but which a debugger may want to alter.
type Poker interface {
	Poke(address uint16, data uint8)
}

// Memory is the view of the bus from the CPU.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}
