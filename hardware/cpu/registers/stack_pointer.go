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

package registers

import (
	"fmt"

	"github.com/jetsetilly/mos6502/hardware/memory/memorymap"
)

// StackPointer is the 8 bit stack pointer. The stack is always in page one so
// the pointer can never address anything outside of 0x0100 to 0x01ff.
type StackPointer struct {
	value uint8
}

// NewStackPointer is the preferred method of initialisation for the
// StackPointer type.
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{value: val}
}

// Label returns an identifying string for the stack pointer.
func (sp StackPointer) Label() string {
	return "SP"
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("%02x", sp.value)
}

// Value returns the current value of the stack pointer.
func (sp StackPointer) Value() uint8 {
	return sp.value
}

// Address returns the address in page one that the stack pointer points to.
func (sp StackPointer) Address() uint16 {
	return memorymap.Stack(sp.value)
}

// Load value into the stack pointer.
func (sp *StackPointer) Load(val uint8) {
	sp.value = val
}

// Decrement the stack pointer, wrapping from 0x00 to 0xff. Called after a
// byte has been pushed.
func (sp *StackPointer) Decrement() {
	sp.value--
}

// Increment the stack pointer, wrapping from 0xff to 0x00. Called before a
// byte is pulled.
func (sp *StackPointer) Increment() {
	sp.value++
}
