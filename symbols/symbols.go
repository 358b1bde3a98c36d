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

package symbols

import (
	"fmt"

	"github.com/jetsetilly/mos6502/hardware/memory/memorymap"
)

// Symbols is the root structure for the symbols tables.
type Symbols struct {
	label *table
	read  *table
	write *table
}

// NewSymbols creates the symbols tables. The vector addresses are given
// their canonical names.
func NewSymbols() *Symbols {
	sym := &Symbols{
		label: newTable(),
		read:  newTable(),
		write: newTable(),
	}

	sym.read.add(memorymap.NMI, "NMI", true)
	sym.read.add(memorymap.NMI+1, "NMI+1", true)
	sym.read.add(memorymap.Reset, "RESET", true)
	sym.read.add(memorymap.Reset+1, "RESET+1", true)
	sym.read.add(memorymap.IRQ, "IRQ", true)
	sym.read.add(memorymap.IRQ+1, "IRQ+1", true)

	return sym
}

// AddLabel adds a program location. An existing label is replaced.
func (sym *Symbols) AddLabel(address uint16, symbol string) {
	sym.label.add(address, symbol, true)
}

// AddRead adds a symbol for reads from the address.
func (sym *Symbols) AddRead(address uint16, symbol string) {
	sym.read.add(address, symbol, true)
}

// AddWrite adds a symbol for writes to the address.
func (sym *Symbols) AddWrite(address uint16, symbol string) {
	sym.write.add(address, symbol, true)
}

// AddRegister adds a symbol for both reads and writes.
func (sym *Symbols) AddRegister(address uint16, symbol string) {
	sym.AddRead(address, symbol)
	sym.AddWrite(address, symbol)
}

// GetLabel returns the label for the address.
func (sym *Symbols) GetLabel(address uint16) (string, bool) {
	return sym.label.get(address)
}

// GetRead returns the read symbol for the address.
func (sym *Symbols) GetRead(address uint16) (string, bool) {
	return sym.read.get(address)
}

// GetWrite returns the write symbol for the address.
func (sym *Symbols) GetWrite(address uint16) (string, bool) {
	return sym.write.get(address)
}

// Describe returns the most suitable symbol for an access to the address.
// Labels are preferred over read or write symbols. If there is no symbol the
// address is returned in hex notation.
func (sym *Symbols) Describe(address uint16, write bool) string {
	if s, ok := sym.label.get(address); ok {
		return s
	}

	if write {
		if s, ok := sym.write.get(address); ok {
			return s
		}
	} else {
		if s, ok := sym.read.get(address); ok {
			return s
		}
	}

	return fmt.Sprintf("$%04x", address)
}

// MaxWidth returns the length of the longest symbol in any table.
func (sym *Symbols) MaxWidth() int {
	return max(sym.label.maxWidth, sym.read.maxWidth, sym.write.maxWidth)
}
