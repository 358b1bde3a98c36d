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
	"io"
)

// ListSymbols outputs every symbol in every table.
func (sym *Symbols) ListSymbols(output io.Writer) {
	sym.ListLabels(output)
	sym.ListReadSymbols(output)
	sym.ListWriteSymbols(output)
}

// ListLabels outputs every label.
func (sym *Symbols) ListLabels(output io.Writer) {
	fmt.Fprintf(output, "Labels\n------\n%s\n", sym.label)
}

// ListReadSymbols outputs every read symbol.
func (sym *Symbols) ListReadSymbols(output io.Writer) {
	fmt.Fprintf(output, "Read Symbols\n------------\n%s\n", sym.read)
}

// ListWriteSymbols outputs every write symbol.
func (sym *Symbols) ListWriteSymbols(output io.Writer) {
	fmt.Fprintf(output, "Write Symbols\n-------------\n%s\n", sym.write)
}
