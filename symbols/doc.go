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

// Package symbols keeps track of the names given to addresses. There are
// three tables: labels (locations in the program), read symbols and write
// symbols. Read and write symbols are separate because a peripheral register
// can mean something different depending on the direction of the access.
//
// NewSymbols() creates a table with the canonical symbols for the 6502
// vectors. Symbols for the peripherals attached to a machine are added with
// AddRead(), AddWrite() or AddRegister(). Labels can be loaded from a DASM
// symbol file with ReadSymbolsFile().
package symbols
