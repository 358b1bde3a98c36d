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
	"strings"
)

// SearchTable is used to select and identify a symbol table when searching.
type SearchTable int

func (t SearchTable) String() string {
	switch t {
	case SearchAll:
		return "unspecified"
	case SearchLabel:
		return "label"
	case SearchRead:
		return "read"
	case SearchWrite:
		return "write"
	}

	return ""
}

// List of valid SearchTable values.
const (
	SearchAll SearchTable = iota
	SearchLabel
	SearchRead
	SearchWrite
)

// SearchResults contains the normalised symbol info found in the SearchTable.
type SearchResults struct {
	// the table the result was found in
	Table SearchTable

	// symbol as it exists in the table
	Symbol string

	Address uint16
}

// Search return the address of the supplied symbol. Matching is case
// insensitive and tables are searched in the order: labels, read, write.
//
// Returns nil if the symbol is not found.
func (sym *Symbols) Search(symbol string, target SearchTable) *SearchResults {
	symbol = strings.TrimSpace(symbol)

	if target == SearchAll || target == SearchLabel {
		if norm, addr, ok := sym.label.search(symbol); ok {
			return &SearchResults{Table: SearchLabel, Symbol: norm, Address: addr}
		}
	}

	if target == SearchAll || target == SearchRead {
		if norm, addr, ok := sym.read.search(symbol); ok {
			return &SearchResults{Table: SearchRead, Symbol: norm, Address: addr}
		}
	}

	if target == SearchAll || target == SearchWrite {
		if norm, addr, ok := sym.write.search(symbol); ok {
			return &SearchResults{Table: SearchWrite, Symbol: norm, Address: addr}
		}
	}

	return nil
}
