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
	"sort"
	"strings"
)

// table is a sorted map of addresses to symbols.
type table struct {
	entries map[uint16]string

	// keys of entries in address order
	idx []uint16

	// the longest symbol in the table
	maxWidth int
}

func newTable() *table {
	return &table{
		entries: make(map[uint16]string),
	}
}

func (t *table) String() string {
	s := strings.Builder{}
	for _, a := range t.idx {
		s.WriteString(fmt.Sprintf("%#04x -> %s\n", a, t.entries[a]))
	}
	return s.String()
}

// add symbol to the table. an existing symbol for the address is only
// replaced if prefer is true.
func (t *table) add(address uint16, symbol string, prefer bool) {
	if _, ok := t.entries[address]; ok {
		if !prefer {
			return
		}
	} else {
		t.idx = append(t.idx, address)
		sort.Sort(t)
	}

	t.entries[address] = symbol
	if len(symbol) > t.maxWidth {
		t.maxWidth = len(symbol)
	}
}

func (t *table) get(address uint16) (string, bool) {
	s, ok := t.entries[address]
	return s, ok
}

// search for the symbol, ignoring case. returns the symbol as it is
// stored in the table.
func (t *table) search(symbol string) (string, uint16, bool) {
	for _, a := range t.idx {
		if strings.EqualFold(t.entries[a], symbol) {
			return t.entries[a], a, true
		}
	}
	return "", 0, false
}

// Len implements the sort.Interface.
func (t *table) Len() int {
	return len(t.idx)
}

// Less implements the sort.Interface.
func (t *table) Less(i, j int) bool {
	return t.idx[i] < t.idx[j]
}

// Swap implements the sort.Interface.
func (t *table) Swap(i, j int) {
	t.idx[i], t.idx[j] = t.idx[j], t.idx[i]
}
