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
	"bufio"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/jetsetilly/mos6502/curated"
)

// Sentinal error patterns.
const (
	SymbolsFileCannotOpen = "symbols: cannot open %s"
	SymbolsFileError      = "symbols: %v"
)

// ReadSymbolsFile adds the labels found in a DASM symbol file. Each line of
// the file is a symbol followed by a hexadecimal address:
//
//	--- Symbol List (sorted by symbol)
//	start                    f000
//	loop                     f004              (R )
//	--- End of Symbol List.
//
// Lines that cannot be parsed are ignored. Local symbols, those beginning
// with a digit and a period, are also ignored.
func (sym *Symbols) ReadSymbolsFile(filename string) error {
	sf, err := os.Open(filename)
	if err != nil {
		return curated.Errorf(SymbolsFileCannotOpen, filename)
	}
	defer sf.Close()

	scanner := bufio.NewScanner(sf)
	for scanner.Scan() {
		p := strings.Fields(scanner.Text())
		if len(p) < 2 || p[0] == "---" {
			continue // for loop
		}

		address, err := strconv.ParseUint(strings.TrimPrefix(p[1], "$"), 16, 16)
		if err != nil {
			continue // for loop
		}

		symbol := p[0]
		if unicode.IsDigit(rune(symbol[0])) {
			continue // for loop
		}

		sym.label.add(uint16(address), symbol, true)
	}

	if err := scanner.Err(); err != nil {
		return curated.Errorf(SymbolsFileError, err)
	}

	return nil
}
