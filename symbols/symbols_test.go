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

package symbols_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/mos6502/curated"
	"github.com/jetsetilly/mos6502/symbols"
	"github.com/jetsetilly/mos6502/test"
)

func TestVectors(t *testing.T) {
	sym := symbols.NewSymbols()

	s, ok := sym.GetRead(0xfffc)
	test.DemandEquality(t, ok, true)
	test.DemandEquality(t, s, "RESET")

	_, ok = sym.GetWrite(0xfffc)
	test.DemandEquality(t, ok, false)

	test.DemandEquality(t, sym.Describe(0xfffe, false), "IRQ")
	test.DemandEquality(t, sym.Describe(0xfffe, true), "$fffe")
}

func TestRegisters(t *testing.T) {
	sym := symbols.NewSymbols()
	sym.AddRegister(0xc030, "SPKR")
	sym.AddWrite(0xc040, "TIM1T")
	sym.AddRead(0xc044, "INTIM")

	test.DemandEquality(t, sym.Describe(0xc030, false), "SPKR")
	test.DemandEquality(t, sym.Describe(0xc030, true), "SPKR")
	test.DemandEquality(t, sym.Describe(0xc040, true), "TIM1T")
	test.DemandEquality(t, sym.Describe(0xc040, false), "$c040")
	test.DemandEquality(t, sym.Describe(0xc044, false), "INTIM")

	// labels take priority
	sym.AddLabel(0xc030, "click")
	test.DemandEquality(t, sym.Describe(0xc030, true), "click")

	test.DemandEquality(t, sym.MaxWidth(), len("RESET+1"))
}

func TestSearch(t *testing.T) {
	sym := symbols.NewSymbols()
	sym.AddWrite(0xc040, "TIM1T")
	sym.AddLabel(0xf000, "start")

	r := sym.Search("tim1t", symbols.SearchAll)
	test.DemandEquality(t, r != nil, true)
	test.DemandEquality(t, r.Table, symbols.SearchWrite)
	test.DemandEquality(t, r.Symbol, "TIM1T")
	test.DemandEquality(t, r.Address, uint16(0xc040))

	r = sym.Search("START", symbols.SearchLabel)
	test.DemandEquality(t, r != nil, true)
	test.DemandEquality(t, r.Address, uint16(0xf000))

	test.DemandEquality(t, sym.Search("start", symbols.SearchRead) == nil, true)
	test.DemandEquality(t, sym.Search("nothing", symbols.SearchAll) == nil, true)
}

const symbolFile = `--- Symbol List (sorted by symbol)
loop                     f004              (R )
start                    f000
1.local                  f008
bad                      zzzz
--- End of Symbol List.
`

func TestReadSymbolsFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "program.sym")
	test.DemandSuccess(t, os.WriteFile(fn, []byte(symbolFile), 0o644))

	sym := symbols.NewSymbols()
	test.ExpectedSuccess(t, sym.ReadSymbolsFile(fn))

	s, ok := sym.GetLabel(0xf000)
	test.DemandEquality(t, ok, true)
	test.DemandEquality(t, s, "start")

	s, ok = sym.GetLabel(0xf004)
	test.DemandEquality(t, ok, true)
	test.DemandEquality(t, s, "loop")

	_, ok = sym.GetLabel(0xf008)
	test.DemandEquality(t, ok, false)

	w := &test.Writer{}
	sym.ListLabels(w)
	test.DemandEquality(t, w.String(), "Labels\n------\n0xf000 -> start\n0xf004 -> loop\n\n")

	err := sym.ReadSymbolsFile(filepath.Join(t.TempDir(), "missing.sym"))
	test.DemandEquality(t, curated.Is(err, symbols.SymbolsFileCannotOpen), true)
}

func TestListSymbols(t *testing.T) {
	sym := symbols.NewSymbols()
	w := &test.Writer{}
	sym.ListSymbols(w)
	test.DemandEquality(t, strings.Contains(w.String(), "0xfffc -> RESET\n"), true)
	test.DemandEquality(t, strings.HasPrefix(w.String(), "Labels\n"), true)
}
