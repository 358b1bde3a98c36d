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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error. The pattern is kept so that errors
// can be identified later, without resorting to string comparison of the
// formatted message:
//
//	e := curated.Errorf("cpu: illegal opcode %#02x", 0x02)
//
//	if curated.Is(e, "cpu: illegal opcode %#02x") {
//		fmt.Println("true")
//	}
//
// Patterns used by the emulation packages are exported as constants by the
// package that creates the error. For example, bus.RangeOverlap and
// cpu.IllegalOpcode.
//
// The Has() function is similar to Is() but checks if a pattern occurs
// somewhere in the error chain. A chain is formed when a curated error is
// given as a placeholder value to another curated error.
//
//	f := curated.Errorf("machine: %v", e)
//
//	curated.Has(f, "cpu: illegal opcode %#02x") // true
//	curated.Is(f, "cpu: illegal opcode %#02x")  // false
//
// The Error() function normalises the message so that duplicate adjacent parts
// of the chain are removed. In other words, wrapping an error with a pattern
// that begins with the same prefix does not result in a stuttering message.
//
// Curated errors also implement Unwrap() so the errors.Is() and errors.As()
// functions in the standard library see any error placeholder values.
package curated
