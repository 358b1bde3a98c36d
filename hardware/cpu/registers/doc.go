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

// Package registers implements the 6502 register file: the 8 bit general
// registers, the program counter, the stack pointer and the status register.
//
// The general Register type has functions for the arithmetic and logical
// operations of the 6502 instructions. The functions do not alter the status
// register, instead the information needed to set the flags is returned or
// is available through the IsNegative(), IsZero() and IsBitV() functions.
// For instance, in the CPU, we might have this sequence of function calls:
//
//	a.Load(10)
//	a.Subtract(11, true)
//	sr.Zero = a.IsZero()
//
// In this case, the zero flag in the status register will be false.
//
// Decimal mode follows the behaviour of the NMOS 6502. The Zero flag is taken
// from the binary result and the Sign and Overflow flags from the result
// before the upper nibble is adjusted.
package registers
