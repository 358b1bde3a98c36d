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

// AddDecimal adds value to register as though both are binary coded decimal.
// Returns new carry state, zero, overflow and sign information.
//
// Results for values that are not valid BCD match the NMOS 6502.
func (r *Register) AddDecimal(val uint8, carry bool) (rcarry, zero, overflow, sign bool) {
	var c int
	if carry {
		c = 1
	}

	// zero flag comes from the binary sum
	zero = uint8(int(r.value)+int(val)+c) == 0

	al := int(r.value&0x0f) + int(val&0x0f) + c
	if al >= 0x0a {
		al = ((al + 0x06) & 0x0f) + 0x10
	}

	s := int(r.value&0xf0) + int(val&0xf0) + al

	// sign and overflow are computed before the upper nibble is adjusted
	sign = s&0x80 == 0x80
	overflow = (^(r.value ^ val) & (r.value ^ uint8(s)) & 0x80) != 0

	if s >= 0xa0 {
		s += 0x60
	}

	r.value = uint8(s)

	return s >= 0x100, zero, overflow, sign
}

// SubtractDecimal subtracts value from register as though both are binary
// coded decimal. Returns new carry state, zero, overflow and sign
// information.
//
// All flags are the same as for a binary subtraction, only the value in the
// register differs.
func (r *Register) SubtractDecimal(val uint8, carry bool) (rcarry, zero, overflow, sign bool) {
	var c int
	if carry {
		c = 1
	}

	bin := NewRegister(r.value, "")
	rcarry, overflow = bin.Subtract(val, carry)
	zero = bin.IsZero()
	sign = bin.IsNegative()

	al := int(r.value&0x0f) - int(val&0x0f) + c - 1
	if al < 0 {
		al = ((al - 0x06) & 0x0f) - 0x10
	}

	s := int(r.value&0xf0) - int(val&0xf0) + al
	if s < 0 {
		s -= 0x60
	}

	r.value = uint8(s)

	return rcarry, zero, overflow, sign
}
