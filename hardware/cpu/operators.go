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

package cpu

import (
	"github.com/jetsetilly/mos6502/hardware/cpu/instructions"
	"github.com/jetsetilly/mos6502/hardware/cpu/registers"
)

func (mc *CPU) setNZ(r registers.Register) {
	mc.status.Zero = r.IsZero()
	mc.status.Sign = r.IsNegative()
}

func (mc *CPU) adc(v uint8) {
	if mc.status.DecimalMode {
		mc.status.Carry, mc.status.Zero, mc.status.Overflow, mc.status.Sign = mc.a.AddDecimal(v, mc.status.Carry)
		return
	}
	mc.status.Carry, mc.status.Overflow = mc.a.Add(v, mc.status.Carry)
	mc.setNZ(mc.a)
}

func (mc *CPU) sbc(v uint8) {
	if mc.status.DecimalMode {
		mc.status.Carry, mc.status.Zero, mc.status.Overflow, mc.status.Sign = mc.a.SubtractDecimal(v, mc.status.Carry)
		return
	}
	mc.status.Carry, mc.status.Overflow = mc.a.Subtract(v, mc.status.Carry)
	mc.setNZ(mc.a)
}

// compare value with a copy of the register. the register is not changed
func (mc *CPU) compare(r registers.Register, v uint8) {
	mc.status.Carry, _ = r.Subtract(v, true)
	mc.setNZ(r)
}

// ARR in decimal mode. the NMOS chip applies the BCD fixup to the rotated
// value using the unrotated value to decide the corrections
func (mc *CPU) arrDecimal(v uint8) {
	t := mc.a.Value() & v
	r := t >> 1
	if mc.status.Carry {
		r |= 0x80
	}

	mc.status.Sign = mc.status.Carry
	mc.status.Zero = r == 0
	mc.status.Overflow = (t^r)&0x40 == 0x40

	if (t&0x0f)+(t&0x01) > 0x05 {
		r = (r & 0xf0) | ((r + 0x06) & 0x0f)
	}
	if uint16(t&0xf0)+uint16(t&0x10) > 0x50 {
		r += 0x60
		mc.status.Carry = true
	} else {
		mc.status.Carry = false
	}

	mc.a.Load(r)
}

// operate applies the instruction to the value read from memory (or the
// immediate value). used for all instructions in the read category
func (mc *CPU) operate() {
	v := mc.value

	switch mc.defn.Operator {
	case instructions.Adc:
		mc.adc(v)
	case instructions.Sbc:
		mc.sbc(v)
	case instructions.And:
		mc.a.AND(v)
		mc.setNZ(mc.a)
	case instructions.Ora:
		mc.a.ORA(v)
		mc.setNZ(mc.a)
	case instructions.Eor:
		mc.a.EOR(v)
		mc.setNZ(mc.a)

	case instructions.Asl:
		mc.status.Carry = mc.a.ASL()
		mc.setNZ(mc.a)
	case instructions.Lsr:
		mc.status.Carry = mc.a.LSR()
		mc.setNZ(mc.a)
	case instructions.Rol:
		mc.status.Carry = mc.a.ROL(mc.status.Carry)
		mc.setNZ(mc.a)
	case instructions.Ror:
		mc.status.Carry = mc.a.ROR(mc.status.Carry)
		mc.setNZ(mc.a)

	case instructions.Bit:
		mc.status.Zero = mc.a.Value()&v == 0
		mc.status.Sign = v&0x80 == 0x80
		mc.status.Overflow = v&0x40 == 0x40

	case instructions.Cmp:
		mc.compare(mc.a, v)
	case instructions.Cpx:
		mc.compare(mc.x, v)
	case instructions.Cpy:
		mc.compare(mc.y, v)

	case instructions.Lda:
		mc.a.Load(v)
		mc.setNZ(mc.a)
	case instructions.Ldx:
		mc.x.Load(v)
		mc.setNZ(mc.x)
	case instructions.Ldy:
		mc.y.Load(v)
		mc.setNZ(mc.y)

	case instructions.Clc:
		mc.status.Carry = false
	case instructions.Sec:
		mc.status.Carry = true
	case instructions.Cld:
		mc.status.DecimalMode = false
	case instructions.Sed:
		mc.status.DecimalMode = true
	case instructions.Cli:
		mc.status.InterruptDisable = false
	case instructions.Sei:
		mc.status.InterruptDisable = true
	case instructions.Clv:
		mc.status.Overflow = false

	case instructions.Dex:
		mc.x.Subtract(1, true)
		mc.setNZ(mc.x)
	case instructions.Dey:
		mc.y.Subtract(1, true)
		mc.setNZ(mc.y)
	case instructions.Inx:
		mc.x.Add(1, false)
		mc.setNZ(mc.x)
	case instructions.Iny:
		mc.y.Add(1, false)
		mc.setNZ(mc.y)

	case instructions.Tax:
		mc.x.Load(mc.a.Value())
		mc.setNZ(mc.x)
	case instructions.Tay:
		mc.y.Load(mc.a.Value())
		mc.setNZ(mc.y)
	case instructions.Txa:
		mc.a.Load(mc.x.Value())
		mc.setNZ(mc.a)
	case instructions.Tya:
		mc.a.Load(mc.y.Value())
		mc.setNZ(mc.a)
	case instructions.Tsx:
		mc.x.Load(mc.sp.Value())
		mc.setNZ(mc.x)
	case instructions.Txs:
		mc.sp.Load(mc.x.Value())

	case instructions.Pla:
		mc.a.Load(v)
		mc.setNZ(mc.a)
	case instructions.Plp:
		mc.status.Load(v)

	case instructions.Nop:

	case instructions.Lax:
		mc.a.Load(v)
		mc.x.Load(v)
		mc.setNZ(mc.a)
	case instructions.Anc:
		mc.a.AND(v)
		mc.setNZ(mc.a)
		mc.status.Carry = mc.status.Sign
	case instructions.Alr:
		mc.a.AND(v)
		mc.status.Carry = mc.a.LSR()
		mc.setNZ(mc.a)
	case instructions.Arr:
		if mc.status.DecimalMode {
			mc.arrDecimal(v)
			break
		}
		mc.a.AND(v)
		mc.a.ROR(mc.status.Carry)
		mc.setNZ(mc.a)
		b6 := mc.a.Value()&0x40 == 0x40
		b5 := mc.a.Value()&0x20 == 0x20
		mc.status.Carry = b6
		mc.status.Overflow = b6 != b5
	case instructions.Ane:
		mc.a.Load((mc.a.Value() | 0xee) & mc.x.Value() & v)
		mc.setNZ(mc.a)
	case instructions.Lxa:
		t := (mc.a.Value() | 0xee) & v
		mc.a.Load(t)
		mc.x.Load(t)
		mc.setNZ(mc.a)
	case instructions.Sbx:
		mc.x.Load(mc.a.Value() & mc.x.Value())
		mc.status.Carry, _ = mc.x.Subtract(v, true)
		mc.setNZ(mc.x)
	case instructions.Las:
		t := v & mc.sp.Value()
		mc.a.Load(t)
		mc.x.Load(t)
		mc.sp.Load(t)
		mc.setNZ(mc.a)
	}
}

// store returns the value to be written by an instruction in the write
// category
func (mc *CPU) store() uint8 {
	var v uint8

	switch mc.defn.Operator {
	case instructions.Sta:
		return mc.a.Value()
	case instructions.Stx:
		return mc.x.Value()
	case instructions.Sty:
		return mc.y.Value()
	case instructions.Sax:
		return mc.a.Value() & mc.x.Value()
	case instructions.Sha:
		v = mc.a.Value() & mc.x.Value() & (mc.baseHi + 1)
	case instructions.Shx:
		v = mc.x.Value() & (mc.baseHi + 1)
	case instructions.Shy:
		v = mc.y.Value() & (mc.baseHi + 1)
	case instructions.Tas:
		mc.sp.Load(mc.a.Value() & mc.x.Value())
		v = mc.sp.Value() & (mc.baseHi + 1)
	default:
		return 0
	}

	// the unstable stores corrupt the high byte of the address when the
	// index crosses a page
	if mc.crossed {
		mc.address = uint16(v)<<8 | mc.address&0x00ff
	}

	return v
}

// modify returns the result of a read-modify-write instruction and applies
// any accompanying register operation
func (mc *CPU) modify(v uint8) uint8 {
	r := registers.NewRegister(v, "")

	switch mc.defn.Operator {
	case instructions.Asl:
		mc.status.Carry = r.ASL()
		mc.setNZ(r)
	case instructions.Lsr:
		mc.status.Carry = r.LSR()
		mc.setNZ(r)
	case instructions.Rol:
		mc.status.Carry = r.ROL(mc.status.Carry)
		mc.setNZ(r)
	case instructions.Ror:
		mc.status.Carry = r.ROR(mc.status.Carry)
		mc.setNZ(r)
	case instructions.Inc:
		r.Add(1, false)
		mc.setNZ(r)
	case instructions.Dec:
		r.Subtract(1, true)
		mc.setNZ(r)

	case instructions.Slo:
		mc.status.Carry = r.ASL()
		mc.a.ORA(r.Value())
		mc.setNZ(mc.a)
	case instructions.Rla:
		mc.status.Carry = r.ROL(mc.status.Carry)
		mc.a.AND(r.Value())
		mc.setNZ(mc.a)
	case instructions.Sre:
		mc.status.Carry = r.LSR()
		mc.a.EOR(r.Value())
		mc.setNZ(mc.a)
	case instructions.Rra:
		mc.status.Carry = r.ROR(mc.status.Carry)
		mc.adc(r.Value())
	case instructions.Dcp:
		r.Subtract(1, true)
		mc.compare(mc.a, r.Value())
	case instructions.Isc:
		r.Add(1, false)
		mc.sbc(r.Value())
	}

	return r.Value()
}
