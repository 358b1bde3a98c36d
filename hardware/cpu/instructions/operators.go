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

package instructions

// Operator identifies the operation performed by an instruction,
// independently of the addressing mode.
type Operator int

// List of operators. The first group is the documented instruction set. The
// second group are the undocumented operators of the NMOS 6502. Where an
// undocumented opcode duplicates a documented operator (NOP and SBC) the
// documented operator is used and the Definition is marked as Undocumented.
const (
	Adc Operator = iota
	And
	Asl
	Bcc
	Bcs
	Beq
	Bit
	Bmi
	Bne
	Bpl
	Brk
	Bvc
	Bvs
	Clc
	Cld
	Cli
	Clv
	Cmp
	Cpx
	Cpy
	Dec
	Dex
	Dey
	Eor
	Inc
	Inx
	Iny
	Jmp
	Jsr
	Lda
	Ldx
	Ldy
	Lsr
	Nop
	Ora
	Pha
	Php
	Pla
	Plp
	Rol
	Ror
	Rti
	Rts
	Sbc
	Sec
	Sed
	Sei
	Sta
	Stx
	Sty
	Tax
	Tay
	Tsx
	Txa
	Txs
	Tya

	Slo
	Rla
	Sre
	Rra
	Sax
	Lax
	Dcp
	Isc
	Anc
	Alr
	Arr
	Ane
	Lxa
	Sbx
	Sha
	Shx
	Shy
	Tas
	Las
	Jam

	numOperators
)

var mnemonics = [numOperators]string{
	"ADC", "AND", "ASL", "BCC", "BCS", "BEQ", "BIT", "BMI", "BNE", "BPL",
	"BRK", "BVC", "BVS", "CLC", "CLD", "CLI", "CLV", "CMP", "CPX", "CPY",
	"DEC", "DEX", "DEY", "EOR", "INC", "INX", "INY", "JMP", "JSR", "LDA",
	"LDX", "LDY", "LSR", "NOP", "ORA", "PHA", "PHP", "PLA", "PLP", "ROL",
	"ROR", "RTI", "RTS", "SBC", "SEC", "SED", "SEI", "STA", "STX", "STY",
	"TAX", "TAY", "TSX", "TXA", "TXS", "TYA",

	"SLO", "RLA", "SRE", "RRA", "SAX", "LAX", "DCP", "ISC", "ANC", "ALR",
	"ARR", "ANE", "LXA", "SBX", "SHA", "SHX", "SHY", "TAS", "LAS", "JAM",
}

// String returns the mnemonic for the operator.
func (o Operator) String() string {
	if o < 0 || o >= numOperators {
		return "???"
	}
	return mnemonics[o]
}

// OperatorFromMnemonic returns the Operator for the mnemonic. The mnemonic
// must be upper case.
func OperatorFromMnemonic(mnemonic string) (Operator, bool) {
	for i, m := range mnemonics {
		if m == mnemonic {
			return Operator(i), true
		}
	}
	return Nop, false
}
