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

// Package microcode describes the cycle-by-cycle behaviour of every 6502
// instruction. An instruction is a Program, which is a short list of Op
// values. The opcode fetch is the first cycle of every instruction and is not
// part of the Program.
//
// Each Op accounts for exactly one cycle and exactly one bus access, apart
// from the conditional ops (see Op.Conditional()). A conditional op only
// happens when the condition is met, otherwise it is skipped without
// consuming a cycle. The conditions are the page crossing of an indexed read
// and the taken and page crossing conditions of a branch. These are exactly
// the conditions that make up the variable part of an instruction's cycle
// count.
//
// The microcode package only describes the sequence. It is the CPU that
// performs each Op, reporting the bus activity of the cycle as a Step.
//
// The Reset and Interrupt programs are not instructions but are performed by
// the CPU in the same way. The Interrupt program is shared by IRQ and NMI.
// The BRK instruction is a variation of the Interrupt program.
package microcode
