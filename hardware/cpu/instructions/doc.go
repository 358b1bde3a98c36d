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

// Package instructions defines the instruction set of the NMOS 6502. Every
// one of the 256 opcodes has a Definition, including the undocumented
// opcodes.
//
// The definitions table is generated from the CSV file in the generator
// directory. The Definition records the base cycle count of the instruction
// and whether the instruction is page sensitive. Together with the
// branch rules these describe the timing contract of every instruction:
//
//	cycles = base cycles
//	       + 1 if the instruction is page sensitive and the effective address crosses a page
//	       + 1 if the instruction is a branch and the branch is taken
//	       + 1 if the taken branch crosses a page
//
// The cycle-by-cycle detail of each instruction is in the microcode package.
package instructions
