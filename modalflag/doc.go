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

// Package modalflag wraps the flag package in the standard library so that
// the command line can be divided into modes, each mode with its own set of
// flags.
//
// Arguments are supplied once with NewArgs() and then consumed by successive
// calls to Parse(). Each call to Parse() handles the flags added since the
// last call to NewMode() and then checks whether the next argument names one
// of the sub-modes added with AddSubModes():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "TRACE")
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		cycles := md.AddUint64("cycles", 0, "stop after this many cycles")
//		origin := md.AddAddress("origin", 0x0400, "entry point of the program")
//		...
//	}
//
// The first sub-mode in the list is the default and is selected when the
// argument following the flags does not name a sub-mode. Sub-mode comparisons
// are case insensitive. The Path() function returns every mode selected so
// far, separated by a slash.
//
// AddAddress() is the one flag type not found in the flag package. It
// accepts a 16 bit address written in any of the common 6502 notations:
// "$f000", "0xf000", "f000h" or plain decimal.
package modalflag
