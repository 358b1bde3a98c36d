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

// Package easyterm is a wrapper for "github.com/pkg/term/termios". It puts
// an interactive terminal into cbreak mode so that single keypresses can be
// read without waiting for the return key, and restores the terminal
// afterwards.
//
// Whether the input is a terminal at all is decided with the
// "golang.org/x/term" package. NewTerminal() fails with the NotTerminal
// error if it is not, in which case the caller should fall back to reading
// lines.
package easyterm
