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

package easyterm

import (
	"os"

	"github.com/jetsetilly/mos6502/curated"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Sentinal error patterns.
const (
	NotTerminal = "easyterm: %s is not a terminal"
	TermiosFail = "easyterm: %v"
)

// Terminal is the main container for posix terminals.
type Terminal struct {
	input *os.File

	canAttr    unix.Termios
	cbreakAttr unix.Termios

	cbreak bool
}

// NewTerminal prepares the input file for cbreak mode. The terminal is not
// changed until CBreakMode() is called.
func NewTerminal(input *os.File) (*Terminal, error) {
	if input == nil || !IsTerminal(input) {
		name := "input"
		if input != nil {
			name = input.Name()
		}
		return nil, curated.Errorf(NotTerminal, name)
	}

	pt := &Terminal{input: input}

	err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr)
	if err != nil {
		return nil, curated.Errorf(TermiosFail, err)
	}

	// cbreak attributes are derived from the canonical attributes
	pt.cbreakAttr = pt.canAttr
	termios.Cfmakecbreak(&pt.cbreakAttr)

	return pt, nil
}

// IsTerminal returns true if the file is connected to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// CBreakMode puts the terminal into cbreak mode. Input is available one
// key at a time and is not echoed.
func (pt *Terminal) CBreakMode() error {
	if err := termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, &pt.cbreakAttr); err != nil {
		return curated.Errorf(TermiosFail, err)
	}
	pt.cbreak = true
	return nil
}

// CanonicalMode puts the terminal back into the mode it was in when
// NewTerminal() was called.
func (pt *Terminal) CanonicalMode() error {
	if !pt.cbreak {
		return nil
	}
	if err := termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, &pt.canAttr); err != nil {
		return curated.Errorf(TermiosFail, err)
	}
	pt.cbreak = false
	return nil
}

// ReadKey blocks until a single key has been pressed. Should only be called
// when the terminal is in cbreak mode.
func (pt *Terminal) ReadKey() (byte, error) {
	b := make([]byte, 1)
	for {
		n, err := pt.input.Read(b)
		if err != nil {
			return 0, curated.Errorf(TermiosFail, err)
		}
		if n == 1 {
			return b[0], nil
		}
	}
}
