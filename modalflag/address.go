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

package modalflag

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/mos6502/curated"
)

// BadAddress is the error pattern for a badly formed address.
const BadAddress = "address: %v"

// address implements the flag.Value interface for 16 bit addresses.
type address struct {
	v uint16
}

func (a *address) String() string {
	if a == nil {
		return ""
	}
	return fmt.Sprintf("$%04x", a.v)
}

func (a *address) Set(s string) error {
	v, err := ParseAddress(s)
	if err != nil {
		return err
	}
	a.v = v
	return nil
}

// ParseAddress converts a string into a 16 bit address. Hexadecimal values
// are prefixed with '$' or "0x" or suffixed with 'h'. Anything else is decimal.
func ParseAddress(s string) (uint16, error) {
	t := strings.TrimSpace(strings.ToLower(s))

	base := 10
	switch {
	case strings.HasPrefix(t, "$"):
		t = t[1:]
		base = 16
	case strings.HasPrefix(t, "0x"):
		t = t[2:]
		base = 16
	case strings.HasSuffix(t, "h"):
		t = t[:len(t)-1]
		base = 16
	}

	v, err := strconv.ParseUint(t, base, 16)
	if err != nil {
		return 0, curated.Errorf(BadAddress, s)
	}
	return uint16(v), nil
}
