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

package digest

import (
	"crypto/sha1"
	"fmt"
)

// the number of bytes collected before the hash is recalculated
const chainLength = 4096

// chain is the chained hash shared by the Digest implementations.
type chain struct {
	digest [sha1.Size]byte
	buffer []uint8
	ct     int
}

func newChain() chain {
	return chain{
		buffer: make([]uint8, sha1.Size+chainLength),
		ct:     sha1.Size,
	}
}

func (c *chain) add(v ...uint8) {
	for _, b := range v {
		c.buffer[c.ct] = b
		c.ct++
		if c.ct >= len(c.buffer) {
			c.flush()
		}
	}
}

func (c *chain) flush() {
	c.digest = sha1.Sum(c.buffer[:c.ct])
	copy(c.buffer, c.digest[:])
	c.ct = sha1.Size
}

// hash includes data that has not yet been flushed. the chain is not
// altered.
func (c *chain) hash() string {
	if c.ct == sha1.Size {
		return fmt.Sprintf("%x", c.digest)
	}
	return fmt.Sprintf("%x", sha1.Sum(c.buffer[:c.ct]))
}

func (c *chain) reset() {
	for i := range c.digest {
		c.digest[i] = 0
	}
	copy(c.buffer, c.digest[:])
	c.ct = sha1.Size
}
