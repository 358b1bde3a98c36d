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

// Audio produces a hash of the samples produced by the speaker.
type Audio struct {
	chain
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	return &Audio{chain: newChain()}
}

// AddSample implements the speaker.SampleSink interface.
func (dig *Audio) AddSample(v uint8) {
	dig.add(v)
}

// Hash implements the digest.Digest interface.
func (dig *Audio) Hash() string {
	return dig.hash()
}

// ResetDigest implements the digest.Digest interface.
func (dig *Audio) ResetDigest() {
	dig.reset()
}
