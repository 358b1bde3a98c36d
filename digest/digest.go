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

// Package digest contains implementations of interfaces found elsewhere in
// the emulation, such that a cryptographic hash is produced. The hash can
// be used to compare the output of subsequent emulation runs. If a new hash
// differs from a previously recorded value then something has changed.
//
// The Bus type hashes every cycle of bus activity and is suitable for use as
// a cycle callback. The Audio type implements the speaker.SampleSink
// interface.
//
// Hashes are chained. Data is collected in a buffer that begins with the
// previous hash value and the hash is recalculated whenever the buffer is
// full.
package digest

// Digest implementations return a cryptographic hash in response to a
// Hash() request.
type Digest interface {
	Hash() string
	ResetDigest()
}
