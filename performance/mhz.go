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

package performance

// CalcMHz returns the effective clock speed in MHz of the number of cycles
// run in the number of seconds. The accuracy is the percentage of the clock
// speed of the real hardware, in Hz, that was achieved.
func CalcMHz(cycles uint64, seconds float64, clock int) (float64, float64) {
	if seconds <= 0 {
		return 0, 0
	}
	hz := float64(cycles) / seconds
	accuracy := 0.0
	if clock > 0 {
		accuracy = 100 * hz / float64(clock)
	}
	return hz / 1000000, accuracy
}
