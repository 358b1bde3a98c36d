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

// Package performance measures the speed of the emulation. Check() runs a
// machine for a fixed period of time and reports the effective clock speed
// of the emulated CPU, compared to the clock speed of real hardware.
//
// The measurement can be run through the Go profiler with RunProfiler(). The
// profiles are written to files in the current directory and can be examined
// with "go tool pprof".
package performance
