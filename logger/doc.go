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

// Package logger is the central log for the emulation. Log entries are made
// with a tag and a detail. The tag is conventionally the lower-case name of
// the package or component making the entry. For example:
//
//	logger.Logf(logger.Allow, "bus", "open bus read at %#04x", address)
//
// Consecutive entries with the same tag and detail are collapsed into a single
// entry with a repeat count. This keeps the log readable when a program is
// hammering an unmapped address.
//
// The number of entries in the central log is capped. The oldest entries are
// discarded first.
//
// Other, non-central, logs can be created with NewLogger(). These are useful
// for testing or for when a component wants a log that it can inspect without
// interference.
package logger

import "io"

// only allowing one central log for the entire application
var central *Logger

// maximum number of entries in the central logger.
const maxCentral = 256

func init() {
	central = NewLogger(maxCentral)
}

// Log adds an entry to the central logger.
func Log(perm Permission, tag string, detail any) {
	central.Log(perm, tag, detail)
}

// Logf adds a formatted entry to the central logger.
func Logf(perm Permission, tag string, detail string, args ...any) {
	central.Logf(perm, tag, detail, args...)
}

// Clear all entries from central logger.
func Clear() {
	central.Clear()
}

// Write contents of central logger to io.Writer.
func Write(output io.Writer) {
	central.Write(output)
}

// Tail writes the last N entries to io.Writer.
func Tail(output io.Writer, number int) {
	central.Tail(output, number)
}

// SetEcho prints new log entries to io.Writer as well as adding them to the
// log. A nil writer turns echoing off.
func SetEcho(output io.Writer) {
	central.SetEcho(output)
}
