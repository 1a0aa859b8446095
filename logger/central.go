// This file is part of Chippy8.
//
// Chippy8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Chippy8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Chippy8.  If not, see <https://www.gnu.org/licenses/>.

// Package logger is the central log for the entire application. Log
// entries are made with the Log() and Logf() functions, named with a short
// tag identifying the package or subsystem that raised them. Consecutive
// identical entries are compressed into one entry with a repeat count.
//
// The log is bounded. Once the maximum number of entries is reached the
// oldest entries are lost. SetEcho() copies new entries to an io.Writer as
// they arrive, which is how the log reaches the terminal during normal
// use. The GUI log window gains access to the entry list with BorrowLog().
package logger

import (
	"io"
)

// only allowing one central log for the entire application. there's no
// need for more than one.
var central *logger

// maximum number of entries in the central logger.
const maxCentral = 256

func init() {
	central = newLogger(maxCentral)
}

// Log adds an entry to the central logger.
func Log(tag, detail string) {
	central.log(tag, detail)
}

// Logf adds a formatted entry to the central logger.
func Logf(tag, detail string, args ...interface{}) {
	central.logf(tag, detail, args...)
}

// Clear all entries from central logger.
func Clear() {
	central.clear()
}

// Write contents of central logger to io.Writer.
func Write(output io.Writer) {
	central.write(output)
}

// Tail writes the last N entries to io.Writer.
func Tail(output io.Writer, number int) {
	central.tail(output, number)
}

// SetEcho copies new log entries to io.Writer as they arrive. A nil writer
// stops the echo.
func SetEcho(output io.Writer) {
	central.setEcho(output)
}

// BorrowLog gives the provided function the critical section and access to
// the list of log entries. The list must not be referenced outside the
// lifetime of the function.
func BorrowLog(f func([]Entry)) {
	central.borrowLog(f)
}
