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

package debugger

import (
	"fmt"
	"strings"

	"github.com/julienr/chippy8/debugger/terminal"
)

// all print operations from the debugger should be made with the
// printLine function. output arrives via the attached terminal and, when
// a script is being recorded, via the script scribe.
func (dbg *Debugger) printLine(sty terminal.Style, s string, a ...interface{}) {
	// resolve the format string only when arguments have been supplied.
	// many callers pass prepared strings that may contain % characters
	if len(a) > 0 {
		s = fmt.Sprintf(s, a...)
	}

	// trailing newlines in the output spoil the prompt placement
	s = strings.TrimRight(s, "\n")

	dbg.term.TermPrintLine(sty, s)

	if sty.IncludeInScriptOutput() {
		dbg.scriptScribe.WriteOutput(s)
	}
}

// styleWriter is an io.Writer for anything that wants to write to the
// terminal in a consistent style. use the printStyle function to get an
// instance.
type styleWriter struct {
	dbg *Debugger
	sty terminal.Style
}

func (dbg *Debugger) printStyle(sty terminal.Style) *styleWriter {
	return &styleWriter{
		dbg: dbg,
		sty: sty,
	}
}

func (wrt styleWriter) Write(p []byte) (n int, err error) {
	wrt.dbg.printLine(wrt.sty, string(p))
	return len(p), nil
}
