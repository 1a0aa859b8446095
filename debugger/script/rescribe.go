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

package script

import (
	"os"
	"strings"

	"github.com/julienr/chippy8/curated"
	"github.com/julienr/chippy8/debugger/terminal"
)

// Sentinal errors for the rescribe half of the package.
const (
	// ScriptEnd is returned by TermRead() when the script has run out of
	// input lines. Not a condition to panic over.
	ScriptEnd = "end of script (%s)"

	// ScriptFileError is returned when the script file cannot be read.
	ScriptFileError = "script: %v"
)

// check if line is prepended with commentLine (ignoring leading spaces).
func isOutputLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), commentLine)
}

// Rescribe represents a previously scribed script. The type implements
// the terminal.Input interface and can be used in place of a live
// terminal in the debugger's input loop.
type Rescribe struct {
	scriptFile string
	lines      []string
	lineCt     int
}

// RescribeScript is the preferred method of initialisation for the
// Rescribe type.
func RescribeScript(scriptfile string) (*Rescribe, error) {
	buffer, err := os.ReadFile(scriptfile)
	if err != nil {
		return nil, curated.Errorf(ScriptFileError, err)
	}

	scr := &Rescribe{scriptFile: scriptfile}

	scr.lines = strings.Split(string(buffer), "\n")

	// pass over any lines starting with the commentLine, leaving the line
	// counter at the first input line
	for scr.lineCt < len(scr.lines) && isOutputLine(scr.lines[scr.lineCt]) {
		scr.lineCt++
	}

	return scr, nil
}

// TermRead implements the terminal.Input interface.
func (scr *Rescribe) TermRead(buffer []byte, _ terminal.Prompt, _ *terminal.ReadEvents) (int, error) {
	if scr.lineCt > len(scr.lines)-1 {
		return -1, curated.Errorf(ScriptEnd, scr.scriptFile)
	}

	// the +1 stands in for the newline an interactive terminal would have
	// included
	n := len(scr.lines[scr.lineCt]) + 1
	copy(buffer, []byte(scr.lines[scr.lineCt]))
	scr.lineCt++

	// pass over any lines starting with the commentLine
	for scr.lineCt < len(scr.lines) && isOutputLine(scr.lines[scr.lineCt]) {
		scr.lineCt++
	}

	return n, nil
}

// TermReadCheck implements the terminal.Input interface.
func (scr *Rescribe) TermReadCheck() bool {
	return false
}

// IsInteractive implements the terminal.Input interface.
func (scr *Rescribe) IsInteractive() bool {
	return false
}
