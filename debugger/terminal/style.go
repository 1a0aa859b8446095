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

package terminal

// Style is used to identify the category of text being sent to the
// TermPrintLine() function. The terminal implementation can interpret this
// how it sees fit - the most likely treatment is to alter the color of the
// output.
type Style int

// List of terminal styles.
const (
	// the input prompt shown when the debugger is waiting for a command
	StylePromptStep Style = iota

	// the prompt used when waiting for a yes/no confirmation
	StylePromptConfirm

	// terminal output that describes the instruction just stepped
	StyleStep

	// information about the state of the machine. registers, timers, etc.
	StyleMachineInfo

	// help information
	StyleHelp

	// general feedback from the result of a command
	StyleFeedback

	// the normalised input, as it was understood by the command parser. most
	// terminal implementations will not want to print this but it is useful
	// when recording scripts.
	StyleEcho

	// log entries relayed to the terminal
	StyleLog

	// error messages
	StyleError
)

// IsPrompt returns true if the style is considered to be one of the prompt
// styles.
func (sty Style) IsPrompt() bool {
	return sty == StylePromptStep || sty == StylePromptConfirm
}

// IncludeInScriptOutput returns true if lines of this style are worth
// keeping in a script recording. Prompts and echoed input are not; the
// echoed input is recorded separately, as the script's input lines.
func (sty Style) IncludeInScriptOutput() bool {
	return !(sty.IsPrompt() || sty == StyleEcho)
}
