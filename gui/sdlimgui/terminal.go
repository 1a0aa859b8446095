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

package sdlimgui

import (
	"strings"

	"github.com/julienr/chippy8/curated"
	"github.com/julienr/chippy8/debugger/terminal"
	"github.com/julienr/chippy8/logger"
)

// term implements the terminal.Terminal interface. it is the bridge between
// the debugger goroutine and the winTerm window. note that the window itself
// is not defined in this file.
type term struct {
	silenced bool

	tabCompletion terminal.TabCompletion

	// input from the winTerm window
	inputChan chan string

	// input from other gui elements (buttons etc.) that want to run a
	// terminal command
	sideChan chan string

	// prompt and output to the winTerm window
	promptChan chan terminal.Prompt
	outputChan chan terminalOutput
}

func newTerm() *term {
	return &term{
		// inputChan must not block
		inputChan: make(chan string, 1),

		// side-channel terminal input from other areas of the gui
		sideChan: make(chan string, 10),

		promptChan: make(chan terminal.Prompt, 1),

		// generous buffer for output. the window drains it every frame
		outputChan: make(chan terminalOutput, 4096),
	}
}

// Initialise implements the terminal.Terminal interface.
func (trm *term) Initialise() error {
	return nil
}

// CleanUp implements the terminal.Terminal interface.
func (trm *term) CleanUp() {
}

// RegisterTabCompletion implements the terminal.Terminal interface.
func (trm *term) RegisterTabCompletion(tc terminal.TabCompletion) {
	trm.tabCompletion = tc
}

// Silence implements the terminal.Terminal interface.
func (trm *term) Silence(silenced bool) {
	trm.silenced = silenced
}

// IsInteractive implements the terminal.Input interface.
func (trm *term) IsInteractive() bool {
	return true
}

// TermPrintLine implements the terminal.Output interface.
func (trm *term) TermPrintLine(style terminal.Style, s string) {
	if trm.silenced && style != terminal.StyleError {
		return
	}

	trm.outputChan <- terminalOutput{style: style, text: s}
}

// TermRead implements the terminal.Input interface.
func (trm *term) TermRead(buffer []byte, prompt terminal.Prompt, events *terminal.ReadEvents) (int, error) {
	trm.promptChan <- prompt

	// the debugger is now waiting for input from the terminal but we still
	// need to service the events that come from the gui
	for {
		select {
		case inp := <-trm.inputChan:
			n := len(inp)
			copy(buffer, inp+"\n")
			return n + 1, nil

		case s := <-trm.sideChan:
			s = strings.TrimSpace(s)
			n := len(s)
			copy(buffer, s+"\n")
			return n + 1, nil

		case ev := <-events.GuiEvents:
			err := events.GuiEventHandler(ev)
			if err != nil {
				return 0, err
			}

		case f := <-events.RawEvents:
			f()

		case <-events.IntEvents:
			return 0, curated.Errorf(terminal.UserInterrupt)
		}
	}
}

// TermReadCheck implements the terminal.Input interface.
func (trm *term) TermReadCheck() bool {
	return len(trm.inputChan) > 0 || len(trm.sideChan) > 0
}

// pendingOutput returns true if there is terminal output the winTerm window
// has yet to display. used to decide how eagerly the service loop should
// run.
func (trm *term) pendingOutput() bool {
	return len(trm.outputChan) > 0
}

// pushCommand onto the side-channel. the command will be run by the debugger
// as though it had been typed at the terminal prompt. for use by the gui
// goroutine.
func (trm *term) pushCommand(input string) {
	// drop the command if the channel is full. the debugger is probably
	// busy with something else
	select {
	case trm.sideChan <- input:
	default:
		logger.Logf("sdlimgui", "dropped %s command", input)
	}
}

// terminalOutput is a single line of terminal output along with the style it
// should be displayed in.
type terminalOutput struct {
	style terminal.Style
	text  string
}
