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

//go:build !windows
// +build !windows

package colorterm

import (
	"bufio"
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/julienr/chippy8/curated"
	"github.com/julienr/chippy8/debugger/terminal"
	"github.com/julienr/chippy8/debugger/terminal/colorterm/easyterm"
	"github.com/julienr/chippy8/debugger/terminal/colorterm/easyterm/ansi"
)

// readRune is the type passed over the runeReader channel.
type readRune struct {
	r   rune
	err error
}

// runeReader pulls runes from the input stream in its own goroutine, making
// them available over a channel. this means TermRead() can select over
// terminal input and the debugger's event channels at the same time.
type runeReader struct {
	runes chan readRune
}

func initRuneReader(input io.Reader) runeReader {
	rr := runeReader{runes: make(chan readRune)}

	br := bufio.NewReader(input)

	go func() {
		for {
			r, _, err := br.ReadRune()
			rr.runes <- readRune{r: r, err: err}
			if err != nil {
				return
			}
		}
	}()

	return rr
}

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(input []byte, prompt terminal.Prompt, events *terminal.ReadEvents) (int, error) {
	if ct.silenced {
		return 0, nil
	}

	ct.RawMode()
	defer ct.CanonicalMode()

	// er is used to store encoded runes (length of 4 should be enough)
	er := make([]byte, 4)

	inputLen := 0
	cursorPos := 0
	historyIdx := len(ct.commandHistory)

	// liveBuffInput is used to store the latest input when we scroll through
	// history - we don't want to lose what we've typed in case the user
	// wants to resume where they left off
	liveBuffInput := make([]byte, cap(input))
	liveBuffInputLen := 0

	// the method for cursor placement is as follows:
	// 	1. for each iteration in the loop
	//		2. store current cursor position
	//		3. clear the current line
	//		4. output the prompt
	//		5. output the input buffer
	//		6. restore the cursor position
	//
	// for this to work we need to place the cursor in its initial position
	// before the loop begins
	ct.EasyTerm.TermPrint("\r")
	ct.EasyTerm.TermPrint(ansi.CursorMove(len(prompt.String())))

	for {
		ct.EasyTerm.TermPrint(ansi.CursorStore)
		ct.TermPrintLine(prompt.Style, fmt.Sprintf("%s%s", ansi.ClearLine, prompt.String()))
		ct.EasyTerm.TermPrint(string(input[:inputLen]))
		ct.EasyTerm.TermPrint(ansi.CursorRestore)

		var rr readRune

		// wait for a rune, servicing the debugger's events while we do
		select {
		case rr = <-ct.reader.runes:

		case ev := <-events.GuiEvents:
			if events.GuiEventHandler != nil {
				if err := events.GuiEventHandler(ev); err != nil {
					return inputLen, err
				}
			}
			continue // for loop

		case f := <-events.RawEvents:
			f()
			continue // for loop

		case <-events.IntEvents:
			ct.EasyTerm.TermPrint("\n")
			return inputLen, curated.Errorf(terminal.UserInterrupt)
		}

		if rr.err != nil {
			return inputLen, rr.err
		}

		switch rr.r {
		case easyterm.KeyTab:
			if ct.tabCompletion != nil {
				s := ct.tabCompletion.Complete(string(input[:cursorPos]))

				// the difference in the length of the new input and the old
				// input
				d := len(s) - cursorPos

				// append everything after the cursor to the new string and
				// copy into input array
				s += string(input[cursorPos:inputLen])
				copy(input, []byte(s))

				// advance cursor to the end of the completed word
				ct.EasyTerm.TermPrint(ansi.CursorMove(d))
				cursorPos += d

				// note new used-length of input array
				inputLen += d
			}

		case easyterm.KeyInterrupt:
			ct.EasyTerm.TermPrint("\n")
			return inputLen, curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeySuspend:
			// the terminal must be returned to canonical mode for the
			// duration of the suspension
			ct.CanonicalMode()
			easyterm.SuspendProcess()
			ct.RawMode()

		case easyterm.KeyCarriageReturn:
			// check to see if input is the same as the last history entry
			newEntry := false
			if inputLen > 0 {
				newEntry = true
				if len(ct.commandHistory) > 0 {
					lastHistoryEntry := ct.commandHistory[len(ct.commandHistory)-1].input
					if len(lastHistoryEntry) == inputLen {
						newEntry = false
						for i := 0; i < inputLen; i++ {
							if input[i] != lastHistoryEntry[i] {
								newEntry = true
								break
							}
						}
					}
				}
			}

			// if input is not the same as the last history entry then append
			// a new entry to the history list
			if newEntry {
				nh := make([]byte, inputLen)
				copy(nh, input[:inputLen])
				ct.commandHistory = append(ct.commandHistory, command{input: nh})
			}

			if ct.tabCompletion != nil {
				ct.tabCompletion.Reset()
			}

			ct.EasyTerm.TermPrint("\n")

			// terminate the input with a newline, the same as a read in
			// canonical mode would
			if inputLen < len(input) {
				input[inputLen] = '\n'
			}

			return inputLen + 1, nil

		case easyterm.KeyEsc:
			// ESCAPE SEQUENCE BEGIN
			rr = <-ct.reader.runes
			if rr.err != nil {
				return inputLen, rr.err
			}

			switch rr.r {
			case easyterm.EscCursor:
				// CURSOR KEY
				rr = <-ct.reader.runes
				if rr.err != nil {
					return inputLen, rr.err
				}

				switch rr.r {
				case easyterm.CursorUp:
					// move up through command history
					if len(ct.commandHistory) > 0 {
						// if we're at the end of the command history then
						// store the current input in liveBuffInput for
						// possible later editing
						if historyIdx == len(ct.commandHistory) {
							copy(liveBuffInput, input[:inputLen])
							liveBuffInputLen = inputLen
						}

						if historyIdx > 0 {
							historyIdx--
							copy(input, ct.commandHistory[historyIdx].input)
							inputLen = len(ct.commandHistory[historyIdx].input)
							ct.EasyTerm.TermPrint(ansi.CursorMove(inputLen - cursorPos))
							cursorPos = inputLen
						}
					}

				case easyterm.CursorDown:
					// move down through command history
					if len(ct.commandHistory) > 0 {
						if historyIdx < len(ct.commandHistory)-1 {
							historyIdx++
							copy(input, ct.commandHistory[historyIdx].input)
							inputLen = len(ct.commandHistory[historyIdx].input)
							ct.EasyTerm.TermPrint(ansi.CursorMove(inputLen - cursorPos))
							cursorPos = inputLen
						} else if historyIdx == len(ct.commandHistory)-1 {
							historyIdx++
							copy(input, liveBuffInput)
							inputLen = liveBuffInputLen
							ct.EasyTerm.TermPrint(ansi.CursorMove(inputLen - cursorPos))
							cursorPos = inputLen
						}
					}

				case easyterm.CursorForward:
					// move forward through current command input
					if cursorPos < inputLen {
						ct.EasyTerm.TermPrint(ansi.CursorForwardOne)
						cursorPos++
					}

				case easyterm.CursorBackward:
					// move backward through current command input
					if cursorPos > 0 {
						ct.EasyTerm.TermPrint(ansi.CursorBackwardOne)
						cursorPos--
					}

				case easyterm.EscDelete:
					// DELETE. the escape sequence ends with a tilde, which
					// we must also consume
					rr = <-ct.reader.runes
					if rr.err != nil {
						return inputLen, rr.err
					}

					if cursorPos < inputLen {
						copy(input[cursorPos:], input[cursorPos+1:])
						inputLen--
						historyIdx = len(ct.commandHistory)
					}

				case easyterm.EscHome:
					ct.EasyTerm.TermPrint(ansi.CursorMove(-cursorPos))
					cursorPos = 0

				case easyterm.EscEnd:
					ct.EasyTerm.TermPrint(ansi.CursorMove(inputLen - cursorPos))
					cursorPos = inputLen
				}
			}

		case easyterm.KeyBackspace, easyterm.KeyDel:
			// BACKSPACE
			if cursorPos > 0 {
				copy(input[cursorPos-1:], input[cursorPos:])
				ct.EasyTerm.TermPrint(ansi.CursorBackwardOne)
				cursorPos--
				inputLen--
				historyIdx = len(ct.commandHistory)
			}

		default:
			if unicode.IsPrint(rr.r) {
				ct.EasyTerm.TermPrint(fmt.Sprintf("%c", rr.r))
				m := utf8.EncodeRune(er, rr.r)
				copy(input[cursorPos+m:], input[cursorPos:])
				copy(input[cursorPos:], er[:m])
				cursorPos++
				inputLen += m
				historyIdx = len(ct.commandHistory)
			}
		}
	}
}

// TermReadCheck implements the terminal.Input interface.
func (ct *ColorTerminal) TermReadCheck() bool {
	return false
}
