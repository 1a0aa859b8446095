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
	"io"

	"github.com/julienr/chippy8/curated"
	"github.com/julienr/chippy8/debugger/script"
	"github.com/julienr/chippy8/debugger/terminal"
	"github.com/julienr/chippy8/disassembly"
	"github.com/julienr/chippy8/gui"
	"github.com/julienr/chippy8/hardware/timer"
	"github.com/julienr/chippy8/logger"
)

// inputLoop is the heart of the debugger. it reads user input from the
// inputter, passes it to the command parser and runs the machine when
// asked to. the loop ends when the running flag is reset.
//
// the function is called recursively for script playback, with the
// script standing in as the inputter.
func (dbg *Debugger) inputLoop(inputter terminal.Input) error {
	for dbg.running {
		if dbg.continueEmulation {
			if err := dbg.step(); err != nil {
				return err
			}

			// events must be drained while the machine is running or the
			// gui would be starved of attention. keypad input arrives
			// this way
			if err := dbg.readEventsHandler(); err != nil {
				if curated.Is(err, terminal.UserInterrupt) {
					dbg.haltImmediately = true
				} else if curated.IsAny(err) {
					dbg.printLine(terminal.StyleError, "%s", err)
				} else {
					return err
				}
			}

			breakMessage := dbg.breakpoints.check()
			trapMessage := dbg.traps.check()

			haltEmulation := !dbg.runUntilHalt ||
				breakMessage != "" || trapMessage != "" ||
				dbg.haltImmediately || dbg.lastStepError ||
				(dbg.stepUntil > 0 && dbg.ch8.StepCount() >= dbg.stepUntil)

			if !haltEmulation {
				// still running. unless the user has typed ahead there
				// is nothing to read and the loop can repeat immediately
				if !inputter.TermReadCheck() {
					continue
				}
			} else {
				if breakMessage != "" {
					dbg.printLine(terminal.StyleFeedback, breakMessage)
				}
				if trapMessage != "" {
					dbg.printLine(terminal.StyleFeedback, trapMessage)
				}

				// note why the machine was being stepped before the
				// flags are cleared. onHalt commands are for the end of
				// a free-run, onStep commands for a single step
				wasRunning := dbg.runUntilHalt

				dbg.continueEmulation = false
				dbg.runUntilHalt = false
				dbg.haltImmediately = false
				dbg.lastStepError = false
				dbg.stepUntil = 0

				if wasRunning {
					if err := dbg.processTokensList(dbg.commandOnHalt); err != nil {
						dbg.printLine(terminal.StyleError, "%s", err)
					}
				} else {
					if err := dbg.processTokensList(dbg.commandOnStep); err != nil {
						dbg.printLine(terminal.StyleError, "%s", err)
					}
				}

				dbg.setState(gui.StatePaused)
			}
		}

		if err := dbg.termRead(inputter); err != nil {
			if curated.Is(err, script.ScriptEnd) {
				dbg.printLine(terminal.StyleFeedback, err.Error())
				return nil
			}
			if curated.Is(err, terminal.UserInterrupt) {
				dbg.handleInterrupt(inputter)
				continue
			}
			if curated.Is(err, terminal.UserAbort) {
				dbg.running = false
				continue
			}

			// all other errors, which will be mostly errors from
			// commands, are printed and the loop continues
			dbg.printLine(terminal.StyleError, "%s", err)
		}
	}

	return nil
}

// step the machine forward by one instruction, ticking the timers as
// required by the current instruction rate.
func (dbg *Debugger) step() error {
	// snapshot the machine before the instruction executes so that
	// stepping back returns to this exact point
	dbg.history.push(dbg.ch8.Snapshot())

	// record the instruction about to be executed for the LAST command
	pc := dbg.ch8.CPU.PC
	if opcode, err := dbg.ch8.Mem.Read16(pc); err == nil {
		e := disassembly.Decode(pc, opcode)
		dbg.lastEntry = &e
	} else {
		dbg.lastEntry = nil
	}

	if err := dbg.ch8.Step(); err != nil {
		if curated.IsAny(err) {
			dbg.printLine(terminal.StyleError, "%s", err)
			dbg.lastStepError = true
			return nil
		}
		return err
	}

	// interleave timer ticks with instructions according to the current
	// instruction rate. the display's frame limiter applies the brakes
	// inside the TickTimers() call
	rate := float64(dbg.ch8.Prefs.InstRate.Get().(int))
	dbg.timerAcc += timer.TickHz / rate
	for dbg.timerAcc >= 1 {
		dbg.timerAcc--
		if err := dbg.ch8.TickTimers(); err != nil {
			return err
		}
	}

	return nil
}

// stepBack rewinds the machine by n instructions, if the history is deep
// enough.
func (dbg *Debugger) stepBack(n int) error {
	s := dbg.history.pop(n)
	if s == nil {
		return curated.Errorf("not enough history to step back by %d", n)
	}

	dbg.ch8.Restore(s)
	dbg.lastEntry = nil
	dbg.timerAcc = 0

	// the display must be told about the restored screen or it would
	// continue to show the future
	w, h := dbg.ch8.Video.Dim()
	return dbg.ch8.Disp.NewFrame(dbg.ch8.Video.Pixels(), w, h, dbg.ch8.SoundActive())
}

// termRead reads a single line of input and sends it to the command
// parser.
func (dbg *Debugger) termRead(inputter terminal.Input) error {
	inputLen, err := inputter.TermRead(dbg.input, dbg.buildPrompt(), dbg.events)
	if err != nil {
		if err == io.EOF {
			return curated.Errorf(terminal.UserAbort)
		}
		return err
	}

	if inputLen > 0 {
		return dbg.parseInput(string(dbg.input[:inputLen-1]))
	}

	return nil
}

// handleInterrupt is called when an interrupt is received while waiting
// at the prompt. interrupts received while the machine is running halt
// the machine instead.
func (dbg *Debugger) handleInterrupt(inputter terminal.Input) {
	if !inputter.IsInteractive() {
		// a script, or any other non-interactive input, is stopped dead
		// by an interrupt
		dbg.running = false
		return
	}

	if dbg.scriptScribe.IsActive() {
		// interrupts during script recording end the recording, not the
		// debugger
		dbg.printLine(terminal.StyleFeedback, "ending script recording")
		if err := dbg.scriptScribe.EndSession(); err != nil {
			logger.Log("debugger", err.Error())
		}
		return
	}

	confirm := make([]byte, 1)
	_, err := inputter.TermRead(confirm,
		terminal.Prompt{
			Content: "really quit (y/n) ",
			Style:   terminal.StylePromptConfirm,
		}, dbg.events)
	if err != nil {
		// another interrupt while waiting for confirmation is treated as
		// a yes
		if curated.Is(err, terminal.UserInterrupt) {
			confirm[0] = 'y'
		} else {
			dbg.printLine(terminal.StyleError, "%s", err)
		}
	}

	if confirm[0] == 'y' || confirm[0] == 'Y' {
		dbg.running = false
	}
}
