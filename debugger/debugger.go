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
	"os"
	"os/signal"

	"github.com/julienr/chippy8/curated"
	"github.com/julienr/chippy8/debugger/script"
	"github.com/julienr/chippy8/debugger/terminal"
	"github.com/julienr/chippy8/debugger/terminal/commandline"
	"github.com/julienr/chippy8/disassembly"
	"github.com/julienr/chippy8/display"
	"github.com/julienr/chippy8/gui"
	"github.com/julienr/chippy8/hardware"
	"github.com/julienr/chippy8/romloader"
	"github.com/julienr/chippy8/setup"
)

// Debugger is the basic debugging front-end for the machine.
type Debugger struct {
	ch8 *hardware.Chip8

	// the most recent disassembly of the attached ROM
	Disasm *disassembly.Disassembly

	scr  gui.GUI
	term terminal.Terminal

	// events is shared with the terminal so that gui events, interrupts
	// and raw functions can be serviced while the terminal waits for
	// input
	events *terminal.ReadEvents

	breakpoints *breakpoints
	traps       *traps
	history     *history

	// the loader for the currently attached ROM. nil until a ROM is
	// inserted
	loader *romloader.Loader

	// the instruction most recently executed by step(). nil before the
	// first step and after operations that break continuity
	lastEntry *disassembly.Entry

	// accumulates fractions of a timer tick as instructions execute
	timerAcc float64

	// commands run automatically when the machine halts out of a run or
	// completes a single step. the stored variants allow ONHALT ON and
	// ONSTEP ON to restore a list that was turned off earlier
	commandOnHalt       []*commandline.Tokens
	commandOnHaltStored []*commandline.Tokens
	commandOnStep       []*commandline.Tokens
	commandOnStepStored []*commandline.Tokens

	scriptScribe script.Scribe

	// buffer for user input
	input []byte

	// loop control
	running           bool
	runUntilHalt      bool
	continueEmulation bool
	haltImmediately   bool
	lastStepError     bool

	// non-zero when the STEP command has been given a count. the machine
	// runs until the step count reaches this value
	stepUntil uint64
}

// NewDebugger creates and initialises everything required by the
// debugger.
func NewDebugger(disp *display.Display, scr gui.GUI, term terminal.Terminal) (*Debugger, error) {
	var err error

	dbg := &Debugger{
		scr:  scr,
		term: term,
	}

	dbg.ch8, err = hardware.NewChip8(disp)
	if err != nil {
		return nil, curated.Errorf("debugger: %v", err)
	}

	// an empty disassembly keeps the DISASM and GREP commands safe to
	// use before a ROM is attached
	dbg.Disasm = &disassembly.Disassembly{}

	dbg.breakpoints = newBreakpoints(dbg)
	dbg.traps = newTraps(dbg)
	dbg.history = newHistory()

	dbg.input = make([]byte, 255)

	dbg.events = &terminal.ReadEvents{
		GuiEvents:       make(chan gui.Event, 2),
		GuiEventHandler: dbg.guiEventHandler,
		IntEvents:       make(chan os.Signal, 1),
		RawEvents:       make(chan func(), 32),
	}

	// connect debugger to gui
	err = scr.SetFeature(gui.ReqSetDebugmode, dbg, dbg.events.GuiEvents)
	if err != nil && !curated.Is(err, gui.UnsupportedGuiFeature) {
		return nil, curated.Errorf("debugger: %v", err)
	}

	// default ONSTEP and ONHALT commands
	onStep, err := dbg.tokeniseCommandList(cmdLast)
	if err != nil {
		return nil, curated.Errorf("debugger: %v", err)
	}
	dbg.commandOnStep = onStep
	dbg.commandOnStepStored = onStep

	onHalt, err := dbg.tokeniseCommandList(fmt.Sprintf("%s, %s", cmdRegisters, cmdTimers))
	if err != nil {
		return nil, curated.Errorf("debugger: %v", err)
	}
	dbg.commandOnHalt = onHalt
	dbg.commandOnHaltStored = onHalt

	// ctrl-c handling
	signal.Notify(dbg.events.IntEvents, os.Interrupt)

	return dbg, nil
}

// Start the main debugger sequence. the function returns when the
// debugger has been ended, by the QUIT command for example.
func (dbg *Debugger) Start(initScript string, ld romloader.Loader) error {
	if ld.Filename != "" || ld.HasLoaded() {
		if err := dbg.insertROM(ld); err != nil {
			return curated.Errorf("debugger: %v", err)
		}
	}

	if err := dbg.term.Initialise(); err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()

	dbg.term.RegisterTabCompletion(commandline.NewTabCompletion(debuggerCommands))

	dbg.running = true
	dbg.setState(gui.StatePaused)

	// run initialisation script silently before the interactive session
	if initScript != "" {
		plb, err := script.RescribeScript(initScript)
		if err == nil {
			dbg.term.Silence(true)
			if err := dbg.inputLoop(plb); err != nil {
				dbg.term.Silence(false)
				return curated.Errorf("debugger: %v", err)
			}
			dbg.term.Silence(false)
		} else {
			dbg.printLine(terminal.StyleError, "error running initialisation script (%v)", err)
		}
	}

	err := dbg.inputLoop(dbg.term)

	dbg.setState(gui.StateEnding)

	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}

	return nil
}

// insertROM attaches the ROM and refreshes the disassembly. continuity
// with the previous machine state is broken.
func (dbg *Debugger) insertROM(ld romloader.Loader) error {
	// load now so that the copy of the loader kept by the debugger has
	// the ROM data in it
	if err := ld.Load(); err != nil {
		return err
	}

	if err := setup.AttachROM(dbg.ch8, ld); err != nil {
		return err
	}

	dsm, err := disassembly.FromLoader(ld)
	if err != nil {
		return err
	}
	dbg.Disasm = dsm

	dbg.loader = &ld
	dbg.history.reset()
	dbg.timerAcc = 0
	dbg.lastEntry = nil

	return nil
}

// InsertROM inserts a new ROM into the machine. gui code should wrap
// the call in PushRawEvent() so that it runs in the debugger goroutine.
func (dbg *Debugger) InsertROM(filename string) error {
	return dbg.insertROM(romloader.NewLoader(filename))
}

// Chip8 returns the machine being debugged.
func (dbg *Debugger) Chip8() *hardware.Chip8 {
	return dbg.ch8
}

// setState informs the gui of a change to the emulation state. not all
// gui implementations care.
func (dbg *Debugger) setState(state gui.EmulationState) {
	dbg.scr.SetFeatureNoError(gui.ReqState, state)
}
