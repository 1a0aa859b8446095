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
	"runtime"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/julienr/chippy8/curated"
	"github.com/julienr/chippy8/debugger/script"
	"github.com/julienr/chippy8/debugger/terminal"
	"github.com/julienr/chippy8/debugger/terminal/commandline"
	"github.com/julienr/chippy8/disassembly"
	"github.com/julienr/chippy8/gui"
	"github.com/julienr/chippy8/hardware/cpu"
	"github.com/julienr/chippy8/hardware/memory"
	"github.com/julienr/chippy8/logger"
	"github.com/julienr/chippy8/prefs"
	"github.com/julienr/chippy8/resources"
	"github.com/julienr/chippy8/romloader"
)

// parseInput splits the input into individual commands and processes
// each one. the scribe is rolled back on error so that failed commands
// never appear in a recorded script.
func (dbg *Debugger) parseInput(input string) error {
	// ignore comment lines. these appear when scripts are played back
	if strings.HasPrefix(strings.TrimSpace(input), "#") {
		return nil
	}

	commands := strings.Split(input, ";")
	for i := range commands {
		if err := dbg.parseCommand(commands[i]); err != nil {
			dbg.scriptScribe.Rollback()
			return err
		}
	}

	return nil
}

// parseCommand tokenises a single command and processes it.
func (dbg *Debugger) parseCommand(command string) error {
	command = strings.TrimSpace(command)

	// an empty line steps the machine. the most common operation gets
	// the laziest keypress
	if command == "" {
		command = cmdStep
	}

	tokens, err := dbg.tokeniseCommand(command)
	if err != nil {
		return err
	}

	// the echo style is provided for terminals that need to redisplay
	// normalised input
	dbg.printLine(terminal.StyleEcho, command)

	// a recorded script stores the command before the command's output
	dbg.scriptScribe.WriteInput(command)

	return dbg.processTokens(tokens)
}

// tokeniseCommand and validate the tokens against the command template.
func (dbg *Debugger) tokeniseCommand(command string) (*commandline.Tokens, error) {
	tokens := commandline.TokeniseInput(command)

	// some commands must not appear in a script being recorded. most
	// notably, a script cannot try to record another script
	if dbg.scriptScribe.IsActive() {
		if err := scriptUnsafeCommands.ValidateTokens(tokens); err == nil {
			tokens.Reset()
			first, _ := tokens.Get()
			return nil, curated.Errorf("%s is unsafe to use during script recording", first)
		}
		tokens.Reset()
	}

	if err := debuggerCommands.ValidateTokens(tokens); err != nil {
		return nil, err
	}
	tokens.Reset()

	return tokens, nil
}

// processTokensList runs a list of previously tokenised commands, the
// onHalt and onStep lists for example.
func (dbg *Debugger) processTokensList(tokensList []*commandline.Tokens) error {
	for _, t := range tokensList {
		t.Reset()
		if err := dbg.processTokens(t); err != nil {
			return err
		}
	}
	return nil
}

// processTokens interprets the tokens and dispatches to the
// implementation of the command. the tokens are expected to have been
// validated already.
func (dbg *Debugger) processTokens(tokens *commandline.Tokens) error {
	tokens.Reset()

	// the command keyword has been normalised to upper case by the
	// validation process
	command, _ := tokens.Get()

	switch command {
	default:
		return curated.Errorf("%s is not yet implemented", command)

	case cmdHelp:
		if keyword, ok := tokens.Get(); ok {
			dbg.printLine(terminal.StyleHelp, debuggerCommands.Help(keyword))
		} else {
			dbg.printLine(terminal.StyleHelp, debuggerCommands.HelpOverview())
		}

	case cmdInsert:
		filename, _ := tokens.Get()
		if err := dbg.insertROM(romloader.NewLoader(filename)); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "machine reset with new ROM (%s)", dbg.loader.ShortName())

	case cmdROM:
		if dbg.loader == nil {
			dbg.printLine(terminal.StyleFeedback, "no ROM attached")
			return nil
		}
		dbg.printLine(terminal.StyleMachineInfo, dbg.loader.Filename)
		dbg.printLine(terminal.StyleMachineInfo, "%d bytes", len(dbg.loader.Data))
		dbg.printLine(terminal.StyleMachineInfo, "hash: %s", dbg.loader.Hash)

	case cmdReset:
		if err := dbg.ch8.Reset(); err != nil {
			return err
		}
		dbg.history.reset()
		dbg.timerAcc = 0
		dbg.lastEntry = nil
		dbg.printLine(terminal.StyleFeedback, "machine reset")

	case cmdQuit:
		if dbg.scriptScribe.IsActive() {
			// a script being recorded is ended by QUIT, not the debugger.
			// rollback so the QUIT command itself is not recorded
			dbg.scriptScribe.Rollback()
			if err := dbg.scriptScribe.EndSession(); err != nil {
				return err
			}
			dbg.printLine(terminal.StyleFeedback, "ending script recording")
		} else {
			dbg.running = false
		}

	case cmdRun:
		dbg.runUntilHalt = true
		dbg.continueEmulation = true
		dbg.haltImmediately = false
		dbg.setState(gui.StateRunning)

	case cmdHalt:
		dbg.haltImmediately = true

	case cmdStep:
		tok, ok := tokens.Get()
		if !ok {
			// single step
			dbg.continueEmulation = true
			dbg.setState(gui.StateStepping)
			return nil
		}

		if tok == "BACK" {
			n := 1
			if t, ok := tokens.Get(); ok {
				i, err := strconv.ParseInt(t, 0, 32)
				if err != nil || i < 1 {
					return curated.Errorf("too few steps (%s)", t)
				}
				n = int(i)
			}

			if err := dbg.stepBack(n); err != nil {
				return err
			}

			// show the instruction the machine has been rewound to
			pc := dbg.ch8.CPU.PC
			if opcode, err := dbg.ch8.Mem.Read16(pc); err == nil {
				e := disassembly.Decode(pc, opcode)
				dbg.printLine(terminal.StyleStep, e.String())
			}
			return nil
		}

		n, err := strconv.ParseInt(tok, 0, 32)
		if err != nil {
			return curated.Errorf("unrecognised argument (%s)", tok)
		}
		if n < 1 {
			return curated.Errorf("too few steps (%d)", n)
		}
		dbg.stepUntil = dbg.ch8.StepCount() + uint64(n)
		dbg.runUntilHalt = true
		dbg.continueEmulation = true
		dbg.setState(gui.StateRunning)

	case cmdOnHalt:
		if tokens.Remaining() > 0 {
			option, _ := tokens.Peek()
			switch strings.ToUpper(option) {
			case "OFF":
				dbg.commandOnHalt = nil
			case "ON":
				dbg.commandOnHalt = dbg.commandOnHaltStored
			default:
				tokensList, err := dbg.tokeniseCommandList(tokens.Remainder())
				if err != nil {
					return err
				}
				dbg.commandOnHalt = tokensList
				dbg.commandOnHaltStored = tokensList
			}
		}

		if len(dbg.commandOnHalt) == 0 {
			dbg.printLine(terminal.StyleFeedback, "no command on halt")
		} else {
			dbg.printLine(terminal.StyleFeedback, "command on halt: %s", commandList(dbg.commandOnHalt))
		}

	case cmdOnStep:
		if tokens.Remaining() > 0 {
			option, _ := tokens.Peek()
			switch strings.ToUpper(option) {
			case "OFF":
				dbg.commandOnStep = nil
			case "ON":
				dbg.commandOnStep = dbg.commandOnStepStored
			default:
				tokensList, err := dbg.tokeniseCommandList(tokens.Remainder())
				if err != nil {
					return err
				}
				dbg.commandOnStep = tokensList
				dbg.commandOnStepStored = tokensList
			}
		}

		if len(dbg.commandOnStep) == 0 {
			dbg.printLine(terminal.StyleFeedback, "no command on step")
		} else {
			dbg.printLine(terminal.StyleFeedback, "command on step: %s", commandList(dbg.commandOnStep))
		}

	case cmdLast:
		if dbg.lastEntry == nil {
			dbg.printLine(terminal.StyleFeedback, "no instruction decoded yet")
			return nil
		}

		if tok, ok := tokens.Get(); ok && tok == "BYTECODE" {
			s := fmt.Sprintf("0x%03x %s %s %s",
				dbg.lastEntry.Address, dbg.lastEntry.ByteCode,
				dbg.lastEntry.Mnemonic, dbg.lastEntry.Operand)
			dbg.printLine(terminal.StyleStep, strings.TrimRight(s, " "))
		} else {
			dbg.printLine(terminal.StyleStep, dbg.lastEntry.String())
		}

	case cmdMem:
		addr := dbg.ch8.CPU.PC
		if tok, ok := tokens.Get(); ok {
			var err error
			addr, err = parseAddress(tok)
			if err != nil {
				return err
			}
		}

		// round down to a row boundary
		addr &^= 0x000f

		s := strings.Builder{}
		for r := 0; r < 8 && addr < memory.Size; r++ {
			s.WriteString(fmt.Sprintf("0x%03x  ", addr))
			for c := 0; c < 16 && addr < memory.Size; c++ {
				d, _ := dbg.ch8.Mem.Peek(addr)
				s.WriteString(fmt.Sprintf("%02x ", d))
				if c == 7 {
					s.WriteString(" ")
				}
				addr++
			}
			s.WriteString("\n")
		}
		dbg.printLine(terminal.StyleMachineInfo, s.String())

	case cmdPeek:
		for {
			tok, ok := tokens.Get()
			if !ok {
				break
			}

			addr, err := parseAddress(tok)
			if err != nil {
				dbg.printLine(terminal.StyleError, "%s", err)
				continue
			}

			d, err := dbg.ch8.Mem.Peek(addr)
			if err != nil {
				dbg.printLine(terminal.StyleError, "%s", err)
				continue
			}

			dbg.printLine(terminal.StyleMachineInfo, "0x%03x -> %#02x", addr, d)
		}

	case cmdPoke:
		tok, _ := tokens.Get()
		addr, err := parseAddress(tok)
		if err != nil {
			return err
		}

		for {
			tok, ok := tokens.Get()
			if !ok {
				break
			}

			v, err := strconv.ParseUint(tok, 0, 8)
			if err != nil {
				return curated.Errorf("invalid value (%s)", tok)
			}

			if err := dbg.ch8.Mem.Poke(addr, uint8(v)); err != nil {
				return err
			}

			dbg.printLine(terminal.StyleFeedback, "0x%03x <- %#02x", addr, uint8(v))
			addr++
		}

	case cmdDisasm:
		attr := disassembly.WriteAttr{}
		if tok, ok := tokens.Get(); ok {
			attr.ByteCode = tok == "BYTECODE"
		}
		if err := dbg.Disasm.Write(dbg.printStyle(terminal.StyleMachineInfo), attr); err != nil {
			return err
		}

	case cmdGrep:
		search, _ := tokens.Get()
		s := strings.ToUpper(search)

		matches := make([]string, 0)
		for _, e := range dbg.Disasm.Entries {
			l := e.String()
			if strings.Contains(strings.ToUpper(l), s) {
				matches = append(matches, l)
			}
		}

		if len(matches) == 0 {
			dbg.printLine(terminal.StyleError, "%s not found in disassembly", search)
		} else {
			dbg.printLine(terminal.StyleFeedback, strings.Join(matches, "\n"))
		}

	case cmdRegisters:
		if tokens.Remaining() == 0 {
			dbg.printLine(terminal.StyleMachineInfo, dbg.ch8.CPU.String())
			return nil
		}

		// the SET keyword
		_, _ = tokens.Get()

		reg, _ := tokens.Get()
		valTok, _ := tokens.Get()
		reg = strings.ToUpper(reg)

		switch reg {
		case "PC":
			v, err := strconv.ParseUint(valTok, 0, 16)
			if err != nil {
				return curated.Errorf("invalid value (%s)", valTok)
			}
			dbg.ch8.CPU.PC = uint16(v)
		case "I":
			v, err := strconv.ParseUint(valTok, 0, 16)
			if err != nil {
				return curated.Errorf("invalid value (%s)", valTok)
			}
			dbg.ch8.CPU.I = uint16(v)
		case "SP":
			v, err := strconv.ParseInt(valTok, 0, 32)
			if err != nil || v < 0 || v > cpu.StackDepth {
				return curated.Errorf("invalid value (%s)", valTok)
			}
			dbg.ch8.CPU.SP = int(v)
		default:
			if len(reg) == 2 && reg[0] == 'V' {
				if d, err := strconv.ParseUint(reg[1:], 16, 8); err == nil {
					v, err := strconv.ParseUint(valTok, 0, 8)
					if err != nil {
						return curated.Errorf("invalid value (%s)", valTok)
					}
					dbg.ch8.CPU.V[d] = uint8(v)
					return nil
				}
			}
			return curated.Errorf("unknown register (%s)", reg)
		}

	case cmdTimers:
		if tokens.Remaining() == 0 {
			dbg.printLine(terminal.StyleMachineInfo, dbg.ch8.Timer.String())
			return nil
		}

		// the SET keyword
		_, _ = tokens.Get()

		which, _ := tokens.Get()
		valTok, _ := tokens.Get()

		v, err := strconv.ParseUint(valTok, 0, 8)
		if err != nil {
			return curated.Errorf("invalid value (%s)", valTok)
		}

		switch which {
		case "DELAY":
			dbg.ch8.Timer.Delay = uint8(v)
		case "SOUND":
			dbg.ch8.Timer.Sound = uint8(v)
		}

	case cmdKey:
		tok, _ := tokens.Get()
		if strings.ToUpper(tok) == "LIST" {
			dbg.printLine(terminal.StyleMachineInfo, dbg.ch8.Keypad.String())
			return nil
		}

		k, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(tok), "0x"), 16, 8)
		if err != nil || k > 0x0f {
			return curated.Errorf("not a valid key (%s)", tok)
		}

		down := true
		if d, ok := tokens.Get(); ok {
			down = d == "DOWN"
		}

		if err := dbg.ch8.SetKey(uint8(k), down); err != nil {
			return err
		}

		dbg.printLine(terminal.StyleFeedback, dbg.ch8.Keypad.String())

	case cmdQuirks:
		if tokens.Remaining() == 0 {
			dbg.printLine(terminal.StyleMachineInfo, dbg.ch8.Prefs.String())
			return nil
		}

		verb, _ := tokens.Get()
		name, _ := tokens.Get()

		var p *prefs.Bool
		switch name {
		case "SHIFTSOURCEY":
			p = &dbg.ch8.Prefs.ShiftSourceY
		case "INDEXOVERFLOW":
			p = &dbg.ch8.Prefs.IndexOverflow
		case "INDEXINCREMENT":
			p = &dbg.ch8.Prefs.IndexIncrement
		case "SPRITECLIPPING":
			p = &dbg.ch8.Prefs.SpriteClipping
		case "HIRES":
			p = &dbg.ch8.Prefs.HighRes
		}

		var err error
		switch verb {
		case "SET":
			err = p.Set(true)
		case "NO":
			err = p.Set(false)
		case "TOGGLE":
			err = p.Set(!p.Get().(bool))
		}
		if err != nil {
			return err
		}

		if name == "HIRES" {
			dbg.printLine(terminal.StyleFeedback, "hires takes effect on the next reset")
		}

		dbg.printLine(terminal.StyleMachineInfo, dbg.ch8.Prefs.String())

	case cmdRate:
		if tok, ok := tokens.Get(); ok {
			n, err := strconv.ParseInt(tok, 0, 32)
			if err != nil || n < 1 {
				return curated.Errorf("instruction rate too low (%s)", tok)
			}
			if err := dbg.ch8.Prefs.InstRate.Set(int(n)); err != nil {
				return err
			}
		}
		dbg.printLine(terminal.StyleFeedback, "%s instructions per second", dbg.ch8.Prefs.InstRate.String())

	case cmdPrefs:
		if tok, ok := tokens.Get(); ok {
			switch tok {
			case "LOAD":
				if err := dbg.ch8.Prefs.Load(); err != nil {
					return err
				}
				dbg.printLine(terminal.StyleFeedback, "preferences loaded from disk")
			case "SAVE":
				if err := dbg.ch8.Prefs.Save(); err != nil {
					return err
				}
				dbg.printLine(terminal.StyleFeedback, "preferences saved to disk")
			case "DEFAULTS":
				dbg.ch8.Prefs.SetDefaults()
				dbg.printLine(terminal.StyleFeedback, "preferences set to defaults")
			}
			return nil
		}

		dbg.printLine(terminal.StyleMachineInfo, dbg.ch8.Prefs.String())
		dbg.printLine(terminal.StyleMachineInfo, "instrate=%s", dbg.ch8.Prefs.InstRate.String())

	case cmdBreak:
		return dbg.breakpoints.parseBreakpoint(tokens)

	case cmdTrap:
		return dbg.traps.parseTrap(tokens)

	case cmdList:
		list, _ := tokens.Get()
		switch list {
		case "BREAKS":
			dbg.breakpoints.list()
		case "TRAPS":
			dbg.traps.list()
		case "ALL":
			dbg.breakpoints.list()
			dbg.traps.list()
		}

	case cmdDrop:
		attrib, _ := tokens.Get()
		s, _ := tokens.Get()

		num, err := strconv.Atoi(s)
		if err != nil {
			return curated.Errorf("drop attribute must be a decimal number (%s)", s)
		}

		switch attrib {
		case "BREAK":
			if err := dbg.breakpoints.drop(num); err != nil {
				return err
			}
			dbg.printLine(terminal.StyleFeedback, "breakpoint #%d dropped", num)
		case "TRAP":
			if err := dbg.traps.drop(num); err != nil {
				return err
			}
			dbg.printLine(terminal.StyleFeedback, "trap #%d dropped", num)
		}

	case cmdClear:
		clear, _ := tokens.Get()
		switch clear {
		case "BREAKS":
			dbg.breakpoints.clear()
			dbg.printLine(terminal.StyleFeedback, "breakpoints cleared")
		case "TRAPS":
			dbg.traps.clear()
			dbg.printLine(terminal.StyleFeedback, "traps cleared")
		case "ALL":
			dbg.breakpoints.clear()
			dbg.traps.clear()
			dbg.printLine(terminal.StyleFeedback, "breakpoints and traps cleared")
		}

	case cmdLog:
		if tok, ok := tokens.Get(); ok {
			switch tok {
			case "LAST":
				logger.Tail(dbg.printStyle(terminal.StyleLog), 1)
			case "CLEAR":
				logger.Clear()
			}
			return nil
		}
		logger.Write(dbg.printStyle(terminal.StyleLog))

	case cmdMemUsage:
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		s := strings.Builder{}
		s.WriteString(fmt.Sprintf("Alloc = %v MB\n", m.Alloc/1048576))
		s.WriteString(fmt.Sprintf("  TotalAlloc = %v MB\n", m.TotalAlloc/1048576))
		s.WriteString(fmt.Sprintf("  Sys = %v MB\n", m.Sys/1048576))
		s.WriteString(fmt.Sprintf("  NumGC = %v", m.NumGC))

		dbg.printLine(terminal.StyleMachineInfo, s.String())

	case cmdGraph:
		var fn string
		if tok, ok := tokens.Get(); ok {
			fn = tok
		} else {
			shortName := ""
			if dbg.loader != nil {
				shortName = dbg.loader.ShortName()
			}
			fn = fmt.Sprintf("%s.dot", resources.UniqueFilename("graph", shortName))
		}

		if _, err := os.Stat(fn); err == nil {
			return curated.Errorf("file already exists (%s)", fn)
		}

		f, err := os.Create(fn)
		if err != nil {
			return curated.Errorf("graph: %v", err)
		}

		memviz.Map(f, dbg.ch8)

		if err := f.Close(); err != nil {
			return curated.Errorf("graph: %v", err)
		}

		dbg.printLine(terminal.StyleFeedback, "machine graph written to %s", fn)

	case cmdScript:
		option, _ := tokens.Get()
		switch strings.ToUpper(option) {
		case "RECORD":
			saveFile, _ := tokens.Get()
			return dbg.scriptScribe.StartSession(saveFile)

		case "END":
			// rollback so the SCRIPT END command itself is not recorded
			dbg.scriptScribe.Rollback()
			if err := dbg.scriptScribe.EndSession(); err != nil {
				return err
			}
			dbg.printLine(terminal.StyleFeedback, "ending script recording")

		default:
			plb, err := script.RescribeScript(option)
			if err != nil {
				return err
			}

			if dbg.scriptScribe.IsActive() {
				// a script being played back while a recording is in
				// progress is flattened into the recording. the SCRIPT
				// command itself stands in for the script's commands
				dbg.scriptScribe.StartPlayback()
				defer dbg.scriptScribe.EndPlayback()
			}

			return dbg.inputLoop(plb)
		}
	}

	return nil
}

// tokeniseCommandList tokenises and validates a comma separated list of
// commands. used by the ONHALT and ONSTEP commands.
func (dbg *Debugger) tokeniseCommandList(commands string) ([]*commandline.Tokens, error) {
	tokensList := make([]*commandline.Tokens, 0)

	for _, s := range strings.Split(commands, ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		toks, err := dbg.tokeniseCommand(s)
		if err != nil {
			return nil, err
		}
		tokensList = append(tokensList, toks)
	}

	return tokensList, nil
}

// commandList returns a list of tokenised commands as a single
// semi-colon separated string.
func commandList(tokensList []*commandline.Tokens) string {
	s := strings.Builder{}
	for _, c := range tokensList {
		s.WriteString(c.String())
		s.WriteString("; ")
	}
	return strings.TrimSuffix(s.String(), "; ")
}

// parseAddress converts a token to an address in machine memory.
func parseAddress(tok string) (uint16, error) {
	a, err := strconv.ParseUint(tok, 0, 16)
	if err != nil || a >= memory.Size {
		return 0, curated.Errorf("invalid address (%s)", tok)
	}
	return uint16(a), nil
}
