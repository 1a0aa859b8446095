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
	"sort"

	"github.com/julienr/chippy8/debugger/terminal/commandline"
)

// debugger keywords.
const (
	cmdBreak     = "BREAK"
	cmdClear     = "CLEAR"
	cmdDisasm    = "DISASM"
	cmdDrop      = "DROP"
	cmdGraph     = "GRAPH"
	cmdGrep      = "GREP"
	cmdHalt      = "HALT"
	cmdHelp      = "HELP"
	cmdInsert    = "INSERT"
	cmdKey       = "KEY"
	cmdLast      = "LAST"
	cmdList      = "LIST"
	cmdLog       = "LOG"
	cmdMem       = "MEM"
	cmdMemUsage  = "MEMUSAGE"
	cmdOnHalt    = "ONHALT"
	cmdOnStep    = "ONSTEP"
	cmdPeek      = "PEEK"
	cmdPoke      = "POKE"
	cmdPrefs     = "PREFS"
	cmdQuirks    = "QUIRKS"
	cmdQuit      = "QUIT"
	cmdRate      = "RATE"
	cmdRegisters = "REGISTERS"
	cmdReset     = "RESET"
	cmdROM       = "ROM"
	cmdRun       = "RUN"
	cmdScript    = "SCRIPT"
	cmdStep      = "STEP"
	cmdTimers    = "TIMERS"
	cmdTrap      = "TRAP"
)

var commandTemplate = []string{
	cmdBreak + " [%<target>S (%<value>N)] {& %<target>S (%<value>N)}",
	cmdClear + " [BREAKS|TRAPS|ALL]",
	cmdDisasm + " (BYTECODE)",
	cmdDrop + " [BREAK|TRAP] %<number in list>N",
	cmdGraph + " (%<filename>S)",
	cmdGrep + " %<search>S",
	cmdHalt,
	cmdInsert + " %<rom file>F",
	cmdKey + " [%<key>S (DOWN|UP)|LIST]",
	cmdLast + " (BYTECODE)",
	cmdList + " [BREAKS|TRAPS|ALL]",
	cmdLog + " (LAST|CLEAR)",
	cmdMem + " (%<address>S)",
	cmdMemUsage,
	cmdOnHalt + " (OFF|ON|%<command>S {%<commands>S})",
	cmdOnStep + " (OFF|ON|%<command>S {%<commands>S})",
	cmdPeek + " [%<address>S] {%<address>S}",
	cmdPoke + " %<address>S %<value>N {%<value>N}",
	cmdPrefs + " (LOAD|SAVE|DEFAULTS)",
	cmdQuirks + " ([SET|NO|TOGGLE] [SHIFTSOURCEY|INDEXOVERFLOW|INDEXINCREMENT|SPRITECLIPPING|HIRES])",
	cmdQuit,
	cmdRate + " (%<instructions per second>N)",
	cmdRegisters + " (SET %<register>S %<value>N)",
	cmdReset,
	cmdROM,
	cmdRun,
	cmdScript + " [RECORD %<new file>F|END|%<file>F]",
	cmdStep + " (%<steps>N|BACK (%<steps>N))",
	cmdTimers + " (SET [DELAY|SOUND] %<value>N)",
	cmdTrap + " %<target>S {%<target>S}",
}

// list of commands that are disallowed while a script is being recorded. in
// particular, a script must never try to record another script.
var scriptUnsafeTemplate = []string{
	cmdScript + " [RECORD %S]",
	cmdRun,
}

var debuggerCommands *commandline.Commands
var scriptUnsafeCommands *commandline.Commands

// this init() function "compiles" the commandTemplate above into a more
// usable form. It will cause the program to fail if the template is invalid.
func init() {
	var err error

	// parse command template
	debuggerCommands, err = commandline.ParseCommandTemplate(commandTemplate)
	if err != nil {
		panic(fmt.Errorf("error compiling command template: %v", err))
	}

	err = debuggerCommands.AddHelp(cmdHelp, helps)
	if err != nil {
		panic(fmt.Errorf("error adding help to command template: %v", err))
	}
	sort.Stable(debuggerCommands)

	scriptUnsafeCommands, err = commandline.ParseCommandTemplate(scriptUnsafeTemplate)
	if err != nil {
		panic(fmt.Errorf("error compiling script unsafe command template: %v", err))
	}
}
