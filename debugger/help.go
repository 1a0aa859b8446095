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

// help strings for the debugger commands.
var helps = map[string]string{
	cmdHelp: "Lists commands and provides help for individual commands",

	cmdBreak: `Halt execution when a target matches a value. Without an explicit target the
value is treated as an address and the break is placed on the program counter.
Conditions can be combined with the & symbol, halting only when every
condition in the group is true at the same time.

	BREAK 0x300
	BREAK V0 0x2a
	BREAK PC 0x300 & V0 0x2a`,

	cmdTrap: `Halt execution when a target changes value. Useful for catching writes to a
register without knowing the value being written.

	TRAP I
	TRAP V0 VF`,

	cmdClear:  "Clear breakpoints and traps",
	cmdDrop:   "Drop a single breakpoint or trap, by its position in the LIST",
	cmdList:   "List current breakpoints and traps",

	cmdDisasm: "Print the disassembly of the attached ROM. The BYTECODE option adds the raw opcodes",
	cmdGrep:   "Search the disassembly of the attached ROM",
	cmdLast:   "Print the instruction most recently executed. The BYTECODE option adds the raw opcode",

	cmdInsert: "Attach a new ROM to the machine. The machine is reset",
	cmdROM:    "Print information about the attached ROM",
	cmdReset:  "Reset the machine. The attached ROM is reloaded",

	cmdRun:  "Run the machine until a halt condition is met",
	cmdHalt: "Halt the machine",
	cmdStep: `Step the machine forward one instruction. An optional numeric argument steps
forward by that many instructions. STEP BACK steps backwards through recent
machine states.

	STEP
	STEP 10
	STEP BACK
	STEP BACK 10`,

	cmdOnHalt: `Register commands to run whenever the machine halts. Multiple commands can
be separated by commas. ONHALT OFF suspends the commands; ONHALT ON restores
the most recent set`,
	cmdOnStep: `Register commands to run whenever the machine steps. Multiple commands can
be separated by commas. ONSTEP OFF suspends the commands; ONSTEP ON restores
the most recent set`,

	cmdMem:  "Print a hex dump of machine memory, starting at the (optional) address",
	cmdPeek: "Print the value of individual memory addresses",
	cmdPoke: `Write values to machine memory. Multiple values are written to consecutive
addresses.

	POKE 0x300 0xff
	POKE 0x300 1 2 3`,

	cmdRegisters: "Print the CPU registers. REGISTERS SET changes a register",
	cmdTimers:    "Print the delay and sound timers. TIMERS SET changes a timer",

	cmdKey: `Press or release a key on the emulated keypad. Keys are named by their
hexadecimal label, 0 to F. KEY LIST prints the keys currently held.

	KEY A
	KEY A UP`,

	cmdQuirks: `Print or change the quirk settings of the machine. Note that the HIRES quirk
does not take effect until the next RESET.

	QUIRKS
	QUIRKS SET SHIFTSOURCEY
	QUIRKS NO INDEXOVERFLOW
	QUIRKS TOGGLE HIRES`,
	cmdRate:  "Print or change the nominal instruction rate of the machine",
	cmdPrefs: "Load, save or reset machine preferences on disk",

	cmdLog:      "Print the log. LOG LAST prints the most recent entry only",
	cmdGraph:    "Write a graph of the machine's internal structure to a DOT file",
	cmdMemUsage: "Print memory usage of the debugger process",

	cmdScript: `Run a script of debugger commands, or record one. While a recording is
active every command and its output is written to the script file. SCRIPT END
ends the recording.

	SCRIPT foo.script
	SCRIPT RECORD new.script
	SCRIPT END`,

	cmdQuit: "Quit the debugger. quitting while a script is being recorded ends the recording instead",
}
