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

	"github.com/julienr/chippy8/debugger/terminal"
	"github.com/julienr/chippy8/disassembly"
)

// buildPrompt returns a prompt that reflects the instruction about to be
// executed.
func (dbg *Debugger) buildPrompt() terminal.Prompt {
	var content string

	pc := dbg.ch8.CPU.PC
	if opcode, err := dbg.ch8.Mem.Read16(pc); err == nil {
		e := disassembly.Decode(pc, opcode)
		content = e.String()
	} else {
		// the program counter can point past the end of addressable
		// memory. there's no instruction to show in that case
		content = fmt.Sprintf("0x%03x -", pc)
	}

	return terminal.Prompt{
		Content:   content,
		Style:     terminal.StylePromptStep,
		Recording: dbg.scriptScribe.IsActive(),
	}
}
