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

import (
	"strings"
)

// Prompt specifies the prompt text and the prompt style.
type Prompt struct {
	Content string
	Style   Style

	// whether the debugger is recording input to a script file. noted in the
	// prompt decoration.
	Recording bool
}

// String returns the prompt with "standard" decoration. Good for terminals
// with no graphical capabilities at all. A GUI based terminal interface may
// choose not to use this.
func (p Prompt) String() string {
	if p.Style == StylePromptConfirm {
		return p.Content
	}

	s := strings.Builder{}
	s.WriteString("[ ")
	if p.Recording {
		s.WriteString("(rec) ")
	}
	s.WriteString(strings.TrimSpace(p.Content))
	s.WriteString(" ] >> ")

	return s.String()
}
