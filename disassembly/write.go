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

package disassembly

import (
	"fmt"
	"io"
	"strings"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode bool
}

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	for _, e := range dsm.Entries {
		if err := dsm.WriteLine(output, attr, e); err != nil {
			return err
		}
	}
	return nil
}

// WriteLine writes a single Entry to io.Writer. Columns line up from one
// line to the next; no mnemonic is longer than four characters.
func (dsm *Disassembly) WriteLine(output io.Writer, attr WriteAttr, e *Entry) error {
	s := ""
	if attr.ByteCode {
		s = fmt.Sprintf("0x%03x  %-4s  %-4s %s", e.Address, e.ByteCode, e.Mnemonic, e.Operand)
	} else {
		s = fmt.Sprintf("0x%03x  %-4s %s", e.Address, e.Mnemonic, e.Operand)
	}

	_, err := output.Write([]byte(strings.TrimRight(s, " ") + "\n"))
	return err
}
