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
	"strings"
)

// Entry is a single line of the disassembly.
type Entry struct {
	Address uint16

	// the raw bytes of the instruction, formatted as hex digits with no
	// prefix. four digits normally but two for the trailing byte of an
	// odd-sized ROM
	ByteCode string

	Mnemonic string

	// formatted operand. empty for instructions that take none
	Operand string
}

// the mnemonic used for words that do not decode to an instruction.
const dataMnemonic = "DB"

// IsInstruction returns false if the entry is raw data rather than a
// decoded instruction.
func (e Entry) IsInstruction() bool {
	return e.Mnemonic != dataMnemonic
}

func (e Entry) String() string {
	s := strings.Builder{}

	// three digit addresses. the address space is 12 bits wide so the
	// %#04x used elsewhere in the project would produce ragged columns
	s.WriteString(fmt.Sprintf("0x%03x %s", e.Address, e.Mnemonic))

	if e.Operand != "" {
		s.WriteString(" ")
		s.WriteString(e.Operand)
	}
	return s.String()
}
