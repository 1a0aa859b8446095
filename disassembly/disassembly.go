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
	"github.com/julienr/chippy8/curated"
	"github.com/julienr/chippy8/hardware/memory"
	"github.com/julienr/chippy8/romloader"
)

// Disassembly is the result of disassembling a ROM.
type Disassembly struct {
	// every Entry of the disassembly in address order. the GUI iterates
	// over this directly
	Entries []*Entry

	// index into Entries by address
	reference map[uint16]int
}

// FromLoader disassembles the ROM referenced by the Loader. The
// disassembly is a single linear pass from the load origin: sprite data
// mixed in with the instructions will be disassembled as though it were
// code, or labelled as raw data if it doesn't decode.
func FromLoader(ld romloader.Loader) (*Disassembly, error) {
	if err := ld.Load(); err != nil {
		return nil, curated.Errorf("disassembly: %v", err)
	}

	dsm := &Disassembly{
		Entries:   make([]*Entry, 0, len(ld.Data)/2),
		reference: make(map[uint16]int),
	}

	origin := ld.Origin
	if origin == 0 {
		origin = memory.LoadOrigin
	}

	for i := 0; i < len(ld.Data); i += 2 {
		var e Entry

		if i+1 < len(ld.Data) {
			opcode := uint16(ld.Data[i])<<8 | uint16(ld.Data[i+1])
			e = Decode(origin+uint16(i), opcode)
		} else {
			// a ROM with an odd number of bytes leaves a single trailing
			// byte. it can only be data
			e = decodeTail(origin+uint16(i), ld.Data[i])
		}

		dsm.reference[e.Address] = len(dsm.Entries)
		dsm.Entries = append(dsm.Entries, &e)
	}

	return dsm, nil
}

// Get returns the Entry at the specified address, or false if the
// address is outside the disassembled ROM (or odd).
func (dsm *Disassembly) Get(address uint16) (*Entry, bool) {
	idx, ok := dsm.reference[address]
	if !ok {
		return nil, false
	}
	return dsm.Entries[idx], true
}
