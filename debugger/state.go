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

// the functions in this file are all about getting information in/out of the
// debugger that would otherwise be awkward or impossible through the terminal
// commands. they are intended for use by a GUI.
//
// unless the function says otherwise it must be called from the debugger
// goroutine. use PushRawEvent() to get there from somewhere else.

// PCBreaks returns the addresses of every breakpoint that conditions on the
// program counter alone. Compound breakpoints (those chained with &) are not
// included. The returned map is a copy.
func (dbg *Debugger) PCBreaks() map[uint16]bool {
	breaks := make(map[uint16]bool, len(dbg.breakpoints.breaks))
	for _, bk := range dbg.breakpoints.breaks {
		if bk.next != nil {
			continue
		}
		if bk.target.label != "PC" {
			continue
		}
		if addr, ok := bk.value.(uint16); ok {
			breaks[addr] = true
		}
	}
	return breaks
}

// TogglePCBreak adds a program counter breakpoint for the address, or removes
// the breakpoint if one is already defined.
func (dbg *Debugger) TogglePCBreak(addr uint16) {
	tgt, err := targetByName(dbg.ch8, "PC")
	if err != nil {
		return
	}

	nb := &breaker{target: tgt, value: addr}

	if i := dbg.breakpoints.checkBreaker(nb); i != -1 {
		_ = dbg.breakpoints.drop(i)
		return
	}

	dbg.breakpoints.breaks = append(dbg.breakpoints.breaks, nb)
}
