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

package lazyvalues

import (
	"sync/atomic"

	"github.com/julienr/chippy8/debugger"
)

// LazyBreakpoints lazily accesses the breakpoints held by the debugger.
type LazyBreakpoints struct {
	val *LazyValues

	atomicPCBreaks atomic.Value // map[uint16]bool

	// addresses with a simple PC breakpoint. do not mutate; the map is
	// replaced wholesale on every refresh
	PCBreaks map[uint16]bool
}

func newLazyBreakpoints(val *LazyValues) *LazyBreakpoints {
	return &LazyBreakpoints{val: val}
}

func (lz *LazyBreakpoints) push(dbg *debugger.Debugger) {
	lz.atomicPCBreaks.Store(dbg.PCBreaks())
}

func (lz *LazyBreakpoints) update() {
	if m, ok := lz.atomicPCBreaks.Load().(map[uint16]bool); ok {
		lz.PCBreaks = m
	}
}

// HasPCBreak returns true if there is a PC breakpoint at the address.
func (lz *LazyBreakpoints) HasPCBreak(addr uint16) bool {
	return lz.PCBreaks[addr]
}
