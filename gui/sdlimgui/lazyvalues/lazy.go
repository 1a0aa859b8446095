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
	"time"

	"github.com/julienr/chippy8/debugger"
)

// the rate at which refresh events are pushed into the debugger
// goroutine. the gui-side values are updated on every Refresh()
// regardless of this pulse.
const refreshPeriod = 50 * time.Millisecond

// LazyValues gathers all the lazy value types.
type LazyValues struct {
	// the debugger is attached (and detached) with SetDebugger(). nil when
	// the gui is not serving a debugging session
	dbg *debugger.Debugger

	CPU         *LazyCPU
	RAM         *LazyRAM
	Timer       *LazyTimer
	Keypad      *LazyKeypad
	Breakpoints *LazyBreakpoints
	Debugger    *LazyDebugger

	refreshPulse *time.Ticker
}

// NewLazyValues is the preferred method of initialisation for the
// LazyValues type.
func NewLazyValues() *LazyValues {
	val := &LazyValues{
		refreshPulse: time.NewTicker(refreshPeriod),
	}

	val.CPU = newLazyCPU(val)
	val.RAM = newLazyRAM(val)
	val.Timer = newLazyTimer(val)
	val.Keypad = newLazyKeypad(val)
	val.Breakpoints = newLazyBreakpoints(val)
	val.Debugger = newLazyDebugger(val)

	return val
}

// SetDebugger attaches the debugger, or detaches it when called with nil.
// must be called from the same goroutine that calls Refresh().
func (val *LazyValues) SetDebugger(dbg *debugger.Debugger) {
	val.dbg = dbg
}

// Refresh the lazy values. called from the gui goroutine, once per frame.
func (val *LazyValues) Refresh() {
	dbg := val.dbg
	if dbg == nil {
		return
	}

	// phase one: update gui copies from the atomic values stored by
	// earlier refreshes
	val.CPU.update()
	val.RAM.update()
	val.Timer.update()
	val.Keypad.update()
	val.Breakpoints.update()
	val.Debugger.update()

	// phase two: push a new refresh event into the debugger goroutine. the
	// pulse keeps the pressure on the event queue sensible; a dropped push
	// just means a slightly staler snapshot
	select {
	case <-val.refreshPulse.C:
	default:
		return
	}

	dbg.PushRawEvent(func() {
		val.CPU.push(dbg)
		val.RAM.push(dbg)
		val.Timer.push(dbg)
		val.Keypad.push(dbg)
		val.Breakpoints.push(dbg)
		val.Debugger.push(dbg)
	})
}
