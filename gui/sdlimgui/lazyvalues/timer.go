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
	"github.com/julienr/chippy8/hardware/timer"
)

// LazyTimer lazily accesses the delay and sound timers of the emulated
// machine.
type LazyTimer struct {
	val *LazyValues

	atomicTimer atomic.Value // *timer.Timer

	Delay uint8
	Sound uint8
}

func newLazyTimer(val *LazyValues) *LazyTimer {
	return &LazyTimer{val: val}
}

func (lz *LazyTimer) push(dbg *debugger.Debugger) {
	lz.atomicTimer.Store(dbg.Chip8().Timer.Snapshot())
}

func (lz *LazyTimer) update() {
	tmr, ok := lz.atomicTimer.Load().(*timer.Timer)
	if !ok {
		return
	}
	lz.Delay = tmr.Delay
	lz.Sound = tmr.Sound
}
