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
	"github.com/julienr/chippy8/hardware/keypad"
)

// LazyKeypad lazily accesses the keypad of the emulated machine.
type LazyKeypad struct {
	val *LazyValues

	atomicKeys    atomic.Value // [keypad.NumKeys]bool
	atomicWaiting atomic.Value // bool

	// the up/down state of each key
	Keys [keypad.NumKeys]bool

	// whether the machine is suspended waiting for a key press
	Waiting bool
}

func newLazyKeypad(val *LazyValues) *LazyKeypad {
	return &LazyKeypad{val: val}
}

func (lz *LazyKeypad) push(dbg *debugger.Debugger) {
	kp := dbg.Chip8().Keypad
	lz.atomicKeys.Store(kp.Keys())
	lz.atomicWaiting.Store(kp.Waiting())
}

func (lz *LazyKeypad) update() {
	if k, ok := lz.atomicKeys.Load().([keypad.NumKeys]bool); ok {
		lz.Keys = k
	}
	if w, ok := lz.atomicWaiting.Load().(bool); ok {
		lz.Waiting = w
	}
}
