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
	"github.com/julienr/chippy8/hardware/memory"
)

// LazyRAM lazily accesses the memory of the emulated machine.
type LazyRAM struct {
	val *LazyValues

	atomicRAM atomic.Value // []uint8

	// the entire addressable memory. nil until the first refresh has
	// completed. do not mutate; the slice is replaced wholesale on every
	// refresh
	RAM []uint8
}

func newLazyRAM(val *LazyValues) *LazyRAM {
	return &LazyRAM{val: val}
}

func (lz *LazyRAM) push(dbg *debugger.Debugger) {
	d := make([]uint8, memory.Size)
	mem := dbg.Chip8().Mem
	for i := range d {
		// errors are impossible when iterating over valid addresses
		v, _ := mem.Peek(uint16(i))
		d[i] = v
	}
	lz.atomicRAM.Store(d)
}

func (lz *LazyRAM) update() {
	if d, ok := lz.atomicRAM.Load().([]uint8); ok {
		lz.RAM = d
	}
}
