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
	"github.com/julienr/chippy8/disassembly"
)

// LazyDebugger lazily accesses the debugger values that aren't part of
// the machine itself.
type LazyDebugger struct {
	val *LazyValues

	atomicDisasm atomic.Value // *disassembly.Disassembly
	atomicSteps  atomic.Value // uint64
	atomicROM    atomic.Value // string

	// the disassembly of the attached ROM. entries are immutable once the
	// disassembly has been built so sharing the pointer is safe
	Disasm *disassembly.Disassembly

	// number of instructions executed since the last reset
	Steps uint64

	// filename of the attached ROM. the empty string if there is none
	ROM string
}

func newLazyDebugger(val *LazyValues) *LazyDebugger {
	return &LazyDebugger{val: val}
}

func (lz *LazyDebugger) push(dbg *debugger.Debugger) {
	lz.atomicDisasm.Store(dbg.Disasm)
	lz.atomicSteps.Store(dbg.Chip8().StepCount())
	lz.atomicROM.Store(dbg.Chip8().ROMFilename())
}

func (lz *LazyDebugger) update() {
	if d, ok := lz.atomicDisasm.Load().(*disassembly.Disassembly); ok {
		lz.Disasm = d
	}
	if s, ok := lz.atomicSteps.Load().(uint64); ok {
		lz.Steps = s
	}
	if r, ok := lz.atomicROM.Load().(string); ok {
		lz.ROM = r
	}
}
