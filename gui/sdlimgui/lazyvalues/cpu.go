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
	"github.com/julienr/chippy8/hardware/cpu"
)

// LazyCPU lazily accesses the registers of the emulated CPU.
type LazyCPU struct {
	val *LazyValues

	atomicCPU atomic.Value // *cpu.CPU

	V      [cpu.NumRegisters]uint8
	I      uint16
	PC     uint16
	SP     int
	Stack  [cpu.StackDepth]uint16
	Status cpu.Status
}

func newLazyCPU(val *LazyValues) *LazyCPU {
	return &LazyCPU{val: val}
}

func (lz *LazyCPU) push(dbg *debugger.Debugger) {
	lz.atomicCPU.Store(dbg.Chip8().CPU.Snapshot())
}

func (lz *LazyCPU) update() {
	mc, ok := lz.atomicCPU.Load().(*cpu.CPU)
	if !ok {
		return
	}
	lz.V = mc.V
	lz.I = mc.I
	lz.PC = mc.PC
	lz.SP = mc.SP
	lz.Stack = mc.Stack
	lz.Status = mc.Status
}
