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

package hardware

import (
	"github.com/julienr/chippy8/hardware/cpu"
	"github.com/julienr/chippy8/hardware/keypad"
	"github.com/julienr/chippy8/hardware/memory"
	"github.com/julienr/chippy8/hardware/timer"
	"github.com/julienr/chippy8/hardware/video"
)

// State is a snapshot of the machine at one moment. It shares nothing
// with the machine it was taken from and can be kept for as long as it is
// useful; the debugger keeps a short history of them for stepping
// backwards.
type State struct {
	CPU    *cpu.CPU
	Mem    *memory.Memory
	Video  *video.Video
	Keypad *keypad.Keypad
	Timer  *timer.Timer

	steps uint64
}

// Snapshot the machine.
func (ch8 *Chip8) Snapshot() *State {
	return &State{
		CPU:    ch8.CPU.Snapshot(),
		Mem:    ch8.Mem.Snapshot(),
		Video:  ch8.Video.Snapshot(),
		Keypad: ch8.Keypad.Snapshot(),
		Timer:  ch8.Timer.Snapshot(),
		steps:  ch8.steps,
	}
}

// Restore the machine to a previously snapshotted state. The state itself
// is copied during the restore so it can be restored again later.
//
// Any event recorder that was attached to the keypad is not part of the
// state and must be reattached by whoever owns it.
func (ch8 *Chip8) Restore(s *State) {
	ch8.CPU = s.CPU.Snapshot()
	ch8.Mem = s.Mem.Snapshot()
	ch8.Video = s.Video.Snapshot()
	ch8.Keypad = s.Keypad.Snapshot()
	ch8.Timer = s.Timer.Snapshot()
	ch8.steps = s.steps

	ch8.CPU.Plumb(ch8.Mem, ch8.Video, ch8.Keypad, ch8.Timer, ch8.Rnd)
}
