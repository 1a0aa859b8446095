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

// Package timer implements the delay and sound timers of the CHIP-8
// machine.
//
// The two timers count down on their own clock, nominally sixty ticks a
// second, entirely independent of how fast instructions are being
// executed. The machine's host is responsible for calling Tick() at the
// right rate. The timers never go below zero and ticking does nothing to
// a timer that has already reached zero.
//
// The sound timer doubles as the only audio control the machine has: the
// buzzer sounds for as long as the sound timer is non-zero.
package timer

import "fmt"

// TickHz is the rate at which the host should call Tick(), regardless of
// the instruction rate.
const TickHz = 60

// Timer represents the delay and sound timers.
type Timer struct {
	Delay uint8
	Sound uint8
}

// NewTimer is the preferred method of initialisation for the Timer type.
func NewTimer() *Timer {
	return &Timer{}
}

// Snapshot creates a copy of the timers in their current state.
func (tmr *Timer) Snapshot() *Timer {
	n := *tmr
	return &n
}

// Reset the timers to zero.
func (tmr *Timer) Reset() {
	tmr.Delay = 0
	tmr.Sound = 0
}

func (tmr *Timer) String() string {
	return fmt.Sprintf("DT=%#02x ST=%#02x", tmr.Delay, tmr.Sound)
}

// Tick decrements both timers, clamping at zero.
func (tmr *Timer) Tick() {
	if tmr.Delay > 0 {
		tmr.Delay--
	}
	if tmr.Sound > 0 {
		tmr.Sound--
	}
}

// SoundActive is true while the buzzer should be sounding.
func (tmr *Timer) SoundActive() bool {
	return tmr.Sound > 0
}
