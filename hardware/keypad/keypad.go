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

// Package keypad implements the sixteen key hexadecimal keypad of the
// CHIP-8 machine.
//
// The keypad is written to from outside the machine, through SetKey(),
// and read by the skip-on-key instructions. The wait-for-key instruction
// is implemented with a latch: BeginWait() arms it and from then on the
// first key to go from up to down is latched, to be collected with
// CheckWait(). A key that is already held down when the wait begins does
// not trigger the latch. The machine is suspended, not blocked, while the
// latch is armed; in particular the timers continue to be ticked.
//
// An EventRecorder can be attached to the keypad. Every SetKey() call is
// forwarded to it, which is how input transcripts are made.
package keypad

import (
	"strings"

	"github.com/julienr/chippy8/curated"
)

// NumKeys is the number of keys on the keypad.
const NumKeys = 16

// NoSuchKey is returned by SetKey() for key numbers that do not exist on
// the keypad.
const NoSuchKey = "keypad: no such key (%#02x)"

// EventRecorder implementations receive every key event given to
// SetKey(). Used to make input transcripts.
type EventRecorder interface {
	RecordKey(key uint8, pressed bool) error
}

// Keypad is the input state of the machine.
type Keypad struct {
	keys [NumKeys]bool

	// state of the wait-for-key latch
	waiting bool
	latched uint8
	latchOk bool

	recorder EventRecorder
}

// NewKeypad is the preferred method of initialisation for the Keypad
// type.
func NewKeypad() *Keypad {
	return &Keypad{}
}

// Snapshot creates a copy of the keypad in its current state. The
// recorder reference is not included in the copy.
func (kp *Keypad) Snapshot() *Keypad {
	n := *kp
	n.recorder = nil
	return &n
}

// Reset releases all keys and disarms the wait latch.
func (kp *Keypad) Reset() {
	for i := range kp.keys {
		kp.keys[i] = false
	}
	kp.waiting = false
	kp.latchOk = false
}

func (kp *Keypad) String() string {
	s := strings.Builder{}
	for i, p := range kp.keys {
		if p {
			s.WriteString(" ")
			s.WriteString(keyNames[i])
		}
	}
	if s.Len() == 0 {
		return "no keys held"
	}
	return "held:" + s.String()
}

// the conventional labelling of the keypad.
var keyNames = [NumKeys]string{
	"0", "1", "2", "3", "4", "5", "6", "7",
	"8", "9", "A", "B", "C", "D", "E", "F",
}

// AttachEventRecorder attaches (or with nil, detaches) an event recorder
// to the keypad.
func (kp *Keypad) AttachEventRecorder(r EventRecorder) {
	kp.recorder = r
}

// SetKey presses or releases a key. It is the only way input reaches the
// machine.
func (kp *Keypad) SetKey(key uint8, pressed bool) error {
	if key >= NumKeys {
		return curated.Errorf(NoSuchKey, key)
	}

	if kp.recorder != nil {
		if err := kp.recorder.RecordKey(key, pressed); err != nil {
			return err
		}
	}

	// an armed latch catches the first up-to-down transition
	if kp.waiting && !kp.latchOk && pressed && !kp.keys[key] {
		kp.latched = key
		kp.latchOk = true
	}

	kp.keys[key] = pressed
	return nil
}

// IsPressed returns the state of the given key. Only the low nibble of
// the key number is considered.
func (kp *Keypad) IsPressed(key uint8) bool {
	return kp.keys[key&0x0f]
}

// Keys returns a copy of the raw key state.
func (kp *Keypad) Keys() [NumKeys]bool {
	return kp.keys
}

// BeginWait arms the wait-for-key latch. Presses already in progress are
// forgotten; only a fresh press will satisfy the wait.
func (kp *Keypad) BeginWait() {
	kp.waiting = true
	kp.latchOk = false
}

// Waiting is true while the latch is armed and unsatisfied.
func (kp *Keypad) Waiting() bool {
	return kp.waiting && !kp.latchOk
}

// CheckWait collects the latched key. The second return value is false
// while the wait is unsatisfied. Collecting the key disarms the latch.
func (kp *Keypad) CheckWait() (uint8, bool) {
	if !kp.waiting || !kp.latchOk {
		return 0, false
	}
	kp.waiting = false
	kp.latchOk = false
	return kp.latched, true
}
