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

package keypad_test

import (
	"testing"

	"github.com/julienr/chippy8/curated"
	"github.com/julienr/chippy8/hardware/keypad"
	"github.com/julienr/chippy8/test"
)

func TestSetKey(t *testing.T) {
	kp := keypad.NewKeypad()

	test.Equate(t, kp.IsPressed(0x4), false)

	err := kp.SetKey(0x4, true)
	test.ExpectedSuccess(t, err)
	test.Equate(t, kp.IsPressed(0x4), true)

	err = kp.SetKey(0x4, false)
	test.ExpectedSuccess(t, err)
	test.Equate(t, kp.IsPressed(0x4), false)

	// the keypad has sixteen keys and no more
	err = kp.SetKey(0x10, true)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, keypad.NoSuchKey), true)
}

func TestWaitLatch(t *testing.T) {
	kp := keypad.NewKeypad()

	// a key held before the wait begins does not satisfy it
	err := kp.SetKey(0x2, true)
	test.ExpectedSuccess(t, err)

	kp.BeginWait()
	test.Equate(t, kp.Waiting(), true)

	_, ok := kp.CheckWait()
	test.Equate(t, ok, false)

	// re-pressing the held key is not a transition either
	err = kp.SetKey(0x2, true)
	test.ExpectedSuccess(t, err)
	_, ok = kp.CheckWait()
	test.Equate(t, ok, false)

	// a fresh press is
	err = kp.SetKey(0x7, true)
	test.ExpectedSuccess(t, err)
	test.Equate(t, kp.Waiting(), false)

	key, ok := kp.CheckWait()
	test.Equate(t, ok, true)
	test.Equate(t, key, 0x07)

	// collecting the key disarms the latch
	_, ok = kp.CheckWait()
	test.Equate(t, ok, false)
}

func TestWaitAfterRelease(t *testing.T) {
	kp := keypad.NewKeypad()

	err := kp.SetKey(0x2, true)
	test.ExpectedSuccess(t, err)

	kp.BeginWait()

	// releasing and pressing again is a transition
	err = kp.SetKey(0x2, false)
	test.ExpectedSuccess(t, err)
	err = kp.SetKey(0x2, true)
	test.ExpectedSuccess(t, err)

	key, ok := kp.CheckWait()
	test.Equate(t, ok, true)
	test.Equate(t, key, 0x02)
}

type recorder struct {
	events []uint8
}

func (r *recorder) RecordKey(key uint8, pressed bool) error {
	if pressed {
		r.events = append(r.events, key)
	}
	return nil
}

func TestEventRecorder(t *testing.T) {
	kp := keypad.NewKeypad()
	r := &recorder{}

	kp.AttachEventRecorder(r)

	err := kp.SetKey(0x1, true)
	test.ExpectedSuccess(t, err)
	err = kp.SetKey(0x1, false)
	test.ExpectedSuccess(t, err)
	err = kp.SetKey(0xa, true)
	test.ExpectedSuccess(t, err)

	test.Equate(t, len(r.events), 2)
	test.Equate(t, r.events[0], 0x01)
	test.Equate(t, r.events[1], 0x0a)

	// detached recorder sees nothing more
	kp.AttachEventRecorder(nil)
	err = kp.SetKey(0x2, true)
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(r.events), 2)
}
