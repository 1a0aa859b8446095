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

package timer_test

import (
	"testing"

	"github.com/julienr/chippy8/hardware/timer"
	"github.com/julienr/chippy8/test"
)

func TestTick(t *testing.T) {
	tmr := timer.NewTimer()

	// ticking timers that are already at zero leaves them at zero
	tmr.Tick()
	test.Equate(t, tmr.Delay, 0)
	test.Equate(t, tmr.Sound, 0)

	tmr.Delay = 2
	tmr.Sound = 1

	test.Equate(t, tmr.SoundActive(), true)

	tmr.Tick()
	test.Equate(t, tmr.Delay, 1)
	test.Equate(t, tmr.Sound, 0)
	test.Equate(t, tmr.SoundActive(), false)

	// the delay timer clamps at zero no matter how often it is ticked
	tmr.Tick()
	tmr.Tick()
	test.Equate(t, tmr.Delay, 0)
	test.Equate(t, tmr.Sound, 0)
}
