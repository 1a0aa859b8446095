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
	"github.com/julienr/chippy8/hardware/timer"
)

// Run sets the machine running. The instruction clock and the timer clock
// are interleaved with a fractional accumulator, so an instruction rate
// that doesn't divide evenly by sixty is still honoured over time. Pacing
// comes from the display's frame limiter; this loop contains no timing
// code of its own.
//
// continueCheck() is called after every timer tick and should return
// false when an external event (eg. a GUI event) indicates that the
// machine should stop.
func (ch8 *Chip8) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	// the fraction of the instruction rate owed but not yet executed
	acc := 0.0

	cont := true
	for cont {
		// the rate preference is consulted every tick so a change made
		// from the GUI takes effect immediately
		rate := ch8.Prefs.InstRate.Get().(int)
		if rate < 1 {
			rate = 1
		}

		acc += float64(rate) / timer.TickHz
		for acc >= 1 {
			if err := ch8.Step(); err != nil {
				return err
			}
			acc--
		}

		if err := ch8.TickTimers(); err != nil {
			return err
		}

		var err error
		cont, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForTicks runs the machine for the given number of timer ticks, using
// the same instruction accumulator as Run(). With the display's frame
// limiter turned off this is a deterministic, as-fast-as-possible run;
// the regression suite and the performance profiler are its users.
//
// callback, which may be nil, is called after every tick.
func (ch8 *Chip8) RunForTicks(numTicks int, callback func() error) error {
	if callback == nil {
		callback = func() error { return nil }
	}

	acc := 0.0

	for t := 0; t < numTicks; t++ {
		rate := ch8.Prefs.InstRate.Get().(int)
		if rate < 1 {
			rate = 1
		}

		acc += float64(rate) / timer.TickHz
		for acc >= 1 {
			if err := ch8.Step(); err != nil {
				return err
			}
			acc--
		}

		if err := ch8.TickTimers(); err != nil {
			return err
		}

		if err := callback(); err != nil {
			return err
		}
	}

	return nil
}
