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

// Package random generates the random numbers required by the RND
// instruction.
//
// Numbers are a function of the machine's step count rather than of a
// free-running generator. Running the same ROM for the same number of
// steps therefore produces the same numbers, which is what allows input
// transcripts and regression entries to be replayed faithfully.
//
// By default the step count is combined with a base seed taken from the
// wall clock at program start, so interactive runs still differ from one
// another. Normalised instances (ZeroSeed) drop the base seed and are
// fully predictable.
package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers.
var baseSeed int64

func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Stepper is the connection between the random number generator and the
// point in time of the emulation. Implemented by the machine.
type Stepper interface {
	StepCount() uint64
}

// Random is a random number generator that is sensitive to time within
// the emulation.
type Random struct {
	stepper Stepper

	// use zero seed rather than the random base seed. only really useful
	// for normalised instances where numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random
// type.
func NewRandom(stepper Stepper) *Random {
	return &Random{
		stepper: stepper,
	}
}

// new RNG from the standard library, seeded for the current moment of the
// emulation.
func (rnd *Random) rand() *rand.Rand {
	if rnd.ZeroSeed {
		return rand.New(rand.NewSource(int64(rnd.stepper.StepCount())))
	}
	return rand.New(rand.NewSource(baseSeed + int64(rnd.stepper.StepCount())))
}

// Intn returns a random number between 0 and n.
func (rnd *Random) Intn(n int) int {
	return rnd.rand().Intn(n)
}

// Uint8 returns a random byte. It is the form of randomness the RND
// instruction consumes.
func (rnd *Random) Uint8() uint8 {
	return uint8(rnd.rand().Intn(256))
}
