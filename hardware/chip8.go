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

// Package hardware is the hub package for the emulated CHIP-8 machine.
// The Chip8 type gathers the components found in the sub-packages into a
// single machine and attaches it to a display.
//
// The machine has two clocks and they are deliberately independent: the
// instruction clock, advanced with Step(), and the sixty hertz timer
// clock, advanced with TickTimers(). The Run() loop in this package
// interleaves the two at the rate given by the preferences; a debugger
// can just as well drive Step() by hand while ticking the timers at
// whatever pace it likes.
package hardware

import (
	"fmt"
	"strings"

	"github.com/julienr/chippy8/curated"
	"github.com/julienr/chippy8/display"
	"github.com/julienr/chippy8/hardware/cpu"
	"github.com/julienr/chippy8/hardware/keypad"
	"github.com/julienr/chippy8/hardware/memory"
	"github.com/julienr/chippy8/hardware/preferences"
	"github.com/julienr/chippy8/hardware/timer"
	"github.com/julienr/chippy8/hardware/video"
	"github.com/julienr/chippy8/logger"
	"github.com/julienr/chippy8/random"
	"github.com/julienr/chippy8/romloader"
)

// OddOrigin is returned when a ROM asks to be loaded at an odd address.
// Instructions are two bytes each and the program counter must stay even.
const OddOrigin = "chip8: rom origin must be even (%#04x)"

// PlaybackSource implementations feed recorded key events back into the
// machine. The machine polls the source before every instruction; the
// source returns ok=false until the machine reaches the moment the next
// event was recorded at.
type PlaybackSource interface {
	GetPlayback() (key uint8, pressed bool, ok bool, err error)
}

// Chip8 is the main container for the emulated components of the machine.
type Chip8 struct {
	Prefs *preferences.Preferences

	CPU    *cpu.CPU
	Mem    *memory.Memory
	Video  *video.Video
	Keypad *keypad.Keypad
	Timer  *timer.Timer

	// the display is not part of the machine but is attached to it
	Disp *display.Display

	// the loader the current ROM came from. reused on Reset() so the
	// machine comes back up with the same program
	loader *romloader.Loader

	// source of recorded key events, polled before every instruction
	playback PlaybackSource

	Rnd *random.Random

	// number of instructions executed since the last reset. used as the
	// time source for the random number generator
	steps uint64
}

// NewChip8 creates a new Chip8 machine and everything associated with it.
// It is used for all aspects of emulation: debugging sessions and regular
// play.
func NewChip8(disp *display.Display) (*Chip8, error) {
	ch8 := &Chip8{Disp: disp}

	var err error

	ch8.Prefs, err = preferences.NewPreferences()
	if err != nil {
		return nil, err
	}

	ch8.Mem = memory.NewMemory()
	ch8.Video = video.NewVideo()
	ch8.Keypad = keypad.NewKeypad()
	ch8.Timer = timer.NewTimer()
	ch8.Rnd = random.NewRandom(ch8)
	ch8.CPU = cpu.NewCPU(ch8.Prefs, ch8.Mem, ch8.Video, ch8.Keypad, ch8.Timer, ch8.Rnd)

	return ch8, nil
}

// StepCount returns the number of instructions executed since the last
// reset. It never goes down, except to zero on a reset; suspended steps
// count like any other.
//
// Implements the random.Stepper interface, making the instruction count
// the time source for the random number generator.
func (ch8 *Chip8) StepCount() uint64 {
	return ch8.steps
}

// AttachROM loads a ROM into the machine. The machine is reset first so
// the program starts from a known state.
func (ch8 *Chip8) AttachROM(ld romloader.Loader) error {
	if err := ld.Load(); err != nil {
		return err
	}

	if ld.Origin&0x0001 == 0x0001 {
		return curated.Errorf(OddOrigin, ld.Origin)
	}

	ch8.loader = &ld

	if err := ch8.Reset(); err != nil {
		return err
	}

	logger.Logf("chip8", "%s attached (%d bytes at %#04x)",
		ld.ShortName(), len(ld.Data), ch8.CPU.PC)

	return nil
}

// origin the current ROM wants to be loaded at.
func (ch8 *Chip8) origin() uint16 {
	if ch8.loader == nil || ch8.loader.Origin == 0 {
		return memory.LoadOrigin
	}
	return ch8.loader.Origin
}

// Reset the machine. The attached ROM, if there is one, is loaded back
// into memory and the program counter set to its origin.
func (ch8 *Chip8) Reset() error {
	ch8.Mem.Reset()
	ch8.Keypad.Reset()
	ch8.Timer.Reset()
	ch8.CPU.Reset()
	ch8.steps = 0

	ch8.Video.SetHighRes(ch8.Prefs.HighRes.Get().(bool))

	if ch8.loader != nil {
		origin := ch8.origin()
		if err := ch8.Mem.Load(ch8.loader.Data, origin); err != nil {
			return err
		}
		ch8.CPU.PC = origin
	}

	ch8.Disp.Reset()

	return nil
}

// AttachPlayback attaches (or with nil, detaches) a source of recorded
// key events.
func (ch8 *Chip8) AttachPlayback(pb PlaybackSource) {
	ch8.playback = pb
}

// ROMFilename returns the filename of the attached ROM, or the empty
// string if no ROM is attached.
func (ch8 *Chip8) ROMFilename() string {
	if ch8.loader == nil {
		return ""
	}
	return ch8.loader.Filename
}

// ROMHash returns the hash of the attached ROM, or the empty string if no
// ROM is attached.
func (ch8 *Chip8) ROMHash() string {
	if ch8.loader == nil {
		return ""
	}
	return ch8.loader.Hash
}

// Step the machine one instruction.
func (ch8 *Chip8) Step() error {
	if ch8.playback != nil {
		// drain every event recorded for this moment
		for {
			key, pressed, ok, err := ch8.playback.GetPlayback()
			if err != nil {
				return err
			}
			if !ok {
				break
			}
			if err := ch8.Keypad.SetKey(key, pressed); err != nil {
				return err
			}
		}
	}

	if err := ch8.CPU.Step(); err != nil {
		return err
	}
	ch8.steps++
	return nil
}

// TickTimers advances the sixty hertz side of the machine: the delay and
// sound timers fall by one and a frame is pushed to the display.
//
// The display's frame limiter blocks inside this function. That is what
// holds the whole emulation to real time.
func (ch8 *Chip8) TickTimers() error {
	ch8.Timer.Tick()

	w, h := ch8.Video.Dim()
	return ch8.Disp.NewFrame(ch8.Video.Pixels(), w, h, ch8.Timer.SoundActive())
}

// SetKey presses or releases a key on the keypad.
func (ch8 *Chip8) SetKey(key uint8, pressed bool) error {
	return ch8.Keypad.SetKey(key, pressed)
}

// SoundActive returns true while the buzzer should be sounding.
func (ch8 *Chip8) SoundActive() bool {
	return ch8.Timer.SoundActive()
}

func (ch8 *Chip8) String() string {
	s := strings.Builder{}
	s.WriteString(ch8.CPU.String())
	s.WriteString(fmt.Sprintf("\n%s  steps=%d", ch8.Timer.String(), ch8.steps))
	return s.String()
}
