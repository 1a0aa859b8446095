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

// Package playmode is the normal, non-debugging mode of the emulator. The
// machine runs at full speed with input coming from the GUI, optionally
// recording key events to a transcript or reperforming a transcript made
// earlier.
package playmode

import (
	"os"
	"os/signal"

	"github.com/julienr/chippy8/curated"
	"github.com/julienr/chippy8/display"
	"github.com/julienr/chippy8/gui"
	"github.com/julienr/chippy8/hardware"
	"github.com/julienr/chippy8/recorder"
	"github.com/julienr/chippy8/resources"
	"github.com/julienr/chippy8/romloader"
	"github.com/julienr/chippy8/setup"
	"github.com/julienr/chippy8/wavwriter"
)

type playmode struct {
	ch8 *hardware.Chip8
	scr gui.GUI

	intChan   chan os.Signal
	guiEvents chan gui.Event
}

// Play sets the emulation running, without any debugging features.
func Play(disp *display.Display, scr gui.GUI, newRecording bool, transcript string, ld romloader.Loader, wavOut string) error {
	pl := &playmode{scr: scr}

	var err error

	pl.ch8, err = hardware.NewChip8(disp)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	if wavOut != "" {
		ww, err := wavwriter.NewWavWriter(wavOut)
		if err != nil {
			return curated.Errorf("playmode: %v", err)
		}
		disp.AddAudioMixer(ww)
	}

	// create a default transcript file name if none has been supplied
	if newRecording && transcript == "" {
		transcript = resources.UniqueFilename("recording", ld.ShortName())
	}

	// note that the ROM is attached in three different branches below. the
	// order of attachment matters differently in each case
	if transcript != "" {
		// a recording session and the later playback of it must produce
		// the same random numbers or the state hashes will never agree
		pl.ch8.Rnd.ZeroSeed = true

		if newRecording {
			// the transcript header describes the attached ROM so the ROM
			// must be in place before the recorder is created. any quirk
			// profile from the setup database lands in the header too
			if err := setup.AttachROM(pl.ch8, ld); err != nil {
				return curated.Errorf("playmode: %v", err)
			}

			rec, err := recorder.NewRecorder(transcript, pl.ch8)
			if err != nil {
				return curated.Errorf("playmode: %v", err)
			}

			defer func() {
				_ = rec.End()
			}()

			pl.ch8.Keypad.AttachEventRecorder(rec)
		} else {
			plb, err := recorder.NewPlayback(transcript)
			if err != nil {
				return curated.Errorf("playmode: %v", err)
			}

			if ld.Filename != "" && ld.Filename != plb.ROMLoad.Filename {
				return curated.Errorf("playmode: %v", "rom does not match the one in the transcript")
			}

			// attaching the playback applies the quirk profile from the
			// transcript. it must happen before the ROM is attached
			// because the reset triggered by AttachROM() takes note of
			// the profile. the transcript dictates the profile so the
			// setup database is not consulted
			if err := plb.AttachToChip8(pl.ch8); err != nil {
				return curated.Errorf("playmode: %v", err)
			}

			if err := pl.ch8.AttachROM(plb.ROMLoad); err != nil {
				return curated.Errorf("playmode: %v", err)
			}
		}
	} else {
		if err := setup.AttachROM(pl.ch8, ld); err != nil {
			return curated.Errorf("playmode: %v", err)
		}
	}

	// connect gui
	pl.guiEvents = make(chan gui.Event, 2)
	err = scr.SetFeature(gui.ReqSetPlaymode, pl.ch8, pl.guiEvents)
	if err != nil && !curated.Is(err, gui.UnsupportedGuiFeature) {
		return curated.Errorf("playmode: %v", err)
	}

	err = scr.SetFeature(gui.ReqMonitorSync, true)
	if err != nil && !curated.Is(err, gui.UnsupportedGuiFeature) {
		return curated.Errorf("playmode: %v", err)
	}

	// the deferred rec.End() above must run even when ctrl-c is pressed,
	// so the interrupt signal is turned into a normal quit
	pl.intChan = make(chan os.Signal, 1)
	signal.Notify(pl.intChan, os.Interrupt)

	pl.setState(gui.StateRunning)
	err = pl.ch8.Run(pl.eventHandler)
	pl.setState(gui.StateEnding)

	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	return nil
}

func (pl *playmode) setState(state gui.EmulationState) {
	pl.scr.SetFeatureNoError(gui.ReqState, state)
}
