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

// Package recorder handles input transcripts: the recording of key events
// as they happen and the reperforming of those events later, at exactly
// the machine moment they originally happened at.
//
// Every recorded event carries the video digest hash at the moment of the
// event. During playback the hash is compared before the event is
// reperformed, so a playback that has drifted from the original run fails
// loudly rather than silently diverging. The transcript header carries
// the ROM hash, the quirk profile and the instruction rate for the same
// reason.
package recorder

import (
	"fmt"
	"os"

	"github.com/julienr/chippy8/curated"
	"github.com/julienr/chippy8/digest"
	"github.com/julienr/chippy8/hardware"
)

// Recorder transcribes key events to a file as they arrive at the keypad.
// It implements the keypad.EventRecorder interface.
type Recorder struct {
	transcript string
	output     *os.File

	ch8 *hardware.Chip8
	dig *digest.Video
}

// NewRecorder is the preferred method of initialisation for the Recorder
// type. Note that attaching the recorder to the machine's keypad is the
// caller's responsibility.
func NewRecorder(transcript string, ch8 *hardware.Chip8) (*Recorder, error) {
	if ch8 == nil || ch8.Disp == nil {
		return nil, curated.Errorf("recorder: %v", "no hardware available to record")
	}

	rec := &Recorder{
		transcript: transcript,
		ch8:        ch8,
	}

	var err error

	rec.dig, err = digest.NewVideo(ch8.Disp)
	if err != nil {
		return nil, curated.Errorf("recorder: %v", err)
	}

	rec.output, err = os.Create(transcript)
	if err != nil {
		return nil, curated.Errorf("recorder: can't create file (%s)", transcript)
	}

	if err = rec.writeHeader(); err != nil {
		return nil, err
	}

	return rec, nil
}

// End closes the transcript file. Recording a key event after End() will
// fail.
func (rec *Recorder) End() error {
	if err := rec.output.Close(); err != nil {
		return curated.Errorf("recorder: %v", err)
	}
	return nil
}

// RecordKey implements the keypad.EventRecorder interface. The event is
// stamped with the machine moment and the video digest hash.
func (rec *Recorder) RecordKey(key uint8, pressed bool) error {
	line := fmt.Sprintf("%d%s%v%s%d%s%d%s%s\n",
		key, fieldSep,
		pressed, fieldSep,
		rec.ch8.StepCount(), fieldSep,
		rec.ch8.Disp.GetFrameNum(), fieldSep,
		rec.dig.Hash())

	n, err := rec.output.WriteString(line)
	if err != nil {
		return curated.Errorf("recorder: %v", err)
	}
	if n != len(line) {
		return curated.Errorf("recorder: %v", "output truncated")
	}

	return nil
}
