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

package recorder

import (
	"fmt"
	"io/ioutil"
	"strconv"
	"strings"

	"github.com/julienr/chippy8/curated"
	"github.com/julienr/chippy8/digest"
	"github.com/julienr/chippy8/hardware"
	"github.com/julienr/chippy8/romloader"
)

// PlaybackHashError is returned by GetPlayback when the machine state at
// the moment of an event does not hash to the value in the transcript.
const PlaybackHashError = "playback: unexpected machine state at line %d (step %d)"

type playbackEntry struct {
	key     uint8
	pressed bool
	step    uint64
	frame   int
	hash    string

	// the line in the transcript the event appears at
	line int
}

// Playback reperforms the key events recorded in a transcript. It
// implements the hardware.PlaybackSource interface.
type Playback struct {
	transcript string

	// how the machine must be set up for the playback to make sense. the
	// quirk profile and instruction rate are applied to the machine on
	// attachment; the ROMLoad field is for the caller to attach
	ROMLoad  romloader.Loader
	Quirks   string
	InstRate string

	sequence []playbackEntry
	seqCt    int

	ch8 *hardware.Chip8
	dig *digest.Video

	// the last frame on which an event occurs
	endFrame int
}

// NewPlayback is the preferred method of initialisation for the Playback
// type.
func NewPlayback(transcript string) (*Playback, error) {
	plb := &Playback{
		transcript: transcript,
		sequence:   make([]playbackEntry, 0),
	}

	buffer, err := ioutil.ReadFile(transcript)
	if err != nil {
		return nil, curated.Errorf("playback: %v", err)
	}

	lines := strings.Split(string(buffer), "\n")

	if err := plb.readHeader(lines); err != nil {
		return nil, err
	}

	for i := numHeaderLines; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}

		toks := strings.Split(lines[i], fieldSep)
		if len(toks) != numFields {
			return nil, curated.Errorf("playback: expected %d fields at line %d", numFields, i+1)
		}

		entry := playbackEntry{line: i + 1}

		key, err := strconv.ParseUint(toks[fieldKey], 10, 8)
		if err != nil {
			return nil, curated.Errorf("playback: %v", fmt.Sprintf("%s at line %d", err, i+1))
		}
		entry.key = uint8(key)

		entry.pressed, err = strconv.ParseBool(toks[fieldPressed])
		if err != nil {
			return nil, curated.Errorf("playback: %v", fmt.Sprintf("%s at line %d", err, i+1))
		}

		entry.step, err = strconv.ParseUint(toks[fieldStep], 10, 64)
		if err != nil {
			return nil, curated.Errorf("playback: %v", fmt.Sprintf("%s at line %d", err, i+1))
		}

		entry.frame, err = strconv.Atoi(toks[fieldFrame])
		if err != nil {
			return nil, curated.Errorf("playback: %v", fmt.Sprintf("%s at line %d", err, i+1))
		}

		// events are in order in the transcript so the most recent frame
		// is the end frame
		plb.endFrame = entry.frame

		entry.hash = toks[fieldHash]

		plb.sequence = append(plb.sequence, entry)
	}

	return plb, nil
}

func (plb *Playback) String() string {
	currFrame := plb.ch8.Disp.GetFrameNum()
	return fmt.Sprintf("%d/%d (%.1f%%)", currFrame, plb.endFrame,
		100*(float64(currFrame)/float64(plb.endFrame)))
}

// AttachToChip8 attaches the playback to the machine. The quirk profile
// from the transcript is applied so the machine behaves as it did during
// the recording. Attaching the transcript's ROM is the caller's business;
// the ROMLoad field carries the filename and the expected hash.
func (plb *Playback) AttachToChip8(ch8 *hardware.Chip8) error {
	if ch8 == nil || ch8.Disp == nil {
		return curated.Errorf("playback: %v", "no playback hardware available")
	}
	plb.ch8 = ch8

	if err := ch8.Prefs.SetFromString(plb.Quirks); err != nil {
		return curated.Errorf("playback: %v", err)
	}

	// the machine must step at the rate it stepped at during the
	// recording or the timers will diverge from the transcript
	if err := ch8.Prefs.InstRate.Set(plb.InstRate); err != nil {
		return curated.Errorf("playback: %v", err)
	}

	var err error

	plb.dig, err = digest.NewVideo(ch8.Disp)
	if err != nil {
		return curated.Errorf("playback: %v", err)
	}

	ch8.AttachPlayback(plb)

	return nil
}

// EndFrame returns true if the emulation has gone past the last frame of
// the playback.
func (plb *Playback) EndFrame() (bool, error) {
	return plb.ch8.Disp.GetFrameNum() > plb.endFrame, nil
}

// GetPlayback implements the hardware.PlaybackSource interface. It
// returns the next recorded event once the machine reaches the moment the
// event was recorded at.
func (plb *Playback) GetPlayback() (uint8, bool, bool, error) {
	if plb.seqCt >= len(plb.sequence) {
		return 0, false, false, nil
	}

	entry := plb.sequence[plb.seqCt]
	if entry.step != plb.ch8.StepCount() {
		return 0, false, false, nil
	}

	plb.seqCt++

	if entry.hash != plb.dig.Hash() {
		return 0, false, false, curated.Errorf(PlaybackHashError, entry.line, entry.step)
	}

	return entry.key, entry.pressed, true, nil
}
