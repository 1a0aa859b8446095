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

package regression

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/julienr/chippy8/curated"
	"github.com/julienr/chippy8/database"
	"github.com/julienr/chippy8/display"
	"github.com/julienr/chippy8/hardware"
	"github.com/julienr/chippy8/recorder"
)

const playbackEntryType = "playback"

const (
	playbackFieldScript int = iota
	playbackFieldNotes
	numPlaybackFields
)

// PlaybackRegression replays a transcript of key events. Every event in
// the transcript carries a hash of the machine state at the moment it
// was recorded; the playback itself checks those hashes as it goes, so
// there is no separate digest to compare at the end.
type PlaybackRegression struct {
	Script string
	Notes  string
}

func deserialisePlaybackEntry(fields database.SerialisedEntry) (database.Entry, error) {
	reg := &PlaybackRegression{}

	// basic sanity check
	if len(fields) > numPlaybackFields {
		return nil, curated.Errorf("playback: too many fields")
	}
	if len(fields) < numPlaybackFields {
		return nil, curated.Errorf("playback: too few fields")
	}

	reg.Script = fields[playbackFieldScript]
	reg.Notes = fields[playbackFieldNotes]

	return reg, nil
}

// ID implements the database.Entry interface.
func (reg PlaybackRegression) ID() string {
	return playbackEntryType
}

// String implements the database.Entry interface.
func (reg PlaybackRegression) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("[%s] %s", reg.ID(), filepath.Base(reg.Script)))
	if reg.Notes != "" {
		s.WriteString(fmt.Sprintf(" [%s]", reg.Notes))
	}
	return s.String()
}

// Serialise implements the database.Entry interface.
func (reg *PlaybackRegression) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{
			reg.Script,
			reg.Notes,
		},
		nil
}

// CleanUp implements the database.Entry interface.
func (reg PlaybackRegression) CleanUp() error {
	err := os.Remove(reg.Script)
	if _, ok := err.(*os.PathError); ok {
		return nil
	}
	return err
}

// regress implements the regression.Regressor interface.
func (reg *PlaybackRegression) regress(newRegression bool, output io.Writer, msg string) (bool, error) {
	output.Write([]byte(msg))

	plb, err := recorder.NewPlayback(reg.Script)
	if err != nil {
		return false, curated.Errorf("playback: %v", err)
	}

	disp := display.NewDisplay()
	defer disp.End()

	// a regression run is never capped to real time
	disp.SetFPSCap(false)

	ch8, err := hardware.NewChip8(disp)
	if err != nil {
		return false, curated.Errorf("playback: %v", err)
	}

	// random numbers must be predictable for the state hashes to match
	ch8.Rnd.ZeroSeed = true

	// attaching the playback applies the quirk profile from the
	// transcript. it must happen before the ROM is attached because the
	// reset triggered by AttachROM() takes note of the quirk profile
	if err := plb.AttachToChip8(ch8); err != nil {
		return false, curated.Errorf("playback: %v", err)
	}

	if err := ch8.AttachROM(plb.ROMLoad); err != nil {
		return false, curated.Errorf("playback: %v", err)
	}

	// display progress meter every 1 second
	tck := time.NewTicker(time.Second)
	defer tck.Stop()

	err = ch8.Run(func() (bool, error) {
		select {
		case <-tck.C:
			output.Write([]byte(fmt.Sprintf("\r%s [%s]", msg, plb)))
		default:
		}

		ended, err := plb.EndFrame()
		return !ended, err
	})
	if err != nil {
		// a hash error means the machine did not reach the state recorded
		// in the transcript. the test has failed rather than errored
		if curated.Has(err, recorder.PlaybackHashError) {
			return false, nil
		}
		return false, curated.Errorf("playback: %v", err)
	}

	// if this is a new regression the script is copied into the
	// regression scripts directory and the entry updated to refer to the
	// copy. the original file is not touched
	if newRegression {
		newScript, err := uniqueFilename("playback", plb.ROMLoad)
		if err != nil {
			return false, curated.Errorf("playback: %v", err)
		}

		nf, err := os.Create(newScript)
		if err != nil {
			return false, curated.Errorf("playback: while copying script: %v", err)
		}
		defer nf.Close()

		of, err := os.Open(reg.Script)
		if err != nil {
			return false, curated.Errorf("playback: while copying script: %v", err)
		}
		defer of.Close()

		if _, err := io.Copy(nf, of); err != nil {
			return false, curated.Errorf("playback: while copying script: %v", err)
		}

		reg.Script = newScript
	}

	return true, nil
}
