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
	"strconv"
	"strings"
	"time"

	"github.com/julienr/chippy8/curated"
	"github.com/julienr/chippy8/database"
	"github.com/julienr/chippy8/digest"
	"github.com/julienr/chippy8/display"
	"github.com/julienr/chippy8/hardware"
	"github.com/julienr/chippy8/romloader"
)

const digestEntryType = "digest"

const (
	digestFieldMode int = iota
	digestFieldROM
	digestFieldQuirks
	digestFieldNumFrames
	digestFieldDigest
	digestFieldNotes
	numDigestFields
)

// DigestRegression is the simplest regression type. The machine is run
// with no key input for a set number of frames and the digest of the
// video (or audio, or both) stream is the test result.
type DigestRegression struct {
	Mode      DigestMode
	ROM       string
	Quirks    string
	NumFrames int
	Notes     string
	digest    string
}

func deserialiseDigestEntry(fields database.SerialisedEntry) (database.Entry, error) {
	reg := &DigestRegression{}

	// basic sanity check
	if len(fields) > numDigestFields {
		return nil, curated.Errorf("digest: too many fields")
	}
	if len(fields) < numDigestFields {
		return nil, curated.Errorf("digest: too few fields")
	}

	// string fields need no conversion
	reg.ROM = fields[digestFieldROM]
	reg.Quirks = fields[digestFieldQuirks]
	reg.digest = fields[digestFieldDigest]
	reg.Notes = fields[digestFieldNotes]

	var err error

	reg.Mode, err = ParseDigestMode(fields[digestFieldMode])
	if err != nil {
		return nil, curated.Errorf("digest: %v", err)
	}

	reg.NumFrames, err = strconv.Atoi(fields[digestFieldNumFrames])
	if err != nil {
		return nil, curated.Errorf("digest: invalid numFrames field (%s)", fields[digestFieldNumFrames])
	}

	return reg, nil
}

// ID implements the database.Entry interface.
func (reg DigestRegression) ID() string {
	return digestEntryType
}

// String implements the database.Entry interface.
func (reg DigestRegression) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("[%s/%s] %s frames=%d",
		reg.ID(), reg.Mode, romloader.NewLoader(reg.ROM).ShortName(), reg.NumFrames))
	if reg.Notes != "" {
		s.WriteString(fmt.Sprintf(" [%s]", reg.Notes))
	}
	return s.String()
}

// Serialise implements the database.Entry interface.
func (reg *DigestRegression) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{
			reg.Mode.String(),
			reg.ROM,
			reg.Quirks,
			strconv.Itoa(reg.NumFrames),
			reg.digest,
			reg.Notes,
		},
		nil
}

// CleanUp implements the database.Entry interface.
func (reg DigestRegression) CleanUp() error {
	return nil
}

// regress implements the regression.Regressor interface.
func (reg *DigestRegression) regress(newRegression bool, output io.Writer, msg string) (bool, error) {
	output.Write([]byte(msg))

	disp := display.NewDisplay()
	defer disp.End()

	// a regression run is never capped to real time
	disp.SetFPSCap(false)

	var vid *digest.Video
	var aud *digest.Audio
	var err error

	switch reg.Mode {
	case DigestVideoOnly:
		vid, err = digest.NewVideo(disp)
	case DigestAudioOnly:
		aud, err = digest.NewAudio(disp)
	case DigestBoth:
		vid, err = digest.NewVideo(disp)
		if err == nil {
			aud, err = digest.NewAudio(disp)
		}
	default:
		return false, curated.Errorf("digest: undefined digest mode")
	}
	if err != nil {
		return false, curated.Errorf("digest: %v", err)
	}

	ch8, err := hardware.NewChip8(disp)
	if err != nil {
		return false, curated.Errorf("digest: %v", err)
	}

	// random numbers must be predictable for the digest to be stable
	ch8.Rnd.ZeroSeed = true

	// quirks before the ROM. attaching the ROM resets the machine and the
	// reset takes note of the quirk profile
	if err := ch8.Prefs.SetFromString(reg.Quirks); err != nil {
		return false, curated.Errorf("digest: %v", err)
	}

	if err := ch8.AttachROM(romloader.NewLoader(reg.ROM)); err != nil {
		return false, curated.Errorf("digest: %v", err)
	}

	// display progress meter every 1 second
	tck := time.NewTicker(time.Second)
	defer tck.Stop()

	err = ch8.RunForTicks(reg.NumFrames, func() error {
		select {
		case <-tck.C:
			output.Write([]byte(fmt.Sprintf("\r%s [frame %d of %d]", msg, disp.GetFrameNum(), reg.NumFrames)))
		default:
		}
		return nil
	})
	if err != nil {
		return false, curated.Errorf("digest: %v", err)
	}

	hash := ""
	switch reg.Mode {
	case DigestVideoOnly:
		hash = vid.Hash()
	case DigestAudioOnly:
		hash = aud.Hash()
	case DigestBoth:
		hash = vid.Hash() + aud.Hash()
	}

	if newRegression {
		reg.digest = hash
		return true, nil
	}

	return hash == reg.digest, nil
}
