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

package setup

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/julienr/chippy8/curated"
	"github.com/julienr/chippy8/database"
	"github.com/julienr/chippy8/hardware"
	"github.com/julienr/chippy8/logger"
)

const quirksEntryType = "quirks"

const (
	quirksFieldROMHash int = iota
	quirksFieldROMName
	quirksFieldProfile
	quirksFieldInstRate
	quirksFieldNotes
	numQuirksFields
)

// Quirks is used to switch the machine to the quirk profile a ROM is
// known to need.
type Quirks struct {
	romHash string
	romName string

	// quirk profile in the format produced by preferences.String(). an
	// empty string leaves the user's profile alone
	profile string

	// instruction rate. zero leaves the user's rate alone
	instRate int

	notes string
}

func deserialiseQuirksEntry(fields database.SerialisedEntry) (database.Entry, error) {
	set := &Quirks{}

	// basic sanity check
	if len(fields) > numQuirksFields {
		return nil, curated.Errorf("quirks: too many fields in quirks entry")
	}
	if len(fields) < numQuirksFields {
		return nil, curated.Errorf("quirks: too few fields in quirks entry")
	}

	set.romHash = fields[quirksFieldROMHash]
	set.romName = fields[quirksFieldROMName]
	set.profile = fields[quirksFieldProfile]

	if r := strings.TrimSpace(fields[quirksFieldInstRate]); r != "" {
		var err error
		set.instRate, err = strconv.Atoi(r)
		if err != nil {
			return nil, curated.Errorf("quirks: invalid instruction rate (%s)", r)
		}
	}

	set.notes = fields[quirksFieldNotes]

	return set, nil
}

// ID implements the database.Entry interface.
func (set Quirks) ID() string {
	return quirksEntryType
}

// String implements the database.Entry interface.
func (set Quirks) String() string {
	return fmt.Sprintf("%s, %s, %s", set.romHash, set.romName, set.profile)
}

// Serialise implements the database.Entry interface.
func (set *Quirks) Serialise() (database.SerialisedEntry, error) {
	rate := ""
	if set.instRate > 0 {
		rate = strconv.Itoa(set.instRate)
	}

	return database.SerialisedEntry{
			set.romHash,
			set.romName,
			set.profile,
			rate,
			set.notes,
		},
		nil
}

// CleanUp implements the database.Entry interface.
func (set Quirks) CleanUp() error {
	// no cleanup necessary
	return nil
}

// matchROMHash implements setupEntry interface.
func (set Quirks) matchROMHash(hash string) bool {
	return set.romHash == hash
}

// apply implements setupEntry interface.
func (set Quirks) apply(ch8 *hardware.Chip8) error {
	if set.profile != "" {
		if err := ch8.Prefs.SetFromString(set.profile); err != nil {
			return err
		}
	}

	if set.instRate > 0 {
		if err := ch8.Prefs.InstRate.Set(set.instRate); err != nil {
			return err
		}
	}

	logger.Logf("setup", "quirks applied for %s", set.romName)

	return nil
}
