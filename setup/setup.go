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
	"github.com/julienr/chippy8/curated"
	"github.com/julienr/chippy8/database"
	"github.com/julienr/chippy8/hardware"
	"github.com/julienr/chippy8/resources"
	"github.com/julienr/chippy8/romloader"
)

// the location of the setupDB file.
const setupDBFile = "setupDB"

// setupEntry is the generic entry type in the setupDB.
type setupEntry interface {
	database.Entry

	// match the hash of the loaded ROM
	matchROMHash(hash string) bool

	// apply the setup information to the machine
	apply(ch8 *hardware.Chip8) error
}

// initDBSession defines the entry types that are allowed in the setupDB.
func initDBSession(db *database.Session) error {
	if err := db.RegisterEntryType(quirksEntryType, deserialiseQuirksEntry); err != nil {
		return err
	}
	return nil
}

// AttachROM attaches the ROM to the machine, applying any setup entries
// that match it first. The absence of a setup database is not an error,
// the attach simply happens without any adjustment.
//
// Matching entries are applied before the attach because the reset
// triggered by AttachROM() takes note of the quirk profile.
func AttachROM(ch8 *hardware.Chip8, ld romloader.Loader) error {
	// load now so that the hash is available for the database lookup
	if err := ld.Load(); err != nil {
		return err
	}

	if err := apply(ch8, ld.Hash); err != nil {
		return err
	}

	return ch8.AttachROM(ld)
}

func apply(ch8 *hardware.Chip8, hash string) error {
	dbPth, err := resources.JoinPath(setupDBFile)
	if err != nil {
		return curated.Errorf("setup: %v", err)
	}

	db, err := database.StartSession(dbPth, database.ActivityReading, initDBSession)
	if err != nil {
		if curated.Is(err, database.NotAvailable) {
			// silently ignore absence of setup database
			return nil
		}
		return curated.Errorf("setup: %v", err)
	}
	defer db.EndSession(false)

	onSelect := func(ent database.Entry) error {
		// database entry should also satisfy the setupEntry interface
		set, ok := ent.(setupEntry)
		if !ok {
			return curated.Errorf("setup: %v", "database entry does not satisfy setupEntry interface")
		}

		if set.matchROMHash(hash) {
			if err := set.apply(ch8); err != nil {
				return err
			}
		}

		return nil
	}

	if _, err := db.SelectAll(onSelect); err != nil {
		return curated.Errorf("setup: %v", err)
	}

	return nil
}
