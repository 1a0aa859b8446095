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

package database_test

import (
	"path/filepath"
	"strconv"
	"testing"

	"github.com/julienr/chippy8/database"
	"github.com/julienr/chippy8/test"
)

const testEntryType = "test"

type testEntry struct {
	name  string
	value int
}

func deserialiseTestEntry(fields database.SerialisedEntry) (database.Entry, error) {
	ent := &testEntry{}
	ent.name = fields[0]

	var err error
	ent.value, err = strconv.Atoi(fields[1])
	if err != nil {
		return nil, err
	}

	return ent, nil
}

// ID implements the database.Entry interface.
func (ent testEntry) ID() string {
	return testEntryType
}

// String implements the database.Entry interface.
func (ent testEntry) String() string {
	return ent.name
}

// Serialise implements the database.Entry interface.
func (ent *testEntry) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{ent.name, strconv.Itoa(ent.value)}, nil
}

// CleanUp implements the database.Entry interface.
func (ent testEntry) CleanUp() error {
	return nil
}

func initSession(db *database.Session) error {
	return db.RegisterEntryType(testEntryType, deserialiseTestEntry)
}

func TestSession(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "db")

	// creating: add two entries and commit them
	db, err := database.StartSession(pth, database.ActivityCreating, initSession)
	if err != nil {
		t.Fatalf(err.Error())
	}

	test.ExpectedSuccess(t, db.Add(&testEntry{name: "foo", value: 10}))
	test.ExpectedSuccess(t, db.Add(&testEntry{name: "bar", value: 20}))
	test.Equate(t, db.NumEntries(), 2)
	test.ExpectedSuccess(t, db.EndSession(true))

	// reading: both entries should have survived the trip through the
	// database file
	db, err = database.StartSession(pth, database.ActivityReading, initSession)
	if err != nil {
		t.Fatalf(err.Error())
	}
	test.Equate(t, db.NumEntries(), 2)

	names := ""
	_, err = db.SelectAll(func(ent database.Entry) error {
		names += ent.String()
		return nil
	})
	test.ExpectedSuccess(t, err)
	test.Equate(t, names, "foobar")

	// keys are allocated in order from zero
	ent, err := db.SelectKeys(nil, 1)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ent.String(), "bar")

	// a key that has never been allocated
	_, err = db.SelectKeys(nil, 100)
	test.ExpectedFailure(t, err)

	// commit is not allowed for a reading session. the session is still
	// open after the failed commit and must be ended properly
	test.ExpectedFailure(t, db.EndSession(true))
	test.ExpectedSuccess(t, db.EndSession(false))

	// modifying: delete the first entry
	db, err = database.StartSession(pth, database.ActivityModifying, initSession)
	if err != nil {
		t.Fatalf(err.Error())
	}
	test.ExpectedSuccess(t, db.Delete(0))
	test.Equate(t, db.NumEntries(), 1)
	test.ExpectedSuccess(t, db.EndSession(true))

	// the deletion survives the session
	db, err = database.StartSession(pth, database.ActivityReading, initSession)
	if err != nil {
		t.Fatalf(err.Error())
	}
	test.Equate(t, db.NumEntries(), 1)
	test.ExpectedSuccess(t, db.EndSession(false))
}
