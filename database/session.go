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

package database

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/julienr/chippy8/curated"
)

// NotAvailable is returned by StartSession() if the database file cannot
// be opened. Use curated.Is() to test for it. Some callers treat an
// absent database as meaning an empty one.
const NotAvailable = "database: cannot open database (%s)"

// Activity defines the general activity of the database session.
type Activity int

// List of valid Activity values.
const (
	ActivityReading Activity = iota
	ActivityModifying
	ActivityCreating
)

// Session keeps track of a database session.
type Session struct {
	dbfile   *os.File
	activity Activity

	entries    map[int]Entry
	entryTypes map[string]deserialiser
}

// StartSession starts/initialises a new DB session. argument is the path to
// the database file, the activity that will be performed during the session
// and an initialisation function, called before the database is read.
func StartSession(path string, activity Activity, init func(*Session) error) (*Session, error) {
	var err error

	db := &Session{activity: activity}
	db.entryTypes = make(map[string]deserialiser)

	var flags int
	switch activity {
	case ActivityReading:
		flags = os.O_RDONLY
	case ActivityModifying:
		flags = os.O_RDWR
	case ActivityCreating:
		flags = os.O_RDWR | os.O_CREATE
	}

	db.dbfile, err = os.OpenFile(path, flags, 0600)
	if err != nil {
		switch err.(type) {
		case *os.PathError:
			return nil, curated.Errorf(NotAvailable, path)
		}
		return nil, curated.Errorf("database: %v", err)
	}

	// closing of db.dbfile happens in EndSession()

	err = init(db)
	if err != nil {
		return nil, curated.Errorf("database: %v", err)
	}

	err = db.readDBFile()
	if err != nil {
		return nil, err
	}

	return db, nil
}

// EndSession closes the database. argument instructs the session to commit
// any changes made to the database. sessions in ActivityReading mode cannot
// commit changes.
func (db *Session) EndSession(commit bool) error {
	// write entries to database
	if commit {
		if db.activity == ActivityReading {
			return curated.Errorf("database: cannot commit to a read-only database")
		}

		// truncate file and rewind to the beginning before writing
		err := db.dbfile.Truncate(0)
		if err != nil {
			return curated.Errorf("database: %v", err)
		}
		_, err = db.dbfile.Seek(0, io.SeekStart)
		if err != nil {
			return curated.Errorf("database: %v", err)
		}

		keyList := db.SortedKeyList()

		for k := range keyList {
			key := keyList[k]
			ent := db.entries[key]

			ser, err := ent.Serialise()
			if err != nil {
				return curated.Errorf("database: %v", err)
			}

			s := strings.Builder{}
			s.WriteString(recordHeader(key, ent.ID()))
			for _, f := range ser {
				s.WriteString(fieldSep)
				s.WriteString(f)
			}
			s.WriteString(entrySep)

			_, err = db.dbfile.WriteString(s.String())
			if err != nil {
				return curated.Errorf("database: %v", err)
			}
		}
	}

	// end session by closing file
	if db.dbfile != nil {
		if err := db.dbfile.Close(); err != nil {
			return curated.Errorf("database: %v", err)
		}
		db.dbfile = nil
	}

	db.entries = nil

	return nil
}

// readDBFile deserialises every entry in the database file. previously read
// entries are forgotten.
func (db *Session) readDBFile() error {
	db.entries = make(map[int]Entry, maxEntries)

	// rewind file
	_, err := db.dbfile.Seek(0, io.SeekStart)
	if err != nil {
		return curated.Errorf("database: %v", err)
	}

	scanner := bufio.NewScanner(db.dbfile)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}

		fields := strings.Split(line, fieldSep)
		if len(fields) < numLeaderFields {
			return curated.Errorf("database: malformed entry (%s)", line)
		}

		key, err := strconv.Atoi(fields[leaderFieldKey])
		if err != nil {
			return curated.Errorf("database: invalid key (%s)", fields[leaderFieldKey])
		}

		if _, ok := db.entries[key]; ok {
			return curated.Errorf("database: duplicate key (%03d)", key)
		}

		des, ok := db.entryTypes[fields[leaderFieldID]]
		if !ok {
			return curated.Errorf("database: unrecognised entry type (%s)", fields[leaderFieldID])
		}

		ent, err := des(fields[numLeaderFields:])
		if err != nil {
			return err
		}

		db.entries[key] = ent
	}

	if err := scanner.Err(); err != nil {
		return curated.Errorf("database: %v", err)
	}

	return nil
}
