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

// Package prefs stores preference values to disk.
//
// A Disk instance is tied to one file. Preference values are registered
// with the Add() function, keyed with a dotted name ("quirks.shiftsource",
// for example). Save() and Load() transfer all registered values in one
// go.
//
// Several Disk instances can point to the same file. Saving merges with
// whatever is already on disk, so an instance that registers only some of
// the keys will not clobber the keys registered by another.
//
// The file format is one "key :: value" line per preference, sorted by
// key, under a single line of boilerplate.
package prefs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/julienr/chippy8/curated"
)

// WarningBoilerPlate is the first line of any file saved by this package.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// DefaultPrefsFile is the name of the preferences file used by every part
// of the application, resolved against the resources path.
const DefaultPrefsFile = "chippy8.prefs"

// the string that separates the key from the value in a prefs file.
const keySep = " :: "

// Disk represents a collection of preference values as stored on disk.
type Disk struct {
	path  string
	prefs map[string]pref
}

// sentinel errors for the prefs package.
const (
	// NoPrefsFile is returned by Load() when the file does not exist yet.
	NoPrefsFile = "prefs: no file (%s)"

	// DuplicateKey is returned by Add() when the key has already been
	// registered with this Disk instance.
	DuplicateKey = "prefs: duplicate key (%s)"
)

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	dsk := &Disk{
		path:  path,
		prefs: make(map[string]pref),
	}
	return dsk, nil
}

// Add registers a preference value with the Disk instance under the given
// key. If the key has been placed on the command line stack the value is
// applied immediately.
func (dsk *Disk) Add(key string, p pref) error {
	if _, ok := dsk.prefs[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.prefs[key] = p

	if ok, v := GetCommandLinePref(key); ok {
		return p.Set(v)
	}

	return nil
}

// String returns all the preference values registered with this Disk
// instance, one "key :: value" per line.
func (dsk Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.sortedKeys() {
		s.WriteString(fmt.Sprintf("%s%s%v\n", k, keySep, dsk.prefs[k]))
	}
	return s.String()
}

func (dsk Disk) sortedKeys() []string {
	keys := make([]string, 0, len(dsk.prefs))
	for k := range dsk.prefs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// load the entire prefs file into a map. entries belonging to other Disk
// instances are included so that a Save() does not lose them.
func (dsk Disk) loadEntries() (map[string]string, error) {
	entries := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return entries, curated.Errorf(NoPrefsFile, dsk.path)
		}
		return entries, curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		s := scanner.Text()
		if s == WarningBoilerPlate || strings.TrimSpace(s) == "" {
			continue
		}

		kv := strings.SplitN(s, keySep, 2)
		if len(kv) != 2 {
			return entries, curated.Errorf("prefs: malformed line (%s)", s)
		}
		entries[kv[0]] = kv[1]
	}

	if err := scanner.Err(); err != nil {
		return entries, curated.Errorf("prefs: %v", err)
	}

	return entries, nil
}

// Save all registered preference values to disk. Keys on disk that belong
// to other Disk instances are preserved.
func (dsk *Disk) Save() error {
	entries, err := dsk.loadEntries()
	if err != nil && !curated.Is(err, NoPrefsFile) {
		return err
	}

	// current values take precedence over whatever was on disk
	for k, p := range dsk.prefs {
		entries[k] = p.String()
	}

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	io.WriteString(f, WarningBoilerPlate+"\n")
	for _, k := range keys {
		if _, err := fmt.Fprintf(f, "%s%s%s\n", k, keySep, entries[k]); err != nil {
			return curated.Errorf("prefs: %v", err)
		}
	}

	return nil
}

// Load registered preference values from disk. A missing file is not an
// error unless saveOnMissing is false, in which case NoPrefsFile is
// returned. With saveOnMissing true, a missing file is created with the
// current values.
func (dsk *Disk) Load(saveOnMissing bool) error {
	entries, err := dsk.loadEntries()
	if err != nil {
		if curated.Is(err, NoPrefsFile) && saveOnMissing {
			return dsk.Save()
		}
		return err
	}

	for k, p := range dsk.prefs {
		if v, ok := entries[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf("prefs: %v", err)
			}
		}
	}

	return nil
}
