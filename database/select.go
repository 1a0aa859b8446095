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

import "github.com/julienr/chippy8/curated"

// SelectAll entries in the database. onSelect can be nil.
//
// Selection is stopped if onSelect() returns an error.
//
// Returns last matched entry in selection or an error with the last entry
// matched before the error occurred.
func (db Session) SelectAll(onSelect func(Entry) error) (Entry, error) {
	var entry Entry

	if onSelect == nil {
		onSelect = func(_ Entry) error { return nil }
	}

	keyList := db.SortedKeyList()

	for k := range keyList {
		entry = db.entries[keyList[k]]
		err := onSelect(entry)
		if err != nil {
			return entry, err
		}
	}

	return entry, nil
}

// SelectKeys matches entries with the specified key(s). keys can be singular.
// if list of keys is empty then all keys are matched (SelectAll() maybe more
// appropriate in that case). onSelect can be nil.
//
// Selection is stopped if onSelect() returns an error.
//
// Returns last matched entry in selection or an error with the last entry
// matched before the error occurred.
func (db Session) SelectKeys(onSelect func(Entry) error, keys ...int) (Entry, error) {
	var entry Entry

	if onSelect == nil {
		onSelect = func(_ Entry) error { return nil }
	}

	keyList := keys
	if len(keys) == 0 {
		keyList = db.SortedKeyList()
	}

	for i := range keyList {
		k := keyList[i]
		ent, ok := db.entries[k]
		if !ok {
			return entry, curated.Errorf("database: key not available (%03d)", k)
		}

		entry = ent
		err := onSelect(entry)
		if err != nil {
			return entry, err
		}
	}

	if entry == nil {
		return nil, curated.Errorf("database: select empty")
	}

	return entry, nil
}
