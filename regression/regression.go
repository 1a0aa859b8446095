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
	"sort"
	"strconv"

	"github.com/julienr/chippy8/curated"
	"github.com/julienr/chippy8/database"
	"github.com/julienr/chippy8/debugger/terminal/colorterm/easyterm/ansi"
	"github.com/julienr/chippy8/resources"
)

// the location of the regression database and the playback scripts it
// refers to, relative to the resources path.
const regressionPath = "regression"
const regressionDBFile = "db"
const regressionScripts = "scripts"

// Regressor is the generic entry type in the regression database.
type Regressor interface {
	database.Entry

	// perform the regression test for the regression type. the
	// newRegression flag is true if the test is being run as part of a
	// RegressAdd() operation.
	//
	// message is the string to be printed during the regression. it
	// should not be terminated with a newline
	regress(newRegression bool, output io.Writer, message string) (bool, error)
}

// when starting a database session we need to register what entries we
// will find in the database.
func initDBSession(db *database.Session) error {
	if err := db.RegisterEntryType(digestEntryType, deserialiseDigestEntry); err != nil {
		return err
	}

	if err := db.RegisterEntryType(playbackEntryType, deserialisePlaybackEntry); err != nil {
		return err
	}

	// make sure regression scripts directory exists
	scrPth, err := resources.JoinPath(regressionPath, regressionScripts)
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}

	if err := os.MkdirAll(scrPth, 0755); err != nil {
		return curated.Errorf("regression: %v", err)
	}

	return nil
}

// RegressList displays all entries in the database.
func RegressList(output io.Writer) error {
	if output == nil {
		return curated.Errorf("regression: %v", "io.Writer should not be nil")
	}

	dbPth, err := resources.JoinPath(regressionPath, regressionDBFile)
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}

	db, err := database.StartSession(dbPth, database.ActivityReading, initDBSession)
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}
	defer db.EndSession(false)

	return db.List(output)
}

// RegressAdd adds a new regression entry to the database. the regression
// is run once, with no comparison at the end, to record the digest that
// future runs will be compared against.
func RegressAdd(output io.Writer, reg Regressor) error {
	if output == nil {
		return curated.Errorf("regression: %v", "io.Writer should not be nil")
	}

	dbPth, err := resources.JoinPath(regressionPath, regressionDBFile)
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}

	db, err := database.StartSession(dbPth, database.ActivityCreating, initDBSession)
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}
	defer db.EndSession(true)

	msg := fmt.Sprintf("adding: %s", reg)
	if _, err := reg.regress(true, output, msg); err != nil {
		return curated.Errorf("regression: %v", err)
	}

	output.Write([]byte(ansi.ClearLine))
	output.Write([]byte(fmt.Sprintf("\radded: %s\n", reg)))

	return db.Add(reg)
}

// RegressDelete removes an entry from the database. a confirmation is
// sought from the confirmation io.Reader before anything is touched.
func RegressDelete(output io.Writer, confirmation io.Reader, key string) error {
	if output == nil {
		return curated.Errorf("regression: %v", "io.Writer should not be nil")
	}

	v, err := strconv.Atoi(key)
	if err != nil {
		return curated.Errorf("regression: invalid key (%s)", key)
	}

	dbPth, err := resources.JoinPath(regressionPath, regressionDBFile)
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}

	db, err := database.StartSession(dbPth, database.ActivityModifying, initDBSession)
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}
	defer db.EndSession(true)

	ent, err := db.SelectKeys(nil, v)
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}

	output.Write([]byte(fmt.Sprintf("%s\ndelete? (y/n): ", ent)))

	confirm := make([]byte, 32)
	if _, err := confirmation.Read(confirm); err != nil {
		return curated.Errorf("regression: %v", err)
	}

	if confirm[0] == 'y' || confirm[0] == 'Y' {
		if err := db.Delete(v); err != nil {
			return curated.Errorf("regression: %v", err)
		}
		output.Write([]byte(fmt.Sprintf("deleted test #%s from regression database\n", key)))
	}

	return nil
}

// RegressRunTests runs the specified regression tests. an empty
// filterKeys list means every entry in the database will be tested.
//
// verbose causes any error message to be printed alongside the failing
// entry. failOnError stops the run at the first entry that returns an
// error (not the first entry that merely fails).
func RegressRunTests(output io.Writer, verbose bool, failOnError bool, filterKeys []string) error {
	if output == nil {
		return curated.Errorf("regression: %v", "io.Writer should not be nil")
	}

	dbPth, err := resources.JoinPath(regressionPath, regressionDBFile)
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}

	db, err := database.StartSession(dbPth, database.ActivityReading, initDBSession)
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}
	defer db.EndSession(false)

	// convert the list of supplied keys to ints, sorted so the test run
	// proceeds in database order
	keys := make([]int, 0, len(filterKeys))
	for i := range filterKeys {
		v, err := strconv.Atoi(filterKeys[i])
		if err != nil {
			return curated.Errorf("regression: invalid key (%s)", filterKeys[i])
		}
		keys = append(keys, v)
	}
	sort.Ints(keys)

	numSucceed := 0
	numFail := 0
	numError := 0

	defer func() {
		output.Write([]byte(fmt.Sprintf("regression tests: %d succeed, %d fail", numSucceed, numFail)))
		if numError > 0 {
			output.Write([]byte(fmt.Sprintf(", %d error", numError)))
		}
		output.Write([]byte("\n"))
	}()

	// sentinel to stop the selection early without the error reaching the
	// caller
	stopRun := fmt.Errorf("stop")

	onSelect := func(ent database.Entry) error {
		// database entry should also satisfy the Regressor interface
		reg, ok := ent.(Regressor)
		if !ok {
			return curated.Errorf("regression: %v", "database entry does not satisfy Regressor interface")
		}

		msg := fmt.Sprintf("running: %s", reg)
		ok, err := reg.regress(false, output, msg)

		// clear the line ready for the completion message
		output.Write([]byte(ansi.ClearLine))

		if err != nil {
			numError++
			output.Write([]byte(fmt.Sprintf("\r  error: %s\n", reg)))
			if verbose {
				output.Write([]byte(fmt.Sprintf("%s\n", err)))
			}
			if failOnError {
				return stopRun
			}
		} else if !ok {
			numFail++
			output.Write([]byte(fmt.Sprintf("\rfailure: %s\n", reg)))
		} else {
			numSucceed++
			output.Write([]byte(fmt.Sprintf("\rsucceed: %s\n", reg)))
		}

		return nil
	}

	if len(keys) == 0 {
		_, err = db.SelectAll(onSelect)
	} else {
		_, err = db.SelectKeys(onSelect, keys...)
	}

	if err != nil && err != stopRun {
		return curated.Errorf("regression: %v", err)
	}

	return nil
}
