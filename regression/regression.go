// This file is part of Gophervaders.
//
// Gophervaders is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gophervaders is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gophervaders.  If not, see <https://www.gnu.org/licenses/>.

package regression

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/crtfrenzy/gophervaders/curated"
	"github.com/crtfrenzy/gophervaders/database"
	"github.com/crtfrenzy/gophervaders/resources"
	"github.com/crtfrenzy/gophervaders/ui"
)

// the location of the regression database and the scripts it refers to,
// relative to the resources base path.
const (
	regressionPath    = "regression"
	regressionDBFile  = "db"
	regressionScripts = "scripts"
)

// Regressor is the generic entry in the regression database.
type Regressor interface {
	database.Entry

	// perform the regression test for the regression type. the
	// newRegression flag causes the test to store its result, to be
	// compared against by future runs.
	//
	// message is the string to print while the test is running. the
	// returned string gives detail about a failure and is empty otherwise
	regress(newRegression bool, output io.Writer, message string) (bool, string, error)
}

// when starting a database session we need to register what entries we
// will find in the database
func initDBSession(db *database.Session) error {
	if err := db.RegisterEntryType(videoEntryID, deserialiseVideoEntry); err != nil {
		return err
	}

	if err := db.RegisterEntryType(playbackEntryID, deserialisePlaybackEntry); err != nil {
		return err
	}

	return nil
}

func dbPath() (string, error) {
	return resources.JoinPath(regressionPath, regressionDBFile)
}

// RegressList displays all entries in the regression database.
func RegressList(output io.Writer) error {
	if output == nil {
		return curated.Errorf("regression: output should not be nil")
	}

	p, err := dbPath()
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}

	db, err := database.StartSession(p, database.ActivityReading, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(false)

	return db.List(output)
}

// RegressDelete removes an entry from the regression database. The
// confirmation reader is consulted before anything is deleted; any answer
// not beginning with 'y' or 'Y' cancels.
func RegressDelete(output io.Writer, confirmation io.Reader, key string) error {
	if output == nil {
		return curated.Errorf("regression: output should not be nil")
	}

	v, err := strconv.Atoi(key)
	if err != nil {
		return curated.Errorf("regression: invalid key [%s]", key)
	}

	p, err := dbPath()
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}

	db, err := database.StartSession(p, database.ActivityModifying, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(true)

	ent, err := db.SelectKeys(nil, v)
	if err != nil {
		return err
	}

	output.Write([]byte(fmt.Sprintf("%s\ndelete? (y/n): ", ent)))

	confirm := make([]byte, 32)
	_, err = confirmation.Read(confirm)
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}

	if confirm[0] == 'y' || confirm[0] == 'Y' {
		err = db.Delete(v)
		if err != nil {
			return err
		}
		output.Write([]byte(fmt.Sprintf("deleted test #%s from regression database\n", key)))
	}

	return nil
}

// RegressAdd adds a new entry to the regression database. Before the entry
// is stored, the test is run once to gather the result that future runs
// will be compared against.
func RegressAdd(output io.Writer, reg Regressor) error {
	if output == nil {
		return curated.Errorf("regression: output should not be nil")
	}

	p, err := dbPath()
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}

	db, err := database.StartSession(p, database.ActivityCreating, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(true)

	msg := fmt.Sprintf("adding: %s", reg)
	ok, _, err := reg.regress(true, output, msg)
	if !ok || err != nil {
		return err
	}

	output.Write([]byte(ui.AnsiClearLine))
	output.Write([]byte(fmt.Sprintf("\radded: %s\n", reg)))

	return db.Add(reg)
}

// RegressRun runs the specified regression tests. An empty keys list means
// that every entry in the database should be run.
func RegressRun(output io.Writer, verbose bool, keys []string) error {
	if output == nil {
		return curated.Errorf("regression: output should not be nil")
	}

	p, err := dbPath()
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}

	db, err := database.StartSession(p, database.ActivityReading, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(false)

	// convert list of keys to sorted integers
	keysV := make([]int, 0, len(keys))
	for k := range keys {
		v, err := strconv.Atoi(keys[k])
		if err != nil {
			return curated.Errorf("regression: invalid key [%s]", keys[k])
		}
		keysV = append(keysV, v)
	}
	sort.Ints(keysV)

	numSucceed := 0
	numFail := 0
	numError := 0

	defer func() {
		output.Write([]byte(fmt.Sprintf("regression tests: %d succeed, %d fail", numSucceed, numFail)))
		if numError > 0 {
			output.Write([]byte(" [with errors]"))
		}
		output.Write([]byte("\n"))
	}()

	onSelect := func(ent database.Entry) error {
		// database entry should also satisfy the Regressor interface
		reg, ok := ent.(Regressor)
		if !ok {
			return curated.Errorf("regression: database entry does not satisfy the Regressor interface")
		}

		// run regress() function with message. message does not have a
		// trailing newline
		msg := fmt.Sprintf("running: %s", reg)
		ok, failm, err := reg.regress(false, output, msg)

		// once regress() has completed, clear the line ready for the
		// completion message
		output.Write([]byte(ui.AnsiClearLine))

		if err != nil {
			numError++
			output.Write([]byte(fmt.Sprintf("\r  error: %s\n", reg)))
			if verbose {
				output.Write([]byte(fmt.Sprintf("%s\n", err)))
			}
		} else if !ok {
			numFail++
			output.Write([]byte(fmt.Sprintf("\rfailure: %s\n", reg)))
			if verbose && failm != "" {
				output.Write([]byte(fmt.Sprintf("%s\n", failm)))
			}
		} else {
			numSucceed++
			output.Write([]byte(fmt.Sprintf("\rsucceed: %s\n", reg)))
		}

		return nil
	}

	if len(keysV) > 0 {
		_, err = db.SelectKeys(onSelect, keysV...)
	} else {
		_, err = db.SelectAll(onSelect)
	}

	return err
}
