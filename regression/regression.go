// This file is part of sram4.
//
// sram4 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// sram4 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with sram4.  If not, see <https://www.gnu.org/licenses/>.

package regression

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/jetsetilly/sram4/curated"
	"github.com/jetsetilly/sram4/database"
	"github.com/jetsetilly/sram4/debugger/terminal/colorterm/easyterm/ansi"
)

// DBPath is the location of the regression database. A variable rather than
// a constant so the test suite can point it at a temporary directory.
var DBPath = ".sram4/regressionDB"

// Regressor represents the generic entry in the regression database.
type Regressor interface {
	database.Entry

	// perform the regression test for the regression type. the newRegression
	// flag causes the test to record its result rather than compare it
	//
	// message is the string that is to be printed during the regression
	regress(newRegression bool, output io.Writer, message string) (bool, error)
}

// when starting a database session we need to register what entries we will
// find in the database.
func initDBSession(db *database.Session) error {
	if err := db.RegisterEntryType(harnessEntryID, deserialiseHarnessEntry); err != nil {
		return err
	}

	// make sure the directory holding the database exists
	if err := os.MkdirAll(filepath.Dir(DBPath), 0755); err != nil {
		return curated.Errorf("regression: %v", err)
	}

	return nil
}

// RegressList displays all entries in the database.
func RegressList(output io.Writer) error {
	if output == nil {
		return curated.Errorf("regression: io.Writer should not be nil")
	}

	db, err := database.StartSession(DBPath, database.ActivityReading, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(false)

	return db.List(output)
}

// RegressDelete removes an entry from the regression db. The confirmation
// reader is consulted before anything is deleted.
func RegressDelete(output io.Writer, confirmation io.Reader, key string) error {
	if output == nil {
		return curated.Errorf("regression: io.Writer should not be nil")
	}

	v, err := strconv.Atoi(key)
	if err != nil {
		return curated.Errorf("regression: invalid key [%s]", key)
	}

	db, err := database.StartSession(DBPath, database.ActivityModifying, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(true)

	ent, err := db.Get(v)
	if err != nil {
		return err
	}

	output.Write([]byte(fmt.Sprintf("%s\ndelete? (y/n): ", ent)))

	confirm := make([]byte, 32)
	if _, err := confirmation.Read(confirm); err != nil {
		return err
	}

	if confirm[0] == 'y' || confirm[0] == 'Y' {
		if err := db.Delete(v); err != nil {
			return err
		}
		output.Write([]byte(fmt.Sprintf("deleted test #%s from regression database\n", key)))
	}

	return nil
}

// RegressAdd adds a new regression entry to the database. The regression is
// run once to record the result that future runs will be compared against.
func RegressAdd(output io.Writer, reg Regressor) error {
	if output == nil {
		return curated.Errorf("regression: io.Writer should not be nil")
	}

	db, err := database.StartSession(DBPath, database.ActivityCreating, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(true)

	msg := fmt.Sprintf("adding: %s", reg)
	ok, err := reg.regress(true, output, msg)
	if !ok || err != nil {
		return err
	}

	output.Write([]byte(ansi.ClearLine))
	output.Write([]byte(fmt.Sprintf("\radded: %s\n", reg)))

	return db.Add(reg)
}

// RegressRunTests runs all the tests in the regression database.
//
// The filterKeys list specifies which entries to test. An empty keys list
// means that every entry should be tested.
func RegressRunTests(output io.Writer, verbose bool, failOnError bool, filterKeys []string) error {
	if output == nil {
		return curated.Errorf("regression: io.Writer should not be nil")
	}

	db, err := database.StartSession(DBPath, database.ActivityReading, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(false)

	// make sure any supplied keys list is in order
	keysV := make([]int, 0, len(filterKeys))
	for i := range filterKeys {
		v, err := strconv.Atoi(filterKeys[i])
		if err != nil {
			return curated.Errorf("regression: invalid key [%s]", filterKeys[i])
		}
		keysV = append(keysV, v)
	}
	sort.Ints(keysV)
	filterIdx := 0

	numSucceed := 0
	numFail := 0
	numError := 0
	numSkipped := 0

	defer func() {
		output.Write([]byte(fmt.Sprintf("regression tests: %d succeed, %d fail, %d skipped", numSucceed, numFail, numSkipped)))

		if numError > 0 {
			output.Write([]byte(" [with errors]"))
		}
		output.Write([]byte("\n"))
	}()

	_, err = db.SelectAll(func(key int, ent database.Entry) error {
		// if a list of keys has been supplied then check key in the database
		// against that list (both lists are sorted)
		if len(keysV) > 0 {
			if filterIdx >= len(keysV) || keysV[filterIdx] != key {
				numSkipped++
				return nil
			}
			filterIdx++
		}

		// database entry should also satisfy Regressor interface
		reg, ok := ent.(Regressor)
		if !ok {
			return curated.Errorf("regression: database entry does not satisfy Regressor interface")
		}

		// run regress() function with message. message does not have a
		// trailing newline
		msg := fmt.Sprintf("running: %s", reg)
		ok, err := reg.regress(false, output, msg)

		// once regress() has completed we clear the line ready for the
		// completion message
		output.Write([]byte(ansi.ClearLine))

		if err != nil {
			numError++
			output.Write([]byte(fmt.Sprintf("\r ERROR: %s\n", reg)))

			// output any error message on the following line
			if verbose {
				output.Write([]byte(fmt.Sprintf("%s\n", err)))
			}

			if failOnError {
				return curated.Errorf("regression: %v", err)
			}
		} else if !ok {
			numFail++
			output.Write([]byte(fmt.Sprintf("\rfailure: %s\n", reg)))
		} else {
			numSucceed++
			output.Write([]byte(fmt.Sprintf("\rsucceed: %s\n", reg)))
		}

		return nil
	})

	return err
}
