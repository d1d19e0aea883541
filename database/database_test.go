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

package database_test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/sram4/database"
	"github.com/jetsetilly/sram4/test"
)

// simpleEntry is a minimal database entry for testing.
type simpleEntry struct {
	value string
}

func deserialiseSimpleEntry(fields database.SerialisedEntry) (database.Entry, error) {
	if len(fields) != 1 {
		return nil, fmt.Errorf("wrong number of fields")
	}
	return &simpleEntry{value: fields[0]}, nil
}

func (e simpleEntry) ID() string {
	return "simple"
}

func (e simpleEntry) String() string {
	return e.value
}

func (e simpleEntry) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{e.value}, nil
}

func (e simpleEntry) CleanUp() error {
	return nil
}

func initSession(db *database.Session) error {
	return db.RegisterEntryType("simple", deserialiseSimpleEntry)
}

func TestSessionRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "testDB")

	db, err := database.StartSession(path, database.ActivityCreating, initSession)
	test.ExpectedSuccess(t, err)

	test.ExpectedSuccess(t, db.Add(&simpleEntry{value: "first"}))
	test.ExpectedSuccess(t, db.Add(&simpleEntry{value: "second"}))
	test.Equate(t, db.NumEntries(), 2)

	test.ExpectedSuccess(t, db.EndSession(true))

	// a fresh session sees the committed entries
	db, err = database.StartSession(path, database.ActivityReading, initSession)
	test.ExpectedSuccess(t, err)
	test.Equate(t, db.NumEntries(), 2)

	ent, err := db.Get(0)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ent.String(), "first")

	test.ExpectedSuccess(t, db.EndSession(false))
}

func TestReadingMissingDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noSuchDB")

	_, err := database.StartSession(path, database.ActivityReading, initSession)
	test.ExpectedFailure(t, err)
}

func TestCommitReadOnlySession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "testDB")

	db, err := database.StartSession(path, database.ActivityCreating, initSession)
	test.ExpectedSuccess(t, err)
	test.ExpectedSuccess(t, db.EndSession(true))

	db, err = database.StartSession(path, database.ActivityReading, initSession)
	test.ExpectedSuccess(t, err)
	test.ExpectedFailure(t, db.EndSession(true))
}

func TestDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "testDB")

	db, err := database.StartSession(path, database.ActivityCreating, initSession)
	test.ExpectedSuccess(t, err)

	test.ExpectedSuccess(t, db.Add(&simpleEntry{value: "first"}))
	test.ExpectedSuccess(t, db.Add(&simpleEntry{value: "second"}))

	test.ExpectedSuccess(t, db.Delete(0))
	test.Equate(t, db.NumEntries(), 1)

	// deleted keys are reused by Add()
	test.ExpectedSuccess(t, db.Add(&simpleEntry{value: "third"}))
	ent, err := db.Get(0)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ent.String(), "third")

	// deleting a missing key is an error
	test.ExpectedFailure(t, db.Delete(99))
}

func TestSelectAll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "testDB")

	db, err := database.StartSession(path, database.ActivityCreating, initSession)
	test.ExpectedSuccess(t, err)

	test.ExpectedSuccess(t, db.Add(&simpleEntry{value: "a"}))
	test.ExpectedSuccess(t, db.Add(&simpleEntry{value: "b"}))
	test.ExpectedSuccess(t, db.Add(&simpleEntry{value: "c"}))

	visited := ""
	_, err = db.SelectAll(func(_ int, ent database.Entry) error {
		visited += ent.String()
		return nil
	})
	test.ExpectedSuccess(t, err)
	test.Equate(t, visited, "abc")
}
