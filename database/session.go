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

package database

import (
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/sram4/curated"
)

// Activity describes the type of activity a session has been started for.
type Activity int

// List of valid Activity values.
const (
	// reading: the database file must exist
	ActivityReading Activity = iota

	// modifying: the database file must exist and changes will be written
	ActivityModifying

	// creating: the database file is created if it does not exist
	ActivityCreating
)

// Session is the connection between the database file and the entries
// currently in memory.
type Session struct {
	path     string
	activity Activity

	entries    map[int]Entry
	entryTypes map[string]deserialiser
}

// StartSession loads the database at the specified path. The init function
// is called before any entries are read; entry types should be registered
// there.
func StartSession(path string, activity Activity, init func(*Session) error) (*Session, error) {
	db := &Session{
		path:       path,
		activity:   activity,
		entries:    make(map[int]Entry),
		entryTypes: make(map[string]deserialiser),
	}

	if init != nil {
		if err := init(db); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && activity == ActivityCreating {
			return db, nil
		}
		return nil, curated.Errorf("database: %v", err)
	}

	for _, line := range strings.Split(string(data), entrySep) {
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, fieldSep)
		if len(fields) < numLeaderFields {
			return nil, curated.Errorf("database: malformed entry [%s]", line)
		}

		key, err := strconv.Atoi(fields[leaderFieldKey])
		if err != nil {
			return nil, curated.Errorf("database: invalid key [%s]", fields[leaderFieldKey])
		}

		des, ok := db.entryTypes[fields[leaderFieldID]]
		if !ok {
			return nil, curated.Errorf("database: unrecognised entry type [%s]", fields[leaderFieldID])
		}

		ent, err := des(fields[numLeaderFields:])
		if err != nil {
			return nil, curated.Errorf("database: %v", err)
		}

		db.entries[key] = ent
	}

	return db, nil
}

// EndSession closes the database, writing changes back to disk if commit is
// true. The session is no longer usable afterwards.
func (db *Session) EndSession(commit bool) error {
	if commit {
		if db.activity == ActivityReading {
			return curated.Errorf("database: cannot commit to a read-only session")
		}

		s := strings.Builder{}
		for _, key := range db.SortedKeyList() {
			ent := db.entries[key]

			ser, err := ent.Serialise()
			if err != nil {
				return curated.Errorf("database: %v", err)
			}

			s.WriteString(recordHeader(key, ent.ID()))
			for _, f := range ser {
				s.WriteString(fieldSep)
				s.WriteString(f)
			}
			s.WriteString(entrySep)
		}

		if err := os.WriteFile(db.path, []byte(s.String()), 0644); err != nil {
			return curated.Errorf("database: %v", err)
		}
	}

	db.entries = nil
	db.entryTypes = nil

	return nil
}
