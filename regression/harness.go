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
	"strconv"
	"strings"

	"github.com/jetsetilly/sram4/curated"
	"github.com/jetsetilly/sram4/database"
	"github.com/jetsetilly/sram4/digest"
	"github.com/jetsetilly/sram4/hardware"
	"github.com/jetsetilly/sram4/harness"
)

const harnessEntryID = "harness"

const (
	harnessFieldPatterns int = iota
	harnessFieldNotes
	harnessFieldDigest
	numHarnessFields
)

// HarnessRegression runs the verification harness with a recorded pattern
// list and compares the fingerprint of the resulting pin trace with the
// fingerprint recorded when the entry was added.
type HarnessRegression struct {
	Patterns []uint8
	Notes    string
	digest   string
}

// NewHarnessRegression is the preferred method of initialisation for the
// HarnessRegression type. A nil patterns list means the harness default.
func NewHarnessRegression(patterns []uint8, notes string) *HarnessRegression {
	reg := &HarnessRegression{Notes: notes}
	if patterns == nil {
		patterns = harness.TestPatterns
	}
	reg.Patterns = make([]uint8, len(patterns))
	copy(reg.Patterns, patterns)
	return reg
}

func deserialiseHarnessEntry(fields database.SerialisedEntry) (database.Entry, error) {
	if len(fields) != numHarnessFields {
		return nil, curated.Errorf("harness: wrong number of fields in database entry")
	}

	reg := &HarnessRegression{
		Notes:  fields[harnessFieldNotes],
		digest: fields[harnessFieldDigest],
	}

	for _, c := range fields[harnessFieldPatterns] {
		v, err := strconv.ParseUint(string(c), 16, 8)
		if err != nil {
			return nil, curated.Errorf("harness: invalid pattern field [%s]", fields[harnessFieldPatterns])
		}
		reg.Patterns = append(reg.Patterns, uint8(v))
	}

	return reg, nil
}

// ID implements the database.Entry interface.
func (reg HarnessRegression) ID() string {
	return harnessEntryID
}

// String implements the database.Entry interface.
func (reg HarnessRegression) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("[%s] %s", reg.ID(), reg.patternField()))
	if reg.Notes != "" {
		s.WriteString(fmt.Sprintf(" [%s]", reg.Notes))
	}
	return s.String()
}

// Serialise implements the database.Entry interface.
func (reg *HarnessRegression) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{
		reg.patternField(),
		reg.Notes,
		reg.digest,
	}, nil
}

// CleanUp implements the database.Entry interface.
func (reg HarnessRegression) CleanUp() error {
	return nil
}

func (reg HarnessRegression) patternField() string {
	s := strings.Builder{}
	for _, p := range reg.Patterns {
		s.WriteString(fmt.Sprintf("%01x", p&0x0f))
	}
	return s.String()
}

// regress implements the Regressor interface.
func (reg *HarnessRegression) regress(newRegression bool, output io.Writer, message string) (bool, error) {
	output.Write([]byte(message))

	tile := hardware.NewTile()
	trace := digest.NewTrace()
	tile.Attach(trace)

	if err := harness.Verify(io.Discard, tile, reg.Patterns); err != nil {
		// a verification failure is a test failure, not an error
		if curated.IsAny(err) {
			return false, nil
		}
		return false, curated.Errorf("harness: %v", err)
	}

	if newRegression {
		reg.digest = trace.Hash()
		return true, nil
	}

	return trace.Hash() == reg.digest, nil
}
