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

package harness_test

import (
	"testing"

	"github.com/jetsetilly/sram4/curated"
	"github.com/jetsetilly/sram4/hardware"
	"github.com/jetsetilly/sram4/harness"
	"github.com/jetsetilly/sram4/test"
)

func TestVerifyDefaultPatterns(t *testing.T) {
	tile := hardware.NewTile()
	tw := &test.CompareWriter{}

	err := harness.Verify(tw, tile, nil)
	test.ExpectedSuccess(t, err)
	test.Equate(t, tw.String(), "ok (5 patterns)\n")
}

func TestVerifyAllValues(t *testing.T) {
	tile := hardware.NewTile()

	// every 4 bit value in sequence
	patterns := make([]uint8, 16)
	for i := range patterns {
		patterns[i] = uint8(i)
	}

	err := harness.Verify(nil, tile, patterns)
	test.ExpectedSuccess(t, err)
}

func TestVerifyEmptyPatternList(t *testing.T) {
	tile := hardware.NewTile()

	// an empty (but non-nil) list verifies nothing and succeeds
	err := harness.Verify(nil, tile, []uint8{})
	test.ExpectedSuccess(t, err)
}

func TestVerifyMismatch(t *testing.T) {
	tile := hardware.NewTile()

	// inject a stuck-at-one fault so read-back cannot match
	tile.Core.StuckHigh = 0x01

	err := harness.Verify(nil, tile, []uint8{0x0a})
	test.ExpectedFailure(t, err)

	if !curated.Is(err, harness.MismatchError) {
		t.Errorf("expected mismatch error, got: %v", err)
	}
}

func TestVerifyMismatchAbortsImmediately(t *testing.T) {
	tile := hardware.NewTile()
	tile.Core.StuckHigh = 0x01

	// the pattern 0x0b would survive the stuck bit but the run never gets
	// there; the first mismatch ends the run
	err := harness.Verify(nil, tile, []uint8{0x0a, 0x0b})
	test.ExpectedFailure(t, err)
	if !curated.Is(err, harness.MismatchError) {
		t.Errorf("expected mismatch error, got: %v", err)
	}
}

// noReadyDevice wraps a tile but never raises the ready flag.
type noReadyDevice struct {
	*hardware.Tile
}

func (d *noReadyDevice) SampleOutputs() (uint8, bool) {
	dataOut, _ := d.Tile.SampleOutputs()
	return dataOut, false
}

func TestVerifyReadyRequired(t *testing.T) {
	dev := &noReadyDevice{Tile: hardware.NewTile()}

	err := harness.Verify(nil, dev, []uint8{0x0a})
	test.ExpectedFailure(t, err)
	if curated.Is(err, harness.MismatchError) {
		t.Errorf("expected a ready error, not a mismatch: %v", err)
	}
}
