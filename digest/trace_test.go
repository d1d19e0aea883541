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

package digest_test

import (
	"testing"

	"github.com/jetsetilly/sram4/digest"
	"github.com/jetsetilly/sram4/hardware"
	"github.com/jetsetilly/sram4/harness"
	"github.com/jetsetilly/sram4/test"
)

func run(t *testing.T, patterns []uint8) string {
	t.Helper()

	tile := hardware.NewTile()
	tr := digest.NewTrace()
	tile.Attach(tr)

	err := harness.Verify(nil, tile, patterns)
	test.ExpectedSuccess(t, err)

	return tr.Hash()
}

func TestTraceReproducible(t *testing.T) {
	// identical runs produce identical fingerprints
	a := run(t, nil)
	b := run(t, nil)
	test.Equate(t, a, b)
}

func TestTraceSensitive(t *testing.T) {
	// a different pattern list produces a different fingerprint
	a := run(t, nil)
	b := run(t, []uint8{0x01, 0x02})
	if a == b {
		t.Error("fingerprints unexpectedly equal for different runs")
	}
}

func TestResetDigest(t *testing.T) {
	tr := digest.NewTrace()
	zero := tr.Hash()

	tile := hardware.NewTile()
	tile.Attach(tr)
	test.ExpectedSuccess(t, tile.RunForCycles(5))

	if tr.Hash() == zero {
		t.Error("fingerprint did not change during run")
	}

	tr.ResetDigest()
	test.Equate(t, tr.Hash(), zero)
}
