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

package trace_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/sram4/hardware"
	"github.com/jetsetilly/sram4/harness"
	"github.com/jetsetilly/sram4/test"
	"github.com/jetsetilly/sram4/trace"
)

func TestVCDHeader(t *testing.T) {
	w := &strings.Builder{}

	tile := hardware.NewTile()
	tile.Attach(trace.NewVCD(w))
	test.ExpectedSuccess(t, tile.RunForCycles(1))

	s := w.String()
	if !strings.HasPrefix(s, "$timescale 10ns $end\n") {
		t.Error("missing timescale declaration")
	}
	for _, decl := range []string{"clk", "rst_n", "ena", "ui_in", "uo_out", "uio_in", "uio_out", "uio_oe"} {
		if !strings.Contains(s, " "+decl+" $end") {
			t.Errorf("missing declaration for %s", decl)
		}
	}
	if !strings.Contains(s, "$enddefinitions $end\n") {
		t.Error("missing enddefinitions")
	}
	if !strings.Contains(s, "$dumpvars\n") {
		t.Error("missing dumpvars block")
	}
}

func TestVCDClockChanges(t *testing.T) {
	w := &strings.Builder{}

	tile := hardware.NewTile()
	tile.Attach(trace.NewVCD(w))
	test.ExpectedSuccess(t, tile.RunForCycles(3))

	// the clock toggles every phase after the initial dump
	test.Equate(t, strings.Count(w.String(), "1!"), 3)
	test.Equate(t, strings.Count(w.String(), "0!"), 3)
}

func TestVCDVerifyRun(t *testing.T) {
	w := &strings.Builder{}

	tile := hardware.NewTile()
	tile.Attach(trace.NewVCD(w))
	test.ExpectedSuccess(t, harness.Verify(nil, tile, nil))

	// the written patterns appear as input port vector changes. 0x2a is
	// enable high, read_not_write low, data 0xa
	if !strings.Contains(w.String(), "b101010 $\n") {
		t.Error("expected input port change for first write pulse")
	}
}
