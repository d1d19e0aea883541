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

package regression_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/sram4/regression"
	"github.com/jetsetilly/sram4/test"
)

func useTempDB(t *testing.T) {
	t.Helper()
	oldPath := regression.DBPath
	regression.DBPath = filepath.Join(t.TempDir(), "regressionDB")
	t.Cleanup(func() { regression.DBPath = oldPath })
}

func TestAddAndRun(t *testing.T) {
	useTempDB(t)
	tw := &test.CompareWriter{}

	reg := regression.NewHarnessRegression(nil, "default patterns")
	test.ExpectedSuccess(t, regression.RegressAdd(tw, reg))

	// the simulation is deterministic so a re-run succeeds
	tw.Clear()
	test.ExpectedSuccess(t, regression.RegressRunTests(tw, false, false, nil))
	if !strings.Contains(tw.String(), "1 succeed, 0 fail") {
		t.Errorf("unexpected regression summary: %s", tw.String())
	}
}

func TestList(t *testing.T) {
	useTempDB(t)
	tw := &test.CompareWriter{}

	reg := regression.NewHarnessRegression([]uint8{0x0a, 0x05}, "short run")
	test.ExpectedSuccess(t, regression.RegressAdd(tw, reg))

	tw.Clear()
	test.ExpectedSuccess(t, regression.RegressList(tw))
	if !strings.Contains(tw.String(), "[harness] a5 [short run]") {
		t.Errorf("unexpected list output: %s", tw.String())
	}
}

func TestDelete(t *testing.T) {
	useTempDB(t)
	tw := &test.CompareWriter{}

	reg := regression.NewHarnessRegression(nil, "")
	test.ExpectedSuccess(t, regression.RegressAdd(tw, reg))

	// confirmation reader says yes
	tw.Clear()
	test.ExpectedSuccess(t, regression.RegressDelete(tw, strings.NewReader("y\n"), "0"))

	tw.Clear()
	test.ExpectedSuccess(t, regression.RegressList(tw))
	if !strings.Contains(tw.String(), "database is empty") {
		t.Errorf("expected empty database, got: %s", tw.String())
	}
}

func TestKeyFilter(t *testing.T) {
	useTempDB(t)
	tw := &test.CompareWriter{}

	test.ExpectedSuccess(t, regression.RegressAdd(tw, regression.NewHarnessRegression([]uint8{0x01}, "")))
	test.ExpectedSuccess(t, regression.RegressAdd(tw, regression.NewHarnessRegression([]uint8{0x02}, "")))

	tw.Clear()
	test.ExpectedSuccess(t, regression.RegressRunTests(tw, false, false, []string{"1"}))
	if !strings.Contains(tw.String(), "1 succeed, 0 fail, 1 skipped") {
		t.Errorf("unexpected regression summary: %s", tw.String())
	}
}
