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

package hardware_test

import (
	"testing"

	"github.com/jetsetilly/sram4/hardware"
	"github.com/jetsetilly/sram4/hardware/pins"
	"github.com/jetsetilly/sram4/test"
)

func TestResetSequence(t *testing.T) {
	tile := hardware.NewTile()

	err := tile.Reset()
	test.ExpectedSuccess(t, err)

	// reset holds rst_n low for five edges and then settles for two
	test.Equate(t, int(tile.Cycles()), hardware.ResetCycles+hardware.SettleCycles)

	dataOut, ready := tile.SampleOutputs()
	test.Equate(t, dataOut, 0)
	test.Equate(t, ready, false)
}

func TestWriteReadBackThroughPins(t *testing.T) {
	tile := hardware.NewTile()
	test.ExpectedSuccess(t, tile.Reset())

	// the original verification timings: two cycle write pulse, one cycle
	// deselect, three cycle read window
	tile.SetControl(true, false, 0x0a)
	test.ExpectedSuccess(t, tile.RunForCycles(2))

	tile.SetControl(false, false, 0)
	test.ExpectedSuccess(t, tile.RunForCycles(1))

	tile.SetControl(true, true, 0)
	test.ExpectedSuccess(t, tile.RunForCycles(3))

	dataOut, ready := tile.SampleOutputs()
	test.Equate(t, dataOut, 0x0a)
	test.Equate(t, ready, true)

	// upper bits of the output port are always zero
	test.Equate(t, tile.Pins.Output&^(pins.MaskDataOut|pins.BitReady), 0)
}

// countingMonitor counts phase ticks and remembers the last pin state.
type countingMonitor struct {
	ticks int
	last  pins.Ports
}

func (m *countingMonitor) Tick(_ uint64, p pins.Ports) error {
	m.ticks++
	m.last = p
	return nil
}

func TestMonitorTicks(t *testing.T) {
	tile := hardware.NewTile()
	m := &countingMonitor{}
	tile.Attach(m)

	test.ExpectedSuccess(t, tile.RunForCycles(3))

	// two phases per clock cycle
	test.Equate(t, m.ticks, 6)

	// the last notification of a cycle is the high phase
	test.Equate(t, m.last.Clk, true)
}

func TestRunContinueCheck(t *testing.T) {
	tile := hardware.NewTile()

	n := 0
	err := tile.Run(func() (bool, error) {
		n++
		return n < 10, nil
	})
	test.ExpectedSuccess(t, err)
	test.Equate(t, n, 10)
	test.Equate(t, int(tile.Cycles()), 10)
}
