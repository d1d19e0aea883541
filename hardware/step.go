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

package hardware

// Step advances the simulation one full clock cycle.
//
// The cycle is modelled in two phases. In the low phase nothing in the tile
// changes; inputs driven since the previous cycle are simply visible to any
// attached monitors. At the rising edge the core reacts to the input port
// and the output port is updated from the core's registers.
//
// Monitors are notified at the end of each phase, so a waveform written from
// the monitor notifications shows both edges of the clock.
func (t *Tile) Step() error {
	// low phase
	t.Pins.Clk = false
	if err := t.tickMonitors(); err != nil {
		return err
	}

	// rising edge
	t.Pins.Clk = true
	t.cycle++

	if !t.Pins.RstN {
		t.Core.Reset()
	} else if t.Pins.Ena {
		t.Core.Step(t.Pins.Control())
	}

	// outputs are registered. they change only at the rising edge
	t.Pins.SetOutputs(t.Core.DataOut, t.Core.Ready)

	// the tile never drives the bidirectional port
	t.Pins.BidirOut = 0
	t.Pins.OutputEnable = 0

	return t.tickMonitors()
}

func (t *Tile) tickMonitors() error {
	for i := range t.monitors {
		if err := t.monitors[i].Tick(t.cycle, *t.Pins); err != nil {
			return err
		}
	}
	return nil
}
