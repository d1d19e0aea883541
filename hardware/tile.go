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

import (
	"github.com/jetsetilly/sram4/hardware/pins"
	"github.com/jetsetilly/sram4/hardware/sram"
)

// number of rising edges rst_n is held low during a Reset(), and the number
// of settling cycles after release. the values used by the original
// verification flow.
const (
	ResetCycles  = 5
	SettleCycles = 2
)

// Monitor implementations observe the pin state of the tile. Tick() is
// called twice per clock cycle, once for each phase of the clock; the Clk
// field of the Ports argument identifies the phase. The cycle argument
// counts rising edges.
//
// Monitor implementations often find it convenient to maintain a reference
// to the parent Tile. For example digest.Trace.
type Monitor interface {
	Tick(cycle uint64, p pins.Ports) error
}

// Tile is the main container for the simulated components of the SRAM tile.
// It is used for all aspects of the simulation: verification, debugging and
// performance measurement.
type Tile struct {
	Pins *pins.Ports
	Core *sram.SRAM

	// number of rising edges since power-on
	cycle uint64

	monitors []Monitor
}

// NewTile creates a new Tile and everything associated with the hardware.
func NewTile() *Tile {
	t := &Tile{
		Pins: &pins.Ports{},
		Core: sram.NewSRAM(),
	}

	// power-on pin state. ena is driven high for the duration of the
	// simulation and rst_n is released; a Reset() gives the deliberate
	// reset sequence
	t.Pins.Ena = true
	t.Pins.RstN = true

	return t
}

// Attach a monitor to the tile. Monitors are notified in the order they
// were attached.
func (t *Tile) Attach(m Monitor) {
	t.monitors = append(t.monitors, m)
}

// Cycles returns the number of rising clock edges since power-on.
func (t *Tile) Cycles() uint64 {
	return t.cycle
}

// SetControl drives the control fields of the input port. The new values
// take effect at the next rising edge.
func (t *Tile) SetControl(enable bool, readNotWrite bool, dataIn uint8) {
	t.Pins.SetControl(enable, readNotWrite, dataIn)
}

// SampleOutputs returns the data_out and ready fields as currently presented
// on the output port.
func (t *Tile) SampleOutputs() (dataOut uint8, ready bool) {
	return t.Pins.Outputs()
}

// Reset emulates the power-on reset sequence: rst_n is held low for
// ResetCycles rising edges, then released, with SettleCycles further cycles
// before the tile is considered usable.
func (t *Tile) Reset() error {
	t.Pins.RstN = false
	t.Pins.SetControl(false, false, 0)
	t.Pins.BidirIn = 0

	for i := 0; i < ResetCycles; i++ {
		if err := t.Step(); err != nil {
			return err
		}
	}

	t.Pins.RstN = true
	for i := 0; i < SettleCycles; i++ {
		if err := t.Step(); err != nil {
			return err
		}
	}

	return nil
}
