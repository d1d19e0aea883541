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

package sram

import (
	"fmt"
)

// Width is the number of bits in the storage word.
const Width = 4

// mask applied to every value entering or leaving the storage word.
const mask = (1 << Width) - 1

// SRAM implements the storage core of the tile: a single 4 bit word behind
// an enable/read_not_write control pair. There are no address pins; the
// original silicon stores exactly one word.
//
// All state changes happen in the Step() function, which represents one
// rising edge of the clock. The following rules apply:
//
//   - enable high, read_not_write low: data_in is latched into the word
//   - enable high, read_not_write high: the word is copied to the DataOut
//     register. Ready is raised on the *next* rising edge, giving the core
//     one cycle of read latency
//   - enable low: DataOut holds its value and Ready falls
type SRAM struct {
	// the storage word. retained as long as the simulation is running and
	// the word is not overwritten or reset
	cell uint8

	// DataOut is the registered read value, as presented on the output port.
	DataOut uint8

	// Ready indicates that DataOut is valid for the read in progress.
	Ready bool

	// a read was serviced on the previous rising edge. Ready is raised one
	// edge later
	readLatch bool

	// StuckHigh is a fault injection mask. Bits set here read back as one
	// regardless of the stored value. Zero for a healthy core.
	StuckHigh uint8
}

// NewSRAM is the preferred method of initialisation for the SRAM type.
func NewSRAM() *SRAM {
	return &SRAM{}
}

func (sr SRAM) String() string {
	return fmt.Sprintf("cell=%01x out=%01x rdy=%v", sr.cell, sr.DataOut, sr.Ready)
}

// Reset the core. Equivalent to a rising edge with rst_n held low.
func (sr *SRAM) Reset() {
	sr.cell = 0
	sr.DataOut = 0
	sr.Ready = false
	sr.readLatch = false
}

// Step the core over one rising edge of the clock, with the given control
// field values.
func (sr *SRAM) Step(enable bool, readNotWrite bool, dataIn uint8) {
	if !enable {
		// DataOut deliberately holds its last value. only the ready flag
		// reacts to the core being deselected
		sr.Ready = false
		sr.readLatch = false
		return
	}

	if readNotWrite {
		sr.Ready = sr.readLatch
		sr.DataOut = (sr.cell | sr.StuckHigh) & mask
		sr.readLatch = true
	} else {
		sr.cell = dataIn & mask
		sr.Ready = false
		sr.readLatch = false
	}
}

// Peek returns the content of the storage word without touching the access
// state machine. For use by the debugger.
func (sr SRAM) Peek() uint8 {
	return (sr.cell | sr.StuckHigh) & mask
}

// Poke sets the content of the storage word without touching the access
// state machine. For use by the debugger.
func (sr *SRAM) Poke(value uint8) {
	sr.cell = value & mask
}
