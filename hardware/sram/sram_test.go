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

package sram_test

import (
	"testing"

	"github.com/jetsetilly/sram4/hardware/sram"
	"github.com/jetsetilly/sram4/test"
)

func TestWriteReadBack(t *testing.T) {
	sr := sram.NewSRAM()
	sr.Reset()

	// for all 4 bit values: write then read back with no intervening write
	// yields the written value
	for v := uint8(0); v <= 0x0f; v++ {
		// write edge
		sr.Step(true, false, v)
		test.Equate(t, sr.Ready, false)

		// deselect edge
		sr.Step(false, false, 0)

		// read edges. one cycle of latency before ready
		sr.Step(true, true, 0)
		test.Equate(t, sr.Ready, false)
		sr.Step(true, true, 0)
		test.Equate(t, sr.Ready, true)
		test.Equate(t, sr.DataOut, v)

		// ready holds for as long as the read is in progress
		sr.Step(true, true, 0)
		test.Equate(t, sr.Ready, true)
		test.Equate(t, sr.DataOut, v)

		// ready falls on deselect
		sr.Step(false, false, 0)
		test.Equate(t, sr.Ready, false)
	}
}

func TestDataInMasked(t *testing.T) {
	sr := sram.NewSRAM()
	sr.Reset()

	// only the low four bits of the data field are stored
	sr.Step(true, false, 0xfa)
	sr.Step(false, false, 0)
	sr.Step(true, true, 0)
	sr.Step(true, true, 0)
	test.Equate(t, sr.DataOut, 0x0a)
}

func TestReset(t *testing.T) {
	sr := sram.NewSRAM()
	sr.Reset()

	sr.Step(true, false, 0x09)
	sr.Step(true, true, 0)
	sr.Step(true, true, 0)
	test.Equate(t, sr.DataOut, 0x09)
	test.Equate(t, sr.Ready, true)

	// reset clears the word, the output register and the ready flag
	sr.Reset()
	test.Equate(t, sr.DataOut, 0)
	test.Equate(t, sr.Ready, false)
	test.Equate(t, sr.Peek(), 0)
}

func TestStuckBit(t *testing.T) {
	sr := sram.NewSRAM()
	sr.Reset()
	sr.StuckHigh = 0x04

	sr.Step(true, false, 0x01)
	sr.Step(false, false, 0)
	sr.Step(true, true, 0)
	sr.Step(true, true, 0)

	// bit 2 reads back high regardless of what was written
	test.Equate(t, sr.DataOut, 0x05)
}

func TestPeekPoke(t *testing.T) {
	sr := sram.NewSRAM()
	sr.Reset()

	sr.Poke(0x0f)
	test.Equate(t, sr.Peek(), 0x0f)

	// poke does not disturb the read state machine
	test.Equate(t, sr.Ready, false)
	test.Equate(t, sr.DataOut, 0)
}
