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

// Package harness drives the SRAM tile through its pin interface, exercising
// write-then-read-back sequences and checking data integrity. It is the Go
// expression of the verification sequence used against the original silicon.
package harness

import (
	"fmt"
	"io"

	"github.com/jetsetilly/sram4/curated"
	"github.com/jetsetilly/sram4/logger"
)

// Device is the surface of the tile the harness needs. Satisfied by
// hardware.Tile.
type Device interface {
	// Reset applies the power-on reset sequence
	Reset() error

	// Step advances the simulation one clock cycle
	Step() error

	// SetControl drives the enable/read_not_write/data_in fields of the
	// input port. Values take effect at the next rising edge
	SetControl(enable bool, readNotWrite bool, dataIn uint8)

	// SampleOutputs returns the data_out and ready fields of the output port
	SampleOutputs() (dataOut uint8, ready bool)
}

// the access timings of the verification sequence, in clock cycles. the
// values used against the original silicon: the read window is generous,
// the core needs only one cycle of latency.
const (
	writePulse = 2
	deselect   = 1
	readWindow = 3
)

// TestPatterns is the default list of patterns applied by Verify() when no
// explicit list is given.
var TestPatterns = []uint8{0x0a, 0x05, 0x0f, 0x00, 0x09}

// sentinal error for a read-back mismatch.
const MismatchError = "harness: data mismatch: read %#02x, wanted %#02x"

// Verify drives the device through a write-then-read-back sequence for each
// of the supplied patterns. A nil pattern list means TestPatterns.
//
// The first mismatch between a written pattern and its read-back value ends
// the run immediately. There is no retry and no recovery.
func Verify(output io.Writer, dev Device, patterns []uint8) error {
	if output == nil {
		output = io.Discard
	}
	if patterns == nil {
		patterns = TestPatterns
	}

	logger.Log("harness", "applying reset")

	// quiesce inputs before reset
	dev.SetControl(false, false, 0)
	if err := dev.Reset(); err != nil {
		return curated.Errorf("harness: %v", err)
	}

	for _, p := range patterns {
		p &= 0x0f

		logger.Logf("harness", "writing %#02x", p)
		dev.SetControl(true, false, p)
		if err := stepCycles(dev, writePulse); err != nil {
			return err
		}

		dev.SetControl(false, false, 0)
		if err := stepCycles(dev, deselect); err != nil {
			return err
		}

		dev.SetControl(true, true, 0)
		if err := stepCycles(dev, readWindow); err != nil {
			return err
		}

		dataOut, ready := dev.SampleOutputs()
		logger.Logf("harness", "read %#02x (ready=%v)", dataOut, ready)

		if dataOut != p {
			return curated.Errorf(MismatchError, dataOut, p)
		}
		if !ready {
			return curated.Errorf("harness: ready not asserted at sample point (pattern %#02x)", p)
		}

		dev.SetControl(false, false, 0)
		if err := stepCycles(dev, deselect); err != nil {
			return err
		}
	}

	logger.Logf("harness", "%d patterns verified", len(patterns))
	output.Write([]byte(fmt.Sprintf("ok (%d patterns)\n", len(patterns))))

	return nil
}

func stepCycles(dev Device, n int) error {
	for i := 0; i < n; i++ {
		if err := dev.Step(); err != nil {
			return curated.Errorf("harness: %v", err)
		}
	}
	return nil
}
