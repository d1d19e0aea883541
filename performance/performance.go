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

// Package performance measures how quickly the simulation runs on the host
// machine, and optionally profiles it. The interesting number is the ratio
// of the simulated clock rate against the 50MHz rate of the target silicon.
package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/sram4/curated"
	"github.com/jetsetilly/sram4/hardware"
	"github.com/jetsetilly/sram4/hardware/clocks"
)

// Check the performance of the simulation.
//
// The simulation will run for the specified duration and will create a cpu
// or memory profile (or a combination) as defined by the Profile argument.
func Check(output io.Writer, profile Profile, duration string) error {
	tile := hardware.NewTile()

	if err := tile.Reset(); err != nil {
		return curated.Errorf("performance: %v", err)
	}

	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	startCycles := tile.Cycles()

	runner := func() error {
		// setup trigger that expires when duration has elapsed
		timerChan := make(chan bool)
		time.AfterFunc(dur, func() {
			timerChan <- true
		})

		// the tile is exercised with an endless write/read mix so that the
		// measurement reflects real access activity rather than an idle core
		phase := 0

		// only check for end of measurement period every PerformanceBrake
		// clock cycles. checking the timerChan is relatively expensive
		performanceBrake := 0

		return tile.Run(func() (bool, error) {
			phase = (phase + 1) % 7
			switch phase {
			case 0:
				tile.SetControl(true, false, uint8(tile.Cycles())&0x0f)
			case 2:
				tile.SetControl(false, false, 0)
			case 3:
				tile.SetControl(true, true, 0)
			case 6:
				tile.SetControl(false, false, 0)
			}

			performanceBrake++
			if performanceBrake >= hardware.PerformanceBrake {
				performanceBrake = 0
				select {
				case <-timerChan:
					return false, nil
				default:
				}
			}

			return true, nil
		})
	}

	// launch runner directly or through the profiler, depending on supplied
	// arguments
	if err := RunProfiler(profile, "performance", runner); err != nil {
		return curated.Errorf("performance: %v", err)
	}

	numCycles := tile.Cycles() - startCycles
	rate := float64(numCycles) / dur.Seconds()
	ratio := rate / clocks.Crystal

	output.Write([]byte(fmt.Sprintf("%.2fMHz (%d cycles in %.2f seconds) %.1fx real time\n",
		rate/1e6, numCycles, dur.Seconds(), ratio)))

	return nil
}
