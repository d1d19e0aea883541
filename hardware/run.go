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

// A full continue check on every clock cycle is expensive. PerformanceBrake
// is a standard value that can be used to filter out expensive code paths
// within a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if endCondition {
//			return false, nil
//		}
//	}
//	return true, nil
const PerformanceBrake = 100

// Run sets the simulation running as quickly as possible. The continueCheck
// function is called after every clock cycle; returning false ends the run.
func (t *Tile) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	for {
		if err := t.Step(); err != nil {
			return err
		}

		cont, err := continueCheck()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}

// RunForCycles steps the simulation for the specified number of clock
// cycles. Useful for the debugger and for performance measurement.
func (t *Tile) RunForCycles(numCycles int) error {
	for i := 0; i < numCycles; i++ {
		if err := t.Step(); err != nil {
			return err
		}
	}
	return nil
}
