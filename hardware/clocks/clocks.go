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

// Package clocks defines the constant values that define the speed of the
// clock driven into the SRAM tile. The values describe the target silicon;
// the simulation itself runs as fast as the host allows and the performance
// package uses these constants to report how the simulation compares.
package clocks

import "time"

// Crystal is the clock frequency the tile is designed for, in Hz.
const Crystal = 50e6

// Period is the length of one clock cycle at the Crystal frequency.
const Period = 20 * time.Nanosecond

// PeriodNS is the clock period in nanoseconds. Used for the timescale of
// waveform output.
const PeriodNS = 20
