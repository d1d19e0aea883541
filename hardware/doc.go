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

// Package hardware is the container package for the simulated SRAM tile. The
// Tile type gathers the pin interface and the storage core, and provides the
// Step() and Run() functions that drive the simulation forward one clock
// cycle at a time.
//
// Observers of the simulation (trace digests, waveform writers) implement
// the Monitor interface and are registered with Attach().
package hardware
