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

// Package debugger implements an interactive command line debugger for the
// simulated tile. Commands allow single-stepping of the clock, timed read and
// write transactions, direct driving of the input port and inspection of the
// storage cell and the pin state.
//
// The debugger is driven through an implementation of the terminal.Terminal
// interface. The plainterm and colorterm packages provide the two
// implementations used by the command line frontend.
package debugger
