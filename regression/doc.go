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

// Package regression facilitates the regression testing of the simulation.
// A regression entry records a pattern list and the fingerprint of the pin
// trace produced when the harness was driven with those patterns. Running
// the regression re-runs the harness and compares fingerprints: any change
// to the simulated hardware that alters pin behaviour, however subtly, will
// show up as a fingerprint mismatch.
//
// Entries are stored with the database package.
package regression
