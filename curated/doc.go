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

// Package curated is the error mechanism used throughout the project. It is
// similar to the error type returned by fmt.Errorf() except that the message
// pattern is retained, meaning that an error can be tested for identity with
// the Is() and Has() functions without string matching against a formatted
// message.
//
// The Error() function normalises the message chain, removing duplicate
// adjacent parts. This keeps deeply wrapped errors readable:
//
//	sram: tile: tile: invalid pin
//
// is reported as:
//
//	sram: tile: invalid pin
package curated
