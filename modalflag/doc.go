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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides support for program modes and sub-modes, such that
// each mode can have its own set of flags.
//
// The basic pattern of usage is:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("run", "regress")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		// help has already been printed
//	case modalflag.ParseError:
//		fmt.Println(err)
//	case modalflag.ParseContinue:
//		switch md.Mode() {
//			...
//		}
//	}
//
// After a sub-mode has been matched, NewMode() begins a fresh flagset for
// the arguments belonging to that mode.
package modalflag
