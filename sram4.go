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

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/sram4/debugger"
	"github.com/jetsetilly/sram4/debugger/terminal"
	"github.com/jetsetilly/sram4/debugger/terminal/colorterm"
	"github.com/jetsetilly/sram4/debugger/terminal/plainterm"
	"github.com/jetsetilly/sram4/hardware"
	"github.com/jetsetilly/sram4/harness"
	"github.com/jetsetilly/sram4/logger"
	"github.com/jetsetilly/sram4/modalflag"
	"github.com/jetsetilly/sram4/performance"
	"github.com/jetsetilly/sram4/regression"
	"github.com/jetsetilly/sram4/statsview"
	"github.com/jetsetilly/sram4/trace"
	"github.com/jetsetilly/sram4/version"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "DEBUG", "REGRESS", "PERFORMANCE")

	ver := md.AddBool("version", false, "print version and quit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* %s\n", err)
		os.Exit(10)
	}

	if *ver {
		fmt.Printf("%s (%s)\n", version.ApplicationName, version.Version)
		os.Exit(0)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "DEBUG":
		err = debug(md)
	case "REGRESS":
		err = regress(md)
	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Printf("* %s\n", err)
		os.Exit(20)
	}
}

// parsePatterns converts a string of hexadecimal digits into a pattern list.
// an empty string means the default patterns.
func parsePatterns(s string) ([]uint8, error) {
	if s == "" {
		return nil, nil
	}
	patterns := make([]uint8, 0, len(s))
	for _, c := range s {
		v, err := strconv.ParseUint(string(c), 16, 8)
		if err != nil {
			return nil, fmt.Errorf("patterns must be hexadecimal digits (%c)", c)
		}
		patterns = append(patterns, uint8(v))
	}
	return patterns, nil
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	patterns := md.AddString("patterns", "", "hex digits to write and read back (default pattern list if empty)")
	vcdFile := md.AddString("vcd", "", "record signal activity to the named VCD file")
	log := md.AddBool("log", false, "echo log to stdout")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout, true)
	}

	pat, err := parsePatterns(*patterns)
	if err != nil {
		return err
	}

	tile := hardware.NewTile()

	if *vcdFile != "" {
		f, err := os.Create(*vcdFile)
		if err != nil {
			return err
		}
		defer f.Close()
		tile.Attach(trace.NewVCD(f))
	}

	if err := tile.Reset(); err != nil {
		return err
	}

	return harness.Verify(os.Stdout, tile, pat)
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	termType := md.AddString("term", "COLOR", "terminal type to use in debug mode: COLOR, PLAIN")
	log := md.AddBool("log", false, "echo log to stdout")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout, true)
	}

	var term terminal.Terminal

	switch strings.ToUpper(*termType) {
	case "COLOR":
		term = &colorterm.ColorTerminal{}
	case "PLAIN":
		term = &plainterm.PlainTerminal{}
	default:
		return fmt.Errorf("unknown terminal type (%s)", *termType)
	}

	dbg, err := debugger.NewDebugger()
	if err != nil {
		return err
	}

	return dbg.Start(term)
}

func regress(md *modalflag.Modes) error {
	md.NewMode()
	md.AddSubModes("RUN", "LIST", "DELETE", "ADD")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	switch md.Mode() {
	case "RUN":
		md.NewMode()

		verbose := md.AddBool("verbose", false, "output more detail when running tests")
		failOnError := md.AddBool("fail", false, "stop when a test fails")

		p, err := md.Parse()
		if p != modalflag.ParseContinue {
			return err
		}

		return regression.RegressRunTests(md.Output, *verbose, *failOnError, md.RemainingArgs())

	case "LIST":
		md.NewMode()

		p, err := md.Parse()
		if p != modalflag.ParseContinue {
			return err
		}

		return regression.RegressList(md.Output)

	case "DELETE":
		md.NewMode()

		answerYes := md.AddBool("yes", false, "do not ask for confirmation")

		p, err := md.Parse()
		if p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			return fmt.Errorf("database key required for %s mode", md)
		case 1:
			var confirmation io.Reader = os.Stdin
			if *answerYes {
				confirmation = strings.NewReader("y\n")
			}
			return regression.RegressDelete(md.Output, confirmation, md.GetArg(0))
		default:
			return fmt.Errorf("only one entry can be deleted at at time when using %s mode", md)
		}

	case "ADD":
		md.NewMode()

		notes := md.AddString("notes", "", "annotation for the database entry")

		p, err := md.Parse()
		if p != modalflag.ParseContinue {
			return err
		}

		var patterns []uint8
		if len(md.RemainingArgs()) > 0 {
			patterns, err = parsePatterns(md.GetArg(0))
			if err != nil {
				return err
			}
		}

		return regression.RegressAdd(md.Output, regression.NewHarnessRegression(patterns, *notes))
	}

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration (note: there is a small overhead to the initialisation)")
	profile := md.AddString("profile", "none", "run performance check with profiling: CPU, MEM, ALL or NONE")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	log := md.AddBool("log", false, "echo log to stdout")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout, true)
	}

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("statsview not enabled in this build")
		}
		statsview.Launch(md.Output)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	return performance.Check(md.Output, prf, *duration)
}
