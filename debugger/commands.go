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

package debugger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/sram4/curated"
	"github.com/jetsetilly/sram4/debugger/terminal"
	"github.com/jetsetilly/sram4/hardware"
	"github.com/jetsetilly/sram4/logger"
)

// debugger commands.
const (
	cmdStep    = "STEP"
	cmdRun     = "RUN"
	cmdReset   = "RESET"
	cmdWrite   = "WRITE"
	cmdRead    = "READ"
	cmdDrive   = "DRIVE"
	cmdPeek    = "PEEK"
	cmdPoke    = "POKE"
	cmdDisplay = "DISPLAY"
	cmdViz     = "VIZ"
	cmdLog     = "LOG"
	cmdHelp    = "HELP"
	cmdQuit    = "QUIT"
)

var helpText = []string{
	"STEP [n]          step the clock n cycles (default 1)",
	"RUN [n]           run n cycles, or until interrupted",
	"RESET             apply the power-on reset sequence",
	"WRITE <v>         perform a timed write of 4 bit value v",
	"READ              perform a timed read, printing data_out",
	"DRIVE <en> <rnw> <v>  drive the input port fields directly",
	"PEEK              show the content of the storage word",
	"POKE <v>          set the content of the storage word",
	"DISPLAY           show the pin state",
	"VIZ <file>        write a graph of the tile structure (dot format)",
	"LOG               show recent log entries",
	"HELP              this help",
	"QUIT              quit the debugger",
}

func (dbg *Debugger) processCommand(input string) error {
	toks := strings.Fields(input)
	if len(toks) == 0 {
		return nil
	}

	command := strings.ToUpper(toks[0])
	args := toks[1:]

	switch command {
	default:
		return curated.Errorf("debugger: unrecognised command (%s)", command)

	case cmdStep:
		n := 1
		if len(args) > 0 {
			var err error
			n, err = strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return curated.Errorf("debugger: STEP: invalid cycle count (%s)", args[0])
			}
		}
		if err := dbg.tile.RunForCycles(n); err != nil {
			return err
		}
		dbg.printPinState()

	case cmdRun:
		if len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return curated.Errorf("debugger: RUN: invalid cycle count (%s)", args[0])
			}
			if err := dbg.tile.RunForCycles(n); err != nil {
				return err
			}
		} else {
			if err := dbg.runUntilInterrupt(); err != nil {
				return err
			}
		}
		dbg.printPinState()

	case cmdReset:
		if err := dbg.tile.Reset(); err != nil {
			return err
		}
		dbg.term.TermPrintLine(terminal.StyleFeedback, "reset complete")

	case cmdWrite:
		if len(args) != 1 {
			return curated.Errorf("debugger: WRITE requires a value")
		}
		v, err := strconv.ParseUint(args[0], 16, 8)
		if err != nil || v > 0x0f {
			return curated.Errorf("debugger: WRITE: invalid 4 bit value (%s)", args[0])
		}
		if err := dbg.timedWrite(uint8(v)); err != nil {
			return err
		}
		dbg.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("wrote %01x", v))

	case cmdRead:
		v, ready, err := dbg.timedRead()
		if err != nil {
			return err
		}
		dbg.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("read %01x (ready=%v)", v, ready))

	case cmdDrive:
		if len(args) != 3 {
			return curated.Errorf("debugger: DRIVE requires enable, read_not_write and data values")
		}
		enable := args[0] == "1"
		rnw := args[1] == "1"
		v, err := strconv.ParseUint(args[2], 16, 8)
		if err != nil || v > 0x0f {
			return curated.Errorf("debugger: DRIVE: invalid 4 bit value (%s)", args[2])
		}
		dbg.tile.SetControl(enable, rnw, uint8(v))
		dbg.printPinState()

	case cmdPeek:
		dbg.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("cell = %01x", dbg.tile.Core.Peek()))

	case cmdPoke:
		if len(args) != 1 {
			return curated.Errorf("debugger: POKE requires a value")
		}
		v, err := strconv.ParseUint(args[0], 16, 8)
		if err != nil || v > 0x0f {
			return curated.Errorf("debugger: POKE: invalid 4 bit value (%s)", args[0])
		}
		dbg.tile.Core.Poke(uint8(v))

	case cmdDisplay:
		dbg.printPinState()

	case cmdViz:
		if len(args) != 1 {
			return curated.Errorf("debugger: VIZ requires a filename")
		}
		if err := dbg.visualise(args[0]); err != nil {
			return err
		}
		dbg.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("written %s", args[0]))

	case cmdLog:
		s := &strings.Builder{}
		logger.Tail(s, 10)
		for _, l := range strings.Split(strings.TrimRight(s.String(), "\n"), "\n") {
			if l != "" {
				dbg.term.TermPrintLine(terminal.StyleFeedback, l)
			}
		}

	case cmdHelp:
		for _, l := range helpText {
			dbg.term.TermPrintLine(terminal.StyleHelp, l)
		}

	case cmdQuit:
		dbg.running = false
	}

	return nil
}

func (dbg *Debugger) printPinState() {
	s := fmt.Sprintf("%8d %s", dbg.tile.Cycles(), dbg.tile.Pins.String())
	dbg.term.TermPrintLine(terminal.StylePinState, s)
}

// runUntilInterrupt runs the tile until an interrupt signal is received.
func (dbg *Debugger) runUntilInterrupt() error {
	performanceFilter := 0
	return dbg.tile.Run(func() (bool, error) {
		performanceFilter++
		if performanceFilter >= hardware.PerformanceBrake {
			performanceFilter = 0
			select {
			case <-dbg.events.IntEvents:
				return false, nil
			default:
			}
		}
		return true, nil
	})
}

// the timings used by the verification harness, reproduced as individual
// debugger commands.
func (dbg *Debugger) timedWrite(v uint8) error {
	dbg.tile.SetControl(true, false, v)
	if err := dbg.tile.RunForCycles(2); err != nil {
		return err
	}
	dbg.tile.SetControl(false, false, 0)
	return dbg.tile.RunForCycles(1)
}

func (dbg *Debugger) timedRead() (uint8, bool, error) {
	dbg.tile.SetControl(true, true, 0)
	if err := dbg.tile.RunForCycles(3); err != nil {
		return 0, false, err
	}
	v, ready := dbg.tile.SampleOutputs()
	dbg.tile.SetControl(false, false, 0)
	if err := dbg.tile.RunForCycles(1); err != nil {
		return 0, false, err
	}
	return v, ready, nil
}
