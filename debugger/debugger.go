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
	"os"
	"os/signal"

	"github.com/jetsetilly/sram4/curated"
	"github.com/jetsetilly/sram4/debugger/terminal"
	"github.com/jetsetilly/sram4/hardware"
)

const prompt = "[sram4] "

// Debugger is the basic debugging frontend for the simulation. The tile is
// stepped one clock cycle at a time and the pin interface inspected and
// driven interactively.
type Debugger struct {
	tile *hardware.Tile
	term terminal.Terminal

	events *terminal.ReadEvents

	// the debugger is to continue reading commands
	running bool
}

// NewDebugger creates and initialises everything required by the debugger.
func NewDebugger() (*Debugger, error) {
	dbg := &Debugger{
		tile: hardware.NewTile(),
	}

	if err := dbg.tile.Reset(); err != nil {
		return nil, curated.Errorf("debugger: %v", err)
	}

	return dbg, nil
}

// Start the main debugger sequence using the supplied terminal.
func (dbg *Debugger) Start(term terminal.Terminal) error {
	dbg.term = term

	if err := dbg.term.Initialise(); err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	dbg.events = &terminal.ReadEvents{IntEvents: intChan}

	dbg.running = true
	return dbg.inputLoop()
}

func (dbg *Debugger) inputLoop() error {
	buffer := make([]byte, 255)

	for dbg.running {
		n, err := dbg.term.TermRead(buffer, prompt, dbg.events)
		if err != nil {
			if curated.Is(err, terminal.UserInterrupt) {
				dbg.term.TermPrintLine(terminal.StyleFeedback, "quitting")
				return nil
			}

			// the error might be a terminal implementation detail (io.EOF
			// from a script driven terminal for instance) so we treat any
			// unrecognised error as the end of input
			return nil
		}

		if err := dbg.processCommand(string(buffer[:n])); err != nil {
			dbg.term.TermPrintLine(terminal.StyleError, err.Error())
		}
	}

	return nil
}
