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

package debugger_test

import (
	"io"
	"strings"
	"testing"

	"github.com/jetsetilly/sram4/debugger"
	"github.com/jetsetilly/sram4/debugger/terminal"
	"github.com/jetsetilly/sram4/test"
)

// scriptTerminal feeds a prepared list of commands to the debugger and
// records everything printed in response.
type scriptTerminal struct {
	script []string
	lines  []string
	errors []string
}

func (trm *scriptTerminal) Initialise() error {
	return nil
}

func (trm *scriptTerminal) CleanUp() {
}

func (trm *scriptTerminal) Silence(_ bool) {
}

func (trm *scriptTerminal) IsInteractive() bool {
	return false
}

func (trm *scriptTerminal) TermRead(buffer []byte, _ string, _ *terminal.ReadEvents) (int, error) {
	if len(trm.script) == 0 {
		return 0, io.EOF
	}
	s := trm.script[0]
	trm.script = trm.script[1:]
	copy(buffer, s)
	return len(s), nil
}

func (trm *scriptTerminal) TermPrintLine(sty terminal.Style, s string) {
	if sty == terminal.StyleError {
		trm.errors = append(trm.errors, s)
		return
	}
	trm.lines = append(trm.lines, s)
}

// containsLine returns true if any recorded line contains the substring.
func (trm *scriptTerminal) containsLine(sub string) bool {
	for _, l := range trm.lines {
		if strings.Contains(l, sub) {
			return true
		}
	}
	return false
}

func TestWriteReadScript(t *testing.T) {
	trm := &scriptTerminal{
		script: []string{
			"write a",
			"read",
			"peek",
			"quit",
		},
	}

	dbg, err := debugger.NewDebugger()
	test.ExpectedSuccess(t, err)

	err = dbg.Start(trm)
	test.ExpectedSuccess(t, err)

	test.Equate(t, len(trm.errors), 0)
	test.ExpectedSuccess(t, trm.containsLine("wrote a"))
	test.ExpectedSuccess(t, trm.containsLine("read a (ready=true)"))
	test.ExpectedSuccess(t, trm.containsLine("cell = a"))
}

func TestPokeStepDisplay(t *testing.T) {
	trm := &scriptTerminal{
		script: []string{
			"poke 5",
			"peek",
			"step",
			"display",
			"quit",
		},
	}

	dbg, err := debugger.NewDebugger()
	test.ExpectedSuccess(t, err)

	err = dbg.Start(trm)
	test.ExpectedSuccess(t, err)

	test.Equate(t, len(trm.errors), 0)
	test.ExpectedSuccess(t, trm.containsLine("cell = 5"))
}

func TestUnrecognisedCommand(t *testing.T) {
	trm := &scriptTerminal{
		script: []string{
			"blancmange",
			"quit",
		},
	}

	dbg, err := debugger.NewDebugger()
	test.ExpectedSuccess(t, err)

	err = dbg.Start(trm)
	test.ExpectedSuccess(t, err)

	test.Equate(t, len(trm.errors), 1)
}

func TestScriptEndsSession(t *testing.T) {
	// an exhausted script, without an explicit QUIT, should end the input
	// loop rather than spin
	trm := &scriptTerminal{
		script: []string{
			"step 3",
		},
	}

	dbg, err := debugger.NewDebugger()
	test.ExpectedSuccess(t, err)

	err = dbg.Start(trm)
	test.ExpectedSuccess(t, err)
}
