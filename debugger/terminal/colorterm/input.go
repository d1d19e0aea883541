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

package colorterm

import (
	"unicode"
	"unicode/utf8"

	"github.com/jetsetilly/sram4/curated"
	"github.com/jetsetilly/sram4/debugger/terminal"
	"github.com/jetsetilly/sram4/debugger/terminal/colorterm/easyterm"
	"github.com/jetsetilly/sram4/debugger/terminal/colorterm/easyterm/ansi"
)

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(buffer []byte, prompt string, events *terminal.ReadEvents) (int, error) {
	if ct.silenced {
		return 0, nil
	}

	ct.RawMode()
	defer ct.CanonicalMode()

	// er is used to store encoded runes (length of 4 should be enough)
	er := make([]byte, 4)

	n := 0
	history := len(ct.commandHistory)

	for {
		// repaint the line: clear, prompt, input so far
		ct.TermPrint("\r")
		ct.TermPrint(ansi.ClearLine)
		ct.TermPrintLine(terminal.StylePrompt, prompt)
		ct.TermPrint(string(buffer[:n]))

		r, _, err := ct.reader.ReadRune()
		if err != nil {
			return n, err
		}

		// interrupt signals take precedence over input
		select {
		case <-events.IntEvents:
			ct.TermPrint("\n")
			return 0, curated.Errorf(terminal.UserInterrupt)
		default:
		}

		switch r {
		case easyterm.KeyCtrlC:
			ct.TermPrint("\n")
			return 0, curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeyCarriageReturn:
			// check to see if input is the same as the last history entry
			newEntry := n > 0
			if newEntry && len(ct.commandHistory) > 0 {
				last := ct.commandHistory[len(ct.commandHistory)-1].input
				if len(last) == n {
					newEntry = false
					for i := 0; i < n; i++ {
						if buffer[i] != last[i] {
							newEntry = true
							break
						}
					}
				}
			}

			if newEntry {
				nh := make([]byte, n)
				copy(nh, buffer[:n])
				ct.commandHistory = append(ct.commandHistory, command{input: nh})
			}

			ct.TermPrint("\n")
			return n, nil

		case easyterm.KeyBackspace:
			if n > 0 {
				n--
			}

		case easyterm.KeyEsc:
			r, _, err := ct.reader.ReadRune()
			if err != nil {
				return n, err
			}
			if r != easyterm.EscCursor {
				continue
			}

			r, _, err = ct.reader.ReadRune()
			if err != nil {
				return n, err
			}
			switch r {
			case easyterm.CursorUp:
				if history > 0 {
					history--
					n = copy(buffer, ct.commandHistory[history].input)
				}
			case easyterm.CursorDown:
				if history < len(ct.commandHistory)-1 {
					history++
					n = copy(buffer, ct.commandHistory[history].input)
				} else {
					history = len(ct.commandHistory)
					n = 0
				}
			}

		default:
			if unicode.IsPrint(r) {
				l := utf8.EncodeRune(er, r)
				if n+l <= len(buffer) {
					copy(buffer[n:], er[:l])
					n += l
				}
			}
		}
	}
}
