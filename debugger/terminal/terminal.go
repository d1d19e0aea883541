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

// Package terminal defines the operations required by the command line
// interface of the debugger. Implementations are in the plainterm and
// colorterm sub-packages.
package terminal

import (
	"os"
)

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead will return the number of characters inserted into the
	// buffer, or an error, when completed.
	//
	// If possible the TermRead() implementation should check the IntEvents
	// channel of the ReadEvents argument for activity. Not all
	// implementations will be able to do so because of the context in which
	// they operate.
	TermRead(buffer []byte, prompt string, events *ReadEvents) (int, error)

	// IsInteractive() should return true for implementations that require
	// user interaction. Instances that don't expect user intervention
	// should return false.
	IsInteractive() bool
}

// Sentinal errors. Returned by TermRead() if caught whilst waiting for
// input.
const (
	UserInterrupt = "user interrupt"
	UserAbort     = "user abort"
)

// ReadEvents should be monitored during a TermRead().
type ReadEvents struct {
	// interrupt signals from the operating system
	IntEvents chan os.Signal
}

// Style is used by TermPrintLine to indicate the category of text being
// output.
type Style int

// List of valid Style values.
const (
	// input from the user being echoed back
	StyleEcho Style = iota

	// the prompt. printed without a trailing newline
	StylePrompt

	// terse responses to commands
	StyleFeedback

	// the pin state line printed after a STEP
	StylePinState

	// help text
	StyleHelp

	// error messages
	StyleError
)

// IsPrompt returns true if the style should be printed without a trailing
// newline.
func (sty Style) IsPrompt() bool {
	return sty == StylePrompt
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the debugger's command line
// interface.
type Terminal interface {
	// Terminal implementations also implement the Input and Output
	// interfaces.
	Input
	Output

	// Initialise the terminal. not all terminal implementations will need
	// to do anything.
	Initialise() error

	// Restore the terminal to its original state, if possible. for example,
	// we could use this to make sure the terminal is returned to canonical
	// mode. not all terminal implementations will need to do anything.
	CleanUp()

	// Silence all input and output except error messages. In other words,
	// TermPrintLine() should display error messages even if silenced is
	// true.
	Silence(silenced bool)
}
