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

// Package ansi defines ANSI control codes for styles and colours.
package ansi

import (
	"fmt"
	"strings"
)

// ansi colour numbers.
var colours = map[string]int{
	"black":   0,
	"red":     1,
	"green":   2,
	"yellow":  3,
	"blue":    4,
	"magenta": 5,
	"cyan":    6,
	"white":   7,
	"normal":  9,
}

// ansi target.
const (
	targetPen       = 3
	targetBrightPen = 9
)

// ansi attributes.
var attributes = map[string]int{
	"bold":      1,
	"underline": 4,
	"inverse":   7,
	"strike":    8,
}

// ClearLine is the CSI sequence to clear the entire of the current line.
const ClearLine = "\033[2K"

// CursorMove is the CSI sequence to move the cursor n characters (negative
// values move the cursor to the left).
func CursorMove(n int) string {
	if n < 0 {
		return fmt.Sprintf("\033[%dD", -n)
	}
	return fmt.Sprintf("\033[%dC", n)
}

// Pens is the table of colours to be used for text.
var Pens map[string]string

// DimPens is the table of pastel colours to be used for text.
var DimPens map[string]string

// PenStyles is the table of styles to be used for text.
var PenStyles map[string]string

// NormalPen is the CSI sequence for regular text.
var NormalPen string

func init() {
	Pens = make(map[string]string)
	DimPens = make(map[string]string)
	PenStyles = make(map[string]string)

	NormalPen, _ = ColorBuild("", "", false)

	for c := range colours {
		if c == "black" || c == "normal" {
			continue
		}
		Pens[c], _ = ColorBuild(c, "", true)
		DimPens[c], _ = ColorBuild(c, "", false)
	}

	PenStyles["bold"], _ = ColorBuild("", "bold", false)
	PenStyles["underline"], _ = ColorBuild("", "underline", false)
}

// ColorBuild creates the ANSI sequence for a pen with the specified colour
// and attribute.
func ColorBuild(pen, attribute string, brightPen bool) (string, error) {
	s := strings.Builder{}
	s.WriteString("\033[")

	if pen != "" {
		col, ok := colours[strings.ToLower(pen)]
		if !ok {
			return "", fmt.Errorf("unknown ANSI pen (%s)", pen)
		}
		penType := targetPen
		if brightPen {
			penType = targetBrightPen
		}
		s.WriteString(fmt.Sprintf("%d%d", penType, col))
	}

	if attribute != "" {
		attr, ok := attributes[strings.ToLower(attribute)]
		if !ok {
			return "", fmt.Errorf("unknown ANSI attribute (%s)", attribute)
		}
		if s.Len() > 2 {
			s.WriteString(";")
		}
		s.WriteString(fmt.Sprintf("%d", attr))
	}

	s.WriteString("m")

	return s.String(), nil
}
