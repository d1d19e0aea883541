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

// Package trace contains an implementation of the hardware.Monitor interface
// that writes a VCD (value change dump) waveform of the pin interface. The
// output can be loaded into any waveform viewer (GTKWave for instance) for
// inspection of a simulation run.
package trace

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/sram4/curated"
	"github.com/jetsetilly/sram4/hardware/pins"
)

// signal identifier characters used in the VCD stream.
const (
	idClk      = "!"
	idRstN     = "\""
	idEna      = "#"
	idInput    = "$"
	idOutput   = "%"
	idBidirIn  = "&"
	idBidirOut = "'"
	idOutputEn = "("
)

// VCD is an implementation of hardware.Monitor that writes a value change
// dump of every pin in the interface. One timescale unit per clock phase,
// which at the 50MHz design frequency means a 10ns tick.
type VCD struct {
	output io.Writer

	// time of the next tick, in timescale units
	time uint64

	// pin state at the previous tick. only changes are written
	last pins.Ports

	// header has been written and the initial dumpvars emitted
	started bool
}

// NewVCD is the preferred method of initialisation for the VCD type. The
// header is not written until the first Tick().
func NewVCD(output io.Writer) *VCD {
	return &VCD{output: output}
}

func (v *VCD) header() error {
	s := strings.Builder{}
	s.WriteString("$timescale 10ns $end\n")
	s.WriteString("$scope module sram4 $end\n")
	s.WriteString(fmt.Sprintf("$var wire 1 %s clk $end\n", idClk))
	s.WriteString(fmt.Sprintf("$var wire 1 %s rst_n $end\n", idRstN))
	s.WriteString(fmt.Sprintf("$var wire 1 %s ena $end\n", idEna))
	s.WriteString(fmt.Sprintf("$var wire 8 %s ui_in $end\n", idInput))
	s.WriteString(fmt.Sprintf("$var wire 8 %s uo_out $end\n", idOutput))
	s.WriteString(fmt.Sprintf("$var wire 8 %s uio_in $end\n", idBidirIn))
	s.WriteString(fmt.Sprintf("$var wire 8 %s uio_out $end\n", idBidirOut))
	s.WriteString(fmt.Sprintf("$var wire 8 %s uio_oe $end\n", idOutputEn))
	s.WriteString("$upscope $end\n")
	s.WriteString("$enddefinitions $end\n")

	if _, err := io.WriteString(v.output, s.String()); err != nil {
		return curated.Errorf("vcd: %v", err)
	}
	return nil
}

func writeScalar(s *strings.Builder, value bool, id string) {
	if value {
		s.WriteString("1")
	} else {
		s.WriteString("0")
	}
	s.WriteString(id)
	s.WriteString("\n")
}

func writeVector(s *strings.Builder, value uint8, id string) {
	s.WriteString(fmt.Sprintf("b%b %s\n", value, id))
}

// Tick implements the hardware.Monitor interface.
func (v *VCD) Tick(_ uint64, p pins.Ports) error {
	s := strings.Builder{}

	if !v.started {
		if err := v.header(); err != nil {
			return err
		}

		// initial value of every signal
		s.WriteString("#0\n")
		s.WriteString("$dumpvars\n")
		writeScalar(&s, p.Clk, idClk)
		writeScalar(&s, p.RstN, idRstN)
		writeScalar(&s, p.Ena, idEna)
		writeVector(&s, p.Input, idInput)
		writeVector(&s, p.Output, idOutput)
		writeVector(&s, p.BidirIn, idBidirIn)
		writeVector(&s, p.BidirOut, idBidirOut)
		writeVector(&s, p.OutputEnable, idOutputEn)
		s.WriteString("$end\n")

		v.started = true
		v.last = p
		v.time = 1

		if _, err := io.WriteString(v.output, s.String()); err != nil {
			return curated.Errorf("vcd: %v", err)
		}
		return nil
	}

	timeWritten := false
	emitTime := func() {
		if !timeWritten {
			s.WriteString(fmt.Sprintf("#%d\n", v.time))
			timeWritten = true
		}
	}

	if p.Clk != v.last.Clk {
		emitTime()
		writeScalar(&s, p.Clk, idClk)
	}
	if p.RstN != v.last.RstN {
		emitTime()
		writeScalar(&s, p.RstN, idRstN)
	}
	if p.Ena != v.last.Ena {
		emitTime()
		writeScalar(&s, p.Ena, idEna)
	}
	if p.Input != v.last.Input {
		emitTime()
		writeVector(&s, p.Input, idInput)
	}
	if p.Output != v.last.Output {
		emitTime()
		writeVector(&s, p.Output, idOutput)
	}
	if p.BidirIn != v.last.BidirIn {
		emitTime()
		writeVector(&s, p.BidirIn, idBidirIn)
	}
	if p.BidirOut != v.last.BidirOut {
		emitTime()
		writeVector(&s, p.BidirOut, idBidirOut)
	}
	if p.OutputEnable != v.last.OutputEnable {
		emitTime()
		writeVector(&s, p.OutputEnable, idOutputEn)
	}

	v.last = p
	v.time++

	if s.Len() > 0 {
		if _, err := io.WriteString(v.output, s.String()); err != nil {
			return curated.Errorf("vcd: %v", err)
		}
	}

	return nil
}
