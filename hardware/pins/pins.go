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

// Package pins represents the pin interface of the SRAM tile. The tile has
// the standard TinyTapeout pinout: a dedicated 8 bit input port, a dedicated
// 8 bit output port and an 8 bit bidirectional port with per-pin output
// enables; plus clock, active-low reset and a tile enable.
//
// The input port packs three control/data fields:
//
//	bit 5    enable
//	bit 4    read_not_write
//	bits 3-0 data_in
//
// and the output port packs two:
//
//	bit 4    ready
//	bits 3-0 data_out
//
// The bidirectional port is not used by this design. The tile never asserts
// any of the output enables.
package pins

import (
	"fmt"
	"strings"
)

// field positions in the input port.
const (
	MaskDataIn      = 0x0f
	BitReadNotWrite = 0x10
	BitEnable       = 0x20
)

// field positions in the output port.
const (
	MaskDataOut = 0x0f
	BitReady    = 0x10
)

// Ports is the pin state of the tile. Input pins are driven from outside the
// tile (by the harness or the debugger). Output pins are driven by the tile
// at the rising edge of the clock.
type Ports struct {
	// dedicated input port (ui_in)
	Input uint8

	// dedicated output port (uo_out)
	Output uint8

	// bidirectional port (uio). the In field is driven from outside, the Out
	// and OutputEnable fields by the tile. a pin of Out is only meaningful if
	// the corresponding OutputEnable pin is high
	BidirIn      uint8
	BidirOut     uint8
	OutputEnable uint8

	// tile enable. held high for the duration of a simulation
	Ena bool

	// clock and active-low reset
	Clk  bool
	RstN bool
}

// SetControl packs the three input fields into the input port.
func (p *Ports) SetControl(enable bool, readNotWrite bool, dataIn uint8) {
	v := dataIn & MaskDataIn
	if readNotWrite {
		v |= BitReadNotWrite
	}
	if enable {
		v |= BitEnable
	}
	p.Input = v
}

// Control unpacks the three input fields from the input port.
func (p Ports) Control() (enable bool, readNotWrite bool, dataIn uint8) {
	return p.Input&BitEnable == BitEnable,
		p.Input&BitReadNotWrite == BitReadNotWrite,
		p.Input & MaskDataIn
}

// Outputs unpacks the two output fields from the output port.
func (p Ports) Outputs() (dataOut uint8, ready bool) {
	return p.Output & MaskDataOut, p.Output&BitReady == BitReady
}

// SetOutputs packs the two output fields into the output port. The unused
// upper bits of the port are always zero.
func (p *Ports) SetOutputs(dataOut uint8, ready bool) {
	v := dataOut & MaskDataOut
	if ready {
		v |= BitReady
	}
	p.Output = v
}

func pin(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// String returns a single line rendering of the pin state, suitable for the
// debugger's DISPLAY command.
func (p Ports) String() string {
	s := strings.Builder{}
	enable, rnw, dataIn := p.Control()
	dataOut, ready := p.Outputs()
	s.WriteString(fmt.Sprintf("clk=%s rst_n=%s ena=%s", pin(p.Clk), pin(p.RstN), pin(p.Ena)))
	s.WriteString(fmt.Sprintf(" | en=%s rnw=%s in=%01x", pin(enable), pin(rnw), dataIn))
	s.WriteString(fmt.Sprintf(" | out=%01x rdy=%s", dataOut, pin(ready)))
	return s.String()
}
