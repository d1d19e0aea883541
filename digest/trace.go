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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/sram4/hardware/pins"
)

// the number of bytes of pin state folded into the hash on every tick.
const tickDepth = 6

// Trace is an implementation of hardware.Monitor that maintains a chained
// SHA-1 fingerprint of the pin state. Every phase tick is folded into the
// hash, so the fingerprint is sensitive to the exact cycle on which any pin
// changes, not just the sequence of values.
//
// note that the use of sha1 is fine for this purpose because this is not a
// cryptographic task.
type Trace struct {
	digest [sha1.Size]byte
	buffer []byte
}

// NewTrace is the preferred method of initialisation for the Trace type.
func NewTrace() *Trace {
	tr := &Trace{}
	tr.buffer = make([]byte, sha1.Size+tickDepth)
	return tr
}

// Hash implements the digest.Digest interface.
func (tr Trace) Hash() string {
	return fmt.Sprintf("%x", tr.digest)
}

// ResetDigest implements the digest.Digest interface.
func (tr *Trace) ResetDigest() {
	for i := range tr.digest {
		tr.digest[i] = 0
	}
}

// Tick implements the hardware.Monitor interface.
func (tr *Trace) Tick(_ uint64, p pins.Ports) error {
	// chain fingerprints by copying the value of the last fingerprint to the
	// head of the buffer
	copy(tr.buffer, tr.digest[:])

	var flags uint8
	if p.Clk {
		flags |= 0x01
	}
	if p.RstN {
		flags |= 0x02
	}
	if p.Ena {
		flags |= 0x04
	}

	i := sha1.Size
	tr.buffer[i] = flags
	tr.buffer[i+1] = p.Input
	tr.buffer[i+2] = p.Output
	tr.buffer[i+3] = p.BidirIn
	tr.buffer[i+4] = p.BidirOut
	tr.buffer[i+5] = p.OutputEnable

	tr.digest = sha1.Sum(tr.buffer)

	return nil
}
