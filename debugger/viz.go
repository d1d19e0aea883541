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

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/sram4/curated"
)

// visualise writes a dot format graph of the tile's internal structure to the
// named file. process with graphviz for an image.
func (dbg *Debugger) visualise(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("debugger: viz: %v", err)
	}
	defer f.Close()

	memviz.Map(f, dbg.tile)

	return nil
}
