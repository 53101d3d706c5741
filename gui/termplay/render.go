// This file is part of Gophervaders.
//
// Gophervaders is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gophervaders is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gophervaders.  If not, see <https://www.gnu.org/licenses/>.

package termplay

import (
	"github.com/gdamore/tcell/v2"
)

// the upper-half block. the foreground colour fills the top half of the
// cell and the background colour the bottom half, giving two pixels per
// cell.
const halfBlock = '▀'

// render draws the staged pixels into the terminal. only called from the
// service goroutine.
func (tp *TermPlay) render() {
	tw, th := tp.tscr.Size()
	if tw < 1 || th < 1 {
		return
	}

	// sample the frame at integer intervals until it fits the terminal.
	// a cell is two pixels tall
	step := 1
	for (tp.width+step-1)/step > tw || (tp.height+step-1)/step > th*2 {
		step++
	}

	// dimensions of the sampled frame, in pixels and in cells
	sw := (tp.width + step - 1) / step
	sh := (tp.height + step - 1) / step
	rows := (sh + 1) / 2

	// centre the frame in the terminal
	offX := (tw - sw) / 2
	offY := (th - rows) / 2

	for cy := 0; cy < rows; cy++ {
		// the frame puts row zero at the bottom of the screen but the
		// terminal puts row zero at the top
		upper := sh - 1 - cy*2
		lower := upper - 1

		for cx := 0; cx < sw; cx++ {
			fg := tp.pixelColor(cx*step, upper*step)

			bg := tcell.ColorBlack
			if lower >= 0 {
				bg = tp.pixelColor(cx*step, lower*step)
			}

			tp.tscr.SetContent(offX+cx, offY+cy, halfBlock, nil,
				tcell.StyleDefault.Foreground(fg).Background(bg))
		}
	}

	tp.tscr.Show()
}

// pixelColor reads a single pixel from the staged frame. coordinates are
// in frame space, row zero at the bottom.
func (tp *TermPlay) pixelColor(x int, y int) tcell.Color {
	o := (y*tp.width + x) * pixelDepth
	return tcell.NewRGBColor(
		int32(tp.rendPixels[o]),
		int32(tp.rendPixels[o+1]),
		int32(tp.rendPixels[o+2]),
	)
}
