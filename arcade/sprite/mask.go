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

package sprite

import (
	"github.com/crtfrenzy/gophervaders/curated"
)

// Mask is a one-bit sprite stencil. Cells are stored row by row with row
// zero being the visual top of the sprite. The drawing routines take care
// of flipping the mask for coordinate systems where y points upwards.
type Mask struct {
	width  int
	height int
	cells  []bool
}

// NewMask creates a Mask from a series of strings, one string per row,
// topmost row first. An at-sign marks an opaque cell and a period a
// transparent cell. Every row must be the same width.
func NewMask(rows ...string) (*Mask, error) {
	if len(rows) == 0 {
		return nil, curated.Errorf("mask: no rows")
	}

	m := &Mask{
		width:  len(rows[0]),
		height: len(rows),
	}

	if m.width == 0 {
		return nil, curated.Errorf("mask: empty row")
	}

	m.cells = make([]bool, m.width*m.height)
	for y, r := range rows {
		if len(r) != m.width {
			return nil, curated.Errorf("mask: row %d is not the same width as row 0", y)
		}
		for x, c := range r {
			switch c {
			case '@':
				m.cells[y*m.width+x] = true
			case '.':
				// transparent
			default:
				return nil, curated.Errorf("mask: unrecognised cell %q in row %d", c, y)
			}
		}
	}

	return m, nil
}

// MustMask is like NewMask but panics on error. Intended for hand-written
// sprite data.
func MustMask(rows ...string) *Mask {
	m, err := NewMask(rows...)
	if err != nil {
		panic(err)
	}
	return m
}

// Width returns the width of the mask in cells.
func (m *Mask) Width() int {
	return m.width
}

// Height returns the height of the mask in cells.
func (m *Mask) Height() int {
	return m.height
}

// Opaque returns true if the cell at (x, y) is opaque. Coordinates are
// relative to the top-left corner of the mask. Cells outside of the mask
// are transparent.
func (m *Mask) Opaque(x, y int) bool {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return false
	}
	return m.cells[y*m.width+x]
}
