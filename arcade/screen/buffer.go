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

package screen

import (
	"github.com/crtfrenzy/gophervaders/arcade/sprite"
	"github.com/crtfrenzy/gophervaders/curated"
)

// Buffer is the framebuffer the game is composited into. Pixels are packed
// RGBA words (see PackRGB), stored row by row with row zero at the bottom
// of the screen. The upward pointing y axis matches the coordinate space
// of the game itself.
type Buffer struct {
	width  int
	height int
	pixels []uint32

	// scratch space for Bytes(). allocated on first use
	bytes []byte
}

// NewBuffer is the preferred method of initialisation for the Buffer type.
func NewBuffer(width, height int) (*Buffer, error) {
	if width < 1 || height < 1 {
		return nil, curated.Errorf("screen: illegal buffer size (%dx%d)", width, height)
	}

	return &Buffer{
		width:  width,
		height: height,
		pixels: make([]uint32, width*height),
	}, nil
}

// Width returns the width of the buffer in pixels.
func (bf *Buffer) Width() int {
	return bf.width
}

// Height returns the height of the buffer in pixels.
func (bf *Buffer) Height() int {
	return bf.height
}

// Clear sets every pixel in the buffer to the supplied colour.
func (bf *Buffer) Clear(col uint32) {
	for i := range bf.pixels {
		bf.pixels[i] = col
	}
}

// Composite draws the opaque cells of a mask into the buffer in the
// supplied colour. The origin is the position of the bottom-left corner of
// the mask. Cells that fall outside of the buffer are discarded, so masks
// can safely poke over any edge of the screen.
func (bf *Buffer) Composite(m *sprite.Mask, originX, originY int, col uint32) {
	for my := 0; my < m.Height(); my++ {
		// row zero of the mask is the top of the sprite
		y := originY + m.Height() - 1 - my
		if y < 0 || y >= bf.height {
			continue
		}

		for mx := 0; mx < m.Width(); mx++ {
			if !m.Opaque(mx, my) {
				continue
			}

			x := originX + mx
			if x < 0 || x >= bf.width {
				continue
			}

			bf.pixels[y*bf.width+x] = col
		}
	}
}

// Pixel returns the packed pixel word at (x, y), with y measured from the
// bottom of the screen. Pixels outside of the buffer read as zero.
func (bf *Buffer) Pixel(x, y int) uint32 {
	if x < 0 || x >= bf.width || y < 0 || y >= bf.height {
		return 0
	}
	return bf.pixels[y*bf.width+x]
}

// Pixels returns the underlying pixel storage. The slice begins with the
// bottom row of the screen. Callers must treat the contents as read-only.
func (bf *Buffer) Pixels() []uint32 {
	return bf.pixels
}

// number of bytes per pixel in the stream returned by the Bytes() function
const pixelDepth = 4

// Bytes returns the contents of the buffer as a byte stream, four bytes
// per pixel in R, G, B, A order. Like Pixels(), the stream begins with the
// bottom row of the screen. The underlying array is reused on every call
// so the stream is only valid until the buffer next changes.
func (bf *Buffer) Bytes() []byte {
	if bf.bytes == nil {
		bf.bytes = make([]byte, len(bf.pixels)*pixelDepth)
	}

	for i, px := range bf.pixels {
		o := i * pixelDepth
		bf.bytes[o] = uint8(px >> 24)
		bf.bytes[o+1] = uint8(px >> 16)
		bf.bytes[o+2] = uint8(px >> 8)
		bf.bytes[o+3] = uint8(px)
	}

	return bf.bytes
}
