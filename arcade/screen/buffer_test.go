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

package screen_test

import (
	"testing"

	"github.com/crtfrenzy/gophervaders/arcade/screen"
	"github.com/crtfrenzy/gophervaders/arcade/sprite"
	"github.com/crtfrenzy/gophervaders/test"
)

func TestPackRGB(t *testing.T) {
	// red in the most significant byte, alpha always opaque
	test.Equate(t, screen.PackRGB(0, 0, 0), uint32(0x000000ff))
	test.Equate(t, screen.PackRGB(255, 0, 0), uint32(0xff0000ff))
	test.Equate(t, screen.PackRGB(0, 128, 0), uint32(0x008000ff))
	test.Equate(t, screen.PackRGB(128, 0, 0), uint32(0x800000ff))

	r, g, b := screen.UnpackRGB(screen.PackRGB(12, 34, 56))
	test.Equate(t, int(r), 12)
	test.Equate(t, int(g), 34)
	test.Equate(t, int(b), 56)
}

func TestBufferClear(t *testing.T) {
	bf, err := screen.NewBuffer(4, 3)
	test.ExpectedSuccess(t, err)
	test.Equate(t, bf.Width(), 4)
	test.Equate(t, bf.Height(), 3)

	col := screen.PackRGB(0, 128, 0)
	bf.Clear(col)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			test.Equate(t, bf.Pixel(x, y), col)
		}
	}

	// illegal buffer sizes
	_, err = screen.NewBuffer(0, 3)
	test.ExpectedFailure(t, err)
	_, err = screen.NewBuffer(4, -1)
	test.ExpectedFailure(t, err)
}

func TestComposite(t *testing.T) {
	bf, err := screen.NewBuffer(8, 8)
	test.ExpectedSuccess(t, err)

	bg := screen.PackRGB(0, 0, 0)
	fg := screen.PackRGB(128, 0, 0)
	bf.Clear(bg)

	// the top row of the mask lands at the highest y coordinate
	m := sprite.MustMask(
		"@.",
		".@",
	)
	bf.Composite(m, 2, 3, fg)

	test.Equate(t, bf.Pixel(2, 4), fg)
	test.Equate(t, bf.Pixel(3, 3), fg)
	test.Equate(t, bf.Pixel(2, 3), bg)
	test.Equate(t, bf.Pixel(3, 4), bg)

	// transparent cells leave the buffer untouched
	bf.Composite(sprite.MustMask(".."), 2, 4, bg)
	test.Equate(t, bf.Pixel(2, 4), fg)
}

func TestCompositeClipping(t *testing.T) {
	bf, err := screen.NewBuffer(4, 4)
	test.ExpectedSuccess(t, err)

	bg := screen.PackRGB(0, 0, 0)
	fg := screen.PackRGB(128, 0, 0)

	m := sprite.MustMask(
		"@@@",
		"@@@",
		"@@@",
	)

	// poking over every edge in turn. cells outside the buffer are
	// discarded without wrapping to another row
	for _, origin := range [][2]int{
		{-2, 0}, {3, 0}, {0, -2}, {0, 3}, {-2, -2}, {3, 3},
	} {
		bf.Clear(bg)
		bf.Composite(m, origin[0], origin[1], fg)

		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				inX := x >= origin[0] && x < origin[0]+3
				inY := y >= origin[1] && y < origin[1]+3
				if inX && inY {
					test.Equate(t, bf.Pixel(x, y), fg)
				} else {
					test.Equate(t, bf.Pixel(x, y), bg)
				}
			}
		}
	}

	// a mask entirely off the screen changes nothing
	bf.Clear(bg)
	bf.Composite(m, -10, -10, fg)
	for _, px := range bf.Pixels() {
		test.Equate(t, px, bg)
	}

	// reads outside of the buffer are zero
	test.Equate(t, bf.Pixel(-1, 0), uint32(0))
	test.Equate(t, bf.Pixel(0, 4), uint32(0))
}

func TestBufferBytes(t *testing.T) {
	bf, err := screen.NewBuffer(2, 2)
	test.ExpectedSuccess(t, err)

	bf.Clear(screen.PackRGB(0, 0, 0))
	bf.Composite(sprite.MustMask("@"), 1, 0, screen.PackRGB(12, 34, 56))

	b := bf.Bytes()
	test.Equate(t, len(b), 16)

	// bottom row of the screen comes first, four bytes per pixel in
	// R, G, B, A order
	test.Equate(t, int(b[0]), 0)
	test.Equate(t, int(b[3]), 255)
	test.Equate(t, int(b[4]), 12)
	test.Equate(t, int(b[5]), 34)
	test.Equate(t, int(b[6]), 56)
	test.Equate(t, int(b[7]), 255)

	// the stream tracks changes to the buffer
	bf.Clear(screen.PackRGB(1, 2, 3))
	b = bf.Bytes()
	test.Equate(t, int(b[4]), 1)
	test.Equate(t, int(b[5]), 2)
	test.Equate(t, int(b[6]), 3)
}
