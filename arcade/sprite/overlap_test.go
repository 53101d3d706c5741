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

package sprite_test

import (
	"testing"

	"github.com/crtfrenzy/gophervaders/arcade/sprite"
	"github.com/crtfrenzy/gophervaders/test"
)

func TestOverlap(t *testing.T) {
	a := sprite.MustMask("@@@@")
	b := sprite.MustMask(
		"@@",
		"@@",
	)

	// partial overlap, checked both ways around
	test.Equate(t, sprite.Overlap(a, 0, 0, b, 3, 0), true)
	test.Equate(t, sprite.Overlap(b, 3, 0, a, 0, 0), true)

	// one box inside the other
	test.Equate(t, sprite.Overlap(a, 0, 0, b, 1, 0), true)

	// boxes that only touch at an edge do not overlap
	test.Equate(t, sprite.Overlap(a, 0, 0, b, 4, 0), false)
	test.Equate(t, sprite.Overlap(a, 0, 0, b, 0, 1), false)
	test.Equate(t, sprite.Overlap(a, 0, 0, b, 0, -2), false)

	// clearly separated
	test.Equate(t, sprite.Overlap(a, 0, 0, b, 10, 10), false)

	// negative coordinates are as good as any other
	test.Equate(t, sprite.Overlap(a, -2, 0, b, 0, 0), true)
	test.Equate(t, sprite.Overlap(a, -6, 0, b, 0, 0), false)
}
