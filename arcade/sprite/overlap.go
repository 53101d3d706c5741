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

// Overlap returns true if the bounding boxes of two positioned masks
// intersect. Boxes that merely touch at an edge do not overlap. The
// positions give the same corner of each mask; which corner it is does not
// matter so long as both positions use it.
func Overlap(a *Mask, ax, ay int, b *Mask, bx, by int) bool {
	return ax < bx+b.width && ax+a.width > bx &&
		ay < by+b.height && ay+a.height > by
}
