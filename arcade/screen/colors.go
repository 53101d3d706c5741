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

// PackRGB returns the packed pixel word for the given colour components.
// The red channel occupies the most significant byte, followed by green
// and then blue. The alpha channel sits in the least significant byte and
// is always fully opaque.
func PackRGB(r, g, b uint8) uint32 {
	return uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | 0xff
}

// UnpackRGB returns the colour components of a packed pixel word.
func UnpackRGB(px uint32) (r, g, b uint8) {
	return uint8(px >> 24), uint8(px >> 16), uint8(px >> 8)
}
