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

// Package sprite defines the one-bit stencils everything in the game is
// drawn with and the timing of how those stencils flip between frames.
//
// A Mask is immutable once created. Sprite data is most conveniently
// written as rows of text, with the at-sign marking the opaque cells:
//
//	m := sprite.MustMask(
//		".@.",
//		"@@@",
//	)
//
// An Animation cycles through a list of masks at a fixed rate, either
// looping forever or expiring after a single pass. Animations are ticked
// once per frame of the game.
package sprite
