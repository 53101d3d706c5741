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

// Package termplay implements the gui.GUI interface for terminals. It is a
// novelty next to the sdlplay package but it works anywhere a terminal
// with 24-bit colour works, including over ssh.
//
// Each terminal cell displays two pixels with the half-block character:
// the foreground colour paints the upper pixel and the background colour
// the lower pixel. When the terminal is too small for the full frame the
// frame is sampled at integer intervals, the same nearest-neighbour idea
// the sdlplay package uses, just in the other direction.
//
// Terminals report key presses but never key releases. A key is treated
// as held until its autorepeat has been quiet for a short period, at
// which point the release is synthesised.
package termplay
