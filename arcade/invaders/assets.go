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

package invaders

import (
	"github.com/crtfrenzy/gophervaders/arcade/screen"
	"github.com/crtfrenzy/gophervaders/arcade/sprite"
)

// the playfield is green, everything drawn on it is red
var (
	backgroundColor = screen.PackRGB(0, 128, 0)
	spriteColor     = screen.PackRGB(128, 0, 0)
)

// two frames of animation for each alien design, indexed by AlienType-1.
// designs get wider lower down the grid: TypeA is 8 cells across, TypeB 11
// and TypeC 12.
var alienFrames = [3][]*sprite.Mask{
	{
		sprite.MustMask(
			"...@@...",
			"..@@@@..",
			".@@@@@@.",
			"@@.@@.@@",
			"@@@@@@@@",
			".@.@@.@.",
			"@......@",
			".@....@.",
		),
		sprite.MustMask(
			"...@@...",
			"..@@@@..",
			".@@@@@@.",
			"@@.@@.@@",
			"@@@@@@@@",
			"..@..@..",
			".@.@@.@.",
			"@.@..@.@",
		),
	},
	{
		sprite.MustMask(
			"..@.....@..",
			"...@...@...",
			"..@@@@@@@..",
			".@@.@@@.@@.",
			"@@@@@@@@@@@",
			"@.@@@@@@@.@",
			"@.@.....@.@",
			"...@@.@@...",
		),
		sprite.MustMask(
			"..@.....@..",
			"@..@...@..@",
			"@.@@@@@@@.@",
			"@@@.@@@.@@@",
			"@@@@@@@@@@@",
			".@@@@@@@@@.",
			"..@.....@..",
			".@.......@.",
		),
	},
	{
		sprite.MustMask(
			"....@@@@....",
			".@@@@@@@@@@.",
			"@@@@@@@@@@@@",
			"@@@..@@..@@@",
			"@@@@@@@@@@@@",
			"...@@..@@...",
			"..@@.@@.@@..",
			"@@........@@",
		),
		sprite.MustMask(
			"....@@@@....",
			".@@@@@@@@@@.",
			"@@@@@@@@@@@@",
			"@@@..@@..@@@",
			"@@@@@@@@@@@@",
			"..@@@..@@@..",
			".@@..@@..@@.",
			"..@@....@@..",
		),
	},
}

// shown in place of an alien for a short while after it has been shot.
// wider than any of the alien designs, hence the recentring in kill().
var deathMask = sprite.MustMask(
	".@..@...@..@.",
	"..@..@.@..@..",
	"...@.....@...",
	"@@.........@@",
	"...@.....@...",
	"..@..@.@..@..",
	".@..@...@..@.",
)

var playerMask = sprite.MustMask(
	".....@.....",
	"....@@@....",
	"....@@@....",
	".@@@@@@@@@.",
	"@@@@@@@@@@@",
	"@@@@@@@@@@@",
	"@@@@@@@@@@@",
)

var bulletMask = sprite.MustMask(
	"@",
	"@",
	"@",
)
