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

// Package invaders is the game itself: a grid of aliens, a cannon and the
// bullets travelling between them. The World type holds the complete state
// of a game and the Step() function moves it along one frame at a time,
// drawing into a screen.Buffer as it goes.
//
// All coordinates are in playfield pixels with the origin at the bottom
// left of the screen. Entity positions give the bottom-left corner of the
// entity's sprite.
package invaders

import (
	"github.com/crtfrenzy/gophervaders/arcade/sprite"
)

// Dimensions of the playfield in pixels.
const (
	Width  = 224
	Height = 256
)

// The shape of the alien grid. Aliens occupy fixed slots for their whole
// life; a shot alien leaves a tombstone in its slot rather than freeing it.
const (
	GridRows  = 5
	GridCols  = 12
	NumAliens = GridRows * GridCols
)

// MaxBullets is the most bullets that can be in flight at once. Firing
// while the table is full does nothing.
const MaxBullets = 128

const (
	// ticks each animation frame is held for
	alienFrameDuration = 10

	// frames the death sprite lingers before the slot disappears
	deathLinger = 10

	// pixels a player bullet climbs each frame
	bulletSpeed = 2

	// the cannon moves at this multiple of the accumulated input direction
	playerSpeed = 2

	// number of lives the player starts with
	playerStartLife = 3
)

// AlienType distinguishes the three alien designs and the tombstone left
// behind when an alien is shot.
type AlienType int

// List of valid AlienType values. TypeA patrols the top row of the grid,
// TypeB the two rows below that and TypeC the two rows at the bottom.
const (
	TypeDead AlienType = iota
	TypeA
	TypeB
	TypeC
)

// Alien is a single invader in the grid.
type Alien struct {
	X, Y int
	Type AlienType

	// frames remaining for the death sprite. decremented only once the
	// alien is dead. a dead alien with an expired timer is not drawn
	DeathTimer int
}

// Player is the cannon at the bottom of the screen.
type Player struct {
	X, Y int
	Life int
}

// Bullet is a single shot in flight. Dir is added to the bullet's y
// position every frame.
type Bullet struct {
	X, Y int
	Dir  int
}

// World holds the complete state of a game.
type World struct {
	Aliens  [NumAliens]Alien
	Player  Player
	Bullets []Bullet

	// one looping animation per alien design, shared by every alien of
	// that design. indexed by AlienType-1
	animations [3]*sprite.Animation
}

// NewWorld creates a game in its opening state: the full grid of aliens,
// the cannon centred at the bottom of the screen and no bullets in flight.
func NewWorld() (*World, error) {
	w := &World{
		Bullets: make([]Bullet, 0, MaxBullets),
	}

	for i := range w.animations {
		an, err := sprite.NewAnimation(alienFrames[i], alienFrameDuration, true)
		if err != nil {
			return nil, err
		}
		w.animations[i] = an
	}

	for row := 0; row < GridRows; row++ {
		for col := 0; col < GridCols; col++ {
			a := &w.Aliens[row*GridCols+col]
			a.Type = AlienType((GridRows-row)/2 + 1)
			a.DeathTimer = deathLinger

			// slots are centred on the width of the death sprite so that
			// the three designs line up in their columns
			f := alienFrames[a.Type-1][0]
			a.X = 16*col + 20 + (deathMask.Width()-f.Width())/2
			a.Y = 17*row + 128
		}
	}

	w.Player = Player{
		X:    Width / 2,
		Y:    32,
		Life: playerStartLife,
	}

	return w, nil
}

// LiveAliens returns the number of aliens that have not been shot.
func (w *World) LiveAliens() int {
	ct := 0
	for i := range w.Aliens {
		if w.Aliens[i].Type != TypeDead {
			ct++
		}
	}
	return ct
}

// alienFrame returns the current animation frame for an alien design.
func (w *World) alienFrame(t AlienType) *sprite.Mask {
	// the alien animations loop so CurrentFrame() cannot fail
	f, _ := w.animations[t-1].CurrentFrame()
	return f
}
