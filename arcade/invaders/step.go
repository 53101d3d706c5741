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
	"github.com/crtfrenzy/gophervaders/arcade/input"
	"github.com/crtfrenzy/gophervaders/arcade/screen"
	"github.com/crtfrenzy/gophervaders/arcade/sprite"
)

// Step runs one frame of the game. The current state of the world is drawn
// into the buffer and then advanced by one frame's worth of time, using
// the input state latched for this frame.
func (w *World) Step(bf *screen.Buffer, inp input.State) {
	w.render(bf)

	// animation timing
	for _, an := range w.animations {
		an.Tick()
	}

	// player movement. the cannon is kept entirely on the playfield but
	// the movement sum itself is left alone, a pinned cannon moves away
	// from the edge as soon as the direction allows it
	x := w.Player.X + playerSpeed*inp.MoveDir
	if x < 0 {
		x = 0
	} else if x > Width-playerMask.Width() {
		x = Width - playerMask.Width()
	}
	w.Player.X = x

	// death sprites fade
	for i := range w.Aliens {
		a := &w.Aliens[i]
		if a.Type == TypeDead && a.DeathTimer > 0 {
			a.DeathTimer--
		}
	}

	// bullet movement and collisions
	for bi := 0; bi < len(w.Bullets); {
		w.Bullets[bi].Y += w.Bullets[bi].Dir

		// despawn beyond the top of the playfield or below the height of
		// the bullet sprite at the bottom
		if w.Bullets[bi].Y >= Height || w.Bullets[bi].Y < bulletMask.Height() {
			w.removeBullet(bi)
			continue
		}

		if w.collide(bi) {
			// the slot now holds a bullet that has not been examined this
			// frame, so don't advance
			continue
		}

		bi++
	}

	// new bullets
	if inp.Fire && len(w.Bullets) < MaxBullets {
		w.Bullets = append(w.Bullets, Bullet{
			X:   w.Player.X + playerMask.Width()/2,
			Y:   w.Player.Y + playerMask.Height(),
			Dir: bulletSpeed,
		})
	}
}

// render draws the current state of the world.
func (w *World) render(bf *screen.Buffer) {
	bf.Clear(backgroundColor)

	for i := range w.Aliens {
		a := &w.Aliens[i]
		if a.DeathTimer == 0 {
			continue
		}

		var m *sprite.Mask
		if a.Type == TypeDead {
			m = deathMask
		} else {
			m = w.alienFrame(a.Type)
		}
		bf.Composite(m, a.X, a.Y, spriteColor)
	}

	for _, b := range w.Bullets {
		bf.Composite(bulletMask, b.X, b.Y, spriteColor)
	}

	bf.Composite(playerMask, w.Player.X, w.Player.Y, spriteColor)
}

// collide checks the bullet in the given slot against every live alien.
// The first alien hit is killed and the bullet removed; remaining aliens
// are left alone even if the bullet somehow touches them too. Returns true
// if the bullet hit something.
func (w *World) collide(bi int) bool {
	b := w.Bullets[bi]

	for ai := range w.Aliens {
		a := &w.Aliens[ai]
		if a.Type == TypeDead {
			continue
		}

		f := w.alienFrame(a.Type)
		if !sprite.Overlap(bulletMask, b.X, b.Y, f, a.X, a.Y) {
			continue
		}

		w.kill(ai, f)
		w.removeBullet(bi)
		return true
	}

	return false
}

// kill tombstones the alien in the given slot. The death sprite is wider
// than any of the alien designs so the alien shuffles left to keep the
// explosion centred on its column.
func (w *World) kill(ai int, f *sprite.Mask) {
	w.Aliens[ai].Type = TypeDead
	w.Aliens[ai].X -= (deathMask.Width() - f.Width()) / 2
	w.Aliens[ai].DeathTimer = deathLinger
}

// removeBullet swaps the last bullet into the given slot and shortens the
// list. Bullet order is not preserved.
func (w *World) removeBullet(bi int) {
	w.Bullets[bi] = w.Bullets[len(w.Bullets)-1]
	w.Bullets = w.Bullets[:len(w.Bullets)-1]
}
