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
	"github.com/crtfrenzy/gophervaders/curated"
	"github.com/crtfrenzy/gophervaders/test"
)

func TestAnimationLooping(t *testing.T) {
	frames := []*sprite.Mask{
		sprite.MustMask("@."),
		sprite.MustMask(".@"),
	}

	an, err := sprite.NewAnimation(frames, 10, true)
	test.ExpectedSuccess(t, err)

	// frame zero is held for the first ten ticks
	for i := 0; i < 10; i++ {
		f, err := an.CurrentFrame()
		test.ExpectedSuccess(t, err)
		test.Equate(t, f == frames[0], true)
		an.Tick()
	}

	// frame one for the next ten ticks
	for i := 0; i < 10; i++ {
		f, err := an.CurrentFrame()
		test.ExpectedSuccess(t, err)
		test.Equate(t, f == frames[1], true)
		an.Tick()
	}

	// the cycle wraps back to frame zero. looping animations never expire
	f, err := an.CurrentFrame()
	test.ExpectedSuccess(t, err)
	test.Equate(t, f == frames[0], true)
	test.Equate(t, an.Expired(), false)
}

func TestAnimationOneShot(t *testing.T) {
	frames := []*sprite.Mask{
		sprite.MustMask("@"),
		sprite.MustMask("."),
	}

	an, err := sprite.NewAnimation(frames, 2, false)
	test.ExpectedSuccess(t, err)

	// both frames play out as normal
	for i := 0; i < 4; i++ {
		test.Equate(t, an.Expired(), false)
		_, err = an.CurrentFrame()
		test.ExpectedSuccess(t, err)
		an.Tick()
	}

	// once the last frame has been held for the full duration the
	// animation expires and the current frame is no longer available
	test.Equate(t, an.Expired(), true)
	_, err = an.CurrentFrame()
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, sprite.AnimationExpired), true)

	// ticking an expired animation does nothing
	an.Tick()
	test.Equate(t, an.Expired(), true)
}

func TestAnimationValidation(t *testing.T) {
	// no frames
	_, err := sprite.NewAnimation(nil, 10, true)
	test.ExpectedFailure(t, err)

	// illegal duration
	_, err = sprite.NewAnimation([]*sprite.Mask{sprite.MustMask("@")}, 0, true)
	test.ExpectedFailure(t, err)
}
