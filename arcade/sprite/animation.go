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

import (
	"github.com/crtfrenzy/gophervaders/curated"
)

// Sentinal error returned by CurrentFrame() if the animation has expired.
const AnimationExpired = "animation: frame requested from expired animation"

// Animation flips through a sequence of masks at a fixed rate. A looping
// animation wraps back to the first frame when the last frame has played
// out. A one-shot animation expires instead, after which CurrentFrame()
// returns an error and further ticks have no effect.
type Animation struct {
	frames   []*Mask
	duration int

	elapsed int
	loop    bool
	expired bool
}

// NewAnimation is the preferred method of initialisation for the Animation
// type. The duration argument is the number of ticks each frame is held
// for and must be at least one.
func NewAnimation(frames []*Mask, duration int, loop bool) (*Animation, error) {
	if len(frames) == 0 {
		return nil, curated.Errorf("animation: no frames")
	}
	if duration < 1 {
		return nil, curated.Errorf("animation: frame duration must be at least one tick")
	}

	return &Animation{
		frames:   frames,
		duration: duration,
		loop:     loop,
	}, nil
}

// Tick advances the animation by one unit of time. Ticking an expired
// animation does nothing.
func (an *Animation) Tick() {
	if an.expired {
		return
	}

	an.elapsed++
	if an.elapsed == len(an.frames)*an.duration {
		if an.loop {
			an.elapsed = 0
		} else {
			an.expired = true
		}
	}
}

// Expired returns true if a one-shot animation has played through all of
// its frames. Looping animations never expire.
func (an *Animation) Expired() bool {
	return an.expired
}

// CurrentFrame returns the mask for the current point in the animation.
func (an *Animation) CurrentFrame() (*Mask, error) {
	if an.expired {
		return nil, curated.Errorf(AnimationExpired)
	}
	return an.frames[an.elapsed/an.duration], nil
}
