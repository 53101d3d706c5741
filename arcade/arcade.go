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

// Package arcade assembles the machine: a game world, the screen it is
// drawn to and the input port that drives it. Frontends attach themselves
// to the screen and the port; the machine itself knows nothing about where
// its frames end up or where its events come from.
package arcade

import (
	"github.com/crtfrenzy/gophervaders/arcade/input"
	"github.com/crtfrenzy/gophervaders/arcade/invaders"
	"github.com/crtfrenzy/gophervaders/arcade/screen"
	"github.com/crtfrenzy/gophervaders/curated"
)

// Machine is the complete game machine.
type Machine struct {
	Screen *screen.Screen
	Port   *input.Port
	World  *invaders.World
}

// NewMachine is the preferred method of initialisation for the Machine
// type. The machine is ready to run immediately.
func NewMachine() (*Machine, error) {
	scr, err := screen.NewScreen(invaders.Width, invaders.Height)
	if err != nil {
		return nil, curated.Errorf("machine: %v", err)
	}

	world, err := invaders.NewWorld()
	if err != nil {
		return nil, curated.Errorf("machine: %v", err)
	}

	return &Machine{
		Screen: scr,
		Port:   input.NewPort(),
		World:  world,
	}, nil
}

// End cleans up the machine's resources. The machine is unusable
// afterwards.
func (mac *Machine) End() error {
	return mac.Screen.EndRendering()
}

// Step runs the machine for one frame. Queued playback events are injected
// into the port, the world draws itself into the screen buffer and
// advances by one tick, and the completed frame is announced to the
// screen's renderers. If the frame rate is capped, Step blocks until it is
// time for the next frame.
func (mac *Machine) Step() error {
	if err := mac.Port.HandlePlaybackEvents(); err != nil {
		return err
	}

	mac.World.Step(mac.Screen.Buffer(), mac.Port.Latch())

	return mac.Screen.NewFrame()
}

// Run sets the machine running. The continueCheck function is consulted
// after every frame and the machine stops as soon as it returns false.
// continueCheck can be nil, in which case the machine runs forever.
func (mac *Machine) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	cont := true
	var err error

	for cont {
		if err = mac.Step(); err != nil {
			return err
		}

		cont, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForFrameCount runs the machine for the specified number of frames.
// The callback function, which can be nil, is invoked after every
// completed frame.
func (mac *Machine) RunForFrameCount(numFrames int, callback func() error) error {
	targetFrame := mac.Screen.FrameNum() + numFrames

	for mac.Screen.FrameNum() < targetFrame {
		if err := mac.Step(); err != nil {
			return err
		}

		if callback != nil {
			if err := callback(); err != nil {
				return err
			}
		}
	}

	return nil
}
