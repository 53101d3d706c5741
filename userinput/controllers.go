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

package userinput

import (
	"github.com/crtfrenzy/gophervaders/arcade/input"
)

// HandleInput conceptualises events being sent to the machine's input
// port. The Port type in the input package implements this interface.
type HandleInput interface {
	HandleEvent(ev input.Event, d input.EventData) error
}

// Controllers translates Events from the frontend into the events
// understood by the machine's input port.
type Controllers struct {
	handle HandleInput

	// is true if the last event handled was a quit event
	Quit bool
}

// NewControllers is the preferred method of initialisation for the
// Controllers type.
func NewControllers(handle HandleInput) *Controllers {
	return &Controllers{handle: handle}
}

func (c *Controllers) keyboard(ev EventKeyboard) error {
	var err error

	// auto-repeats are ignored. the input port accumulates held keys by
	// itself so only the press and the release matter
	if ev.Repeat {
		return nil
	}

	switch ev.Key {
	case "Left":
		err = c.handle.HandleEvent(input.Left, input.EventData(ev.Down))

	case "Right":
		err = c.handle.HandleEvent(input.Right, input.EventData(ev.Down))

	case "Space":
		// the trigger is pulled when the key is released, not when it is
		// pressed
		if !ev.Down {
			err = c.handle.HandleEvent(input.Fire, true)
		}

	case "Escape":
		if ev.Down {
			c.Quit = true
			err = c.handle.HandleEvent(input.Quit, true)
		}
	}

	return err
}

// HandleUserInput deals with events sent from the frontend. The Quit field
// is set when the event means the game should end.
func (c *Controllers) HandleUserInput(ev Event) error {
	c.Quit = false

	var err error

	switch ev := ev.(type) {
	case EventQuit:
		c.Quit = true
		err = c.handle.HandleEvent(input.Quit, true)
	case EventKeyboard:
		err = c.keyboard(ev)
	default:
	}

	return err
}
