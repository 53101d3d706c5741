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

// Event represents an action by the user of the frontend: a keypress, a
// key release, a request to close the window. Frontends send events over a
// channel to whatever is driving the machine.
type Event interface{}

// EventQuit is sent when the user closes the frontend window.
type EventQuit struct{}

// KeyMod identifies the keyboard modifier held during a keyboard event.
type KeyMod int

// List of valid KeyMod values.
const (
	KeyModNone KeyMod = iota
	KeyModShift
	KeyModCtrl
	KeyModAlt
)

// EventKeyboard is sent when a key is pressed or released.
type EventKeyboard struct {
	// the name of the key, following SDL conventions: "Left", "Right",
	// "Space", "Escape", etc.
	Key string

	Mod KeyMod

	// true when the key has been pressed, false when it has been released
	Down bool

	// true when the event is an auto-repeat of a held key
	Repeat bool
}
