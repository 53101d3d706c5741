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

package input

// Event represents the actions that can arrive at the machine's input
// port. Events are defined as strings so they can be written to and read
// back from recording transcripts without further translation.
type Event string

// List of defined events.
const (
	NoEvent Event = "NoEvent"

	// the movement events carry an EventData of true while the control is
	// held and false when it is let go
	Left  Event = "Left"
	Right Event = "Right"

	// the trigger has been pulled. always carries an EventData of true
	Fire Event = "Fire"

	// the player has asked to leave the game
	Quit Event = "Quit"
)

// EventData is the value associated with an Event.
type EventData bool

// EventRecorder implementations mirror events sent to the port, for
// example to a transcript on disk. See the recorder package.
type EventRecorder interface {
	RecordEvent(ev Event, d EventData) error
}

// EventPlayback implementations feed the port with events from a previous
// session. GetPlayback() is polled once per frame until it returns NoEvent
// for that frame.
type EventPlayback interface {
	GetPlayback() (Event, EventData, error)
}
