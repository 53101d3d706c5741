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

package userinput_test

import (
	"testing"

	"github.com/crtfrenzy/gophervaders/arcade/input"
	"github.com/crtfrenzy/gophervaders/test"
	"github.com/crtfrenzy/gophervaders/userinput"
)

// mockPort records the events sent to it by the Controllers type.
type mockPort struct {
	events []input.Event
	data   []input.EventData
}

func (m *mockPort) HandleEvent(ev input.Event, d input.EventData) error {
	m.events = append(m.events, ev)
	m.data = append(m.data, d)
	return nil
}

func (m *mockPort) last() (input.Event, input.EventData) {
	if len(m.events) == 0 {
		return input.NoEvent, false
	}
	return m.events[len(m.events)-1], m.data[len(m.events)-1]
}

func TestMovementKeys(t *testing.T) {
	port := &mockPort{}
	ctrl := userinput.NewControllers(port)

	err := ctrl.HandleUserInput(userinput.EventKeyboard{Key: "Left", Down: true})
	test.ExpectedSuccess(t, err)
	ev, d := port.last()
	test.Equate(t, string(ev), string(input.Left))
	test.Equate(t, bool(d), true)

	err = ctrl.HandleUserInput(userinput.EventKeyboard{Key: "Left", Down: false})
	test.ExpectedSuccess(t, err)
	ev, d = port.last()
	test.Equate(t, string(ev), string(input.Left))
	test.Equate(t, bool(d), false)

	err = ctrl.HandleUserInput(userinput.EventKeyboard{Key: "Right", Down: true})
	test.ExpectedSuccess(t, err)
	ev, d = port.last()
	test.Equate(t, string(ev), string(input.Right))
	test.Equate(t, bool(d), true)

	test.Equate(t, len(port.events), 3)
}

func TestFireOnKeyRelease(t *testing.T) {
	port := &mockPort{}
	ctrl := userinput.NewControllers(port)

	// pressing the key does nothing
	err := ctrl.HandleUserInput(userinput.EventKeyboard{Key: "Space", Down: true})
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(port.events), 0)

	// the trigger is pulled on release
	err = ctrl.HandleUserInput(userinput.EventKeyboard{Key: "Space", Down: false})
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(port.events), 1)
	ev, d := port.last()
	test.Equate(t, string(ev), string(input.Fire))
	test.Equate(t, bool(d), true)
}

func TestRepeatsIgnored(t *testing.T) {
	port := &mockPort{}
	ctrl := userinput.NewControllers(port)

	err := ctrl.HandleUserInput(userinput.EventKeyboard{Key: "Right", Down: true, Repeat: true})
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(port.events), 0)
}

func TestQuit(t *testing.T) {
	port := &mockPort{}
	ctrl := userinput.NewControllers(port)

	err := ctrl.HandleUserInput(userinput.EventQuit{})
	test.ExpectedSuccess(t, err)
	test.Equate(t, ctrl.Quit, true)
	ev, d := port.last()
	test.Equate(t, string(ev), string(input.Quit))
	test.Equate(t, bool(d), true)

	// the escape key also quits
	port = &mockPort{}
	ctrl = userinput.NewControllers(port)

	err = ctrl.HandleUserInput(userinput.EventKeyboard{Key: "Escape", Down: true})
	test.ExpectedSuccess(t, err)
	test.Equate(t, ctrl.Quit, true)
	ev, _ = port.last()
	test.Equate(t, string(ev), string(input.Quit))

	// but a quit flag is reset by the next event
	err = ctrl.HandleUserInput(userinput.EventKeyboard{Key: "Right", Down: true})
	test.ExpectedSuccess(t, err)
	test.Equate(t, ctrl.Quit, false)
}
