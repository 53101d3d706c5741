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

package input_test

import (
	"testing"

	"github.com/crtfrenzy/gophervaders/arcade/input"
	"github.com/crtfrenzy/gophervaders/test"
)

func TestMovementAccumulation(t *testing.T) {
	p := input.NewPort()
	test.Equate(t, p.Latch().MoveDir, 0)

	// a held key keeps its weight until released
	test.ExpectedSuccess(t, p.HandleEvent(input.Right, true))
	test.Equate(t, p.Latch().MoveDir, 1)
	test.Equate(t, p.Latch().MoveDir, 1)

	// opposing keys cancel out
	test.ExpectedSuccess(t, p.HandleEvent(input.Left, true))
	test.Equate(t, p.Latch().MoveDir, 0)

	// releasing one of the keys restores the other's weight
	test.ExpectedSuccess(t, p.HandleEvent(input.Right, false))
	test.Equate(t, p.Latch().MoveDir, -1)

	test.ExpectedSuccess(t, p.HandleEvent(input.Left, false))
	test.Equate(t, p.Latch().MoveDir, 0)
}

func TestFireTrigger(t *testing.T) {
	p := input.NewPort()

	// the trigger stays armed until it is latched
	test.ExpectedSuccess(t, p.HandleEvent(input.Fire, true))
	s := p.Latch()
	test.Equate(t, s.Fire, true)

	// latching rearms the trigger
	s = p.Latch()
	test.Equate(t, s.Fire, false)

	// a data value of false does not pull the trigger
	test.ExpectedSuccess(t, p.HandleEvent(input.Fire, false))
	test.Equate(t, p.Latch().Fire, false)
}

func TestQuit(t *testing.T) {
	p := input.NewPort()
	test.Equate(t, p.Quit(), false)

	test.ExpectedSuccess(t, p.HandleEvent(input.Quit, true))
	test.Equate(t, p.Quit(), true)

	// quit requests cannot be taken back
	test.ExpectedSuccess(t, p.HandleEvent(input.Quit, false))
	test.Equate(t, p.Quit(), true)
}

func TestUnhandledEvent(t *testing.T) {
	p := input.NewPort()
	err := p.HandleEvent(input.Event("Warp"), true)
	test.ExpectedFailure(t, err)
}

// script implements the input.EventPlayback interface.
type script struct {
	events []input.Event
	idx    int
}

func (sc *script) GetPlayback() (input.Event, input.EventData, error) {
	if sc.idx >= len(sc.events) {
		return input.NoEvent, false, nil
	}
	ev := sc.events[sc.idx]
	sc.idx++
	return ev, true, nil
}

// record implements the input.EventRecorder interface.
type record struct {
	events []input.Event
}

func (rc *record) RecordEvent(ev input.Event, d input.EventData) error {
	rc.events = append(rc.events, ev)
	return nil
}

func TestPlaybackAndRecording(t *testing.T) {
	p := input.NewPort()

	rc := &record{}
	p.AttachEventRecorder(rc)

	sc := &script{events: []input.Event{input.Right, input.Fire}}
	p.AttachPlayback(sc)

	// all queued events are drained in a single call and mirrored to the
	// attached recorder
	test.ExpectedSuccess(t, p.HandlePlaybackEvents())

	s := p.Latch()
	test.Equate(t, s.MoveDir, 1)
	test.Equate(t, s.Fire, true)
	test.Equate(t, len(rc.events), 2)
}
