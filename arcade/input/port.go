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

// Package input collects the events that drive the game and accumulates
// them into the state the simulation reads once per frame.
//
// Movement direction is a running sum of press and release events rather
// than a simple flag. Pressing a key adds to the sum and releasing it
// takes the same amount away, so opposing keys cancel out and a key that
// is released is always accounted for, whatever order the events arrive
// in.
package input

import (
	"github.com/crtfrenzy/gophervaders/curated"
)

// Sentinal error returned by HandleEvent().
const UnhandledEvent = "input: unhandled event (%v)"

// State is the snapshot of the port that the simulation reads at the start
// of a frame. See the Latch() function.
type State struct {
	// sum of movement events. negative values head left, positive right
	MoveDir int

	// whether the trigger has been pulled since the last frame
	Fire bool
}

// Port is the single input port of the machine. Events arrive through
// HandleEvent() and are read once per frame with Latch().
type Port struct {
	moveDir int
	fire    bool
	quit    bool

	recorder EventRecorder
	playback EventPlayback
}

// NewPort is the preferred method of initialisation for the Port type.
func NewPort() *Port {
	return &Port{}
}

// AttachEventRecorder attaches an implementation of EventRecorder to the
// port. Every event subsequently handled by the port is forwarded to the
// recorder. An argument of nil removes any existing recorder.
func (p *Port) AttachEventRecorder(r EventRecorder) {
	p.recorder = r
}

// AttachPlayback attaches an implementation of EventPlayback to the port.
// Queued events are injected by HandlePlaybackEvents(). An argument of nil
// removes any existing playback.
func (p *Port) AttachPlayback(pb EventPlayback) {
	p.playback = pb
}

// HandleEvent processes a single event, updating the state that Latch()
// reads. If an event recorder is attached the event is forwarded to it
// after processing.
func (p *Port) HandleEvent(ev Event, d EventData) error {
	switch ev {
	case NoEvent:
		return nil

	case Right:
		if d {
			p.moveDir++
		} else {
			p.moveDir--
		}

	case Left:
		if d {
			p.moveDir--
		} else {
			p.moveDir++
		}

	case Fire:
		if d {
			p.fire = true
		}

	case Quit:
		if d {
			p.quit = true
		}

	default:
		return curated.Errorf(UnhandledEvent, ev)
	}

	if p.recorder != nil {
		return p.recorder.RecordEvent(ev, d)
	}

	return nil
}

// HandlePlaybackEvents injects any events the attached playback has queued
// for the current frame. Should be called once per frame, before Latch().
func (p *Port) HandlePlaybackEvents() error {
	if p.playback == nil {
		return nil
	}

	// there may be more than one event queued for a frame
	for {
		ev, d, err := p.playback.GetPlayback()
		if err != nil {
			return err
		}
		if ev == NoEvent {
			return nil
		}

		if err := p.HandleEvent(ev, d); err != nil {
			return err
		}
	}
}

// Latch returns the current port state and rearms the fire trigger. The
// movement sum is left alone because keys that are still held must keep
// moving the player in subsequent frames.
func (p *Port) Latch() State {
	s := State{
		MoveDir: p.moveDir,
		Fire:    p.fire,
	}
	p.fire = false
	return s
}

// Quit returns true once a quit event has been received. The request
// cannot be taken back.
func (p *Port) Quit() bool {
	return p.quit
}
