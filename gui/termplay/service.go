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

package termplay

import (
	"time"

	"github.com/crtfrenzy/gophervaders/logger"
	"github.com/crtfrenzy/gophervaders/userinput"

	"github.com/gdamore/tcell/v2"
)

// how long to wait for a terminal event before giving up and checking for
// a new frame instead.
const serviceTimeout = 10 * time.Millisecond

// Service implements the GuiCreator interface, in conjunction with
// Destroy(). It should be called repeatedly and often by whatever is
// coordinating the main goroutine.
func (tp *TermPlay) Service() {
	// run any function queued by SetFeature()
	select {
	case f := <-tp.service:
		f()
	default:
	}

	// wait for a terminal event or for the timeout to expire, then drain
	// whatever else has accumulated
	select {
	case ev := <-tp.tevents:
		tp.serviceEvent(ev)
	case <-time.After(serviceTimeout):
	}

	drained := false
	for !drained {
		select {
		case ev := <-tp.tevents:
			tp.serviceEvent(ev)
		default:
			drained = true
		}
	}

	tp.releaseStaleKeys()

	// draw the most recent frame if it has changed since the last
	// iteration
	render := false
	tp.crit.Lock()
	if tp.crit.dirty {
		copy(tp.rendPixels, tp.crit.pixels)
		tp.crit.dirty = false
		render = true
	}
	tp.crit.Unlock()

	if render {
		tp.render()
	}
}

func (tp *TermPlay) serviceEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		tp.serviceKeyboard(ev)

	case *tcell.EventResize:
		tp.tscr.Clear()
		tp.tscr.Sync()

		// force a full redraw at the new size
		tp.crit.Lock()
		tp.crit.dirty = true
		tp.crit.Unlock()
	}
}

func (tp *TermPlay) serviceKeyboard(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		tp.sendEvent(userinput.EventQuit{})

	case tcell.KeyLeft:
		tp.holdKey("Left")

	case tcell.KeyRight:
		tp.holdKey("Right")

	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			// there is no release event to wait for so the press and the
			// release are sent together
			tp.sendEvent(userinput.EventKeyboard{Key: "Space", Down: true})
			tp.sendEvent(userinput.EventKeyboard{Key: "Space", Down: false})

		case 'q', 'Q':
			tp.sendEvent(userinput.EventQuit{})
		}
	}
}

// holdKey notes that a movement key has been pressed. the first press
// sends the key-down event; autorepeat presses just push the synthesised
// release further into the future.
func (tp *TermPlay) holdKey(key string) {
	if _, ok := tp.held[key]; !ok {
		tp.sendEvent(userinput.EventKeyboard{Key: key, Down: true})
	}
	hold := time.Duration(tp.prefs.holdPeriod.Get().(int)) * time.Millisecond
	tp.held[key] = time.Now().Add(hold)
}

// releaseStaleKeys synthesises the key-up event for any held key that has
// not autorepeated recently.
func (tp *TermPlay) releaseStaleKeys() {
	now := time.Now()
	for key, deadline := range tp.held {
		if now.After(deadline) {
			tp.sendEvent(userinput.EventKeyboard{Key: key, Down: false})
			delete(tp.held, key)
		}
	}
}

// sendEvent forwards a userinput event without blocking. the gui must
// never wait on the machine so a full channel means the event is dropped.
func (tp *TermPlay) sendEvent(ev userinput.Event) {
	if tp.events == nil {
		return
	}

	select {
	case tp.events <- ev:
	default:
		logger.Log("termplay", "dropped user input event")
	}
}
