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

package sdlplay

import (
	"github.com/crtfrenzy/gophervaders/logger"
	"github.com/crtfrenzy/gophervaders/userinput"

	"github.com/veandco/go-sdl2/sdl"
)

// the number of milliseconds to wait for an SDL event. long enough to keep
// the CPU quiet but short enough that a completed frame is never far from
// the window.
const serviceTimeout = 10

// Service implements the GuiCreator interface, in conjunction with
// Destroy(). It should be called repeatedly and often by whatever is
// coordinating the main goroutine. MUST ONLY be called from the goroutine
// servicing SDL.
func (pl *SdlPlay) Service() {
	// run any function queued by SetFeature()
	select {
	case f := <-pl.service:
		f()
	default:
	}

	// wait for an SDL event or for the timeout to expire, then drain
	// whatever else has accumulated in the queue
	ev := sdl.WaitEventTimeout(serviceTimeout)
	for ; ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			pl.sendEvent(userinput.EventQuit{})

		case *sdl.KeyboardEvent:
			pl.serviceKeyboard(ev)
		}
	}

	// render the most recent frame if it has changed since the last
	// iteration. the pixels are staged so the machine is not blocked
	// waiting for the GPU (the buffer swap can stall for a whole frame
	// when synchronised with the vertical retrace)
	render := false
	pl.crit.Lock()
	if pl.crit.dirty {
		copy(pl.rendPixels, pl.crit.pixels)
		pl.crit.dirty = false
		render = true
	}
	pl.crit.Unlock()

	if render {
		pl.rnd.render(pl.rendPixels)
		pl.window.GLSwap()
	}
}

func (pl *SdlPlay) serviceKeyboard(ev *sdl.KeyboardEvent) {
	// the screenshot key is handled entirely within the gui
	if ev.Keysym.Scancode == sdl.SCANCODE_F12 {
		if ev.Type == sdl.KEYDOWN && ev.Repeat == 0 {
			if err := pl.screenshot(); err != nil {
				logger.Logf("sdlplay", "%v", err)
			}
		}
		return
	}

	mod := userinput.KeyModNone
	if sdl.GetModState()&sdl.KMOD_LALT == sdl.KMOD_LALT ||
		sdl.GetModState()&sdl.KMOD_RALT == sdl.KMOD_RALT {
		mod = userinput.KeyModAlt
	} else if sdl.GetModState()&sdl.KMOD_LSHIFT == sdl.KMOD_LSHIFT ||
		sdl.GetModState()&sdl.KMOD_RSHIFT == sdl.KMOD_RSHIFT {
		mod = userinput.KeyModShift
	} else if sdl.GetModState()&sdl.KMOD_LCTRL == sdl.KMOD_LCTRL ||
		sdl.GetModState()&sdl.KMOD_RCTRL == sdl.KMOD_RCTRL {
		mod = userinput.KeyModCtrl
	}

	pl.sendEvent(userinput.EventKeyboard{
		Key:    sdl.GetKeyName(sdl.GetKeyFromScancode(ev.Keysym.Scancode)),
		Mod:    mod,
		Down:   ev.Type == sdl.KEYDOWN,
		Repeat: ev.Repeat != 0,
	})
}

// sendEvent forwards a userinput event without blocking. the gui must
// never wait on the machine so a full channel means the event is dropped.
func (pl *SdlPlay) sendEvent(ev userinput.Event) {
	if pl.events == nil {
		return
	}

	select {
	case pl.events <- ev:
	default:
		logger.Log("sdlplay", "dropped user input event")
	}
}
