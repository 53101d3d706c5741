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
	"io"
	"sync"
	"time"

	"github.com/crtfrenzy/gophervaders/arcade/screen"
	"github.com/crtfrenzy/gophervaders/curated"
	"github.com/crtfrenzy/gophervaders/userinput"

	"github.com/gdamore/tcell/v2"
)

// the number of bytes per pixel in the frame copy.
const pixelDepth = 4

// TermPlay draws the machine's frame into a terminal. It implements the
// gui.GUI interface and the screen.PixelRenderer interface.
//
// As with the sdlplay package, the machine runs in its own goroutine so
// NewFrame() only copies the pixels. The drawing happens in the goroutine
// that calls Service().
type TermPlay struct {
	scr  *screen.Screen
	tscr tcell.Screen

	// dimensions of the frame being displayed
	width  int
	height int

	// pixels from the most recent frame. shared between the machine
	// goroutine and the service goroutine
	crit struct {
		sync.Mutex
		pixels []byte
		dirty  bool
	}

	// staging area for the pixels currently being drawn. owned by the
	// service goroutine
	rendPixels []byte

	// user input is forwarded to whatever is driving the machine
	events chan userinput.Event

	// terminal events arrive over a channel fed by the polling goroutine
	tevents chan tcell.Event

	// movement keys currently considered to be held, mapped to the
	// deadline at which the release event will be synthesised
	held map[string]time.Time

	// functions that need to be performed in the service goroutine
	service    chan func()
	serviceErr chan error

	prefs *preferences
}

// NewTermPlay is the preferred method of initialisation for the TermPlay
// type. The terminal is put into raw mode until Destroy() is called.
func NewTermPlay(scr *screen.Screen) (*TermPlay, error) {
	tp := &TermPlay{
		scr:        scr,
		width:      scr.Buffer().Width(),
		height:     scr.Buffer().Height(),
		tevents:    make(chan tcell.Event, 32),
		held:       make(map[string]time.Time),
		service:    make(chan func(), 1),
		serviceErr: make(chan error, 1),
	}
	tp.crit.pixels = make([]byte, tp.width*tp.height*pixelDepth)
	tp.rendPixels = make([]byte, tp.width*tp.height*pixelDepth)

	var err error
	tp.tscr, err = tcell.NewScreen()
	if err != nil {
		return nil, curated.Errorf("termplay: %v", err)
	}
	if err := tp.tscr.Init(); err != nil {
		return nil, curated.Errorf("termplay: %v", err)
	}

	tp.prefs, err = newPreferences(tp)
	if err != nil {
		tp.tscr.Fini()
		return nil, curated.Errorf("termplay: %v", err)
	}

	tp.tscr.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	tp.tscr.HideCursor()
	tp.tscr.Clear()

	// PollEvent blocks so it gets a goroutine of its own. it returns nil
	// once the tcell screen has been finalised
	go func() {
		for {
			ev := tp.tscr.PollEvent()
			if ev == nil {
				return
			}
			tp.tevents <- ev
		}
	}()

	scr.AddPixelRenderer(tp)

	return tp, nil
}

// Destroy implements the GuiCreator interface, in conjunction with
// Service(). Restores the terminal to its previous state.
func (tp *TermPlay) Destroy(output io.Writer) {
	tp.tscr.Fini()
}

// NewFrame implements the screen.PixelRenderer interface. It is called
// from the machine's goroutine; the frame is copied and the drawing
// deferred to the next Service() iteration.
func (tp *TermPlay) NewFrame(buffer *screen.Buffer, frameNum int) error {
	tp.crit.Lock()
	defer tp.crit.Unlock()

	copy(tp.crit.pixels, buffer.Bytes())
	tp.crit.dirty = true

	return nil
}

// EndRendering implements the screen.PixelRenderer interface.
func (tp *TermPlay) EndRendering() error {
	return nil
}
