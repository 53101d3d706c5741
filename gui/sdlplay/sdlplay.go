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
	"io"
	"runtime"
	"sync"

	"github.com/crtfrenzy/gophervaders/arcade/screen"
	"github.com/crtfrenzy/gophervaders/curated"
	"github.com/crtfrenzy/gophervaders/logger"
	"github.com/crtfrenzy/gophervaders/userinput"
	"github.com/crtfrenzy/gophervaders/version"

	"github.com/veandco/go-sdl2/sdl"
)

const windowTitle = version.ApplicationName

// the number of bytes per pixel in the frame copy.
const pixelDepth = 4

// renderer is implemented once for every supported version of OpenGL. the
// implementation is selected with the gl21 build constraint.
type renderer interface {
	// start is called once, after the GL context has been made current
	start() error

	// render uploads the pixels to the screen texture and draws the
	// texture over the window. the backbuffer is *not* swapped
	render(pixels []byte)

	destroy()
}

// SdlPlay is a fullscreen-texture presentation of the machine's frame. It
// implements the gui.GUI interface and the screen.PixelRenderer interface.
//
// The machine runs in its own goroutine so frames arrive, via NewFrame(),
// on a different goroutine to the one servicing the window. NewFrame()
// copies the pixels under lock and the copy is uploaded to the GPU by the
// next Service() iteration.
type SdlPlay struct {
	scr *screen.Screen

	window    *sdl.Window
	glContext sdl.GLContext
	rnd       renderer

	// dimensions of the frame being displayed. the window is this size
	// multiplied by the scale preference
	width  int
	height int

	// pixels from the most recent frame. shared between the machine
	// goroutine and the service goroutine
	crit struct {
		sync.Mutex
		pixels []byte
		dirty  bool
	}

	// staging area for the pixels currently being rendered. owned by the
	// service goroutine, so the crit mutex is released before the GL
	// upload and the buffer swap
	rendPixels []byte

	// user input is forwarded to whatever is driving the machine
	events chan userinput.Event

	// functions that need to be performed in the service goroutine are
	// queued for servicing at the start of every Service() iteration
	service    chan func()
	serviceErr chan error

	// preferences that persist between program executions
	prefs *preferences
}

// NewSdlPlay is the preferred method of initialisation for the SdlPlay
// type. MUST ONLY be called from the goroutine servicing SDL.
func NewSdlPlay(scr *screen.Screen) (*SdlPlay, error) {
	// the go-sdl2 package calls this for us but being explicit costs
	// nothing. the thread is never unlocked
	runtime.LockOSThread()

	pl := &SdlPlay{
		scr:        scr,
		width:      scr.Buffer().Width(),
		height:     scr.Buffer().Height(),
		service:    make(chan func(), 1),
		serviceErr: make(chan error, 1),
	}
	pl.crit.pixels = make([]byte, pl.width*pl.height*pixelDepth)
	pl.rendPixels = make([]byte, pl.width*pl.height*pixelDepth)

	if err := sdl.Init(sdl.INIT_EVERYTHING); err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	var sdlVer sdl.Version
	sdl.VERSION(&sdlVer)
	logger.Logf("sdl", "version %d.%d.%d", sdlVer.Major, sdlVer.Minor, sdlVer.Patch)

	if err := setGLAttributes(); err != nil {
		sdl.Quit()
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// the window is hidden until initialisation is complete. the scale
	// preference will correct the size before the window is shown
	var err error
	pl.window, err = sdl.CreateWindow(windowTitle,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(pl.width), int32(pl.height),
		sdl.WINDOW_OPENGL|sdl.WINDOW_ALLOW_HIGHDPI|sdl.WINDOW_HIDDEN)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	pl.glContext, err = pl.window.GLCreateContext()
	if err != nil {
		pl.Destroy(io.Discard)
		return nil, curated.Errorf("sdlplay: %v", err)
	}
	if err := pl.window.GLMakeCurrent(pl.glContext); err != nil {
		pl.Destroy(io.Discard)
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// synchronise the buffer swap with the monitor's vertical retrace
	if err := sdl.GLSetSwapInterval(1); err != nil {
		logger.Logf("sdl", "GLSetSwapInterval: %v", err)
	}

	pl.rnd = newRenderer(pl)
	if err := pl.rnd.start(); err != nil {
		pl.Destroy(io.Discard)
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// loading the preferences triggers the scale hook, sizing the window
	pl.prefs, err = newPreferences(pl)
	if err != nil {
		pl.Destroy(io.Discard)
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.AddPixelRenderer(pl)

	pl.window.Show()

	return pl, nil
}

// Destroy implements the GuiCreator interface, in conjunction with
// Service(). MUST ONLY be called from the goroutine servicing SDL.
func (pl *SdlPlay) Destroy(output io.Writer) {
	if pl.rnd != nil {
		pl.rnd.destroy()
		pl.rnd = nil
	}
	if pl.glContext != nil {
		sdl.GLDeleteContext(pl.glContext)
		pl.glContext = nil
	}
	if pl.window != nil {
		if err := pl.window.Destroy(); err != nil {
			_, _ = io.WriteString(output, err.Error())
		}
		pl.window = nil
	}
	sdl.Quit()
}

// setScale resizes the window to a multiple of the frame dimensions. called
// through the scale preference hook.
func (pl *SdlPlay) setScale(scale int) error {
	if scale < 1 || scale > 10 {
		return curated.Errorf("invalid window scale (%d)", scale)
	}
	pl.window.SetSize(int32(pl.width*scale), int32(pl.height*scale))
	return nil
}

// NewFrame implements the screen.PixelRenderer interface. It is called
// from the machine's goroutine; the frame is copied and the GPU upload
// deferred to the next Service() iteration.
func (pl *SdlPlay) NewFrame(buffer *screen.Buffer, frameNum int) error {
	pl.crit.Lock()
	defer pl.crit.Unlock()

	copy(pl.crit.pixels, buffer.Bytes())
	pl.crit.dirty = true

	return nil
}

// EndRendering implements the screen.PixelRenderer interface.
func (pl *SdlPlay) EndRendering() error {
	return nil
}
