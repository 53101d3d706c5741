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

// Package screen couples the game's framebuffer with the renderers that
// consume it. The machine composites each frame into a Buffer and then
// announces it with NewFrame(), at which point every registered
// PixelRenderer sees the completed pixels. A frame limiter paces the
// announcements to the requested frame rate.
package screen

// Screen is the display side of the machine. It owns the pixel buffer and
// fans completed frames out to any number of renderers.
type Screen struct {
	buffer *Buffer

	// list of renderers to call from NewFrame(). a FrameTrigger is a
	// renderer that doesn't need notification of the end of rendering
	renderers []PixelRenderer
	triggers  []FrameTrigger

	// number of frames completed since the screen was created
	frameNum int

	lmtr *limiter
}

// NewScreen is the preferred method of initialisation for the Screen type.
func NewScreen(width, height int) (*Screen, error) {
	buffer, err := NewBuffer(width, height)
	if err != nil {
		return nil, err
	}

	return &Screen{
		buffer: buffer,
		lmtr:   newLimiter(),
	}, nil
}

// AddPixelRenderer registers an implementation of PixelRenderer. Multiple
// renderers can be added. They are notified in the order they were added.
func (scr *Screen) AddPixelRenderer(r PixelRenderer) {
	scr.renderers = append(scr.renderers, r)
}

// AddFrameTrigger registers an implementation of FrameTrigger. Multiple
// triggers can be added. Triggers are notified after any renderers.
func (scr *Screen) AddFrameTrigger(t FrameTrigger) {
	scr.triggers = append(scr.triggers, t)
}

// Buffer returns the framebuffer the machine composites into.
func (scr *Screen) Buffer() *Buffer {
	return scr.buffer
}

// FrameNum returns the number of frames completed so far.
func (scr *Screen) FrameNum() int {
	return scr.frameNum
}

// NewFrame announces the current contents of the buffer as a completed
// frame, forwarding it to every renderer and trigger. If the frame rate is
// capped then NewFrame blocks until it is time for the next frame.
func (scr *Screen) NewFrame() error {
	scr.lmtr.checkFrame()
	scr.lmtr.measureActual()

	scr.frameNum++

	for _, r := range scr.renderers {
		if err := r.NewFrame(scr.buffer, scr.frameNum); err != nil {
			return err
		}
	}

	for _, t := range scr.triggers {
		if err := t.NewFrame(scr.buffer, scr.frameNum); err != nil {
			return err
		}
	}

	return nil
}

// EndRendering forwards the end of rendering to every registered renderer.
func (scr *Screen) EndRendering() error {
	for _, r := range scr.renderers {
		if err := r.EndRendering(); err != nil {
			return err
		}
	}
	return nil
}

// SetFPSCap turns the frame limiter on or off. With the limiter off the
// machine runs as fast as the host allows.
func (scr *Screen) SetFPSCap(limit bool) {
	scr.lmtr.active = limit
}

// SetFPS requests a new frame rate. A zero or negative value restores the
// default rate.
func (scr *Screen) SetFPS(fps float32) {
	scr.lmtr.setRate(fps)
}

// GetReqFPS returns the currently requested frame rate.
func (scr *Screen) GetReqFPS() float32 {
	return scr.lmtr.requested.Load().(float32)
}

// GetActualFPS returns the most recent frame rate measurement. The
// measurement is updated about once a second.
func (scr *Screen) GetActualFPS() float32 {
	return scr.lmtr.measured.Load().(float32)
}
