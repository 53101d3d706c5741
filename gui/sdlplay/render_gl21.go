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

//go:build gl21
// +build gl21

package sdlplay

import (
	"github.com/crtfrenzy/gophervaders/curated"
	"github.com/crtfrenzy/gophervaders/logger"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/veandco/go-sdl2/sdl"
)

// set the attributes required for an OpenGL 2.1 context. must be called
// before window creation.
func setGLAttributes() error {
	if err := sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 2); err != nil {
		return err
	}
	return sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
}

// fallback renderer for very old GPUs. the fixed-function pipeline draws a
// single textured quad over the window.
type gl21 struct {
	pl *SdlPlay

	// the texture the frame is uploaded to on every render
	screenTexture uint32
}

func newRenderer(pl *SdlPlay) renderer {
	return &gl21{pl: pl}
}

// start implements the renderer interface.
func (rnd *gl21) start() error {
	if err := gl.Init(); err != nil {
		return curated.Errorf("gl21: %v", err)
	}

	logger.Logf("gl21", "vendor: %s", gl.GoStr(gl.GetString(gl.VENDOR)))
	logger.Logf("gl21", "renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
	logger.Logf("gl21", "driver: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	gl.GenTextures(1, &rnd.screenTexture)
	gl.BindTexture(gl.TEXTURE_2D, rnd.screenTexture)
	gl.TexImage2D(gl.TEXTURE_2D, 0,
		gl.RGBA, int32(rnd.pl.width), int32(rnd.pl.height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE,
		nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	return nil
}

// render implements the renderer interface.
func (rnd *gl21) render(pixels []byte) {
	winw, winh := rnd.pl.window.GLGetDrawableSize()
	gl.Viewport(0, 0, winw, winh)

	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.Enable(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, rnd.screenTexture)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0,
		0, 0, int32(rnd.pl.width), int32(rnd.pl.height),
		gl.RGBA, gl.UNSIGNED_BYTE,
		gl.Ptr(pixels))

	gl.MatrixMode(gl.PROJECTION)
	gl.LoadIdentity()
	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadIdentity()

	// the frame puts row zero at the bottom of the screen, which is also
	// where OpenGL puts texture coordinate zero, so the quad needs no
	// flipping
	gl.Begin(gl.QUADS)
	gl.TexCoord2f(0.0, 0.0)
	gl.Vertex2f(-1.0, -1.0)
	gl.TexCoord2f(1.0, 0.0)
	gl.Vertex2f(1.0, -1.0)
	gl.TexCoord2f(1.0, 1.0)
	gl.Vertex2f(1.0, 1.0)
	gl.TexCoord2f(0.0, 1.0)
	gl.Vertex2f(-1.0, 1.0)
	gl.End()
}

// destroy implements the renderer interface.
func (rnd *gl21) destroy() {
	gl.DeleteTextures(1, &rnd.screenTexture)
}
