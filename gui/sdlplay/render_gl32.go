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

//go:build !gl21
// +build !gl21

package sdlplay

import (
	"strings"

	"github.com/crtfrenzy/gophervaders/curated"
	"github.com/crtfrenzy/gophervaders/logger"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/veandco/go-sdl2/sdl"
)

// set the attributes required for an OpenGL 3.2 context. must be called
// before window creation.
func setGLAttributes() error {
	if err := sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 3); err != nil {
		return err
	}
	if err := sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 2); err != nil {
		return err
	}
	if err := sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG); err != nil {
		return err
	}
	return sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
}

// the vertex shader produces a triangle strip covering the entire window
// without any buffered geometry. the frame puts row zero at the bottom of
// the screen, which is also where OpenGL puts texture coordinate zero, so
// the texture coordinates need no flipping.
const vertexShader = `
#version 150

noperspective out vec2 TexCoord;

void main()
{
	vec2 pos = vec2(float(gl_VertexID & 1), float((gl_VertexID >> 1) & 1));
	TexCoord = pos;
	gl_Position = vec4(pos * 2.0 - 1.0, 0.0, 1.0);
}
`

const fragmentShader = `
#version 150

uniform sampler2D Texture;

noperspective in vec2 TexCoord;
out vec4 FragColor;

void main()
{
	FragColor = texture(Texture, TexCoord);
}
`

type gl32 struct {
	pl *SdlPlay

	shaderHandle uint32
	vao          uint32

	// uniform locations
	texture int32

	// the texture the frame is uploaded to on every render
	screenTexture uint32
}

func newRenderer(pl *SdlPlay) renderer {
	return &gl32{pl: pl}
}

// start implements the renderer interface.
func (rnd *gl32) start() error {
	if err := gl.Init(); err != nil {
		return curated.Errorf("gl32: %v", err)
	}

	logger.Logf("gl32", "vendor: %s", gl.GoStr(gl.GetString(gl.VENDOR)))
	logger.Logf("gl32", "renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
	logger.Logf("gl32", "driver: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	rnd.createProgram(vertexShader, fragmentShader)

	// the core profile requires a bound vertex array object when drawing,
	// even though the vertex shader generates its own geometry
	gl.GenVertexArrays(1, &rnd.vao)
	gl.BindVertexArray(rnd.vao)

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
func (rnd *gl32) render(pixels []byte) {
	winw, winh := rnd.pl.window.GLGetDrawableSize()
	gl.Viewport(0, 0, winw, winh)

	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(rnd.shaderHandle)
	gl.BindVertexArray(rnd.vao)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, rnd.screenTexture)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0,
		0, 0, int32(rnd.pl.width), int32(rnd.pl.height),
		gl.RGBA, gl.UNSIGNED_BYTE,
		gl.Ptr(pixels))
	gl.Uniform1i(rnd.texture, 0)

	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
}

// destroy implements the renderer interface.
func (rnd *gl32) destroy() {
	gl.DeleteTextures(1, &rnd.screenTexture)
	gl.DeleteVertexArrays(1, &rnd.vao)
	gl.DeleteProgram(rnd.shaderHandle)
}

// compile and link the shader programs. a shader that fails to compile
// indicates a programming error so failure is a panic.
func (rnd *gl32) createProgram(vertProgram string, fragProgram string) {
	rnd.shaderHandle = gl.CreateProgram()

	vertHandle := gl.CreateShader(gl.VERTEX_SHADER)
	fragHandle := gl.CreateShader(gl.FRAGMENT_SHADER)

	glShaderSource := func(handle uint32, source string) {
		csource, free := gl.Strs(source + "\x00")
		defer free()

		gl.ShaderSource(handle, 1, csource, nil)
	}

	glShaderSource(vertHandle, vertProgram)
	glShaderSource(fragHandle, fragProgram)

	gl.CompileShader(vertHandle)
	if log := getShaderCompileError(vertHandle); log != "" {
		panic(log)
	}

	gl.CompileShader(fragHandle)
	if log := getShaderCompileError(fragHandle); log != "" {
		panic(log)
	}

	gl.AttachShader(rnd.shaderHandle, vertHandle)
	gl.AttachShader(rnd.shaderHandle, fragHandle)
	gl.LinkProgram(rnd.shaderHandle)

	// once the shader program has been linked the individual shaders
	// are no longer needed
	gl.DeleteShader(fragHandle)
	gl.DeleteShader(vertHandle)

	rnd.texture = gl.GetUniformLocation(rnd.shaderHandle, gl.Str("Texture"+"\x00"))
}

// getShaderCompileError returns the most recent error generated by the
// shader compiler.
func getShaderCompileError(shader uint32) string {
	var isCompiled int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &isCompiled)
	if isCompiled == 0 {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		if logLength > 0 {
			// logLength includes the null character
			log := strings.Repeat("\x00", int(logLength+1))
			gl.GetShaderInfoLog(shader, logLength, &logLength, gl.Str(log))
			return log
		}
	}
	return ""
}
