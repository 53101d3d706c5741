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

// Package sdlplay implements the gui.GUI interface. It is the regular way
// of playing the game: an SDL window with the frame stretched over it by
// OpenGL. Every completed frame is uploaded to a single GPU texture and
// drawn with the nearest-neighbour filter, keeping the pixels crisp at any
// window size.
//
// Two versions of OpenGL are supported. By default a 3.2 context is
// created. For older hardware, compiling with the gl21 build constraint
// selects an OpenGL 2.1 renderer instead.
//
// SDL requires that the window is created and serviced from the main
// goroutine (see the commentary in the main package for how this is
// arranged). The machine runs in a different goroutine and announces
// frames through the screen.PixelRenderer interface, so NewFrame() only
// copies the pixels; the GPU upload happens on the main goroutine during
// the next Service() iteration.
package sdlplay
