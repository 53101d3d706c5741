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

package screen

// PixelRenderer implementations display, or otherwise work with, the
// completed frames of a Screen. For example digest.Video.
//
// PixelRenderer implementations often find it convenient to maintain a
// reference to the parent Screen.
type PixelRenderer interface {
	// NewFrame is called once per frame, after the machine has finished
	// compositing into the buffer. The buffer contents are valid for the
	// duration of the call only; implementations that need the pixels for
	// longer must copy them.
	NewFrame(buffer *Buffer, frameNum int) error

	// some renderers may need to conclude and/or dispose of resources
	// gently. for simplicity, the PixelRenderer should be considered
	// unusable after EndRendering() has been called
	EndRendering() error
}

// FrameTrigger implementations listen for NewFrame events. FrameTrigger is
// a subset of PixelRenderer.
type FrameTrigger interface {
	NewFrame(buffer *Buffer, frameNum int) error
}
