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

// Package digest fingerprints the video output of the machine. The
// fingerprint of each frame is chained to the fingerprint of the frame
// before it, so a single hash value summarises the entire visual history
// of a session. Used by the recorder and regression packages to compare
// game sessions without storing any actual frame data.
package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/crtfrenzy/gophervaders/arcade/screen"
	"github.com/crtfrenzy/gophervaders/curated"
)

// Video is a screen.PixelRenderer that fingerprints every frame it sees.
type Video struct {
	digest   [sha1.Size]byte
	scratch  []byte
	frameNum int
}

// NewVideo initialises a new instance of Video, registering it as a
// renderer with the supplied screen.
func NewVideo(scr *screen.Screen) (*Video, error) {
	dig := &Video{}

	// register ourselves as a screen.PixelRenderer
	scr.AddPixelRenderer(dig)

	return dig, nil
}

// Hash returns the current fingerprint as a printable string.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest resets the fingerprint to its initial value.
func (dig *Video) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
}

// FrameNum returns the frame number of the most recent frame to have been
// folded into the fingerprint.
func (dig *Video) FrameNum() int {
	return dig.frameNum
}

// NewFrame implements the screen.PixelRenderer interface.
func (dig *Video) NewFrame(buffer *screen.Buffer, frameNum int) error {
	b := buffer.Bytes()

	// the scratch area holds the previous fingerprint followed by the
	// frame data
	if dig.scratch == nil {
		dig.scratch = make([]byte, len(dig.digest)+len(b))
	}

	// chain fingerprints by copying the value of the last fingerprint to
	// the head of the frame data
	n := copy(dig.scratch, dig.digest[:])
	if n != len(dig.digest) {
		return curated.Errorf("digest: error chaining fingerprints")
	}

	n = copy(dig.scratch[len(dig.digest):], b)
	if n != len(b) {
		return curated.Errorf("digest: error copying frame data")
	}

	dig.digest = sha1.Sum(dig.scratch)
	dig.frameNum = frameNum

	return nil
}

// EndRendering implements the screen.PixelRenderer interface.
func (dig *Video) EndRendering() error {
	return nil
}
