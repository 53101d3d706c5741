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

package recorder

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/crtfrenzy/gophervaders/curated"
	"github.com/crtfrenzy/gophervaders/version"
)

const (
	fieldEvent int = iota
	fieldEventData
	fieldFrame
	fieldHash
	numFields
)

const fieldSep = ", "

// the first line of every transcript file
const magicString = "gophervaders_playback"

// transcript file header format
// -----------------------------
//
// <magic string>
// <version>
// <frame rate>

const (
	lineMagicString int = iota
	lineVersion
	lineFrameRate
	numHeaderLines
)

func (rec *Recorder) writeHeader() error {
	lines := make([]string, numHeaderLines)

	ver, _, _ := version.Version()

	// add header information
	lines[lineMagicString] = magicString
	lines[lineVersion] = ver
	lines[lineFrameRate] = fmt.Sprintf("%.1f\n", rec.mac.Screen.GetReqFPS())

	line := strings.Join(lines, "\n")

	n, err := io.WriteString(rec.output, line)
	if err != nil {
		rec.output.Close()
		return curated.Errorf("recorder: %v", err)
	}

	if n != len(line) {
		rec.output.Close()
		return curated.Errorf("recorder: output truncated")
	}

	return nil
}

func (plb *Playback) readHeader(lines []string) error {
	if len(lines) < numHeaderLines {
		return curated.Errorf("playback: transcript header truncated")
	}

	if lines[lineMagicString] != magicString {
		return curated.Errorf("playback: not a playback transcript (%s)", plb.transcript)
	}

	// there is no version validation. a transcript made with a different
	// version of the game will simply fail with a hash error if the game
	// has changed in any meaningful way
	plb.Version = lines[lineVersion]

	fps, err := strconv.ParseFloat(lines[lineFrameRate], 32)
	if err != nil {
		return curated.Errorf("playback: unreadable frame rate in transcript")
	}
	plb.FrameRate = float32(fps)

	return nil
}

// IsPlaybackFile returns true if the named file is a playback transcript.
func IsPlaybackFile(filename string) bool {
	f, err := os.Open(filename)
	if err != nil {
		return false
	}
	defer f.Close()

	b := make([]byte, len(magicString))
	n, err := f.Read(b)
	if n != len(magicString) || err != nil {
		return false
	}

	return string(b) == magicString
}
