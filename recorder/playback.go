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

	"github.com/crtfrenzy/gophervaders/arcade"
	"github.com/crtfrenzy/gophervaders/arcade/input"
	"github.com/crtfrenzy/gophervaders/curated"
	"github.com/crtfrenzy/gophervaders/digest"
)

type playbackEntry struct {
	event input.Event
	data  input.EventData
	frame int
	hash  string

	// the line in the transcript file the event appears on
	line int
}

// Playback is used to reperform the user input recorded in a previously
// recorded file. It implements the input.EventPlayback interface.
type Playback struct {
	transcript string

	// information from the transcript header
	Version   string
	FrameRate float32

	sequence []playbackEntry
	seqCt    int

	mac    *arcade.Machine
	digest *digest.Video

	// the last frame on which an event occurs
	endFrame int
}

func (plb Playback) String() string {
	currFrame := plb.mac.Screen.FrameNum()
	return fmt.Sprintf("%d/%d (%.1f%%)", currFrame, plb.endFrame, 100*(float64(currFrame)/float64(plb.endFrame)))
}

// EndFrame returns true if the machine has gone past the last frame of the
// playback.
func (plb Playback) EndFrame() (bool, error) {
	return plb.mac.Screen.FrameNum() > plb.endFrame, nil
}

// NewPlayback is the preferred method of implementation for the Playback
// type.
func NewPlayback(transcript string) (*Playback, error) {
	plb := &Playback{
		transcript: transcript,
		sequence:   make([]playbackEntry, 0),
	}

	tf, err := os.Open(transcript)
	if err != nil {
		return nil, curated.Errorf("playback: %v", err)
	}

	buffer, err := io.ReadAll(tf)
	if err != nil {
		return nil, curated.Errorf("playback: %v", err)
	}

	err = tf.Close()
	if err != nil {
		return nil, curated.Errorf("playback: %v", err)
	}

	// convert file contents to an array of lines
	lines := strings.Split(string(buffer), "\n")

	// read header and perform validation checks
	err = plb.readHeader(lines)
	if err != nil {
		return nil, err
	}

	// loop through transcript and convert lines to playback entries
	for i := numHeaderLines; i < len(lines)-1; i++ {
		toks := strings.Split(lines[i], fieldSep)

		if len(toks) != numFields {
			return nil, curated.Errorf("playback: expected %d fields at line %d", numFields, i+1)
		}

		// create a new playbackEntry and convert tokens accordingly. any
		// error in the transcript causes failure
		entry := playbackEntry{line: i + 1}

		entry.event = input.Event(toks[fieldEvent])

		b, err := strconv.ParseBool(toks[fieldEventData])
		if err != nil {
			return nil, curated.Errorf("playback: %s line %d", err, i+1)
		}
		entry.data = input.EventData(b)

		entry.frame, err = strconv.Atoi(toks[fieldFrame])
		if err != nil {
			return nil, curated.Errorf("playback: %s line %d", err, i+1)
		}

		// assuming that frames are listed in order in the file. update
		// endFrame with the most recent frame every time
		plb.endFrame = entry.frame

		entry.hash = toks[fieldHash]

		// add new entry to the playback sequence
		plb.sequence = append(plb.sequence, entry)
	}

	return plb, nil
}

// AttachToMachine attaches the playback instance to the machine's input
// port. The machine is paced at the frame rate of the original session.
func (plb *Playback) AttachToMachine(mac *arcade.Machine) error {
	// check we're working with correct information
	if mac == nil || mac.Screen == nil {
		return curated.Errorf("playback: no machine available")
	}
	plb.mac = mac

	var err error

	plb.digest, err = digest.NewVideo(mac.Screen)
	if err != nil {
		return curated.Errorf("playback: %v", err)
	}

	mac.Screen.SetFPS(plb.FrameRate)
	mac.Port.AttachPlayback(plb)

	return nil
}

// Sentinal error returned by GetPlayback if a hash error is encountered.
const PlaybackHashError = "playback: unexpected video output at line %d (frame %d)"

// GetPlayback implements the input.EventPlayback interface, returning the
// next event queued for the current frame.
func (plb *Playback) GetPlayback() (input.Event, input.EventData, error) {
	// we've reached the end of the list of events
	if plb.seqCt >= len(plb.sequence) {
		return input.NoEvent, false, nil
	}

	// compare current frame number with the recording
	curr := plb.mac.Screen.FrameNum()

	entry := plb.sequence[plb.seqCt]
	if entry.frame == curr {
		plb.seqCt++
		if entry.hash != plb.digest.Hash() {
			return input.NoEvent, false, curated.Errorf(PlaybackHashError, entry.line, curr)
		}
		return entry.event, entry.data, nil
	}

	// next event is not for this frame
	return input.NoEvent, false, nil
}
