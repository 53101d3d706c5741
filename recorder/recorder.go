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

// Package recorder transcribes user input to disk so that it can be
// reperformed at a later date. Every event in the transcript carries the
// fingerprint of the video output at the time of the event, meaning that a
// playback session can verify that the machine behaves exactly as it did
// when the recording was made. The regression package uses this property
// to catch changes in game behaviour.
package recorder

import (
	"fmt"
	"io"
	"os"

	"github.com/crtfrenzy/gophervaders/arcade"
	"github.com/crtfrenzy/gophervaders/arcade/input"
	"github.com/crtfrenzy/gophervaders/curated"
	"github.com/crtfrenzy/gophervaders/digest"
)

// Recorder transcribes user input to a file. It implements the
// input.EventRecorder interface.
type Recorder struct {
	transcript string
	output     *os.File

	mac    *arcade.Machine
	digest *digest.Video
}

// NewRecorder is the preferred method of implementation for the Recorder
// type. Note that attaching the recorder to the machine's input port is
// the responsibility of the caller.
func NewRecorder(transcript string, mac *arcade.Machine) (*Recorder, error) {
	var err error

	// check we're working with correct information
	if mac == nil || mac.Screen == nil {
		return nil, curated.Errorf("recorder: no machine available")
	}

	rec := &Recorder{
		transcript: transcript,
		mac:        mac,
	}

	// video digest for fingerprinting the frames between events
	rec.digest, err = digest.NewVideo(mac.Screen)
	if err != nil {
		return nil, curated.Errorf("recorder: %v", err)
	}

	// open file; refuse to overwrite an existing transcript
	_, err = os.Stat(transcript)
	if os.IsNotExist(err) {
		rec.output, err = os.Create(transcript)
		if err != nil {
			return nil, curated.Errorf("recorder: can't create transcript (%s)", transcript)
		}
	} else {
		return nil, curated.Errorf("recorder: transcript already exists (%s)", transcript)
	}

	err = rec.writeHeader()
	if err != nil {
		return nil, err
	}

	return rec, nil
}

// End closes the transcript file. The recorder is unusable afterwards.
func (rec *Recorder) End() error {
	err := rec.output.Close()
	if err != nil {
		return curated.Errorf("recorder: %v", err)
	}

	return nil
}

// RecordEvent implements the input.EventRecorder interface.
func (rec *Recorder) RecordEvent(ev input.Event, d input.EventData) error {
	// don't write no-events to the transcript
	if ev == input.NoEvent {
		return nil
	}

	line := fmt.Sprintf("%v%s%v%s%v%s%v\n",
		ev, fieldSep,
		d, fieldSep,
		rec.mac.Screen.FrameNum(), fieldSep,
		rec.digest.Hash(),
	)

	n, err := io.WriteString(rec.output, line)
	if err != nil {
		return curated.Errorf("recorder: %v", err)
	}

	if n != len(line) {
		return curated.Errorf("recorder: output truncated")
	}

	return nil
}
