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

package regression

import (
	"fmt"
	"io"
	"os"
	"path"
	"strings"
	"time"

	"github.com/crtfrenzy/gophervaders/arcade"
	"github.com/crtfrenzy/gophervaders/curated"
	"github.com/crtfrenzy/gophervaders/database"
	"github.com/crtfrenzy/gophervaders/recorder"
)

const playbackEntryID = "playback"

const (
	playbackFieldScript int = iota
	playbackFieldNotes
	numPlaybackFields
)

// PlaybackRegression is a regression type that reperforms a recorded
// session, relying on the fingerprints embedded in the transcript to
// detect any divergence. Playback regressions can take a while to run
// because by their nature they extend over many frames - many more than
// is typical with the video type.
type PlaybackRegression struct {
	Script string
	Notes  string
}

func deserialisePlaybackEntry(fields database.SerialisedEntry) (database.Entry, error) {
	reg := &PlaybackRegression{}

	// basic sanity check
	if len(fields) > numPlaybackFields {
		return nil, curated.Errorf("playback: too many fields")
	}
	if len(fields) < numPlaybackFields {
		return nil, curated.Errorf("playback: too few fields")
	}

	// string fields need no conversion
	reg.Script = fields[playbackFieldScript]
	reg.Notes = fields[playbackFieldNotes]

	return reg, nil
}

// ID implements the database.Entry interface.
func (reg PlaybackRegression) ID() string {
	return playbackEntryID
}

// String implements the database.Entry interface.
func (reg PlaybackRegression) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("[%s] %s", reg.ID(), path.Base(reg.Script)))
	if reg.Notes != "" {
		s.WriteString(fmt.Sprintf(" [%s]", reg.Notes))
	}
	return s.String()
}

// Serialise implements the database.Entry interface.
func (reg *PlaybackRegression) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{
			reg.Script,
			reg.Notes,
		},
		nil
}

// CleanUp implements the database.Entry interface.
func (reg PlaybackRegression) CleanUp() error {
	err := os.Remove(reg.Script)
	if _, ok := err.(*os.PathError); ok {
		return nil
	}
	return err
}

// regress implements the regression.Regressor interface.
func (reg *PlaybackRegression) regress(newRegression bool, output io.Writer, msg string) (bool, string, error) {
	output.Write([]byte(msg))

	plb, err := recorder.NewPlayback(reg.Script)
	if err != nil {
		return false, "", curated.Errorf("playback: %v", err)
	}

	mac, err := arcade.NewMachine()
	if err != nil {
		return false, "", curated.Errorf("playback: %v", err)
	}
	defer mac.End()

	err = plb.AttachToMachine(mac)
	if err != nil {
		return false, "", curated.Errorf("playback: %v", err)
	}

	// run as fast as possible
	mac.Screen.SetFPSCap(false)

	// display progress meter every second
	tck := time.NewTicker(time.Second)
	defer tck.Stop()

	// run machine until the playback has run its course
	err = mac.Run(func() (bool, error) {
		select {
		case <-tck.C:
			output.Write([]byte(fmt.Sprintf("\r%s [%s]", msg, plb)))
		default:
		}

		ended, err := plb.EndFrame()
		if err != nil {
			return false, err
		}

		return !ended, nil
	})

	if err != nil {
		// a hash error means the playback has diverged. the test has
		// failed rather than errored
		if curated.Has(err, recorder.PlaybackHashError) {
			failm := fmt.Sprintf("%v", err)
			return false, failm, nil
		}
		return false, "", curated.Errorf("playback: %v", err)
	}

	// if this is a new regression we want to store the script in the
	// regression scripts directory
	if newRegression {
		newScript, err := uniqueScriptName()
		if err != nil {
			return false, "", curated.Errorf("playback: %v", err)
		}

		// check that the filename is unique
		nf, _ := os.Open(newScript)
		// no need to bother with returned error. nf tells us everything we
		// need
		if nf != nil {
			nf.Close()
			return false, "", curated.Errorf("playback: script already exists (%s)", newScript)
		}

		// create new file
		nf, err = os.Create(newScript)
		if err != nil {
			return false, "", curated.Errorf("playback: error copying script: %v", err)
		}
		defer nf.Close()

		// open old file
		of, err := os.Open(reg.Script)
		if err != nil {
			return false, "", curated.Errorf("playback: error copying script: %v", err)
		}
		defer of.Close()

		// copy old file to new file
		_, err = io.Copy(nf, of)
		if err != nil {
			return false, "", curated.Errorf("playback: error copying script: %v", err)
		}

		// update script name in regression type
		reg.Script = newScript
	}

	return true, "", nil
}
