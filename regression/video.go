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
	"strconv"
	"strings"

	"github.com/crtfrenzy/gophervaders/arcade"
	"github.com/crtfrenzy/gophervaders/curated"
	"github.com/crtfrenzy/gophervaders/database"
	"github.com/crtfrenzy/gophervaders/digest"
)

const videoEntryID = "video"

const (
	videoFieldNumFrames int = iota
	videoFieldDigest
	videoFieldNotes
	numVideoFields
)

// VideoRegression is a regression type that runs the machine with no input
// for a set number of frames and compares the chained fingerprint of the
// video output.
type VideoRegression struct {
	NumFrames int
	Digest    string
	Notes     string
}

func deserialiseVideoEntry(fields database.SerialisedEntry) (database.Entry, error) {
	reg := &VideoRegression{}

	// basic sanity check
	if len(fields) > numVideoFields {
		return nil, curated.Errorf("video: too many fields")
	}
	if len(fields) < numVideoFields {
		return nil, curated.Errorf("video: too few fields")
	}

	var err error

	reg.NumFrames, err = strconv.Atoi(fields[videoFieldNumFrames])
	if err != nil {
		return nil, curated.Errorf("video: invalid numFrames field [%s]", fields[videoFieldNumFrames])
	}

	reg.Digest = fields[videoFieldDigest]
	reg.Notes = fields[videoFieldNotes]

	return reg, nil
}

// ID implements the database.Entry interface.
func (reg VideoRegression) ID() string {
	return videoEntryID
}

// String implements the database.Entry interface.
func (reg VideoRegression) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("[%s] %d frames", reg.ID(), reg.NumFrames))
	if reg.Notes != "" {
		s.WriteString(fmt.Sprintf(" [%s]", reg.Notes))
	}
	return s.String()
}

// Serialise implements the database.Entry interface.
func (reg *VideoRegression) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{
			strconv.Itoa(reg.NumFrames),
			reg.Digest,
			reg.Notes,
		},
		nil
}

// CleanUp implements the database.Entry interface.
func (reg VideoRegression) CleanUp() error {
	return nil
}

// regress implements the regression.Regressor interface.
func (reg *VideoRegression) regress(newRegression bool, output io.Writer, msg string) (bool, string, error) {
	output.Write([]byte(msg))

	mac, err := arcade.NewMachine()
	if err != nil {
		return false, "", curated.Errorf("video: %v", err)
	}
	defer mac.End()

	dig, err := digest.NewVideo(mac.Screen)
	if err != nil {
		return false, "", curated.Errorf("video: %v", err)
	}

	// run as fast as possible
	mac.Screen.SetFPSCap(false)

	err = mac.RunForFrameCount(reg.NumFrames, nil)
	if err != nil {
		return false, "", curated.Errorf("video: %v", err)
	}

	if newRegression {
		reg.Digest = dig.Hash()
		return true, "", nil
	}

	if dig.Hash() != reg.Digest {
		failm := fmt.Sprintf("video digest mismatch after %d frames", reg.NumFrames)
		return false, failm, nil
	}

	return true, "", nil
}
