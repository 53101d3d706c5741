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

package recorder_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/crtfrenzy/gophervaders/arcade"
	"github.com/crtfrenzy/gophervaders/arcade/input"
	"github.com/crtfrenzy/gophervaders/curated"
	"github.com/crtfrenzy/gophervaders/recorder"
	"github.com/crtfrenzy/gophervaders/test"
)

// record a short session and return the path of the transcript and the
// player's position at the end of the session
func recordSession(t *testing.T) (string, int) {
	t.Helper()

	transcript := filepath.Join(t.TempDir(), "recording")

	mac, err := arcade.NewMachine()
	test.ExpectedSuccess(t, err)
	mac.Screen.SetFPSCap(false)

	rec, err := recorder.NewRecorder(transcript, mac)
	test.ExpectedSuccess(t, err)
	mac.Port.AttachEventRecorder(rec)

	// move right for a few frames and then fire
	test.ExpectedSuccess(t, mac.RunForFrameCount(5, nil))
	test.ExpectedSuccess(t, mac.Port.HandleEvent(input.Right, true))
	test.ExpectedSuccess(t, mac.RunForFrameCount(5, nil))
	test.ExpectedSuccess(t, mac.Port.HandleEvent(input.Right, false))
	test.ExpectedSuccess(t, mac.Port.HandleEvent(input.Fire, true))
	test.ExpectedSuccess(t, mac.RunForFrameCount(10, nil))

	test.ExpectedSuccess(t, rec.End())

	return transcript, mac.World.Player.X
}

func TestTranscriptRoundTrip(t *testing.T) {
	transcript, endX := recordSession(t)

	test.Equate(t, recorder.IsPlaybackFile(transcript), true)

	mac, err := arcade.NewMachine()
	test.ExpectedSuccess(t, err)

	plb, err := recorder.NewPlayback(transcript)
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(plb.FrameRate), 60)

	test.ExpectedSuccess(t, plb.AttachToMachine(mac))
	mac.Screen.SetFPSCap(false)

	// replaying the same number of frames puts the machine in the same
	// state. the fingerprints carried by the transcript are checked as
	// each event is reperformed
	test.ExpectedSuccess(t, mac.RunForFrameCount(20, nil))
	test.Equate(t, mac.World.Player.X, endX)

	// the machine has run past the last event in the transcript
	ended, err := plb.EndFrame()
	test.ExpectedSuccess(t, err)
	test.Equate(t, ended, true)
}

func TestTamperedTranscript(t *testing.T) {
	transcript, _ := recordSession(t)

	// corrupt the fingerprint of the last event in the transcript
	b, err := os.ReadFile(transcript)
	test.ExpectedSuccess(t, err)

	lines := strings.Split(strings.TrimSuffix(string(b), "\n"), "\n")
	toks := strings.Split(lines[len(lines)-1], ", ")
	toks[len(toks)-1] = strings.Repeat("0", 40)
	lines[len(lines)-1] = strings.Join(toks, ", ")

	err = os.WriteFile(transcript, []byte(strings.Join(lines, "\n")+"\n"), 0o644)
	test.ExpectedSuccess(t, err)

	mac, err := arcade.NewMachine()
	test.ExpectedSuccess(t, err)

	plb, err := recorder.NewPlayback(transcript)
	test.ExpectedSuccess(t, err)
	test.ExpectedSuccess(t, plb.AttachToMachine(mac))
	mac.Screen.SetFPSCap(false)

	err = mac.RunForFrameCount(20, nil)
	test.ExpectedFailure(t, err)

	if !curated.Has(err, recorder.PlaybackHashError) {
		t.Errorf("expected playback hash error (%v)", err)
	}
}

func TestRecorderRefusesOverwrite(t *testing.T) {
	transcript, _ := recordSession(t)

	mac, err := arcade.NewMachine()
	test.ExpectedSuccess(t, err)

	_, err = recorder.NewRecorder(transcript, mac)
	test.ExpectedFailure(t, err)
}

func TestIsPlaybackFile(t *testing.T) {
	notTranscript := filepath.Join(t.TempDir(), "notes")
	err := os.WriteFile(notTranscript, []byte("just some notes\n"), 0o644)
	test.ExpectedSuccess(t, err)

	test.Equate(t, recorder.IsPlaybackFile(notTranscript), false)

	_, err = recorder.NewPlayback(notTranscript)
	test.ExpectedFailure(t, err)
}
