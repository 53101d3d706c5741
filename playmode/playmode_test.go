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

package playmode_test

import (
	"os"
	"testing"

	"github.com/crtfrenzy/gophervaders/arcade"
	"github.com/crtfrenzy/gophervaders/gui"
	"github.com/crtfrenzy/gophervaders/playmode"
	"github.com/crtfrenzy/gophervaders/recorder"
	"github.com/crtfrenzy/gophervaders/test"
	"github.com/crtfrenzy/gophervaders/userinput"
)

// chdir changes into dir for the duration of the test, restoring the
// previous working directory on cleanup. it stands in for testing.T.Chdir
// which requires a newer version of Go than this module targets.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Error(err)
		}
	})
}

// stubGUI implements the gui.GUI interface. when autoQuit is set, a quit
// event is pushed over the event channel as soon as it is connected, so
// the machine stops after its first frame.
type stubGUI struct {
	events   chan userinput.Event
	autoQuit bool
}

func (s *stubGUI) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	if request == gui.ReqSetEventChan {
		s.events = args[0].(chan userinput.Event)
		if s.autoQuit {
			s.events <- userinput.EventQuit{}
		}
	}
	return nil
}

func TestPlayQuitsOnGuiEvent(t *testing.T) {
	mac, err := arcade.NewMachine()
	test.ExpectedSuccess(t, err)
	defer mac.End()

	mac.Screen.SetFPSCap(false)

	err = playmode.Play(mac, &stubGUI{autoQuit: true}, false, "")
	test.ExpectedSuccess(t, err)
}

func TestPlayRequiresMachineAndGui(t *testing.T) {
	err := playmode.Play(nil, nil, false, "")
	test.ExpectedFailure(t, err)
}

func TestPlayRecordsAndReplays(t *testing.T) {
	chdir(t, t.TempDir())

	const transcript = "transcript"

	// record a session. the quit event that ends the session is itself
	// recorded
	mac, err := arcade.NewMachine()
	test.ExpectedSuccess(t, err)
	mac.Screen.SetFPSCap(false)

	err = playmode.Play(mac, &stubGUI{autoQuit: true}, true, transcript)
	test.ExpectedSuccess(t, err)
	test.ExpectedSuccess(t, mac.End())

	test.Equate(t, recorder.IsPlaybackFile(transcript), true)

	// play the session back. the gui sends nothing this time; the session
	// ends when the recorded quit event comes through the input port
	mac, err = arcade.NewMachine()
	test.ExpectedSuccess(t, err)
	defer mac.End()
	mac.Screen.SetFPSCap(false)

	err = playmode.Play(mac, &stubGUI{}, false, transcript)
	test.ExpectedSuccess(t, err)
}
