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

package regression_test

import (
	"os"
	"strings"
	"testing"

	"github.com/crtfrenzy/gophervaders/arcade"
	"github.com/crtfrenzy/gophervaders/arcade/input"
	"github.com/crtfrenzy/gophervaders/recorder"
	"github.com/crtfrenzy/gophervaders/regression"
	"github.com/crtfrenzy/gophervaders/test"
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

func TestVideoRegression(t *testing.T) {
	// the database and scripts live under the resources path, which for
	// development builds is relative to the working directory
	chdir(t, t.TempDir())

	output := &strings.Builder{}

	// adding a new video regression runs the machine once to gather the
	// fingerprint
	reg := &regression.VideoRegression{NumFrames: 10, Notes: "boot check"}
	err := regression.RegressAdd(output, reg)
	test.ExpectedSuccess(t, err)

	if reg.Digest == "" {
		t.Error("no fingerprint gathered during add")
	}

	output.Reset()
	err = regression.RegressList(output)
	test.ExpectedSuccess(t, err)
	if !strings.Contains(output.String(), "[video] 10 frames [boot check]") {
		t.Errorf("unexpected list output: %s", output.String())
	}

	// the test succeeds when run again
	output.Reset()
	err = regression.RegressRun(output, false, nil)
	test.ExpectedSuccess(t, err)
	if !strings.Contains(output.String(), "1 succeed, 0 fail") {
		t.Errorf("unexpected run output: %s", output.String())
	}

	// delete the entry and check that the database is empty
	output.Reset()
	err = regression.RegressDelete(output, strings.NewReader("y\n"), "0")
	test.ExpectedSuccess(t, err)

	output.Reset()
	err = regression.RegressList(output)
	test.ExpectedSuccess(t, err)
	if !strings.Contains(output.String(), "database is empty") {
		t.Errorf("unexpected list output: %s", output.String())
	}
}

// record a short session for the playback regression test
func recordSession(t *testing.T) string {
	t.Helper()

	transcript := "recording"

	mac, err := arcade.NewMachine()
	test.ExpectedSuccess(t, err)
	mac.Screen.SetFPSCap(false)

	rec, err := recorder.NewRecorder(transcript, mac)
	test.ExpectedSuccess(t, err)
	mac.Port.AttachEventRecorder(rec)

	test.ExpectedSuccess(t, mac.RunForFrameCount(5, nil))
	test.ExpectedSuccess(t, mac.Port.HandleEvent(input.Right, true))
	test.ExpectedSuccess(t, mac.RunForFrameCount(5, nil))
	test.ExpectedSuccess(t, mac.Port.HandleEvent(input.Right, false))
	test.ExpectedSuccess(t, mac.Port.HandleEvent(input.Fire, true))
	test.ExpectedSuccess(t, mac.RunForFrameCount(5, nil))
	test.ExpectedSuccess(t, rec.End())

	return transcript
}

func TestPlaybackRegression(t *testing.T) {
	chdir(t, t.TempDir())

	transcript := recordSession(t)

	output := &strings.Builder{}

	// adding the regression reperforms the script and stores a copy of it
	// in the scripts directory
	reg := &regression.PlaybackRegression{Script: transcript}
	err := regression.RegressAdd(output, reg)
	test.ExpectedSuccess(t, err)

	if reg.Script == transcript {
		t.Error("script has not been copied into the scripts directory")
	}

	output.Reset()
	err = regression.RegressRun(output, false, []string{"0"})
	test.ExpectedSuccess(t, err)
	if !strings.Contains(output.String(), "1 succeed, 0 fail") {
		t.Errorf("unexpected run output: %s", output.String())
	}

	// deleting the entry also removes the stored script
	output.Reset()
	err = regression.RegressDelete(output, strings.NewReader("y"), "0")
	test.ExpectedSuccess(t, err)

	if _, err := os.Stat(reg.Script); err == nil {
		t.Error("stored script survived deletion")
	}
}

func TestRegressionDeclined(t *testing.T) {
	chdir(t, t.TempDir())

	output := &strings.Builder{}

	reg := &regression.VideoRegression{NumFrames: 5}
	err := regression.RegressAdd(output, reg)
	test.ExpectedSuccess(t, err)

	// answering anything other than y/Y leaves the entry alone
	output.Reset()
	err = regression.RegressDelete(output, strings.NewReader("n"), "0")
	test.ExpectedSuccess(t, err)

	output.Reset()
	err = regression.RegressList(output)
	test.ExpectedSuccess(t, err)
	if !strings.Contains(output.String(), "Total: 1") {
		t.Errorf("unexpected list output: %s", output.String())
	}

	// invalid keys are an error
	test.ExpectedFailure(t, regression.RegressDelete(output, strings.NewReader("y"), "foo"))
	test.ExpectedFailure(t, regression.RegressRun(output, false, []string{"not-a-key"}))
}
