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

package playmode

import (
	"os"
	"os/signal"

	"github.com/crtfrenzy/gophervaders/arcade"
	"github.com/crtfrenzy/gophervaders/curated"
	"github.com/crtfrenzy/gophervaders/gui"
	"github.com/crtfrenzy/gophervaders/logger"
	"github.com/crtfrenzy/gophervaders/recorder"
	"github.com/crtfrenzy/gophervaders/resources"
	"github.com/crtfrenzy/gophervaders/userinput"
)

// Play runs the machine with the gui attached, until the user quits or the
// process is interrupted.
//
// If newRecording is true the session is recorded to the transcript file,
// or to a default filename if transcript is empty. If newRecording is
// false and a transcript is supplied, the session plays the transcript
// back; the user takes over when the script runs out.
func Play(mac *arcade.Machine, scr gui.GUI, newRecording bool, transcript string) error {
	if mac == nil || scr == nil {
		return curated.Errorf("playmode: no machine or no gui")
	}

	// recording and playback are prepared before the gui is connected so
	// no user input arrives unrecorded
	if newRecording {
		if transcript == "" {
			transcript = resources.UniqueFilename("recording")
		}

		rec, err := recorder.NewRecorder(transcript, mac)
		if err != nil {
			return curated.Errorf("playmode: %v", err)
		}

		// the recording is useless without its final flush so the error
		// is worth reporting, but by this point the session is over and
		// there is nothing more to be done about it
		defer func() {
			if err := rec.End(); err != nil {
				logger.Logf("playmode", "%v", err)
			}
		}()

		mac.Port.AttachEventRecorder(rec)
	} else if transcript != "" {
		plb, err := recorder.NewPlayback(transcript)
		if err != nil {
			return curated.Errorf("playmode: %v", err)
		}

		if err := plb.AttachToMachine(mac); err != nil {
			return curated.Errorf("playmode: %v", err)
		}
	}

	// connect the gui. user input arrives over the events channel from
	// here on
	events := make(chan userinput.Event, 10)
	if err := scr.SetFeature(gui.ReqSetEventChan, events); err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	controllers := userinput.NewControllers(mac.Port)

	// ctrl-c should end the session cleanly so the deferred recorder
	// flush still happens
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	err := mac.Run(func() (bool, error) {
		select {
		case <-intChan:
			return false, nil
		default:
		}

		// drain every event the gui has sent since the last frame
		for {
			select {
			case ev := <-events:
				if err := controllers.HandleUserInput(ev); err != nil {
					return false, curated.Errorf("playmode: %v", err)
				}
				if controllers.Quit {
					return false, nil
				}
			default:
				// a quit event in a playback script arrives through the
				// port rather than the gui
				return !mac.Port.Quit(), nil
			}
		}
	})

	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	return nil
}
