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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/crtfrenzy/gophervaders/arcade"
	"github.com/crtfrenzy/gophervaders/curated"
)

// sentinal error used to stop the Run() loop when the measurement period
// has elapsed.
const timedOut = "performance: timed out"

// lead time before measurement starts, allowing the frame rate to settle.
const leadTime = 2 * time.Second

// Check runs the game for the specified duration and reports the frame
// rate that was achieved. The machine is supplied by the caller so that a
// gui can be attached to its screen beforehand.
//
// A profile is gathered while the game runs, as specified by the profile
// argument. If objectGraph is true a visualisation of the machine's object
// graph is written once the measurement is over.
func Check(output io.Writer, profile Profile, mac *arcade.Machine, uncapped bool, duration string, objectGraph bool) error {
	// the fps cap is set after any gui attachment so that the uncapped
	// argument takes precedence over a cap loaded from the preferences
	mac.Screen.SetFPSCap(!uncapped)

	// parse supplied duration
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	// get starting frame number (should be 0)
	startFrame := mac.Screen.FrameNum()

	// run for specified period of time
	runner := func() error {
		// setup trigger that expires when duration has elapsed. signals
		// false to indicate that measurement should start and true when
		// the duration has expired
		timerChan := make(chan bool)

		// force a two second leadtime to allow framerate to settle down
		// and then restart timer for the specified duration
		go func() {
			time.AfterFunc(leadTime, func() {
				timerChan <- false
				time.AfterFunc(dur, func() {
					timerChan <- true
				})
			})
		}()

		return mac.Run(func() (bool, error) {
			select {
			case v := <-timerChan:
				// timerChan has returned true, which means the
				// measurement period has finished
				if v {
					return false, curated.Errorf(timedOut)
				}

				// timerChan has returned false, which means the leadtime
				// has concluded. record the start frame
				startFrame = mac.Screen.FrameNum()
			default:
			}

			return true, nil
		})
	}

	// launch runner directly or through the profiler, depending on
	// supplied arguments
	err = RunProfiler(profile, "performance", runner)
	if err != nil && !curated.Is(err, timedOut) {
		return curated.Errorf("performance: %v", err)
	}

	// get ending frame number
	endFrame := mac.Screen.FrameNum()

	// calculate performance
	numFrames := endFrame - startFrame
	fps, accuracy := CalcFPS(mac.Screen, numFrames, dur.Seconds())
	output.Write([]byte(fmt.Sprintf("%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy)))

	if objectGraph {
		return dumpObjectGraph(output, mac)
	}

	return nil
}
