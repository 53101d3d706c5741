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

package screen

import (
	"sync/atomic"
	"time"
)

// DefaultFPS is the frame rate the game is intended to run at.
const DefaultFPS = 60.0

type limiter struct {
	// whether to wait for the pulse at all. performance measurement turns
	// the limiter off
	active bool

	// the rate requested with setRate(). atomic because it can be read
	// from other goroutines (eg. a gui thread showing the frame rate)
	requested atomic.Value // float32

	// pulse that performs the limiting. the duration of the ticker is set
	// by setRate()
	pulse *time.Ticker

	// the measured rate is the number of frames counted divided by the
	// elapsed time since the previous measurement
	measuringPulse *time.Ticker
	measureTime    time.Time
	measureCt      int
	measured       atomic.Value // float32
}

func newLimiter() *limiter {
	lmtr := &limiter{
		active:         true,
		pulse:          time.NewTicker(time.Millisecond * 16),
		measuringPulse: time.NewTicker(time.Second),
	}
	lmtr.measured.Store(float32(0.0))
	lmtr.setRate(DefaultFPS)
	return lmtr
}

// setRate sets the frame rate. a zero or negative value selects DefaultFPS.
func (lmtr *limiter) setRate(fps float32) {
	if fps <= 0.0 {
		fps = DefaultFPS
	}
	lmtr.requested.Store(fps)

	lmtr.pulse.Stop()
	lmtr.pulse.Reset(time.Duration(float32(time.Second) / fps))

	// restart measurement values
	lmtr.measureCt = 0
	lmtr.measureTime = time.Now()
}

// checkFrame should be called every frame.
func (lmtr *limiter) checkFrame() {
	lmtr.measureCt++
	if lmtr.active {
		<-lmtr.pulse.C
	}
}

// measureActual updates the measured frame rate on every tick of the
// measuring pulse. cheap enough to call every frame.
func (lmtr *limiter) measureActual() {
	select {
	case <-lmtr.measuringPulse.C:
		t := time.Now()
		lmtr.measured.Store(float32(lmtr.measureCt) / float32(t.Sub(lmtr.measureTime).Seconds()))

		// reset time and count ready for next measurement
		lmtr.measureTime = t
		lmtr.measureCt = 0
	default:
	}
}
