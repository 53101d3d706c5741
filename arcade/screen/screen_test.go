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

package screen_test

import (
	"testing"

	"github.com/crtfrenzy/gophervaders/arcade/screen"
	"github.com/crtfrenzy/gophervaders/test"
)

// tally implements the screen.PixelRenderer interface.
type tally struct {
	frameNums []int
	ended     bool
}

func (tl *tally) NewFrame(buffer *screen.Buffer, frameNum int) error {
	tl.frameNums = append(tl.frameNums, frameNum)
	return nil
}

func (tl *tally) EndRendering() error {
	tl.ended = true
	return nil
}

func TestScreenFanOut(t *testing.T) {
	scr, err := screen.NewScreen(4, 4)
	test.ExpectedSuccess(t, err)

	// tests run as fast as possible
	scr.SetFPSCap(false)

	rend := &tally{}
	trig := &tally{}
	scr.AddPixelRenderer(rend)
	scr.AddFrameTrigger(trig)

	test.Equate(t, scr.FrameNum(), 0)

	for i := 0; i < 3; i++ {
		err = scr.NewFrame()
		test.ExpectedSuccess(t, err)
	}

	// frame numbering starts at one
	test.Equate(t, scr.FrameNum(), 3)
	test.Equate(t, len(rend.frameNums), 3)
	test.Equate(t, len(trig.frameNums), 3)
	for i, n := range rend.frameNums {
		test.Equate(t, n, i+1)
	}

	// only renderers are told about the end of rendering
	err = scr.EndRendering()
	test.ExpectedSuccess(t, err)
	test.Equate(t, rend.ended, true)
	test.Equate(t, trig.ended, false)
}

func TestScreenFPS(t *testing.T) {
	scr, err := screen.NewScreen(4, 4)
	test.ExpectedSuccess(t, err)
	scr.SetFPSCap(false)

	test.Equate(t, scr.GetReqFPS() == screen.DefaultFPS, true)

	scr.SetFPS(30.0)
	test.Equate(t, scr.GetReqFPS() == 30.0, true)

	// zero or negative restores the default rate
	scr.SetFPS(-1.0)
	test.Equate(t, scr.GetReqFPS() == screen.DefaultFPS, true)
}
