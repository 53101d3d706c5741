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

package arcade_test

import (
	"testing"

	"github.com/crtfrenzy/gophervaders/arcade"
	"github.com/crtfrenzy/gophervaders/arcade/input"
	"github.com/crtfrenzy/gophervaders/test"
)

func newMachineTest(t *testing.T) *arcade.Machine {
	t.Helper()

	mac, err := arcade.NewMachine()
	test.ExpectedSuccess(t, err)

	// tests want the machine to run as fast as possible
	mac.Screen.SetFPSCap(false)

	return mac
}

func TestStep(t *testing.T) {
	mac := newMachineTest(t)

	startX := mac.World.Player.X

	err := mac.Port.HandleEvent(input.Right, true)
	test.ExpectedSuccess(t, err)

	err = mac.Step()
	test.ExpectedSuccess(t, err)

	test.Equate(t, mac.Screen.FrameNum(), 1)

	if mac.World.Player.X <= startX {
		t.Errorf("player has not moved right (%d -> %d)", startX, mac.World.Player.X)
	}
}

func TestRun(t *testing.T) {
	mac := newMachineTest(t)

	frames := 0
	err := mac.Run(func() (bool, error) {
		frames++
		return frames < 3, nil
	})
	test.ExpectedSuccess(t, err)

	test.Equate(t, frames, 3)
	test.Equate(t, mac.Screen.FrameNum(), 3)
}

func TestRunForFrameCount(t *testing.T) {
	mac := newMachineTest(t)

	callbacks := 0
	err := mac.RunForFrameCount(10, func() error {
		callbacks++
		return nil
	})
	test.ExpectedSuccess(t, err)

	test.Equate(t, mac.Screen.FrameNum(), 10)
	test.Equate(t, callbacks, 10)

	// the frame count accumulates over repeated calls
	err = mac.RunForFrameCount(5, nil)
	test.ExpectedSuccess(t, err)

	test.Equate(t, mac.Screen.FrameNum(), 15)
}
