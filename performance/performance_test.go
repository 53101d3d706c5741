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

package performance_test

import (
	"testing"

	"github.com/crtfrenzy/gophervaders/arcade/screen"
	"github.com/crtfrenzy/gophervaders/performance"
	"github.com/crtfrenzy/gophervaders/test"
)

func TestParseProfileString(t *testing.T) {
	p, err := performance.ParseProfileString("cpu")
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(p), int(performance.ProfileCPU))

	p, err = performance.ParseProfileString("TRACE")
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(p), int(performance.ProfileTrace))

	p, err = performance.ParseProfileString("none")
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(p), int(performance.ProfileNone))

	_, err = performance.ParseProfileString("heap")
	test.ExpectedFailure(t, err)
}

func TestCalcFPS(t *testing.T) {
	scr, err := screen.NewScreen(4, 4)
	test.ExpectedSuccess(t, err)

	// the screen requests the default frame rate of 60 until told
	// otherwise
	fps, accuracy := performance.CalcFPS(scr, 60, 1.0)
	if fps != 60.0 {
		t.Errorf("unexpected fps value (%f)", fps)
	}
	if accuracy != 100.0 {
		t.Errorf("unexpected accuracy value (%f)", accuracy)
	}

	fps, accuracy = performance.CalcFPS(scr, 30, 1.0)
	if fps != 30.0 {
		t.Errorf("unexpected fps value (%f)", fps)
	}
	if accuracy != 50.0 {
		t.Errorf("unexpected accuracy value (%f)", accuracy)
	}
}
