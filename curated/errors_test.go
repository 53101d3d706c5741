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

package curated_test

import (
	"errors"
	"testing"

	"github.com/crtfrenzy/gophervaders/curated"
	"github.com/crtfrenzy/gophervaders/test"
)

const testPattern = "test error: %s"

func TestMatching(t *testing.T) {
	e := curated.Errorf(testPattern, "detail")

	test.ExpectedSuccess(t, curated.IsAny(e))
	test.ExpectedSuccess(t, curated.Is(e, testPattern))
	test.ExpectedFailure(t, curated.Is(e, "some other pattern"))

	// a wrapped error no longer matches with Is() but does with Has()
	f := curated.Errorf("fatal: %v", e)
	test.ExpectedFailure(t, curated.Is(f, testPattern))
	test.ExpectedSuccess(t, curated.Has(f, testPattern))
	test.ExpectedSuccess(t, curated.Has(f, "fatal: %v"))

	// uncurated errors never match
	g := errors.New("plain error")
	test.ExpectedFailure(t, curated.IsAny(g))
	test.ExpectedFailure(t, curated.Is(g, testPattern))
	test.ExpectedFailure(t, curated.Has(g, testPattern))

	// nor does the nil error
	test.ExpectedFailure(t, curated.IsAny(nil))
}

func TestNormalisation(t *testing.T) {
	// adjacent duplicate parts are removed from the message chain
	e := curated.Errorf("playback: %v", curated.Errorf("playback: %v", errors.New("not a transcript")))
	test.Equate(t, e.Error(), "playback: not a transcript")

	// non-adjacent duplicates are left alone
	f := curated.Errorf("playback: %v", curated.Errorf("recorder: %v", errors.New("no file")))
	test.Equate(t, f.Error(), "playback: recorder: no file")
}
