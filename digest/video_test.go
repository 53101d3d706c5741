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

package digest_test

import (
	"testing"

	"github.com/crtfrenzy/gophervaders/arcade/screen"
	"github.com/crtfrenzy/gophervaders/digest"
	"github.com/crtfrenzy/gophervaders/test"
)

func newDigestTest(t *testing.T) (*screen.Screen, *digest.Video) {
	t.Helper()

	scr, err := screen.NewScreen(4, 4)
	test.ExpectedSuccess(t, err)
	scr.SetFPSCap(false)

	dig, err := digest.NewVideo(scr)
	test.ExpectedSuccess(t, err)

	return scr, dig
}

func TestChainedDigest(t *testing.T) {
	scr, dig := newDigestTest(t)

	zero := dig.Hash()
	test.Equate(t, len(zero), 40)

	scr.Buffer().Clear(screen.PackRGB(0, 128, 0))
	test.ExpectedSuccess(t, scr.NewFrame())

	h1 := dig.Hash()
	if h1 == zero {
		t.Error("fingerprint has not changed after a frame")
	}

	// an identical frame still advances the fingerprint because the
	// hashes are chained
	test.ExpectedSuccess(t, scr.NewFrame())

	h2 := dig.Hash()
	if h2 == h1 {
		t.Error("fingerprint has not been chained between frames")
	}

	test.Equate(t, dig.FrameNum(), 2)
}

func TestDigestDeterminism(t *testing.T) {
	scrA, digA := newDigestTest(t)
	scrB, digB := newDigestTest(t)

	// two screens fed the same pixels always agree
	for i := 0; i < 3; i++ {
		col := screen.PackRGB(uint8(i), 0, 0)
		scrA.Buffer().Clear(col)
		scrB.Buffer().Clear(col)
		test.ExpectedSuccess(t, scrA.NewFrame())
		test.ExpectedSuccess(t, scrB.NewFrame())
		test.Equate(t, digA.Hash(), digB.Hash())
	}

	// the smallest of differences and the fingerprints diverge
	scrA.Buffer().Clear(screen.PackRGB(255, 255, 255))
	scrB.Buffer().Clear(screen.PackRGB(255, 255, 254))
	test.ExpectedSuccess(t, scrA.NewFrame())
	test.ExpectedSuccess(t, scrB.NewFrame())

	if digA.Hash() == digB.Hash() {
		t.Error("fingerprints have not diverged")
	}
}

func TestResetDigest(t *testing.T) {
	scr, dig := newDigestTest(t)

	zero := dig.Hash()

	scr.Buffer().Clear(screen.PackRGB(0, 128, 0))
	test.ExpectedSuccess(t, scr.NewFrame())

	dig.ResetDigest()
	test.Equate(t, dig.Hash(), zero)
}
