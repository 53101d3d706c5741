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

// Package regression facilitates the regression testing of the game. Every
// test in the regression database is run against the current build and
// compared with the result stored when the test was added. Because the
// simulation is deterministic, any divergence means the behaviour of the
// game has changed.
//
// There are two types of test: the video type runs the machine with no
// input for a set number of frames and compares the chained fingerprint of
// the video output; the playback type reperforms a recorded session and
// relies on the fingerprints embedded in the transcript.
//
// The video type is a quick check that the machine still boots and that
// the uncontrolled parts of the game (alien animation, bullet physics) are
// unchanged. The playback type is the more useful of the two because a
// recording can exercise whatever behaviour the player who made it chose
// to exercise.
package regression
