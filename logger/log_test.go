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

package logger_test

import (
	"testing"

	"github.com/crtfrenzy/gophervaders/logger"
	"github.com/crtfrenzy/gophervaders/test"
)

// note that these tests work on the central logger so state accumulates from
// test to test unless Clear() is called.

func TestCentralLogger(t *testing.T) {
	logger.Clear()
	w := &test.CompareWriter{}

	logger.Write(w)
	test.ExpectedSuccess(t, w.Compare(""))

	logger.Log("test", "this is a test")
	logger.Write(w)
	test.ExpectedSuccess(t, w.Compare("test: this is a test\n"))

	w.Clear()

	logger.Log("test2", "this is another test")
	logger.Write(w)
	test.ExpectedSuccess(t, w.Compare("test: this is a test\ntest2: this is another test\n"))

	// asking for too many entries in a Tail() is okay
	w.Clear()
	logger.Tail(w, 100)
	test.ExpectedSuccess(t, w.Compare("test: this is a test\ntest2: this is another test\n"))

	// asking for exactly the correct number of entries is okay
	w.Clear()
	logger.Tail(w, 2)
	test.ExpectedSuccess(t, w.Compare("test: this is a test\ntest2: this is another test\n"))

	// asking for fewer entries is okay too
	w.Clear()
	logger.Tail(w, 1)
	test.ExpectedSuccess(t, w.Compare("test2: this is another test\n"))

	// and no entries
	w.Clear()
	logger.Tail(w, 0)
	test.ExpectedSuccess(t, w.Compare(""))
}

func TestRepeatFolding(t *testing.T) {
	logger.Clear()
	w := &test.CompareWriter{}

	logger.Log("tag", "detail")
	logger.Log("tag", "detail")
	logger.Log("tag", "detail")
	logger.Write(w)
	test.ExpectedSuccess(t, w.Compare("tag: detail (repeat x3)\n"))

	// a different entry breaks the fold
	w.Clear()
	logger.Log("tag", "other detail")
	logger.Tail(w, 1)
	test.ExpectedSuccess(t, w.Compare("tag: other detail\n"))
}

func TestWriteRecent(t *testing.T) {
	logger.Clear()
	w := &test.CompareWriter{}

	logger.Log("a", "first")
	logger.WriteRecent(w)
	test.ExpectedSuccess(t, w.Compare("a: first\n"))

	// the entry has now been seen so a second call writes nothing
	w.Clear()
	logger.WriteRecent(w)
	test.ExpectedSuccess(t, w.Compare(""))

	logger.Log("b", "second")
	logger.WriteRecent(w)
	test.ExpectedSuccess(t, w.Compare("b: second\n"))
}

func TestEcho(t *testing.T) {
	logger.Clear()
	w := &test.CompareWriter{}

	logger.Log("before", "echo enabled")
	logger.SetEcho(w, false)
	logger.Log("after", "echo enabled")
	test.ExpectedSuccess(t, w.Compare("after: echo enabled\n"))
	logger.SetEcho(nil, false)
}
