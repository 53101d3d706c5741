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

package prefs_test

import (
	"fmt"
	"os"
	"path"
	"testing"

	"github.com/crtfrenzy/gophervaders/prefs"
	"github.com/crtfrenzy/gophervaders/test"
)

const tempFile = "gophervaders_prefs_test"

func getTmpPrefFile(t *testing.T) string {
	t.Helper()

	td := os.TempDir()
	info, err := os.Stat(td)
	if err != nil {
		t.Errorf("error accessing tmp dir: %v", err)
	}

	// check read/write permission for user
	p := info.Mode().Perm()
	if p&0o0700 != 0o0700 {
		t.Errorf("error accessing tmp dir: %v", err)
	}

	return path.Join(td, tempFile)
}

func delTmpPrefFile(t *testing.T, fn string) {
	t.Helper()

	if err := os.Remove(fn); err != nil {
		// not worrying about path errors; these are returned if file doesn't
		// exist
		if _, ok := err.(*os.PathError); !ok {
			t.Errorf("error removing tmp pref file: %v", err)
		}
	}
}

func cmpTmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Errorf("error reading tmp file: %v", err)
		return
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)

	if expected != string(data) {
		t.Errorf("expected data and data in prefs file do not match")
		fmt.Println("expected:")
		fmt.Println(expected)
		fmt.Println("\nin file:")
		fmt.Println(string(data))
	}
}

func TestBool(t *testing.T) {
	fn := getTmpPrefFile(t)
	defer delTmpPrefFile(t, fn)
	delTmpPrefFile(t, fn)

	dsk, err := prefs.NewDisk(fn)
	if err != nil {
		t.Errorf("error preparing disk: %v", err)
		return
	}

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	err = dsk.Add("test", &v)
	test.ExpectedSuccess(t, err)
	err = dsk.Add("testB", &w)
	test.ExpectedSuccess(t, err)
	err = dsk.Add("testC", &x)
	test.ExpectedSuccess(t, err)

	err = v.Set(true)
	test.ExpectedSuccess(t, err)
	err = w.Set("foo")
	test.ExpectedSuccess(t, err)
	err = x.Set("true")
	test.ExpectedSuccess(t, err)

	err = dsk.Save()
	if err != nil {
		t.Errorf("error saving disk: %v", err)
		return
	}

	cmpTmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestInt(t *testing.T) {
	fn := getTmpPrefFile(t)
	defer delTmpPrefFile(t, fn)
	delTmpPrefFile(t, fn)

	dsk, err := prefs.NewDisk(fn)
	if err != nil {
		t.Errorf("error preparing disk: %v", err)
		return
	}

	var v prefs.Int
	var w prefs.Int
	err = dsk.Add("number", &v)
	test.ExpectedSuccess(t, err)
	err = dsk.Add("numberB", &w)
	test.ExpectedSuccess(t, err)

	err = v.Set(10)
	test.ExpectedSuccess(t, err)

	// test string conversion to int
	err = w.Set("99")
	test.ExpectedSuccess(t, err)

	err = dsk.Save()
	if err != nil {
		t.Errorf("error saving disk: %v", err)
	}

	cmpTmpFile(t, fn, "number :: 10\nnumberB :: 99\n")

	// while we have a prefs.Int instance set up we'll test some failure
	// conditions
	err = v.Set("---")
	test.ExpectedFailure(t, err)

	err = v.Set(1.0)
	test.ExpectedFailure(t, err)
}

func TestRoundTrip(t *testing.T) {
	fn := getTmpPrefFile(t)
	defer delTmpPrefFile(t, fn)
	delTmpPrefFile(t, fn)

	dsk, err := prefs.NewDisk(fn)
	if err != nil {
		t.Errorf("error preparing disk: %v", err)
		return
	}

	var scale prefs.Float
	var fpscap prefs.Bool
	test.ExpectedSuccess(t, dsk.Add("sdlplay.scale", &scale))
	test.ExpectedSuccess(t, dsk.Add("sdlplay.fpscap", &fpscap))

	test.ExpectedSuccess(t, scale.Set(3.0))
	test.ExpectedSuccess(t, fpscap.Set(true))
	test.ExpectedSuccess(t, dsk.Save())

	// a second disk instance pointing at the same file sees the saved values
	dsk2, err := prefs.NewDisk(fn)
	if err != nil {
		t.Errorf("error preparing disk: %v", err)
		return
	}

	var scale2 prefs.Float
	test.ExpectedSuccess(t, dsk2.Add("sdlplay.scale", &scale2))
	test.ExpectedSuccess(t, dsk2.Load(false))
	test.Equate(t, scale2.String(), "3.000")

	// saving the second instance must preserve the key it doesn't own
	test.ExpectedSuccess(t, dsk2.Save())
	cmpTmpFile(t, fn, "sdlplay.fpscap :: true\nsdlplay.scale :: 3.000\n")
}

func TestMissingPrefsFile(t *testing.T) {
	fn := getTmpPrefFile(t)
	delTmpPrefFile(t, fn)

	dsk, err := prefs.NewDisk(fn)
	if err != nil {
		t.Errorf("error preparing disk: %v", err)
		return
	}

	// suppressed errors mean a missing file is okay
	test.ExpectedSuccess(t, dsk.Load(true))

	// unsuppressed errors mean it is not
	test.ExpectedFailure(t, dsk.Load(false))
}
