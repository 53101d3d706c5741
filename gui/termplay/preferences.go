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

package termplay

import (
	"github.com/crtfrenzy/gophervaders/prefs"
	"github.com/crtfrenzy/gophervaders/resources"
)

// how long a movement key is considered held after a press, in
// milliseconds. terminals don't report key releases so the release is
// synthesised once the key's autorepeat has been quiet for this long.
// autorepeat delays differ between systems; the default is long enough
// for the common ones.
const defaultHoldPeriod = 500

type preferences struct {
	tp  *TermPlay
	dsk *prefs.Disk

	// period after which a key release is synthesised (milliseconds)
	holdPeriod prefs.Int
}

func newPreferences(tp *TermPlay) (*preferences, error) {
	p := &preferences{tp: tp}

	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("termplay.holdperiod", &p.holdPeriod)
	if err != nil {
		return nil, err
	}

	err = p.holdPeriod.Set(defaultHoldPeriod)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (p *preferences) save() error {
	return p.dsk.Save()
}
