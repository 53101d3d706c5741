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

package sdlplay

import (
	"github.com/crtfrenzy/gophervaders/prefs"
	"github.com/crtfrenzy/gophervaders/resources"
)

// the window scale used when there is no saved preference.
const defaultScale = 2

type preferences struct {
	pl  *SdlPlay
	dsk *prefs.Disk

	// the multiple of the frame dimensions at which the window is drawn
	scale prefs.Int

	// whether the frame rate is held to the nominal refresh rate
	fpsCap prefs.Bool
}

// newPreferences loads the saved preferences and applies them. The scale
// hook resizes the window so this must be called after window creation.
func newPreferences(pl *SdlPlay) (*preferences, error) {
	p := &preferences{pl: pl}

	p.scale.SetHookPost(func(v prefs.Value) error {
		return pl.setScale(v.(int))
	})

	p.fpsCap.SetHookPost(func(v prefs.Value) error {
		pl.scr.SetFPSCap(v.(bool))
		return nil
	})

	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("sdlplay.scale", &p.scale)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("sdlplay.fpscap", &p.fpsCap)
	if err != nil {
		return nil, err
	}

	err = p.scale.Set(defaultScale)
	if err != nil {
		return nil, err
	}

	err = p.fpsCap.Set(true)
	if err != nil {
		return nil, err
	}

	// values in the prefs file replace the default set above. the hook
	// runs again and resizes the window
	err = p.dsk.Load(true)
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (p *preferences) save() error {
	return p.dsk.Save()
}
