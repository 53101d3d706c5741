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
	"github.com/crtfrenzy/gophervaders/curated"
	"github.com/crtfrenzy/gophervaders/gui"
	"github.com/crtfrenzy/gophervaders/userinput"
)

// SetFeature implements the gui.GUI interface. Thread safe: the request is
// hoisted onto the goroutine servicing SDL and performed at the start of
// the next Service() iteration.
func (pl *SdlPlay) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	pl.service <- func() {
		pl.serviceErr <- pl.serviceSetFeature(request, args...)
	}
	return <-pl.serviceErr
}

// serviceSetFeature should only be called from the Service() goroutine.
func (pl *SdlPlay) serviceSetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	var err error

	switch request {
	case gui.ReqSetEventChan:
		err = argLen(args, 1)
		if err == nil {
			pl.events = args[0].(chan userinput.Event)
		}

	case gui.ReqSetScale:
		err = argLen(args, 1)
		if err == nil {
			err = pl.prefs.scale.Set(args[0].(int))
		}

	case gui.ReqSetFPSCap:
		err = argLen(args, 1)
		if err == nil {
			err = pl.prefs.fpsCap.Set(args[0].(bool))
		}

	case gui.ReqSavePrefs:
		err = argLen(args, 0)
		if err == nil {
			err = pl.prefs.save()
		}

	case gui.ReqScreenshot:
		err = argLen(args, 0)
		if err == nil {
			err = pl.screenshot()
		}

	default:
		return curated.Errorf(gui.UnsupportedGuiFeature, request)
	}

	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	return nil
}

// check length of arguments sent with a feature request.
func argLen(args []gui.FeatureReqData, expectedLen int) error {
	if len(args) != expectedLen {
		return curated.Errorf("wrong number of arguments (%d instead of %d)", len(args), expectedLen)
	}
	return nil
}
