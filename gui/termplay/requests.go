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
	"github.com/crtfrenzy/gophervaders/curated"
	"github.com/crtfrenzy/gophervaders/gui"
	"github.com/crtfrenzy/gophervaders/userinput"
)

// SetFeature implements the gui.GUI interface. Thread safe: the request is
// hoisted onto the goroutine that calls Service().
//
// The terminal has no meaningful window scale and no screenshot facility,
// so those requests are unsupported.
func (tp *TermPlay) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	tp.service <- func() {
		tp.serviceErr <- tp.serviceSetFeature(request, args...)
	}
	return <-tp.serviceErr
}

// serviceSetFeature should only be called from the Service() goroutine.
func (tp *TermPlay) serviceSetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	switch request {
	case gui.ReqSetEventChan:
		if len(args) != 1 {
			return curated.Errorf("termplay: wrong number of arguments (%d instead of 1)", len(args))
		}
		tp.events = args[0].(chan userinput.Event)

	case gui.ReqSavePrefs:
		if len(args) != 0 {
			return curated.Errorf("termplay: wrong number of arguments (%d instead of 0)", len(args))
		}
		if err := tp.prefs.save(); err != nil {
			return curated.Errorf("termplay: %v", err)
		}

	default:
		return curated.Errorf(gui.UnsupportedGuiFeature, request)
	}

	return nil
}
