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

package gui

// FeatureReq is used to request the setting of a gui attribute, eg.
// changing the scale of the window.
type FeatureReq string

// FeatureReqData represents the information associated with a FeatureReq.
// See commentary for the defined FeatureReq values for the underlying
// type.
type FeatureReqData interface{}

// List of valid feature requests. The argument must be of the type
// specified or else the interface{} type conversion will fail and the
// application will probably crash.
//
// Note that, like the name suggests, these are requests. They may or may
// not be satisfied depending on other conditions in the GUI.
const (
	// set the channel over which the gui forwards user input to the
	// running machine.
	ReqSetEventChan FeatureReq = "ReqSetEventChan" // chan userinput.Event

	// set the integer scaling applied to the game screen.
	ReqSetScale FeatureReq = "ReqSetScale" // int

	// whether the frame rate is limited to the nominal refresh rate.
	ReqSetFPSCap FeatureReq = "ReqSetFPSCap" // bool

	// save gui preferences to disk.
	ReqSavePrefs FeatureReq = "ReqSavePrefs"

	// save a screenshot of the most recent frame.
	ReqScreenshot FeatureReq = "ReqScreenshot"
)
