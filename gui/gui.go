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

// Package gui defines the interface between the game and its visual
// frontends. The concrete frontends live in the sub-packages of this
// package: sdlplay for the SDL/OpenGL frontend and termplay for the
// terminal frontend.
//
// Frontends are driven in two directions. Completed frames arrive through
// the screen.PixelRenderer interface, which every frontend implements.
// User input travels the other way, over a channel of userinput.Event set
// with the ReqSetEventChan feature request.
package gui

// GUI defines the operations that can be performed on visual user
// interfaces.
type GUI interface {
	// Send a request to set a GUI feature.
	SetFeature(request FeatureReq, args ...FeatureReqData) error
}

// Sentinal error returned if the GUI does not support the requested
// feature.
const UnsupportedGuiFeature = "unsupported gui feature: %v"
