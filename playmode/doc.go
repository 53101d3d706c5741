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

// Package playmode ties a machine to a gui and runs the game. It is the
// mode most users are in most of the time.
//
// The machine is run in the calling goroutine, which must not be the
// goroutine servicing the gui. User input arrives over a channel and is
// translated by the userinput package into events for the machine's input
// port.
//
// Sessions can be recorded to a transcript and played back later, both
// here and by the regression package.
package playmode
