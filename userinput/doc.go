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

// Package userinput translates the events of the user interface, as sent
// by a frontend, into the events understood by the machine's input port.
//
// It can be thought of as a translation layer between the frontend
// implementation and the input package. As such, this package attempts to
// hide details of the frontend implementation while protecting the input
// package from complication.
//
// The frontend in use during development was SDL and so key names follow
// that system's conventions.
package userinput
