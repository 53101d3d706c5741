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

package regression

import (
	"github.com/crtfrenzy/gophervaders/resources"
)

// create a unique filename in the regression scripts directory. used when
// saving scripts during RegressAdd(). calls resources.UniqueFilename() to
// maintain the common formatting used in the project.
func uniqueScriptName() (string, error) {
	f := resources.UniqueFilename("playback")
	return resources.JoinPath(regressionPath, regressionScripts, f)
}
