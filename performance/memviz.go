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

package performance

import (
	"fmt"
	"io"
	"os"

	"github.com/crtfrenzy/gophervaders/arcade"
	"github.com/crtfrenzy/gophervaders/curated"
	"github.com/crtfrenzy/gophervaders/resources"

	"github.com/bradleyjkemp/memviz"
)

// dumpObjectGraph writes a graphviz visualisation of the machine's object
// graph to the profiling directory. Render the result with:
//
//	dot -Tsvg -o memviz.svg <file>
func dumpObjectGraph(output io.Writer, mac *arcade.Machine) error {
	fn := fmt.Sprintf("%s.dot", resources.UniqueFilename("memviz"))

	p, err := resources.JoinPath(profilePath, fn)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	f, err := os.Create(p)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}
	defer f.Close()

	memviz.Map(f, mac)

	output.Write([]byte(fmt.Sprintf("object graph written to %s\n", p)))

	return nil
}
