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

package prefs

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/crtfrenzy/gophervaders/curated"
)

// WarningBoilerPlate is the first line in a prefs file. If it's not present
// then the file will not be parsed.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// the string that separates the key from the value on a single line of the
// prefs file.
const fieldSep = " :: "

// NoPrefsFile is a sentinel error returned by Load() when the prefs file does
// not exist.
const NoPrefsFile = "prefs: no prefs file (%s)"

// DefaultPrefsFile is the default filename of the preferences file used by
// all parts of the application.
const DefaultPrefsFile = "gophervaders.prefs"

// Disk represents the preference values that are stored to disk. Each
// preference value is registered with the Add() function under a unique key.
//
// More than one Disk instance may point to the same file. Keys owned by other
// instances are preserved on Save().
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type. The
// path argument is the path to the prefs file. The file will not be touched
// until a call to Save() or Load().
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add a preference value to the list of values to save/load from disk.
func (dsk *Disk) Add(key string, p pref) error {
	key = strings.TrimSpace(key)

	if key == "" {
		return curated.Errorf("prefs: empty key")
	}
	if strings.Contains(key, fieldSep) || strings.Contains(key, "\n") {
		return curated.Errorf("prefs: illegal key (%s)", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf("prefs: duplicate key (%s)", key)
	}

	dsk.entries[key] = p

	return nil
}

// HasEntry returns true if the key has been added to this Disk instance.
func (dsk *Disk) HasEntry(key string) bool {
	_, ok := dsk.entries[key]
	return ok
}

// read the prefs file into a raw key/value map. missing file is not an error,
// the returned map is simply empty.
func (dsk *Disk) rawLoad() (map[string]string, error) {
	raw := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return raw, nil
		}
		return nil, curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	buffer, err := io.ReadAll(f)
	if err != nil {
		return nil, curated.Errorf("prefs: %v", err)
	}

	lines := strings.Split(string(buffer), "\n")

	if len(lines) == 0 || lines[0] != WarningBoilerPlate {
		return nil, curated.Errorf("prefs: not a valid prefs file (%s)", dsk.path)
	}

	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}

		kv := strings.SplitN(lines[i], fieldSep, 2)
		if len(kv) != 2 {
			return nil, curated.Errorf("prefs: malformed entry at line %d (%s)", i+1, dsk.path)
		}

		raw[kv[0]] = kv[1]
	}

	return raw, nil
}

// Save current preference values to disk. Keys in the file that have not been
// registered with this Disk instance are written back unchanged.
func (dsk *Disk) Save() error {
	raw, err := dsk.rawLoad()
	if err != nil {
		return err
	}

	for key, p := range dsk.entries {
		raw[key] = p.String()
	}

	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, key := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", key, fieldSep, raw[key]))
	}

	if err := os.WriteFile(dsk.path, []byte(s.String()), 0600); err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	return nil
}

// Load preference values from disk, assigning to the preference values
// registered with this Disk instance.
//
// If suppressErrors is true then a missing prefs file and unloadable values
// are not treated as errors.
func (dsk *Disk) Load(suppressErrors bool) error {
	if _, err := os.Stat(dsk.path); err != nil {
		if suppressErrors {
			return nil
		}
		return curated.Errorf(NoPrefsFile, dsk.path)
	}

	raw, err := dsk.rawLoad()
	if err != nil {
		return err
	}

	for key, p := range dsk.entries {
		if v, ok := raw[key]; ok {
			if err := p.Set(v); err != nil {
				if !suppressErrors {
					return curated.Errorf("prefs: %v", err)
				}
			}
		}
	}

	return nil
}
