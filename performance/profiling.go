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
	"strings"

	"github.com/crtfrenzy/gophervaders/curated"
	"github.com/crtfrenzy/gophervaders/resources"

	"github.com/pkg/profile"
)

// profiling reports are written to a directory of this name under the
// resources path.
const profilePath = "profiling"

// Profile is used to specify the type of profile that RunProfiler should
// gather.
type Profile int

// List of valid Profile values. Only one profile can be gathered per run.
const (
	ProfileNone Profile = iota
	ProfileCPU
	ProfileMem
	ProfileTrace
)

// ParseProfileString converts a string to a Profile value. The string is
// matched without regard to case.
func ParseProfileString(s string) (Profile, error) {
	switch strings.ToUpper(s) {
	case "NONE":
		return ProfileNone, nil
	case "CPU":
		return ProfileCPU, nil
	case "MEM":
		return ProfileMem, nil
	case "TRACE":
		return ProfileTrace, nil
	}

	return ProfileNone, curated.Errorf("profiling: unrecognised profile (%s)", s)
}

// RunProfiler runs the supplied function, gathering the specified profile
// while it runs. The report is written to a sub-directory of the profiling
// directory, named by the tag argument.
func RunProfiler(prof Profile, tag string, run func() error) error {
	if prof == ProfileNone {
		return run()
	}

	p, err := resources.JoinPath(profilePath, tag)
	if err != nil {
		return curated.Errorf("profiling: %v", err)
	}

	opts := []func(*profile.Profile){
		profile.ProfilePath(p),
		profile.NoShutdownHook,
		profile.Quiet,
	}

	switch prof {
	case ProfileCPU:
		opts = append(opts, profile.CPUProfile)
	case ProfileMem:
		opts = append(opts, profile.MemProfile)
	case ProfileTrace:
		opts = append(opts, profile.TraceProfile)
	}

	pr := profile.Start(opts...)
	defer pr.Stop()

	return run()
}
