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

package ui

import (
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Confirmation implements the io.Reader interface. Reads from a terminal
// are performed in cbreak mode, meaning that a single keypress answers the
// read without the user having to press return.
//
// If the input file is not a terminal the read is passed through
// unchanged, so confirmations can still be piped in.
type Confirmation struct {
	// the file to read from. os.Stdin is used if nil
	Input *os.File
}

// Read implements the io.Reader interface.
func (c Confirmation) Read(p []byte) (int, error) {
	input := c.Input
	if input == nil {
		input = os.Stdin
	}

	if len(p) == 0 {
		return 0, nil
	}

	var canAttr unix.Termios
	if err := termios.Tcgetattr(input.Fd(), &canAttr); err != nil {
		// not a terminal
		return input.Read(p)
	}

	cbreakAttr := canAttr
	termios.Cfmakecbreak(&cbreakAttr)

	if err := termios.Tcsetattr(input.Fd(), termios.TCIFLUSH, &cbreakAttr); err != nil {
		return input.Read(p)
	}
	defer func() {
		_ = termios.Tcsetattr(input.Fd(), termios.TCIFLUSH, &canAttr)
	}()

	n, err := input.Read(p[:1])

	// the keypress was neither echoed nor followed by a return so supply
	// the newline ourselves
	os.Stdout.WriteString("\n")

	return n, err
}
