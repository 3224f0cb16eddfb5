// This file is part of doitlive.
//
// doitlive is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// doitlive is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with doitlive.  If not, see <https://www.gnu.org/licenses/>.

// Package keyterm implements the terminal.KeyReader interface for posix
// terminals. It is a wrapper for "github.com/pkg/term/termios": the terminal
// is placed into raw mode for the duration of each key read and restored to
// canonical mode immediately afterwards, so that everything the session
// prints between keypresses is displayed normally.
package keyterm

import (
	"bufio"
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// KeyTerm is the main container for posix terminal input. Implements the
// terminal.KeyReader interface.
type KeyTerm struct {
	input  *os.File
	reader *bufio.Reader

	canAttr unix.Termios
	rawAttr unix.Termios
}

// Initialise the fields in the KeyTerm struct. The input file is the
// controlling terminal, almost always os.Stdin.
func (kt *KeyTerm) Initialise(input *os.File) error {
	kt.input = input
	kt.reader = bufio.NewReader(input)

	// prepare the attributes for the terminal modes we'll be switching
	// between
	if err := termios.Tcgetattr(input.Fd(), &kt.canAttr); err != nil {
		return err
	}
	kt.rawAttr = kt.canAttr
	termios.Cfmakeraw(&kt.rawAttr)

	return nil
}

// CleanUp makes sure the terminal has been restored to canonical mode.
func (kt *KeyTerm) CleanUp() {
	kt.canonicalMode()
}

// rawMode puts terminal into raw mode.
func (kt *KeyTerm) rawMode() {
	termios.Tcsetattr(kt.input.Fd(), termios.TCIFLUSH, &kt.rawAttr)
}

// canonicalMode puts terminal into normal, everyday canonical mode.
func (kt *KeyTerm) canonicalMode() {
	termios.Tcsetattr(kt.input.Fd(), termios.TCIFLUSH, &kt.canAttr)
}

// ReadKey blocks until one key has been pressed. Implements the
// terminal.KeyReader interface.
func (kt *KeyTerm) ReadKey() (rune, error) {
	kt.rawMode()
	defer kt.canonicalMode()

	r, _, err := kt.reader.ReadRune()
	if err != nil {
		return 0, err
	}

	return r, nil
}
