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

// Package terminal defines the interface between the session and the
// keyboard. The interface is deliberately narrow, a single blocking key
// read, so that the playback loop can be driven by a scripted key sequence
// during testing.
package terminal

// KeyReader is any source of single keypresses. ReadKey blocks until a key
// is available.
type KeyReader interface {
	ReadKey() (rune, error)
}

// Sentinel errors. Returned by the session when the user has cancelled
// playback with the cancel key.
const (
	UserCancel = "user cancel"
)

// list of ASCII codes recognised during playback.
const (
	KeyInterrupt      = 3 // end-of-text character (ctrl-c in raw mode)
	KeyLineFeed       = 10
	KeyCarriageReturn = 13
	KeyEsc            = 27
)

// IsCancel returns true if the key is one that cancels the session. The
// escape key is the documented cancel key. ctrl-c arrives as a plain
// character when the terminal is in raw mode and is treated the same way.
func IsCancel(key rune) bool {
	return key == KeyEsc || key == KeyInterrupt
}

// IsCommit returns true if the key confirms a fully revealed command.
func IsCommit(key rune) bool {
	return key == KeyCarriageReturn || key == KeyLineFeed
}
