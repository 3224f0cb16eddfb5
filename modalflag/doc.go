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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows different flags for each mode.
//
// Whereas with flag.FlagSet you call Parse() with the array of strings as
// the only argument, with modalflag you first call NewArgs() with the array
// of arguments and then Parse() with no arguments:
//
//	md := Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	_, _ = md.Parse()
//
// Once the arguments have been parsed, non-flag arguments can be retrieved
// with the RemainingArgs() or GetArg() functions.
//
// Program modes are declared with AddSubModes() before parsing. The first
// sub-mode in the list is the default and is selected when the first
// argument matches none of the others:
//
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DEMO")
//	_, _ = md.Parse()
//
//	switch md.Mode() {
//	case "RUN":
//		...
//	case "DEMO":
//		...
//	}
//
// Each mode can then declare its own flags with NewMode() followed by the
// Add*() functions and another call to Parse(). Help requests (-help) are
// handled automatically, with the list of available sub-modes appended to
// the flag summary.
package modalflag
