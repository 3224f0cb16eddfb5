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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. Like the Errorf()
// function in the fmt package it takes a formatting pattern and placeholder
// values, but the pattern is kept as the identity of the error.
//
// The Is() function checks whether an error is a curated error with a
// specific pattern:
//
//	e := curated.Errorf("session: %v", err)
//
//	if curated.Is(e, "session: %v") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks whether the pattern occurs
// anywhere in the chain of values wrapped by the error. This is the function
// to use when checking for sentinel conditions that may have been wrapped by
// an intermediate layer:
//
//	if curated.Has(err, terminal.UserCancel) {
//		// user has cancelled the session. not an error
//	}
//
// The IsAny() function answers whether the error was created by Errorf() at
// all. We can think of the difference between curated and uncurated errors
// as being the difference between 'expected' and 'unexpected' errors.
//
// The Error() implementation normalises the message chain such that adjacent
// duplicate parts appear only once. This alleviates the problem of when and
// how to wrap errors as they pass up through the layers of the program.
package curated
