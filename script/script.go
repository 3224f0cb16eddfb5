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

// Package script recognises the lines that make up a session script. A line
// is either blank, a directive comment, an inert comment or a literal shell
// command.
//
// A directive comment has the exact shape:
//
//	# doitlive <option>: <value>
//
// where option is one of prompt, shell, alias, env or speed. A comment with
// the "# doitlive" shape but an unrecognised option name is not a directive.
// It is an ordinary comment and has no effect on the session.
package script

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/doitlive/doitlive/curated"
)

// Option identifies which session setting a directive alters. The set of
// options is closed. Directives with any other option name do not parse.
type Option int

// The five directive options.
const (
	Prompt Option = iota
	Shell
	Alias
	Env
	Speed
)

func (o Option) String() string {
	switch o {
	case Prompt:
		return "prompt"
	case Shell:
		return "shell"
	case Alias:
		return "alias"
	case Env:
		return "env"
	case Speed:
		return "speed"
	}
	return "unknown"
}

// Directive is one parsed configuration comment. For Speed directives the
// Steps field holds the parsed integer value. For every other option the
// Arg field holds the argument text verbatim.
type Directive struct {
	Option Option
	Arg    string
	Steps  int
}

// Sentinel errors returned by ParseDirective.
const (
	InvalidSpeed = "directive: speed: not a positive integer (%s)"
)

// the directive shape. the option alternation enumerates the closed set of
// option names. anything else with the "# doitlive" shape falls through and
// is treated as an inert comment.
var directiveMatch = regexp.MustCompile(`^#\s?doitlive\s+(prompt|shell|alias|env|speed):\s*(.+)$`)

// IsComment returns true if the line is a comment, directive or otherwise.
func IsComment(line string) bool {
	return strings.HasPrefix(line, "#")
}

// ParseDirective matches one line against the directive grammar. The second
// return value is false if the line is not a directive.
//
// A speed directive with an argument that does not parse as a positive
// integer returns the InvalidSpeed error. This is a configuration error and
// is fatal to the session.
func ParseDirective(line string) (Directive, bool, error) {
	m := directiveMatch.FindStringSubmatch(line)
	if m == nil {
		return Directive{}, false, nil
	}

	arg := m[2]

	switch m[1] {
	case "prompt":
		return Directive{Option: Prompt, Arg: arg}, true, nil
	case "shell":
		return Directive{Option: Shell, Arg: arg}, true, nil
	case "alias":
		return Directive{Option: Alias, Arg: arg}, true, nil
	case "env":
		return Directive{Option: Env, Arg: arg}, true, nil
	case "speed":
		steps, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil || steps < 1 {
			return Directive{}, false, curated.Errorf(InvalidSpeed, arg)
		}
		return Directive{Option: Speed, Arg: arg, Steps: steps}, true, nil
	}

	// unreachable while the alternation and the switch agree on the option
	// set
	return Directive{}, false, nil
}
