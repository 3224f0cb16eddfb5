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

// Package prompt renders the prompt text that precedes every revealed
// command.
//
// A prompt is either Static or Dynamic. A Static prompt is a template that
// has already been resolved. It never changes for as long as it is the
// active prompt. A Dynamic prompt is re-rendered immediately before every
// command, so it always reflects the current user identity and working
// directory. The asymmetry is deliberate: a prompt directive resolves its
// template once, at the moment the directive is applied.
package prompt

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/doitlive/doitlive/ansi"
)

// Prompt is the tagged variant over Static and Dynamic prompts.
type Prompt interface {
	Render() string
}

// Static is prompt text that has been resolved once and is reused verbatim.
type Static string

// Render implements the Prompt interface.
func (s Static) Render() string {
	return string(s)
}

// Dynamic is a prompt that is recomputed on every render.
type Dynamic func() string

// Render implements the Prompt interface.
func (d Dynamic) Render() string {
	return d()
}

// State caches the inputs to prompt rendering: the current user identity,
// the current working directory and the directory's display form. It is
// owned by the session driver and refreshed with Update(). Keeping it as an
// explicit value, rather than process-wide state, means tests can inject
// whatever identity they like.
type State struct {
	User string
	Cwd  string

	// DisplayCwd is "~" when Cwd is the user's home directory. otherwise it
	// is the final component of the path
	DisplayCwd string
}

// Update refreshes the state from the operating system.
func (st *State) Update() {
	if u, err := user.Current(); err == nil {
		st.User = u.Username
	} else {
		st.User = os.Getenv("USER")
	}

	st.Cwd, _ = os.Getwd()
	st.DisplayCwd = displayDir(st.Cwd, os.Getenv("HOME"))
}

func displayDir(cwd, home string) string {
	if home != "" && cwd == home {
		return "~"
	}
	return filepath.Base(cwd)
}

// Format substitutes the {user}, {cwd} and {full_cwd} placeholders in the
// template. The user is styled bold cyan and the display directory green,
// matching the default prompt. {full_cwd} is the unabbreviated working
// directory and is left unstyled.
func Format(template string, st *State) string {
	s := strings.ReplaceAll(template, "{user}", ansi.PenStyles["bold"]+ansi.PenColor["cyan"]+st.User+ansi.NormalPen)
	s = strings.ReplaceAll(s, "{cwd}", ansi.PenColor["green"]+st.DisplayCwd+ansi.NormalPen)
	s = strings.ReplaceAll(s, "{full_cwd}", st.Cwd)
	return s
}

// DefaultTemplate is the prompt used when no template has been supplied.
const DefaultTemplate = "{user}@{cwd}: $"

// Default returns the Dynamic prompt used at the start of every session. The
// state is refreshed on every render so the prompt tracks changes of working
// directory.
func Default(st *State) Dynamic {
	return func() string {
		st.Update()
		return Format(DefaultTemplate, st)
	}
}
