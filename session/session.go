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

// Package session drives the playback of one session script. The driver
// walks the script lines in order: blank lines are skipped, directives
// mutate the session configuration, and everything else is revealed
// keystroke by keystroke before being executed.
//
// The session is strictly sequential. Control yields to the user only at the
// blocking key reads, and cancellation is checked at every one of them. All
// errors bubble up to Run(); no lower layer prints diagnostics or terminates
// anything itself.
package session

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/doitlive/doitlive/ansi"
	"github.com/doitlive/doitlive/curated"
	"github.com/doitlive/doitlive/prompt"
	"github.com/doitlive/doitlive/script"
	"github.com/doitlive/doitlive/shell"
	"github.com/doitlive/doitlive/terminal"
)

// EnvPrompt is the environment variable that supplies the initial prompt
// template. It takes precedence over the default dynamic prompt and is
// itself overridden by a prompt directive later in the script.
const EnvPrompt = "DOITLIVE_PROMPT"

// Sentinel errors returned by NewSession and Run.
const (
	InvalidSpeed = "session: speed must be a positive integer (%d)"
	NoKeyReader  = "session: no key reader attached"
	KeyReadError = "session: key read: %v"
)

// CommandRunner is the function the playback loop hands a committed command
// to. It exists as a named type so that tests can observe execution without
// running a real shell.
type CommandRunner func(command string, snap shell.Snapshot) (string, error)

// Session is the state for one run of a session script. The exported fields
// are the collaborator wiring and can be replaced before Run() is called.
type Session struct {
	// Keys is the source of keypresses. must be attached before Run()
	Keys terminal.KeyReader

	// Output is where prompt, revealed text and captured command output are
	// written. defaults to os.Stdout
	Output io.Writer

	// Exec runs one committed command. defaults to shell.Run
	Exec CommandRunner

	// mutable session configuration. directives adjust these as the script
	// is played
	interpreter string
	speed       int
	prompt      prompt.Prompt

	// the accumulators only ever grow for the duration of the session
	aliases []string
	envvars []string

	// the capture flag is fixed for the whole run
	checkOutput bool

	promptState *prompt.State
}

// NewSession prepares a session with the caller-supplied initial
// configuration. A speed of less than one is a configuration error.
func NewSession(interpreter string, speed int, checkOutput bool) (*Session, error) {
	if speed < 1 {
		return nil, curated.Errorf(InvalidSpeed, speed)
	}

	if interpreter == "" {
		interpreter = shell.DefaultInterpreter
	}

	s := &Session{
		Output:      os.Stdout,
		Exec:        shell.Run,
		interpreter: interpreter,
		speed:       speed,
		checkOutput: checkOutput,
		promptState: &prompt.State{},
	}

	if t := os.Getenv(EnvPrompt); t != "" {
		// the override is a template, resolved once, right now
		s.promptState.Update()
		s.prompt = prompt.Static(prompt.Format(t, s.promptState))
	} else {
		s.prompt = prompt.Default(s.promptState)
	}

	return s, nil
}

// Run plays the session script to completion. A UserCancel error means the
// user pressed the cancel key; callers should treat it as a clean end to the
// session, not a failure.
func (s *Session) Run(lines []string) error {
	if s.Keys == nil {
		return curated.Errorf(NoKeyReader)
	}

	// every directive in the script is validated before any playback. a
	// malformed speed value must never surface halfway through a
	// demonstration
	for _, l := range lines {
		if _, _, err := script.ParseDirective(strings.TrimSpace(l)); err != nil {
			return curated.Errorf("session: %v", err)
		}
	}

	s.printf("%s%sWe'll do it live!%s\n", ansi.PenStyles["bold"], ansi.PenColor["red"], ansi.NormalPen)
	s.printf("%s%sSTARTING SESSION: Press ESC at any time to exit.%s\n", ansi.PenStyles["bold"], ansi.PenColor["yellow"], ansi.NormalPen)
	s.printf("Press any key to continue ...")

	if err := s.readyGate(); err != nil {
		return err
	}
	s.printf("%s", ansi.ClearScreen)

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if script.IsComment(line) {
			if d, ok, _ := script.ParseDirective(line); ok {
				s.apply(d)
			}
			// comments that aren't directives are inert
			continue
		}

		if err := s.playback(line); err != nil {
			return err
		}
	}

	// one last prompt and commit keystroke before the closing banner
	s.printf("%s ", s.prompt.Render())
	if err := s.waitForCommit(); err != nil {
		return err
	}
	s.printf("%s%sFINISHED SESSION%s\n", ansi.PenStyles["bold"], ansi.PenColor["yellow"], ansi.NormalPen)

	return nil
}

// apply one directive to the session configuration. prompt, shell and speed
// overwrite the previous value. aliases and envvars accumulate.
func (s *Session) apply(d script.Directive) {
	switch d.Option {
	case script.Prompt:
		// the template is resolved once, immediately. the rendering is then
		// reused unchanged for the rest of the session, unlike the default
		// dynamic prompt which recomputes on every command
		s.promptState.Update()
		s.prompt = prompt.Static(prompt.Format(d.Arg, s.promptState))

	case script.Shell:
		s.interpreter = d.Arg

	case script.Alias:
		s.aliases = append(s.aliases, d.Arg)

	case script.Env:
		s.envvars = append(s.envvars, d.Arg)

	case script.Speed:
		s.speed = d.Steps
	}
}

// snapshot returns a read-only copy of the configuration for one command.
func (s *Session) snapshot() shell.Snapshot {
	return shell.Snapshot{
		Interpreter: s.interpreter,
		Aliases:     append([]string(nil), s.aliases...),
		Envs:        append([]string(nil), s.envvars...),
		CheckOutput: s.checkOutput,
	}
}

// readyGate blocks for a single keystroke before the session proper begins.
// Any key will do. The cancel key cancels here like everywhere else.
func (s *Session) readyGate() error {
	key, err := s.Keys.ReadKey()
	if err != nil {
		return curated.Errorf(KeyReadError, err)
	}
	if terminal.IsCancel(key) {
		s.printf("\n")
		return curated.Errorf(terminal.UserCancel)
	}
	s.printf("\n")
	return nil
}

func (s *Session) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.Output, format, args...)
}
