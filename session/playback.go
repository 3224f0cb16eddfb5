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

package session

import (
	"github.com/doitlive/doitlive/curated"
	"github.com/doitlive/doitlive/logger"
	"github.com/doitlive/doitlive/shell"
	"github.com/doitlive/doitlive/terminal"
)

// playback reveals one command under keystroke control and executes it on
// commit.
//
// Every keypress reveals the next `speed` characters of the command,
// whatever the key was. The slice is clamped to the remaining length so a
// large speed never overruns the text. Revealing is rune-based so multi-byte
// characters are never split. Once the command is fully revealed, keys are
// discarded until the user commits with return, or cancels.
func (s *Session) playback(command string) error {
	s.printf("%s ", s.prompt.Render())

	text := []rune(command)

	for i := 0; i < len(text); {
		key, err := s.Keys.ReadKey()
		if err != nil {
			return curated.Errorf(KeyReadError, err)
		}
		if terminal.IsCancel(key) {
			s.printf("\n")
			return curated.Errorf(terminal.UserCancel)
		}

		end := i + s.speed
		if end > len(text) {
			end = len(text)
		}
		s.printf("%s", string(text[i:end]))
		i = end
	}

	if err := s.waitForCommit(); err != nil {
		return err
	}

	out, err := s.Exec(command, s.snapshot())
	if err != nil {
		failure := curated.Is(err, shell.ExecutionError) || curated.Is(err, shell.ChdirError)
		if !failure || s.checkOutput {
			// resource errors are fatal in any mode. execution failures are
			// fatal only when output is being captured
			return err
		}

		// a live demonstration survives a mistyped command. record the
		// failure and move on
		logger.Log("shell", err.Error())
		return nil
	}

	if out != "" {
		s.printf("%s", out)
	}

	return nil
}

// waitForCommit blocks until a commit keystroke (carriage return or line
// feed) is read, discarding every other key. The cancel key still aborts at
// this stage.
func (s *Session) waitForCommit() error {
	for {
		key, err := s.Keys.ReadKey()
		if err != nil {
			return curated.Errorf(KeyReadError, err)
		}
		if terminal.IsCancel(key) {
			s.printf("\n")
			return curated.Errorf(terminal.UserCancel)
		}
		if terminal.IsCommit(key) {
			s.printf("\n")
			return nil
		}
	}
}
