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

package session_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/doitlive/doitlive/session"
	"github.com/doitlive/doitlive/test"
)

// a cd command mutates the process working directory directly and a later
// dynamic prompt render observes the change. this test uses the real
// executor, which handles cd in-process without building a script.
func TestChdirTracking(t *testing.T) {
	t.Setenv(session.EnvPrompt, "")

	orig, err := os.Getwd()
	test.ExpectedSuccess(t, err)
	defer os.Chdir(orig)

	target := t.TempDir()
	command := "cd " + target

	s, err := session.NewSession("/bin/sh", 1, false)
	test.ExpectedSuccess(t, err)

	buf := &bytes.Buffer{}
	s.Output = buf
	s.Keys = &scriptedKeys{keys: keySequence(len(command))}

	err = s.Run([]string{command})
	test.ExpectedSuccess(t, err)

	wd, err := os.Getwd()
	test.ExpectedSuccess(t, err)

	expected, err := filepath.EvalSymlinks(target)
	test.ExpectedSuccess(t, err)
	actual, err := filepath.EvalSymlinks(wd)
	test.ExpectedSuccess(t, err)
	test.Equate(t, actual, expected)

	// the final prompt was rendered dynamically after the cd, so the new
	// directory's display form appears in the session output
	test.Equate(t, strings.Contains(buf.String(), filepath.Base(wd)), true)
}
