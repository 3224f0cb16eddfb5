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

package shell

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/doitlive/doitlive/curated"
	"github.com/doitlive/doitlive/test"
)

func TestCompose(t *testing.T) {
	snap := Snapshot{
		Interpreter: "/bin/bash",
		Aliases:     []string{"ll=ls -la"},
	}

	s := compose("ll", snap)
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")

	test.Equate(t, len(lines), 4)
	test.Equate(t, lines[0], "#!/bin/bash")
	test.Equate(t, lines[1], "shopt -s expand_aliases")
	test.Equate(t, lines[2], "alias ll=ls -la")
	test.Equate(t, lines[3], "ll")
}

func TestComposeAccumulationOrder(t *testing.T) {
	snap := Snapshot{
		Interpreter: "/bin/sh",
		Aliases:     []string{"a=echo a", "b=echo b"},
		Envs:        []string{"ONE=1", "TWO=2"},
	}

	s := compose("echo done", snap)
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")

	// no preamble for /bin/sh. exports precede aliases, both in the order
	// they accumulated, and the command comes last
	test.Equate(t, len(lines), 6)
	test.Equate(t, lines[0], "#!/bin/sh")
	test.Equate(t, lines[1], "export ONE=1")
	test.Equate(t, lines[2], "export TWO=2")
	test.Equate(t, lines[3], "alias a=echo a")
	test.Equate(t, lines[4], "alias b=echo b")
	test.Equate(t, lines[5], "echo done")
}

func TestPreambleLookup(t *testing.T) {
	// the lookup is keyed by the interpreter's base name
	s := compose("true", Snapshot{Interpreter: "/usr/local/bin/zsh"})
	test.Equate(t, strings.Contains(s, "setopt aliases"), true)

	s = compose("true", Snapshot{Interpreter: "/bin/sh"})
	test.Equate(t, strings.Contains(s, "setopt"), false)
	test.Equate(t, strings.Contains(s, "shopt"), false)
}

func TestChdirTarget(t *testing.T) {
	dir, ok := chdirTarget("cd /tmp")
	test.Equate(t, ok, true)
	test.Equate(t, dir, "/tmp")

	_, ok = chdirTarget("cdx /tmp")
	test.Equate(t, ok, false)

	_, ok = chdirTarget("echo cd")
	test.Equate(t, ok, false)

	// a bare cd with no path is not treated as the built-in
	_, ok = chdirTarget("cd")
	test.Equate(t, ok, false)
}

func TestExpandUser(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	test.Equate(t, expandUser("~"), home)
	test.Equate(t, expandUser("~/project"), filepath.Join(home, "project"))
	test.Equate(t, expandUser("/var/log"), "/var/log")
	test.Equate(t, expandUser("project~"), "project~")
}

func TestRunChdir(t *testing.T) {
	orig, err := os.Getwd()
	test.ExpectedSuccess(t, err)
	defer os.Chdir(orig)

	target := t.TempDir()

	_, err = Run("cd "+target, Snapshot{Interpreter: "/bin/sh"})
	test.ExpectedSuccess(t, err)

	wd, err := os.Getwd()
	test.ExpectedSuccess(t, err)

	// t.TempDir() may be reached through a symlink
	expected, err := filepath.EvalSymlinks(target)
	test.ExpectedSuccess(t, err)
	actual, err := filepath.EvalSymlinks(wd)
	test.ExpectedSuccess(t, err)
	test.Equate(t, actual, expected)
}

func TestRunChdirFailure(t *testing.T) {
	orig, err := os.Getwd()
	test.ExpectedSuccess(t, err)
	defer os.Chdir(orig)

	_, err = Run("cd /no/such/directory/anywhere", Snapshot{Interpreter: "/bin/sh"})
	if test.ExpectedFailure(t, err) {
		test.Equate(t, curated.Is(err, ChdirError), true)
	}
}

func TestRunCapture(t *testing.T) {
	out, err := Run(`echo "hi"`, Snapshot{Interpreter: "/bin/sh", CheckOutput: true})
	test.ExpectedSuccess(t, err)
	test.Equate(t, out, "hi\n")
}

func TestRunCaptureEnvAndAlias(t *testing.T) {
	snap := Snapshot{
		Interpreter: "/bin/bash",
		Aliases:     []string{`greet='echo "$GREETING"'`},
		Envs:        []string{"GREETING=hello"},
		CheckOutput: true,
	}

	out, err := Run("greet", snap)
	test.ExpectedSuccess(t, err)
	test.Equate(t, out, "hello\n")
}

func TestRunCaptureFailure(t *testing.T) {
	out, err := Run("exit 3", Snapshot{Interpreter: "/bin/sh", CheckOutput: true})
	test.Equate(t, out, "")
	if test.ExpectedFailure(t, err) {
		test.Equate(t, curated.Is(err, ExecutionError), true)
	}
}

func TestRunInterpreterNotFound(t *testing.T) {
	_, err := Run("true", Snapshot{Interpreter: "/no/such/interpreter"})
	if test.ExpectedFailure(t, err) {
		test.Equate(t, curated.Is(err, ExecutionError), true)
	}
}
