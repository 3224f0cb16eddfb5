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

// Package shell executes one command line under the session's interpreter.
//
// Commands are not handed to the interpreter directly. An ephemeral script
// is built around the command so that the accumulated environment
// assignments and alias definitions are in force when it runs, and so that
// shell built-ins such as "source" behave as they would in a live shell. The
// script is written to a uniquely named temporary file, executed, and the
// file removed on every exit path.
//
// The one built-in is "cd". A change of directory must affect the process
// itself, not a child, so that later commands and prompt renders observe it.
package shell

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/doitlive/doitlive/curated"
)

// DefaultInterpreter is used when the caller has not specified one.
const DefaultInterpreter = "/bin/bash"

// Sentinel errors returned by Run.
const (
	// the temporary script could not be created, written or removed. fatal
	// to the session
	ScriptFileError = "script file: %v"

	// the command could not be launched or exited non-zero
	ExecutionError = "execution: %v"

	// the cd built-in failed
	ChdirError = "cd: %v"
)

// Snapshot is the read-only view of the session configuration that one
// command is executed under. The alias and env lists are in accumulation
// order.
type Snapshot struct {
	Interpreter string
	Aliases     []string
	Envs        []string

	// CheckOutput is the capture flag. when true the command's standard
	// output is returned as text instead of streaming to the terminal
	CheckOutput bool
}

// preambles lists the statement certain interpreters require at the top of a
// script before anything else. bash is the notable case: it disables alias
// expansion in non-interactive shells. The table is keyed by the
// interpreter's base name so that supporting a new interpreter never touches
// the Run function.
var preambles = map[string]string{
	"bash": "shopt -s expand_aliases",
	"zsh":  "setopt aliases",
}

// Run executes the command under the snapshot's interpreter and waits for it
// to complete.
//
// In capture mode the command's standard output is returned as text and any
// launch/exit failure is returned as an ExecutionError. Otherwise output
// streams to the controlling terminal and the returned string is empty.
//
// A ScriptFileError from any exit path means the temporary script could not
// be managed and the session cannot safely continue.
func Run(command string, snap Snapshot) (output string, err error) {
	if dir, ok := chdirTarget(command); ok {
		if cerr := os.Chdir(expandUser(dir)); cerr != nil {
			return "", curated.Errorf(ChdirError, cerr)
		}
		return "", nil
	}

	f, cerr := os.CreateTemp("", "doitlive")
	if cerr != nil {
		return "", curated.Errorf(ScriptFileError, cerr)
	}

	// the file must be removed whatever else happens, including the child
	// process failing. a removal failure outranks any other error
	defer func() {
		if rerr := os.Remove(f.Name()); rerr != nil {
			err = curated.Errorf(ScriptFileError, rerr)
		}
	}()

	if _, werr := f.WriteString(compose(command, snap)); werr != nil {
		f.Close()
		return "", curated.Errorf(ScriptFileError, werr)
	}
	if cerr := f.Close(); cerr != nil {
		return "", curated.Errorf(ScriptFileError, cerr)
	}

	cmd := exec.Command(snap.Interpreter, f.Name())

	if snap.CheckOutput {
		out, xerr := cmd.Output()
		if xerr != nil {
			return string(out), curated.Errorf(ExecutionError, xerr)
		}
		return string(out), nil
	}

	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if xerr := cmd.Run(); xerr != nil {
		return "", curated.Errorf(ExecutionError, xerr)
	}

	return "", nil
}

// compose builds the text of the ephemeral script: shebang, interpreter
// preamble if one is required, exports and aliases in accumulation order,
// then the command itself.
func compose(command string, snap Snapshot) string {
	s := strings.Builder{}

	s.WriteString(fmt.Sprintf("#!%s\n", snap.Interpreter))

	if p, ok := preambles[filepath.Base(snap.Interpreter)]; ok {
		s.WriteString(p)
		s.WriteString("\n")
	}

	for _, e := range snap.Envs {
		s.WriteString(fmt.Sprintf("export %s\n", e))
	}

	for _, a := range snap.Aliases {
		s.WriteString(fmt.Sprintf("alias %s\n", a))
	}

	s.WriteString(command)
	s.WriteString("\n")

	return s.String()
}

// chdirTarget returns the path argument of a cd command, or false if the
// command is not a cd.
func chdirTarget(command string) (string, bool) {
	fields := strings.Fields(command)
	if len(fields) < 2 || fields[0] != "cd" {
		return "", false
	}
	return fields[1], true
}

// expandUser replaces a leading tilde with the user's home directory.
func expandUser(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
