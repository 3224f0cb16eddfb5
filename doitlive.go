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

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/doitlive/doitlive/curated"
	"github.com/doitlive/doitlive/logger"
	"github.com/doitlive/doitlive/modalflag"
	"github.com/doitlive/doitlive/session"
	"github.com/doitlive/doitlive/shell"
	"github.com/doitlive/doitlive/terminal"
	"github.com/doitlive/doitlive/terminal/keyterm"
)

const version = "0.1.0"

// envInterpreter supplies the default value of the -shell flag.
const envInterpreter = "DOITLIVE_INTERPRETER"

// the built-in demonstration session played by the DEMO mode.
var demoSession = []string{
	`echo "Greetings"`,
	`echo "This is just a demo session"`,
	`echo "For more info, check out the home page..."`,
	`echo "http://doitlive.rtfd.org"`,
}

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])

	showVersion := md.AddBool("version", false, "display version number and quit")
	md.AddSubModes("RUN", "DEMO")
	md.AdditionalHelp("Play a session script as a live typing demonstration. Press ESC at any time to exit the session.")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	if *showVersion {
		fmt.Printf("doitlive %s\n", version)
		os.Exit(0)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "DEMO":
		err = demo(md)
	}

	if err != nil {
		// cancellation is how the user ends a session early. it is not a
		// failure
		if curated.Has(err, terminal.UserCancel) {
			os.Exit(0)
		}
		fmt.Printf("* error in %s mode: %v\n", md.String(), err)
		os.Exit(20)
	}
}

// run plays the session script named on the command line.
func run(md *modalflag.Modes) error {
	md.NewMode()

	interpreter := md.AddString("shell", defaultInterpreter(), "the shell to use")
	speed := md.AddInt("speed", 1, "typing speed (characters revealed per keystroke)")
	checkOutput := md.AddBool("checkoutput", false, "capture command output and print it after execution")
	echoLog := md.AddBool("log", false, "echo the session log to stderr when the session ends")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("session file required")
	case 1:
		lines, err := readSession(md.GetArg(0))
		if err != nil {
			return err
		}
		return play(lines, *interpreter, *speed, *checkOutput, *echoLog)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

// demo plays the built-in demonstration session.
func demo(md *modalflag.Modes) error {
	md.NewMode()

	interpreter := md.AddString("shell", defaultInterpreter(), "the shell to use")
	speed := md.AddInt("speed", 1, "typing speed (characters revealed per keystroke)")
	checkOutput := md.AddBool("checkoutput", false, "capture command output and print it after execution")
	echoLog := md.AddBool("log", false, "echo the session log to stderr when the session ends")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	return play(demoSession, *interpreter, *speed, *checkOutput, *echoLog)
}

// play wires a terminal key reader to a new session and runs it.
func play(lines []string, interpreter string, speed int, checkOutput bool, echoLog bool) error {
	s, err := session.NewSession(interpreter, speed, checkOutput)
	if err != nil {
		return err
	}

	kt := &keyterm.KeyTerm{}
	if err := kt.Initialise(os.Stdin); err != nil {
		return err
	}
	defer kt.CleanUp()
	s.Keys = kt

	if echoLog {
		defer logger.Write(os.Stderr)
	}

	return s.Run(lines)
}

// readSession loads the session script. failure to read the file is a fatal
// startup error.
func readSession(filename string) ([]string, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("session file: %v", err)
	}
	return strings.Split(string(b), "\n"), nil
}

func defaultInterpreter() string {
	if s := os.Getenv(envInterpreter); s != "" {
		return s
	}
	return shell.DefaultInterpreter
}
