package shell

import (
	"fmt"
)

// Outcome tells the REPL loop how to proceed after a command.
type Outcome int

const (
	// KeepRunning continues the loop.
	KeepRunning Outcome = iota

	// ExitSuccess leaves the shell with a zero status.
	ExitSuccess

	// ExitFailure leaves the shell with a non-zero status.
	ExitFailure
)

// Command is one shell command. Commands parse their own arguments, and all
// of them are atomic: a failing command must leave the shell state
// untouched.
type Command interface {
	// Name is the word the user types.
	Name() string

	// Synopsis is the one-line description shown by help.
	Synopsis() string

	// Usage is the full usage text shown for --help.
	Usage() string

	// Run executes the command with its raw arguments.
	Run(sh *Shell, args []string) (Outcome, error)
}

// UnknownCommandError reports a command name not present in the registry.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command: %s", e.Name)
}

// ParseError reports invalid command arguments.
type ParseError struct {
	Command string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %v", e.Command, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
