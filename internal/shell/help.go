package shell

import (
	"fmt"
	"strings"
)

type helpCommand struct{}

func (c *helpCommand) Name() string { return "help" }

func (c *helpCommand) Synopsis() string { return "List commands, or show one command's usage." }

func (c *helpCommand) Usage() string {
	return `usage: help [COMMAND]

List all commands with a one-line description, or print the full usage of
one command.
`
}

func (c *helpCommand) Run(sh *Shell, args []string) (Outcome, error) {
	if len(args) > 1 {
		return KeepRunning, &ParseError{Command: "help", Err: fmt.Errorf("expected at most one command name, got %d", len(args))}
	}

	if len(args) == 1 {
		cmd, ok := sh.registry.Get(args[0])
		if !ok {
			return KeepRunning, &UnknownCommandError{Name: args[0]}
		}
		sh.printer.Printf("%s", cmd.Usage())
		return KeepRunning, nil
	}

	names := sh.registry.SortedNames()
	width := 0
	for _, name := range names {
		if len(name) > width {
			width = len(name)
		}
	}
	for _, name := range names {
		cmd, _ := sh.registry.Get(name)
		pad := strings.Repeat(" ", width-len(name))
		sh.printer.Printf("%s%s  %s\n", sh.printer.Styles().Group.Render(name), pad, cmd.Synopsis())
	}
	return KeepRunning, nil
}
