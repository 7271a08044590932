package shell

import "fmt"

type pwdCommand struct{}

func (c *pwdCommand) Name() string { return "pwd" }

func (c *pwdCommand) Synopsis() string { return "Print the working group path." }

func (c *pwdCommand) Usage() string {
	return `usage: pwd

Print the canonical path of the working group.
`
}

func (c *pwdCommand) Run(sh *Shell, args []string) (Outcome, error) {
	if len(args) != 0 {
		return KeepRunning, &ParseError{Command: "pwd", Err: fmt.Errorf("takes no arguments")}
	}
	sh.printer.Println(sh.workingGroup.String())
	return KeepRunning, nil
}
