package shell

type exitCommand struct{}

func (c *exitCommand) Name() string { return "exit" }

func (c *exitCommand) Synopsis() string { return "Leave the shell." }

func (c *exitCommand) Usage() string {
	return `usage: exit

Leave the shell with a zero status.
`
}

func (c *exitCommand) Run(sh *Shell, args []string) (Outcome, error) {
	return ExitSuccess, nil
}
