package shell

import (
	"fmt"

	"github.com/msto63/dsh/internal/namespace"
)

type cdCommand struct{}

func (c *cdCommand) Name() string { return "cd" }

func (c *cdCommand) Synopsis() string { return "Change the working group." }

func (c *cdCommand) Usage() string {
	return `usage: cd [PATH]

Change the working group. Without a path, cd returns to the root. Links in
the path are followed; the destination must be a group.
`
}

func (c *cdCommand) Run(sh *Shell, args []string) (Outcome, error) {
	if len(args) > 1 {
		return KeepRunning, &ParseError{Command: "cd", Err: fmt.Errorf("expected at most one path, got %d", len(args))}
	}

	input := namespace.Separator
	if len(args) == 1 {
		input = args[0]
	}

	target, node, err := sh.ResolveNode(input)
	if err != nil {
		return KeepRunning, err
	}
	if node.Kind != namespace.KindGroup {
		return KeepRunning, fmt.Errorf("not a group: %s", target)
	}

	// The only place the working group changes.
	sh.workingGroup = target
	return KeepRunning, nil
}
