package shell

import (
	"fmt"

	"github.com/msto63/dsh/internal/namespace"
)

type catCommand struct{}

func (c *catCommand) Name() string { return "cat" }

func (c *catCommand) Synopsis() string { return "Print the value of a dataset." }

func (c *catCommand) Usage() string {
	return `usage: cat PATH

Print the value stored at a dataset. Links are followed; groups have no
value and are rejected.
`
}

func (c *catCommand) Run(sh *Shell, args []string) (Outcome, error) {
	if len(args) != 1 {
		return KeepRunning, &ParseError{Command: "cat", Err: fmt.Errorf("expected exactly one path, got %d", len(args))}
	}

	target, node, err := sh.ResolveNode(args[0])
	if err != nil {
		return KeepRunning, err
	}
	if node.Kind != namespace.KindDataset {
		return KeepRunning, fmt.Errorf("not a dataset: %s is a %s", target, node.Kind)
	}

	vr, ok := sh.provider.(namespace.ValueReader)
	if !ok {
		return KeepRunning, fmt.Errorf("backing store does not expose dataset values")
	}
	value, err := vr.Value(target)
	if err != nil {
		return KeepRunning, err
	}
	sh.printer.Println(value)
	return KeepRunning, nil
}
