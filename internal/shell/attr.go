package shell

import (
	"fmt"

	"github.com/msto63/dsh/internal/namespace"
)

type attrCommand struct{}

func (c *attrCommand) Name() string { return "attr" }

func (c *attrCommand) Synopsis() string { return "Show the attributes of a node." }

func (c *attrCommand) Usage() string {
	return `usage: attr [PATH [NAME...]]

Show metadata attached to a node. Without arguments the working group's
attributes are shown; with names, only the named attributes. A missing
attribute is reported inline and does not abort the rest.
`
}

func (c *attrCommand) Run(sh *Shell, args []string) (Outcome, error) {
	ar, ok := sh.provider.(namespace.AttributeReader)
	if !ok {
		return KeepRunning, fmt.Errorf("backing store does not expose attributes")
	}

	input := "."
	if len(args) > 0 {
		input = args[0]
	}
	target, err := sh.ResolvePath(input)
	if err != nil {
		return KeepRunning, err
	}

	names := args
	if len(names) > 0 {
		names = names[1:]
	}

	var attrs []namespace.Attr
	if len(names) == 0 {
		attrs, err = ar.Attributes(target)
		if err != nil {
			return KeepRunning, err
		}
		if len(attrs) == 0 {
			sh.printer.Printf("%s: no attributes\n", target)
			return KeepRunning, nil
		}
	} else {
		for _, name := range names {
			a, err := ar.Attribute(target, name)
			if err != nil {
				a = namespace.Attr{Name: name, Value: fmt.Sprintf("error: %v", err)}
			}
			attrs = append(attrs, a)
		}
	}

	sh.printer.PrintAttrs(attrs)
	return KeepRunning, nil
}
