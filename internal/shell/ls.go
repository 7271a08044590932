package shell

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/pflag"

	"github.com/msto63/dsh/internal/namespace"
	"github.com/msto63/dsh/internal/output"
)

type lsCommand struct{}

// lsItem pairs a listing entry with its canonical path, so long listings can
// read values without re-resolving.
type lsItem struct {
	entry namespace.Entry
	path  namespace.Path
}

func (c *lsCommand) Name() string { return "ls" }

func (c *lsCommand) Synopsis() string { return "List the entries of a group." }

func (c *lsCommand) Usage() string {
	return `usage: ls [-l] [-t] [--name] [--no-value] [PATH]

List the entries of a group, or a single dataset. Without a path the working
group is listed. Entries keep the backing store's order; --name sorts them
alphabetically and -t additionally puts groups first.

  -l, --long      one entry per line with kind and value preview
  -t, --type      sort groups before other entries (implies --name)
      --name      sort entries by name
  -c, --no-value  suppress value previews in long listings
`
}

func (c *lsCommand) Run(sh *Shell, args []string) (Outcome, error) {
	fs := pflag.NewFlagSet("ls", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	long := fs.BoolP("long", "l", false, "")
	byType := fs.BoolP("type", "t", false, "")
	byName := fs.Bool("name", false, "")
	noValue := fs.BoolP("no-value", "c", false, "")
	if err := fs.Parse(args); err != nil {
		return KeepRunning, &ParseError{Command: "ls", Err: err}
	}
	rest := fs.Args()
	if len(rest) > 1 {
		return KeepRunning, &ParseError{Command: "ls", Err: fmt.Errorf("expected at most one path, got %d", len(rest))}
	}

	input := "."
	if len(rest) == 1 {
		input = rest[0]
	}
	target, node, err := sh.ResolveNode(input)
	if err != nil {
		return KeepRunning, err
	}

	var items []lsItem
	switch node.Kind {
	case namespace.KindGroup:
		entries, err := sh.provider.Children(target)
		if err != nil {
			return KeepRunning, err
		}
		items = make([]lsItem, len(entries))
		for i, e := range entries {
			items[i] = lsItem{entry: e, path: target.Child(e.Name)}
		}
	case namespace.KindDataset:
		// A dataset lists as itself, the way ls treats plain files.
		items = []lsItem{{entry: namespace.Entry{Name: target.Name(), Node: node}, path: target}}
	default:
		return KeepRunning, fmt.Errorf("cannot list %s: %s", node.Kind, target)
	}

	if *byName || *byType {
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].entry.Name < items[j].entry.Name
		})
	}
	if *byType {
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].entry.Node.Kind == namespace.KindGroup &&
				items[j].entry.Node.Kind != namespace.KindGroup
		})
	}

	if !*long {
		cells := make([]string, len(items))
		for i, it := range items {
			cells[i] = sh.printer.FormatEntry(it.entry)
		}
		sh.printer.PrintGrid(cells)
		return KeepRunning, nil
	}

	rows := make([]output.TableRow, len(items))
	for i, it := range items {
		rows[i] = output.TableRow{Name: it.entry.Name, Kind: it.entry.Node.Kind}
		switch it.entry.Node.Kind {
		case namespace.KindLink:
			rows[i].Extra = "-> " + it.entry.Node.Target.String()
		case namespace.KindDataset:
			if !*noValue {
				rows[i].Extra = c.preview(sh, it.path)
			}
		}
	}
	sh.printer.PrintTable(rows)
	return KeepRunning, nil
}

// preview renders a dataset's value for the long listing, or "?" when the
// store cannot produce one.
func (c *lsCommand) preview(sh *Shell, p namespace.Path) string {
	vr, ok := sh.provider.(namespace.ValueReader)
	if !ok {
		return ""
	}
	v, err := vr.Value(p)
	if err != nil {
		return "?"
	}
	return v
}
