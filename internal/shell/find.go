package shell

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/spf13/pflag"

	"github.com/msto63/dsh/internal/namespace"
	"github.com/msto63/dsh/internal/output"
)

type findCommand struct{}

func (c *findCommand) Name() string { return "find" }

func (c *findCommand) Synopsis() string { return "Search entries by name or attribute." }

func (c *findCommand) Usage() string {
	return `usage: find [-r] PATTERN [PATH]

Search the entries of a group. PATTERN is a regular expression matched
against entry names; the forms @NAME and @NAME=VALUE match against
attribute names and values instead. The search starts at PATH (default: the
working group) and with -r descends into subgroups. Links are reported by
name but never followed.
`
}

// findMatcher decides whether one entry matches the search pattern.
type findMatcher struct {
	name  *regexp.Regexp
	value *regexp.Regexp

	// attrs is true for @NAME[=VALUE] patterns, which match attributes
	// instead of entry names.
	attrs bool
}

func compileFindPattern(pattern string) (*findMatcher, error) {
	if !strings.HasPrefix(pattern, "@") {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad pattern: %w", err)
		}
		return &findMatcher{name: re}, nil
	}

	spec := strings.TrimPrefix(pattern, "@")
	namePart := spec
	valuePart := ""
	if i := strings.IndexByte(spec, '='); i >= 0 {
		namePart, valuePart = spec[:i], spec[i+1:]
	}

	nameRe, err := regexp.Compile(namePart)
	if err != nil {
		return nil, fmt.Errorf("bad attribute name pattern: %w", err)
	}
	m := &findMatcher{name: nameRe, attrs: true}
	if valuePart != "" {
		if m.value, err = regexp.Compile(valuePart); err != nil {
			return nil, fmt.Errorf("bad attribute value pattern: %w", err)
		}
	}
	return m, nil
}

func (m *findMatcher) matches(sh *Shell, p namespace.Path, name string) bool {
	if !m.attrs {
		return m.name.MatchString(name)
	}

	ar, ok := sh.provider.(namespace.AttributeReader)
	if !ok {
		return false
	}
	attrs, err := ar.Attributes(p)
	if err != nil {
		return false
	}
	for _, a := range attrs {
		if !m.name.MatchString(a.Name) {
			continue
		}
		if m.value == nil || m.value.MatchString(a.Value) {
			return true
		}
	}
	return false
}

func (c *findCommand) Run(sh *Shell, args []string) (Outcome, error) {
	fs := pflag.NewFlagSet("find", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	recursive := fs.BoolP("recursive", "r", false, "")
	if err := fs.Parse(args); err != nil {
		return KeepRunning, &ParseError{Command: "find", Err: err}
	}
	rest := fs.Args()
	if len(rest) < 1 || len(rest) > 2 {
		return KeepRunning, &ParseError{Command: "find", Err: fmt.Errorf("expected PATTERN [PATH], got %d arguments", len(rest))}
	}

	matcher, err := compileFindPattern(rest[0])
	if err != nil {
		return KeepRunning, &ParseError{Command: "find", Err: err}
	}

	input := "."
	if len(rest) == 2 {
		input = rest[1]
	}
	base, node, err := sh.ResolveNode(input)
	if err != nil {
		return KeepRunning, err
	}
	if node.Kind != namespace.KindGroup {
		return KeepRunning, fmt.Errorf("not a group: %s", base)
	}

	var count int
	if err := c.search(sh, matcher, base, "", *recursive, &count); err != nil {
		return KeepRunning, err
	}
	if count == 0 {
		sh.printer.Println("no matches")
	}
	return KeepRunning, nil
}

// search walks one group, printing matches as relative paths. prefix carries
// the path from the search base down to group, empty at the top.
func (c *findCommand) search(sh *Shell, m *findMatcher, group namespace.Path, prefix string, recursive bool, count *int) error {
	entries, err := sh.provider.Children(group)
	if err != nil {
		return err
	}
	for _, e := range entries {
		p := group.Child(e.Name)
		rel := prefix + e.Name
		if m.matches(sh, p, e.Name) {
			styled := sh.printer.Styles().ForKind(e.Node.Kind).Render(e.Name) + output.KindIndicator(e.Node.Kind)
			sh.printer.Printf("%s%s\n", prefix, styled)
			*count++
		}
		if recursive && e.Node.Kind == namespace.KindGroup {
			if err := c.search(sh, m, p, rel+namespace.Separator, recursive, count); err != nil {
				return err
			}
		}
	}
	return nil
}
