package shell

import (
	"sort"
	"strings"

	"github.com/msto63/dsh/internal/namespace"
)

// completionOverflow marks a truncated candidate list.
const completionOverflow = "…"

// Complete returns path completion candidates for a partially typed path
// token. The portion up to the last separator is resolved as a group; the
// remainder filters that group's entries by prefix. Resolution failures
// yield no candidates rather than an error.
func (s *Shell) Complete(partial string) []string {
	dir, prefix := splitCompletion(partial)

	input := dir
	if input == "" {
		input = "."
	}
	target, node, err := s.resolver.ResolveNode(s.workingGroup, input)
	if err != nil || node.Kind != namespace.KindGroup {
		return nil
	}
	entries, err := s.provider.Children(target)
	if err != nil {
		return nil
	}

	var out []string
	for _, e := range entries {
		if !strings.HasPrefix(e.Name, prefix) {
			continue
		}
		cand := dir + e.Name
		if e.Node.Kind == namespace.KindGroup {
			cand += namespace.Separator
		}
		out = append(out, cand)
	}
	sort.Strings(out)

	if len(out) > s.maxCandidates {
		out = append(out[:s.maxCandidates], completionOverflow)
	}
	return out
}

// CompleteCommands returns the command names matching a prefix, for
// completing the first word of a line.
func (s *Shell) CompleteCommands(prefix string) []string {
	var out []string
	for _, name := range s.registry.SortedNames() {
		if strings.HasPrefix(name, prefix) {
			out = append(out, name)
		}
	}
	return out
}

// splitCompletion splits a partial path at its last separator into the
// directory portion (separator included) and the name prefix.
func splitCompletion(partial string) (dir, prefix string) {
	i := strings.LastIndex(partial, namespace.Separator)
	if i < 0 {
		return "", partial
	}
	return partial[:i+1], partial[i+1:]
}
