package docstore

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/msto63/dsh/internal/namespace"
)

// buildYAML populates the tree from a YAML or JSON document.
func buildYAML(data []byte, t *tree) error {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		// Empty document: the namespace is just the root group.
		return nil
	}

	w := &yamlWalker{tree: t, anchors: make(map[*yaml.Node]namespace.Path)}
	root := doc.Content[0]

	switch root.Kind {
	case yaml.MappingNode:
		w.noteAnchor(root, namespace.Root())
		w.walkMapping(namespace.Root(), root)
	case yaml.SequenceNode:
		w.noteAnchor(root, namespace.Root())
		w.walkSequenceInto(namespace.Root(), root)
	default:
		// A bare scalar document still gets a navigable namespace.
		w.addChild(namespace.Root(), "value", root, nil)
	}
	return nil
}

type yamlWalker struct {
	tree *tree

	// anchors maps an anchored node to the canonical path of its first
	// occurrence; aliases become links to that path.
	anchors map[*yaml.Node]namespace.Path
}

func (w *yamlWalker) noteAnchor(n *yaml.Node, p namespace.Path) {
	if n.Anchor != "" {
		w.anchors[n] = p
	}
}

// addChild inserts the namespace node for value under parent. key is the
// mapping key node when the child comes from a mapping, nil otherwise.
func (w *yamlWalker) addChild(parent namespace.Path, name string, value *yaml.Node, key *yaml.Node) {
	switch value.Kind {
	case yaml.AliasNode:
		target, ok := w.anchors[value.Alias]
		if !ok {
			// An alias always follows its anchor in document order, so the
			// target path is known by the time we get here. Guard anyway and
			// expand the aliased node in place if it is not.
			w.addChild(parent, name, value.Alias, key)
			return
		}
		_, child := w.tree.insert(parent, name, namespace.Node{Kind: namespace.KindLink, Target: target})
		child.attrs = yamlAttrs(value, key)

	case yaml.MappingNode:
		p, child := w.tree.insert(parent, name, namespace.Node{Kind: namespace.KindGroup})
		child.attrs = yamlAttrs(value, key)
		w.noteAnchor(value, p)
		w.walkMapping(p, value)

	case yaml.SequenceNode:
		if scalarSequence(value) {
			p, child := w.tree.insert(parent, name, namespace.Node{Kind: namespace.KindDataset})
			child.value = renderSequence(value)
			child.attrs = append(yamlAttrs(value, key),
				namespace.Attr{Name: "length", Value: strconv.Itoa(len(value.Content))})
			w.noteAnchor(value, p)
		} else {
			p, child := w.tree.insert(parent, name, namespace.Node{Kind: namespace.KindGroup})
			child.attrs = yamlAttrs(value, key)
			w.noteAnchor(value, p)
			w.walkSequenceInto(p, value)
		}

	case yaml.ScalarNode:
		p, child := w.tree.insert(parent, name, namespace.Node{Kind: namespace.KindDataset})
		child.value = value.Value
		child.attrs = yamlAttrs(value, key)
		w.noteAnchor(value, p)
	}
}

func (w *yamlWalker) walkMapping(group namespace.Path, mapping *yaml.Node) {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key := mapping.Content[i]
		value := mapping.Content[i+1]
		w.addChild(group, key.Value, value, key)
	}
}

// walkSequenceInto adds a sequence's elements as index-named children.
func (w *yamlWalker) walkSequenceInto(group namespace.Path, seq *yaml.Node) {
	for i, elem := range seq.Content {
		w.addChild(group, strconv.Itoa(i), elem, nil)
	}
}

// scalarSequence reports whether every element of seq is a scalar; such
// sequences render as one dataset instead of a group of index children.
func scalarSequence(seq *yaml.Node) bool {
	for _, elem := range seq.Content {
		if elem.Kind != yaml.ScalarNode {
			return false
		}
	}
	return true
}

func renderSequence(seq *yaml.Node) string {
	parts := make([]string, len(seq.Content))
	for i, elem := range seq.Content {
		parts[i] = elem.Value
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// yamlAttrs exposes a node's document metadata: resolved tag, anchor name,
// source position, and any comments on the value or its mapping key.
func yamlAttrs(value *yaml.Node, key *yaml.Node) []namespace.Attr {
	attrs := []namespace.Attr{
		{Name: "tag", Value: value.Tag},
		{Name: "position", Value: fmt.Sprintf("%d:%d", value.Line, value.Column)},
	}
	if value.Anchor != "" {
		attrs = append(attrs, namespace.Attr{Name: "anchor", Value: value.Anchor})
	}
	if value.Kind == yaml.AliasNode && value.Alias != nil && value.Alias.Anchor != "" {
		attrs = append(attrs, namespace.Attr{Name: "alias-of", Value: value.Alias.Anchor})
	}

	comment := firstNonEmpty(
		value.LineComment,
		value.HeadComment,
		keyComment(key),
	)
	if comment != "" {
		attrs = append(attrs, namespace.Attr{Name: "comment", Value: trimComment(comment)})
	}
	return attrs
}

func keyComment(key *yaml.Node) string {
	if key == nil {
		return ""
	}
	return firstNonEmpty(key.LineComment, key.HeadComment)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func trimComment(c string) string {
	lines := strings.Split(c, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "#"))
	}
	return strings.Join(lines, " ")
}
