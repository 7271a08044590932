// Package docstore implements the namespace provider over structured data
// documents: YAML and JSON through yaml.v3, TOML through BurntSushi/toml.
//
// Mappings become groups, scalars and scalar sequences become datasets,
// sequences with structured elements become groups with index-named
// children. YAML anchors/aliases surface as links whose target is the
// canonical path of the anchored node's first occurrence. Node metadata
// (tag, anchor, source position, comments) is exposed through the attribute
// capability.
package docstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/msto63/dsh/internal/namespace"
	"github.com/msto63/dsh/pkg/log"
)

// Store is a document-backed namespace provider. The document is parsed once
// at open time; queries afterwards are in-memory lookups.
type Store struct {
	filename string
	tree     *tree
}

// Open reads and parses the document at filename, picking the format by
// extension (.yaml/.yml/.json via YAML, .toml via TOML).
func Open(filename string, logger *log.Logger) (*Store, error) {
	if logger == nil {
		logger = log.GetDefault()
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	t := newTree()
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".yaml", ".yml", ".json":
		err = buildYAML(data, t)
	case ".toml":
		err = buildTOML(data, t)
	default:
		return nil, fmt.Errorf("unsupported document format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}

	logger.WithName("docstore").Debug("document opened", log.Fields{
		"filename": filename,
		"nodes":    len(t.nodes),
	})
	return &Store{filename: filename, tree: t}, nil
}

// Filename returns the path of the opened document.
func (s *Store) Filename() string {
	return s.filename
}

// Node implements namespace.Provider.
func (s *Store) Node(p namespace.Path) (namespace.Node, error) {
	n, ok := s.tree.nodes[p.String()]
	if !ok {
		return namespace.Node{}, fmt.Errorf("%s: %w", p, namespace.ErrNodeNotFound)
	}
	return n.node, nil
}

// Children implements namespace.Provider, reporting children in document
// order.
func (s *Store) Children(group namespace.Path) ([]namespace.Entry, error) {
	n, ok := s.tree.nodes[group.String()]
	if !ok {
		return nil, fmt.Errorf("%s: %w", group, namespace.ErrNodeNotFound)
	}
	if n.node.Kind != namespace.KindGroup {
		return nil, &namespace.NotAGroupError{Location: group.Parent(), Name: group.Name()}
	}
	entries := make([]namespace.Entry, 0, len(n.children))
	for _, name := range n.children {
		child := s.tree.nodes[group.Child(name).String()]
		entries = append(entries, namespace.Entry{Name: name, Node: child.node})
	}
	return entries, nil
}

// Value implements namespace.ValueReader.
func (s *Store) Value(dataset namespace.Path) (string, error) {
	n, ok := s.tree.nodes[dataset.String()]
	if !ok {
		return "", fmt.Errorf("%s: %w", dataset, namespace.ErrNodeNotFound)
	}
	if n.node.Kind != namespace.KindDataset {
		return "", fmt.Errorf("%s: not a dataset", dataset)
	}
	return n.value, nil
}

// Attributes implements namespace.AttributeReader.
func (s *Store) Attributes(p namespace.Path) ([]namespace.Attr, error) {
	n, ok := s.tree.nodes[p.String()]
	if !ok {
		return nil, fmt.Errorf("%s: %w", p, namespace.ErrNodeNotFound)
	}
	attrs := make([]namespace.Attr, len(n.attrs))
	copy(attrs, n.attrs)
	return attrs, nil
}

// Attribute implements namespace.AttributeReader.
func (s *Store) Attribute(p namespace.Path, name string) (namespace.Attr, error) {
	attrs, err := s.Attributes(p)
	if err != nil {
		return namespace.Attr{}, err
	}
	for _, a := range attrs {
		if a.Name == name {
			return a, nil
		}
	}
	return namespace.Attr{}, fmt.Errorf("attribute %q of %s: %w", name, p, namespace.ErrNodeNotFound)
}

// tree is the materialized namespace of one document.
type tree struct {
	nodes map[string]*docNode
}

type docNode struct {
	node     namespace.Node
	children []string
	attrs    []namespace.Attr
	value    string
}

func newTree() *tree {
	t := &tree{nodes: make(map[string]*docNode)}
	t.nodes[namespace.Root().String()] = &docNode{node: namespace.Node{Kind: namespace.KindGroup}}
	return t
}

// insert adds a child under parent, sanitizing and de-duplicating its name,
// and returns the child's canonical path.
func (t *tree) insert(parent namespace.Path, name string, node namespace.Node) (namespace.Path, *docNode) {
	name = sanitizeName(name)
	p := t.nodes[parent.String()]
	if t.hasChild(p, name) {
		base := name
		for i := 2; ; i++ {
			name = fmt.Sprintf("%s#%d", base, i)
			if !t.hasChild(p, name) {
				break
			}
		}
	}
	child := &docNode{node: node}
	childPath := parent.Child(name)
	t.nodes[childPath.String()] = child
	p.children = append(p.children, name)
	return childPath, child
}

func (t *tree) hasChild(p *docNode, name string) bool {
	for _, c := range p.children {
		if c == name {
			return true
		}
	}
	return false
}

// sanitizeName makes a document key usable as a path segment. Separators are
// replaced with a division slash, empty keys get a placeholder.
func sanitizeName(name string) string {
	name = strings.ReplaceAll(name, namespace.Separator, "∕")
	if name == "" {
		return "(empty)"
	}
	return name
}
