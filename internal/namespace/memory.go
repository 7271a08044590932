package namespace

import (
	"fmt"
)

// MemoryProvider is an in-memory Provider. It backs tests and serves as the
// reference implementation of the provider contract, including links, which
// it can arrange into arbitrary graphs (cycles included).
type MemoryProvider struct {
	nodes map[string]*memNode
}

type memNode struct {
	node     Node
	children []string
	attrs    []Attr
	value    string
}

// NewMemory creates a provider containing only the root group.
func NewMemory() *MemoryProvider {
	m := &MemoryProvider{nodes: make(map[string]*memNode)}
	m.nodes[Root().String()] = &memNode{node: Node{Kind: KindGroup}}
	return m
}

// AddGroup inserts a group at the given canonical path string. The parent
// must already exist and be a group.
func (m *MemoryProvider) AddGroup(path string) *MemoryProvider {
	m.insert(path, Node{Kind: KindGroup})
	return m
}

// AddDataset inserts a dataset holding the given rendered value.
func (m *MemoryProvider) AddDataset(path, value string) *MemoryProvider {
	n := m.insert(path, Node{Kind: KindDataset})
	n.value = value
	return m
}

// AddLink inserts a link to the given canonical target path string. The
// target does not need to exist; dangling links are valid store content.
func (m *MemoryProvider) AddLink(path, target string) *MemoryProvider {
	t, err := ParseCanonical(target)
	if err != nil {
		panic(fmt.Sprintf("memory provider: bad link target: %v", err))
	}
	m.insert(path, Node{Kind: KindLink, Target: t})
	return m
}

// SetAttr attaches metadata to an existing node, preserving insertion order.
func (m *MemoryProvider) SetAttr(path, name, value string) *MemoryProvider {
	p := mustParse(path)
	n, ok := m.nodes[p.String()]
	if !ok {
		panic(fmt.Sprintf("memory provider: no node at %s", p))
	}
	n.attrs = append(n.attrs, Attr{Name: name, Value: value})
	return m
}

func (m *MemoryProvider) insert(path string, node Node) *memNode {
	p := mustParse(path)
	if p.IsRoot() {
		panic("memory provider: cannot replace the root")
	}
	parent, ok := m.nodes[p.Parent().String()]
	if !ok {
		panic(fmt.Sprintf("memory provider: no parent group for %s", p))
	}
	if parent.node.Kind != KindGroup {
		panic(fmt.Sprintf("memory provider: parent of %s is not a group", p))
	}
	n := &memNode{node: node}
	m.nodes[p.String()] = n
	parent.children = append(parent.children, p.Name())
	return n
}

func mustParse(path string) Path {
	p, err := ParseCanonical(path)
	if err != nil {
		panic(fmt.Sprintf("memory provider: %v", err))
	}
	return p
}

// Node implements Provider.
func (m *MemoryProvider) Node(p Path) (Node, error) {
	n, ok := m.nodes[p.String()]
	if !ok {
		return Node{}, fmt.Errorf("%s: %w", p, ErrNodeNotFound)
	}
	return n.node, nil
}

// Children implements Provider, reporting children in insertion order.
func (m *MemoryProvider) Children(group Path) ([]Entry, error) {
	n, ok := m.nodes[group.String()]
	if !ok {
		return nil, fmt.Errorf("%s: %w", group, ErrNodeNotFound)
	}
	if n.node.Kind != KindGroup {
		return nil, &NotAGroupError{Location: group.Parent(), Name: group.Name()}
	}
	entries := make([]Entry, 0, len(n.children))
	for _, name := range n.children {
		child := m.nodes[group.Child(name).String()]
		entries = append(entries, Entry{Name: name, Node: child.node})
	}
	return entries, nil
}

// Value implements ValueReader.
func (m *MemoryProvider) Value(dataset Path) (string, error) {
	n, ok := m.nodes[dataset.String()]
	if !ok {
		return "", fmt.Errorf("%s: %w", dataset, ErrNodeNotFound)
	}
	if n.node.Kind != KindDataset {
		return "", fmt.Errorf("%s: not a dataset", dataset)
	}
	return n.value, nil
}

// Attributes implements AttributeReader.
func (m *MemoryProvider) Attributes(p Path) ([]Attr, error) {
	n, ok := m.nodes[p.String()]
	if !ok {
		return nil, fmt.Errorf("%s: %w", p, ErrNodeNotFound)
	}
	attrs := make([]Attr, len(n.attrs))
	copy(attrs, n.attrs)
	return attrs, nil
}

// Attribute implements AttributeReader.
func (m *MemoryProvider) Attribute(p Path, name string) (Attr, error) {
	n, ok := m.nodes[p.String()]
	if !ok {
		return Attr{}, fmt.Errorf("%s: %w", p, ErrNodeNotFound)
	}
	for _, a := range n.attrs {
		if a.Name == name {
			return a, nil
		}
	}
	return Attr{}, fmt.Errorf("attribute %q of %s: %w", name, p, ErrNodeNotFound)
}
