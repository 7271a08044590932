// Package namespace defines the virtual namespace dsh navigates: canonical
// paths, node kinds, the provider contract to the backing store, and the
// path resolver.
//
// Providers answer structural queries only; they never cache results on
// behalf of the core, and the core never caches across operations. Calls may
// block on the backing store.
package namespace

// Provider answers structural queries against a backing store. It is the
// sole point of contact with the underlying file; the core never parses
// file bytes itself.
type Provider interface {
	// Node returns the node at the given canonical path, or an error
	// wrapping ErrNodeNotFound if the path denotes nothing.
	Node(p Path) (Node, error)

	// Children returns the ordered children of a group. Order is the
	// backing store's own order and carries meaning; callers must not
	// re-sort silently.
	Children(group Path) ([]Entry, error)
}

// ValueReader is an optional provider capability for reading a dataset's
// rendered value.
type ValueReader interface {
	// Value renders the data stored at a dataset path.
	Value(dataset Path) (string, error)
}

// AttributeReader is an optional provider capability for reading node
// metadata.
type AttributeReader interface {
	// Attributes lists all metadata attached to a node, in store order.
	Attributes(p Path) ([]Attr, error)

	// Attribute reads a single named piece of metadata.
	Attribute(p Path, name string) (Attr, error)
}
