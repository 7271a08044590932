package namespace

// Kind classifies a namespace node.
type Kind int

const (
	// KindGroup is a node that can contain named children.
	KindGroup Kind = iota

	// KindDataset is a leaf node holding data.
	KindDataset

	// KindAttribute is a node exposing key/value metadata.
	KindAttribute

	// KindLink is an aliasing node whose resolution defers to another
	// canonical path. A link is never a resolution endpoint.
	KindLink
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindGroup:
		return "group"
	case KindDataset:
		return "dataset"
	case KindAttribute:
		return "attribute"
	case KindLink:
		return "link"
	default:
		return "unknown"
	}
}

// Node describes a namespace node as reported by a Provider.
type Node struct {
	Kind Kind

	// Target is the link's canonical target path; set only for KindLink.
	Target Path
}

// Entry is one element of a group listing.
type Entry struct {
	Name string
	Node Node
}

// Attr is a single piece of key/value metadata attached to a node.
type Attr struct {
	Name  string
	Value string
}
