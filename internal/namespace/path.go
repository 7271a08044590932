package namespace

import (
	"fmt"
	"strings"
)

// Separator separates path segments in rendered and user-typed paths.
const Separator = "/"

// Path is a canonical path in the namespace: an ordered sequence of non-empty
// name segments from the root, with no "." or ".." segments. The root is the
// empty sequence. Path values are immutable; all operations return new values.
type Path struct {
	segments []string
}

// Root returns the root path.
func Root() Path {
	return Path{}
}

// NewPath builds a path from the given segments.
func NewPath(segments ...string) Path {
	if len(segments) == 0 {
		return Path{}
	}
	segs := make([]string, len(segments))
	copy(segs, segments)
	return Path{segments: segs}
}

// ParseCanonical parses an already-canonical absolute path string. It rejects
// relative paths and "."/".." segments; repeated separators collapse.
// Stores use this for link targets, which are canonical by construction.
func ParseCanonical(s string) (Path, error) {
	if !strings.HasPrefix(s, Separator) {
		return Path{}, fmt.Errorf("not an absolute path: %q", s)
	}
	var segs []string
	for _, seg := range strings.Split(s, Separator) {
		switch seg {
		case "":
			continue
		case ".", "..":
			return Path{}, fmt.Errorf("not a canonical path: %q", s)
		default:
			segs = append(segs, seg)
		}
	}
	return Path{segments: segs}, nil
}

// IsRoot reports whether p is the root path.
func (p Path) IsRoot() bool {
	return len(p.segments) == 0
}

// Depth returns the number of segments.
func (p Path) Depth() int {
	return len(p.segments)
}

// Segments returns a copy of the path's segments.
func (p Path) Segments() []string {
	if len(p.segments) == 0 {
		return nil
	}
	segs := make([]string, len(p.segments))
	copy(segs, p.segments)
	return segs
}

// Name returns the last segment, or "" for the root.
func (p Path) Name() string {
	if len(p.segments) == 0 {
		return ""
	}
	return p.segments[len(p.segments)-1]
}

// Parent returns the path without its last segment. The root's parent is the
// root itself.
func (p Path) Parent() Path {
	if len(p.segments) == 0 {
		return p
	}
	return NewPath(p.segments[:len(p.segments)-1]...)
}

// Child returns p extended by one segment.
func (p Path) Child(name string) Path {
	segs := make([]string, len(p.segments)+1)
	copy(segs, p.segments)
	segs[len(p.segments)] = name
	return Path{segments: segs}
}

// Equal reports segment-wise equality.
func (p Path) Equal(o Path) bool {
	if len(p.segments) != len(o.segments) {
		return false
	}
	for i, seg := range p.segments {
		if o.segments[i] != seg {
			return false
		}
	}
	return true
}

// IsAncestorOf reports whether p is a strict ancestor of o.
func (p Path) IsAncestorOf(o Path) bool {
	if len(p.segments) >= len(o.segments) {
		return false
	}
	for i, seg := range p.segments {
		if o.segments[i] != seg {
			return false
		}
	}
	return true
}

// String renders the path with a leading separator; the root renders as the
// separator alone.
func (p Path) String() string {
	if len(p.segments) == 0 {
		return Separator
	}
	return Separator + strings.Join(p.segments, Separator)
}
