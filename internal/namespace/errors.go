package namespace

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNodeNotFound is the sentinel a Provider returns when a queried path does
// not denote a node. The resolver wraps it with location context.
var ErrNodeNotFound = errors.New("node not found")

// ErrLinkChainTooLong reports that resolving a single path token required
// more link dereferences than the configured bound.
var ErrLinkChainTooLong = errors.New("link chain too long")

// NotFoundError reports that a group has no child with the given name.
type NotFoundError struct {
	Location Path
	Name     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("not found: %q in %s", e.Name, e.Location)
}

// NotAGroupError reports that navigation tried to descend into a node that is
// not a group.
type NotAGroupError struct {
	Location Path
	Name     string
}

func (e *NotAGroupError) Error() string {
	return fmt.Sprintf("not a group: %q in %s", e.Name, e.Location)
}

// LinkCycleError reports that a link chain revisited a canonical path within
// a single resolution call.
type LinkCycleError struct {
	Chain []Path
}

func (e *LinkCycleError) Error() string {
	parts := make([]string, len(e.Chain))
	for i, p := range e.Chain {
		parts[i] = p.String()
	}
	return "link cycle: " + strings.Join(parts, " -> ")
}

// StoreError wraps an opaque failure of the backing store. It is always
// surfaced verbatim rather than swallowed.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("backing store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is a not-found condition, either the
// provider sentinel or the resolver's contextual error.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.Is(err, ErrNodeNotFound) || errors.As(err, &nf)
}
