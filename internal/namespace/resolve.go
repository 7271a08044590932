package namespace

import (
	"errors"
	"fmt"
	"strings"

	"github.com/msto63/dsh/pkg/log"
)

// DefaultMaxLinkHops bounds link dereferences per path token. Pathological
// non-cyclic chains fail with ErrLinkChainTooLong instead of stalling the
// shell.
const DefaultMaxLinkHops = 32

// ResolverOptions configures a Resolver.
type ResolverOptions struct {
	// MaxLinkHops overrides DefaultMaxLinkHops when positive.
	MaxLinkHops int

	Logger *log.Logger
}

// Resolver turns user-typed path strings into canonical paths, querying the
// provider for each hop. It holds no state between calls; cycle-detection
// state lives in a per-call resolution context.
type Resolver struct {
	provider    Provider
	maxLinkHops int
	logger      *log.Logger
}

// NewResolver creates a resolver over the given provider.
func NewResolver(provider Provider, opts ResolverOptions) *Resolver {
	maxHops := opts.MaxLinkHops
	if maxHops <= 0 {
		maxHops = DefaultMaxLinkHops
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.GetDefault()
	}
	return &Resolver{
		provider:    provider,
		maxLinkHops: maxHops,
		logger:      logger.WithName("resolver"),
	}
}

// resolution is the transient state of one Resolve call: the set of link
// paths already dereferenced, and the chain in dereference order for error
// reporting. It never outlives the call.
type resolution struct {
	visited map[string]struct{}
	chain   []Path
}

func newResolution() *resolution {
	return &resolution{visited: make(map[string]struct{})}
}

func (rc *resolution) seen(p Path) bool {
	_, ok := rc.visited[p.String()]
	return ok
}

func (rc *resolution) visit(p Path) {
	rc.visited[p.String()] = struct{}{}
	rc.chain = append(rc.chain, p)
}

// Resolve resolves input against start and returns the canonical path it
// denotes. Input starting with the separator resolves from the root; "." is
// a no-op, ".." pops a segment (the root's parent is the root), repeated
// separators collapse. Links are dereferenced transparently; a link is never
// the returned endpoint.
//
// Dereferencing the same canonical link path twice within one call fails
// with LinkCycleError, so a self-referential link fails on its second
// traversal rather than resolving indefinitely.
func (r *Resolver) Resolve(start Path, input string) (Path, error) {
	cur := start
	if strings.HasPrefix(input, Separator) {
		cur = Root()
	}

	tokens := splitTokens(input)
	rc := newResolution()

	for i, token := range tokens {
		switch token {
		case ".":
			continue
		case "..":
			cur = cur.Parent()
			continue
		}

		resolved, node, err := r.lookupChild(cur, token)
		if err != nil {
			return Path{}, err
		}

		resolved, node, err = r.dereference(rc, resolved, node, token)
		if err != nil {
			return Path{}, err
		}

		if i < len(tokens)-1 && node.Kind != KindGroup {
			return Path{}, &NotAGroupError{Location: cur, Name: token}
		}
		cur = resolved
	}

	r.logger.Debug("resolved path", log.Fields{"input": input, "start": start.String(), "result": cur.String()})
	return cur, nil
}

// ResolveNode resolves input and additionally returns the node at the
// resulting path.
func (r *Resolver) ResolveNode(start Path, input string) (Path, Node, error) {
	p, err := r.Resolve(start, input)
	if err != nil {
		return Path{}, Node{}, err
	}
	node, err := r.nodeAt(p)
	if err != nil {
		return Path{}, Node{}, err
	}
	return p, node, nil
}

// lookupChild queries the provider for a child named token under cur.
func (r *Resolver) lookupChild(cur Path, token string) (Path, Node, error) {
	child := cur.Child(token)
	node, err := r.provider.Node(child)
	if err != nil {
		if errors.Is(err, ErrNodeNotFound) {
			return Path{}, Node{}, &NotFoundError{Location: cur, Name: token}
		}
		return Path{}, Node{}, &StoreError{Op: "node " + child.String(), Err: err}
	}
	return child, node, nil
}

// dereference follows a link chain starting at the given node until a
// non-link node is reached, enforcing the per-token hop bound and the
// per-call visited set.
func (r *Resolver) dereference(rc *resolution, p Path, node Node, token string) (Path, Node, error) {
	hops := 0
	for node.Kind == KindLink {
		if rc.seen(p) {
			return Path{}, Node{}, &LinkCycleError{Chain: append(rc.chain, p)}
		}
		rc.visit(p)

		hops++
		if hops > r.maxLinkHops {
			return Path{}, Node{}, fmt.Errorf("resolving %q: %w", token, ErrLinkChainTooLong)
		}

		target := node.Target
		next, err := r.provider.Node(target)
		if err != nil {
			if errors.Is(err, ErrNodeNotFound) {
				// Dangling link: report the missing target, not the link.
				return Path{}, Node{}, &NotFoundError{Location: target.Parent(), Name: target.Name()}
			}
			return Path{}, Node{}, &StoreError{Op: "node " + target.String(), Err: err}
		}
		p, node = target, next
	}
	return p, node, nil
}

func (r *Resolver) nodeAt(p Path) (Node, error) {
	node, err := r.provider.Node(p)
	if err != nil {
		if errors.Is(err, ErrNodeNotFound) {
			return Node{}, &NotFoundError{Location: p.Parent(), Name: p.Name()}
		}
		return Node{}, &StoreError{Op: "node " + p.String(), Err: err}
	}
	return node, nil
}

// splitTokens splits a path input on the separator, discarding empty tokens
// produced by repeated separators.
func splitTokens(input string) []string {
	var tokens []string
	for _, token := range strings.Split(input, Separator) {
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}
