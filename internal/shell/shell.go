// Package shell implements the interactive core of dsh: the shell state
// (current working group), the command registry and dispatcher, and path
// completion. Execution is single-threaded and cooperative; provider calls
// may block and no command runs concurrently with another.
package shell

import (
	"github.com/msto63/dsh/internal/config"
	"github.com/msto63/dsh/internal/namespace"
	"github.com/msto63/dsh/internal/output"
	"github.com/msto63/dsh/pkg/log"
)

// Shell holds the state of one interactive session. The working group is the
// only mutable state; it is mutated in exactly one place, by a successful cd.
type Shell struct {
	workingGroup namespace.Path

	provider namespace.Provider
	resolver *namespace.Resolver
	printer  *output.Printer
	registry *Registry
	logger   *log.Logger

	maxCandidates int
}

// Options configures a Shell.
type Options struct {
	Logger *log.Logger

	// MaxCandidates caps completion candidates; 0 uses the config default.
	MaxCandidates int
}

// New creates a shell session rooted at the namespace root, with the full
// built-in command set registered.
func New(provider namespace.Provider, printer *output.Printer, opts Options) *Shell {
	logger := opts.Logger
	if logger == nil {
		logger = log.GetDefault()
	}
	maxCandidates := opts.MaxCandidates
	if maxCandidates <= 0 {
		maxCandidates = config.DefaultMaxCandidates
	}

	sh := &Shell{
		workingGroup:  namespace.Root(),
		provider:      provider,
		resolver:      namespace.NewResolver(provider, namespace.ResolverOptions{Logger: logger}),
		printer:       printer,
		registry:      NewRegistry(),
		logger:        logger.WithName("shell"),
		maxCandidates: maxCandidates,
	}

	for _, cmd := range []Command{
		&cdCommand{},
		&lsCommand{},
		&pwdCommand{},
		&catCommand{},
		&attrCommand{},
		&findCommand{},
		&helpCommand{},
		&exitCommand{},
	} {
		if err := sh.registry.Register(cmd); err != nil {
			// Built-in registration only fails on duplicated names, which is
			// a programming error.
			panic(err)
		}
	}
	return sh
}

// WorkingGroup returns the current working group path.
func (s *Shell) WorkingGroup() namespace.Path {
	return s.workingGroup
}

// Provider returns the namespace provider backing the session.
func (s *Shell) Provider() namespace.Provider {
	return s.provider
}

// Printer returns the session's printer.
func (s *Shell) Printer() *output.Printer {
	return s.printer
}

// Registry returns the command registry.
func (s *Shell) Registry() *Registry {
	return s.registry
}

// ResolvePath resolves a user-typed path against the working group.
func (s *Shell) ResolvePath(input string) (namespace.Path, error) {
	return s.resolver.Resolve(s.workingGroup, input)
}

// ResolveNode resolves a user-typed path and returns the node it denotes.
func (s *Shell) ResolveNode(input string) (namespace.Path, namespace.Node, error) {
	return s.resolver.ResolveNode(s.workingGroup, input)
}

// Execute tokenizes and dispatches one input line. Errors are rendered and
// recovered here; only exit requests propagate as outcomes.
func (s *Shell) Execute(line string) Outcome {
	tokens, err := Tokenize(line)
	if err != nil {
		s.printer.PrintError(&ParseError{Command: "dsh", Err: err})
		return KeepRunning
	}
	if len(tokens) == 0 {
		return KeepRunning
	}

	name, args := tokens[0], tokens[1:]
	cmd, ok := s.registry.Get(name)
	if !ok {
		s.printer.PrintError(&UnknownCommandError{Name: name})
		return KeepRunning
	}

	// --help short-circuits every command uniformly.
	for _, arg := range args {
		if arg == "--help" {
			s.printer.Printf("%s", cmd.Usage())
			return KeepRunning
		}
	}

	outcome, err := cmd.Run(s, args)
	if err != nil {
		s.printer.PrintError(err)
		s.logger.Debug("command failed", log.Fields{"command": name, "error": err.Error()})
	}
	return outcome
}
