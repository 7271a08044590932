// Package editor wraps the readline instance driving the REPL: line input,
// persisted history, and tab completion hooked into the shell.
package editor

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// Event classifies the result of one read from the terminal.
type Event int

const (
	// EventLine delivers an input line.
	EventLine Event = iota

	// EventSkip means no line was read but the loop continues (Ctrl+C
	// discards the current line).
	EventSkip

	// EventExit means the user closed the input (Ctrl+D).
	EventExit
)

// Options configures an Editor.
type Options struct {
	Prompt      string
	HistoryFile string

	// CompleteCommands returns command-name candidates for a prefix.
	CompleteCommands func(prefix string) []string

	// CompletePaths returns path candidates for a partial path token.
	CompletePaths func(partial string) []string
}

// Editor owns the readline instance for one session.
type Editor struct {
	rl *readline.Instance
}

// New initializes the line editor. History is loaded from and saved to the
// configured file; an empty path disables persistence.
func New(opts Options) (*Editor, error) {
	completer := readline.NewPrefixCompleter(
		readline.PcItemDynamic(func(line string) []string {
			return complete(line, opts)
		}),
	)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            opts.Prompt,
		HistoryFile:       opts.HistoryFile,
		HistorySearchFold: true,
		AutoComplete:      completer,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
	})
	if err != nil {
		return nil, err
	}
	return &Editor{rl: rl}, nil
}

// complete dispatches one completion request: command names for the first
// word, paths afterwards.
func complete(line string, opts Options) []string {
	word := line
	if i := strings.LastIndexAny(line, " \t"); i >= 0 {
		word = line[i+1:]
	}

	if !strings.ContainsAny(strings.TrimLeft(line, " \t"), " \t") {
		if opts.CompleteCommands == nil {
			return nil
		}
		return opts.CompleteCommands(word)
	}
	if opts.CompletePaths == nil {
		return nil
	}
	return opts.CompletePaths(word)
}

// SetPrompt updates the prompt shown before the next read.
func (e *Editor) SetPrompt(prompt string) {
	e.rl.SetPrompt(prompt)
}

// Poll reads one line, mapping readline's control errors to loop events.
func (e *Editor) Poll() (string, Event) {
	line, err := e.rl.Readline()
	switch {
	case err == readline.ErrInterrupt:
		return "", EventSkip
	case err == io.EOF:
		return "", EventExit
	case err != nil:
		return "", EventExit
	}
	return line, EventLine
}

// Close releases the terminal.
func (e *Editor) Close() error {
	return e.rl.Close()
}
