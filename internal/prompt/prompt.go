// Package prompt renders the interactive prompt: the opened file's name and
// the working group, followed by the configured sigil.
package prompt

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/dsh/internal/output"
)

// Renderer builds prompt strings for the line editor.
type Renderer struct {
	filename string
	sigil    string
	styles   output.Styles
}

// New creates a renderer for the given display filename. An empty sigil
// falls back to "$".
func New(filename, sigil string, styles output.Styles) *Renderer {
	if sigil == "" {
		sigil = "$"
	}
	return &Renderer{filename: filename, sigil: sigil, styles: styles}
}

// Render builds the prompt for the given working group path string.
func (r *Renderer) Render(workingGroup string) string {
	name := lipgloss.NewStyle().Bold(true).Render(r.filename)
	group := r.styles.Group.Render(workingGroup)
	return fmt.Sprintf("%s:%s %s ", name, group, r.sigil)
}
