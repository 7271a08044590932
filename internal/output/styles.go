package output

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/dsh/internal/namespace"
)

// Default entry colors, one per node kind.
var (
	colorGroup     = lipgloss.Color("12")
	colorDataset   = lipgloss.Color("10")
	colorAttribute = lipgloss.Color("14")
	colorLink      = lipgloss.Color("13")
	colorError     = lipgloss.Color("9")
	colorMuted     = lipgloss.Color("8")
)

// Styles holds the display styles for every element the shell renders.
type Styles struct {
	Group     lipgloss.Style
	Dataset   lipgloss.Style
	Attribute lipgloss.Style
	Link      lipgloss.Style

	Error    lipgloss.Style
	Muted    lipgloss.Style
	AttrName lipgloss.Style
}

// DefaultStyles returns the built-in style set.
func DefaultStyles() Styles {
	return Styles{
		Group:     lipgloss.NewStyle().Foreground(colorGroup).Bold(true),
		Dataset:   lipgloss.NewStyle().Foreground(colorDataset),
		Attribute: lipgloss.NewStyle().Foreground(colorAttribute),
		Link:      lipgloss.NewStyle().Foreground(colorLink),
		Error:     lipgloss.NewStyle().Foreground(colorError),
		Muted:     lipgloss.NewStyle().Foreground(colorMuted),
		AttrName:  lipgloss.NewStyle().Foreground(colorAttribute),
	}
}

// WithColors overrides kind colors with the given terminal color strings.
// Empty strings keep the default.
func (s Styles) WithColors(group, dataset, attribute, link string) Styles {
	if group != "" {
		s.Group = s.Group.Foreground(lipgloss.Color(group))
	}
	if dataset != "" {
		s.Dataset = s.Dataset.Foreground(lipgloss.Color(dataset))
	}
	if attribute != "" {
		s.Attribute = s.Attribute.Foreground(lipgloss.Color(attribute))
		s.AttrName = s.AttrName.Foreground(lipgloss.Color(attribute))
	}
	if link != "" {
		s.Link = s.Link.Foreground(lipgloss.Color(link))
	}
	return s
}

// ForKind returns the style for a node kind.
func (s Styles) ForKind(k namespace.Kind) lipgloss.Style {
	switch k {
	case namespace.KindGroup:
		return s.Group
	case namespace.KindDataset:
		return s.Dataset
	case namespace.KindAttribute:
		return s.Attribute
	case namespace.KindLink:
		return s.Link
	default:
		return lipgloss.NewStyle()
	}
}

// KindIndicator is the one-character suffix appended to entry names, in the
// manner of ls -F.
func KindIndicator(k namespace.Kind) string {
	switch k {
	case namespace.KindGroup:
		return "/"
	case namespace.KindLink:
		return "@"
	default:
		return ""
	}
}
