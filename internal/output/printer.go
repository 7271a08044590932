// Package output renders shell results to the terminal: styled entries, the
// width-aware listing grid, detail tables, and error lines.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/msto63/dsh/internal/namespace"
)

// Printer renders shell output. It owns the style set and the terminal
// width probe.
type Printer struct {
	out    io.Writer
	styles Styles
	width  func() int
}

// NewPrinter creates a printer writing to out with the given styles,
// probing stdout for the terminal width.
func NewPrinter(out io.Writer, styles Styles) *Printer {
	return &Printer{
		out:    out,
		styles: styles,
		width:  stdoutWidth,
	}
}

// WithWidthFunc overrides the terminal width probe, mainly for tests.
func (p *Printer) WithWidthFunc(width func() int) *Printer {
	p.width = width
	return p
}

func stdoutWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return w
}

// Styles returns the printer's style set.
func (p *Printer) Styles() Styles {
	return p.styles
}

// TerminalWidth returns the current terminal width, or 0 when it cannot be
// determined.
func (p *Printer) TerminalWidth() int {
	return p.width()
}

// Println writes a plain line.
func (p *Printer) Println(args ...interface{}) {
	fmt.Fprintln(p.out, args...)
}

// Printf writes formatted plain output.
func (p *Printer) Printf(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format, args...)
}

// PrintError renders an error line in the error style.
func (p *Printer) PrintError(err error) {
	fmt.Fprintln(p.out, p.styles.Error.Render("error:"), err)
}

// PrintShellError renders a shell-level message in the error style.
func (p *Printer) PrintShellError(msg string) {
	fmt.Fprintln(p.out, p.styles.Error.Render("error:"), msg)
}

// FormatEntry renders a listing entry: the name styled by kind with the kind
// indicator appended.
func (p *Printer) FormatEntry(e namespace.Entry) string {
	return p.styles.ForKind(e.Node.Kind).Render(e.Name) + KindIndicator(e.Node.Kind)
}

// PrintGrid lays styled cells out in columns sized to the terminal width and
// writes them. Falls back to one cell per line when the width is unknown.
func (p *Printer) PrintGrid(cells []string) {
	for _, line := range LayoutGrid(cells, p.width()) {
		fmt.Fprintln(p.out, line)
	}
}

// TableRow is one row of a detail table.
type TableRow struct {
	Name  string
	Kind  namespace.Kind
	Extra string
}

// PrintTable renders a two-column detail table: styled name, kind, and an
// extra column (value preview or link target). Extras wider than the
// terminal are truncated.
func (p *Printer) PrintTable(rows []TableRow) {
	nameWidth := 0
	kindWidth := 0
	for _, row := range rows {
		if w := runewidth.StringWidth(row.Name); w > nameWidth {
			nameWidth = w
		}
		if w := len(row.Kind.String()); w > kindWidth {
			kindWidth = w
		}
	}

	max := p.width()
	for _, row := range rows {
		name := p.styles.ForKind(row.Kind).Render(row.Name)
		namePad := strings.Repeat(" ", nameWidth-runewidth.StringWidth(row.Name))
		kind := p.styles.Muted.Render(fmt.Sprintf("%-*s", kindWidth, row.Kind))

		extra := row.Extra
		if avail := max - nameWidth - kindWidth - 4; max > 0 && avail > 3 {
			extra = Truncate(extra, avail)
		}
		fmt.Fprintf(p.out, "%s%s  %s  %s\n", name, namePad, kind, extra)
	}
}

// PrintAttrs renders attribute name/value pairs with aligned, styled names.
func (p *Printer) PrintAttrs(attrs []namespace.Attr) {
	nameWidth := 0
	for _, a := range attrs {
		if w := runewidth.StringWidth(a.Name); w > nameWidth {
			nameWidth = w
		}
	}

	max := p.width()
	for _, a := range attrs {
		pad := strings.Repeat(" ", nameWidth-runewidth.StringWidth(a.Name))
		value := a.Value
		if avail := max - nameWidth - 2; max > 0 && avail > 3 {
			value = Truncate(value, avail)
		}
		fmt.Fprintf(p.out, "%s:%s %s\n", p.styles.AttrName.Render(a.Name), pad, value)
	}
}

// Truncate shortens s to at most width cells, appending "..." when cut.
func Truncate(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "...")
}
