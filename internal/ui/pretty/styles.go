// Package pretty provides lipgloss-based styling for terminal output.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Styles holds the renderers used by the text reporter.
type Styles struct {
	filePath lipgloss.Style
	location lipgloss.Style
	ruleID   lipgloss.Style
	detail   lipgloss.Style
	success  lipgloss.Style
	failure  lipgloss.Style
	dim      lipgloss.Style
}

// NewStyles creates styles. With color disabled every renderer is a
// passthrough.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return &Styles{}
	}
	return &Styles{
		filePath: lipgloss.NewStyle().Bold(true),
		location: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		ruleID:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		detail:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		success:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		failure:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		dim:      lipgloss.NewStyle().Faint(true),
	}
}

// Path styles a file path.
func (s *Styles) Path(v string) string { return s.filePath.Render(v) }

// Location styles a line reference.
func (s *Styles) Location(v string) string { return s.location.Render(v) }

// RuleID styles a rule identifier.
func (s *Styles) RuleID(v string) string { return s.ruleID.Render(v) }

// Detail styles supplementary finding text.
func (s *Styles) Detail(v string) string { return s.detail.Render(v) }

// Success styles a positive summary line.
func (s *Styles) Success(v string) string { return s.success.Render(v) }

// Failure styles a negative summary line.
func (s *Styles) Failure(v string) string { return s.failure.Render(v) }

// Dim styles de-emphasized text.
func (s *Styles) Dim(v string) string { return s.dim.Render(v) }

// IsColorEnabled decides color use for a writer. Mode is "auto", "always"
// or "never"; auto requires a TTY and respects NO_COLOR.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}

// TerminalWidth returns the writer's terminal width, or fallback when the
// writer is not a terminal.
func TerminalWidth(writer io.Writer, fallback int) int {
	f, ok := writer.(*os.File)
	if !ok {
		return fallback
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}
