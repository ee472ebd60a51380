package report

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/olocus/seolint/internal/model"
)

// Outcome glyphs used in console output.
const (
	glyphPass = "✓"
	glyphWarn = "⚠"
	glyphFail = "✗"
)

// Style decorates console output by outcome kind. It is an explicit value
// threaded into the console writer rather than shared global state, so
// rendering is a pure function of (kind, text) and trivially testable.
type Style struct {
	pass   lipgloss.Style
	warn   lipgloss.Style
	fail   lipgloss.Style
	header lipgloss.Style
}

// NewStyle returns the default color style.
func NewStyle() Style {
	return Style{
		pass:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		warn:   lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		fail:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		header: lipgloss.NewStyle().Bold(true),
	}
}

// NewPlainStyle returns a style that applies no decoration.
// Used for --no-color and for writing reports to files.
func NewPlainStyle() Style {
	return Style{
		pass:   lipgloss.NewStyle(),
		warn:   lipgloss.NewStyle(),
		fail:   lipgloss.NewStyle(),
		header: lipgloss.NewStyle(),
	}
}

// Render decorates text according to the outcome kind.
func (s Style) Render(kind model.Outcome, text string) string {
	switch kind {
	case model.OutcomePass:
		return s.pass.Render(text)
	case model.OutcomeWarn:
		return s.warn.Render(text)
	case model.OutcomeError:
		return s.fail.Render(text)
	default:
		return text
	}
}

// Header decorates a section header.
func (s Style) Header(text string) string {
	return s.header.Render(text)
}

// Glyph returns the console glyph for an outcome kind.
func Glyph(kind model.Outcome) string {
	switch kind {
	case model.OutcomePass:
		return glyphPass
	case model.OutcomeWarn:
		return glyphWarn
	case model.OutcomeError:
		return glyphFail
	default:
		return "?"
	}
}
