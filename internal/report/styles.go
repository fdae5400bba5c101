package report

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Styles colours the parts of the text report. The zero value renders plain
// text.
type Styles struct {
	Heading func(string) string
	Pass    func(string) string
	Warning func(string) string
	Error   func(string) string
	Info    func(string) string
}

// PlainStyles renders without any terminal escapes.
func PlainStyles() Styles {
	return Styles{}
}

// TermStyles colours output for the terminal behind w. lipgloss drops the
// colours itself when w is not a TTY.
func TermStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		Heading: render(r.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))),
		Pass:    render(r.NewStyle().Foreground(lipgloss.Color("2"))),
		Warning: render(r.NewStyle().Foreground(lipgloss.Color("3"))),
		Error:   render(r.NewStyle().Foreground(lipgloss.Color("1"))),
		Info:    render(r.NewStyle().Foreground(lipgloss.Color("6"))),
	}
}

func render(style lipgloss.Style) func(string) string {
	return func(s string) string { return style.Render(s) }
}

func apply(style func(string) string, s string) string {
	if style == nil {
		return s
	}
	return style(s)
}
