package cli

import "github.com/charmbracelet/lipgloss"

var (
	colorRed    = lipgloss.Color("1")
	colorYellow = lipgloss.Color("3")
	colorBlue   = lipgloss.Color("4")
	colorPurple = lipgloss.Color("5")
	colorDim    = lipgloss.Color("240")
)

// palette styles the help text. The zero value renders plain text.
type palette struct {
	program    *lipgloss.Style
	subcommand *lipgloss.Style
	options    *lipgloss.Style
	heading    *lipgloss.Style
	dim        *lipgloss.Style
}

func newPalette(color bool) palette {
	if !color {
		return palette{}
	}
	program := lipgloss.NewStyle().Foreground(colorRed)
	subcommand := lipgloss.NewStyle().Bold(true).Foreground(colorBlue)
	options := lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	heading := lipgloss.NewStyle().Foreground(colorPurple)
	dim := lipgloss.NewStyle().Foreground(colorDim)
	return palette{
		program:    &program,
		subcommand: &subcommand,
		options:    &options,
		heading:    &heading,
		dim:        &dim,
	}
}

func paint(s *lipgloss.Style, text string) string {
	if s == nil {
		return text
	}
	return s.Render(text)
}
