// Package term provides terminal styling for CLI reports.
package term

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// StyleSet holds the semantic styles used by report output.
type StyleSet struct {
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Success lipgloss.Style
	Bold    lipgloss.Style
	Dim     lipgloss.Style
}

// NewStyleSet builds the style set for stdout. Styling is disabled when
// stdout is not a terminal or NO_COLOR is set.
func NewStyleSet() *StyleSet {
	if os.Getenv("NO_COLOR") != "" || !term.IsTerminal(int(os.Stdout.Fd())) {
		plain := lipgloss.NewStyle()
		return &StyleSet{
			Error:   plain,
			Warning: plain,
			Info:    plain,
			Success: plain,
			Bold:    plain,
			Dim:     plain,
		}
	}
	return &StyleSet{
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("#eab308")),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("#60a5fa")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e")),
		Bold:    lipgloss.NewStyle().Bold(true),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("#5a5a70")),
	}
}
