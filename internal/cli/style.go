package cli

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

var (
	styleLabel   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	styleValue   = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	styleWarning = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func labelled(label string, value string) string {
	return styleLabel.Render(label+":") + " " + styleValue.Render(value)
}

// colorEnabled reports whether output is a color-capable terminal and
// NO_COLOR is unset.
func colorEnabled(output *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return false
	}
	return termenv.ColorProfile() != termenv.Ascii
}
