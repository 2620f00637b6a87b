package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha subset, true-color hex values
// https://catppuccin.com/palette
const (
	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorPink     lipgloss.Color = "#f5c2e7"
	colorLavender lipgloss.Color = "#b4befe"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorPink)
	infoLabelStyle = lipgloss.NewStyle().Foreground(colorSubtext0)
	hintStyle      = lipgloss.NewStyle().Foreground(colorOverlay1)
	queryStyle     = lipgloss.NewStyle().Foreground(colorText)
	rowStyle       = lipgloss.NewStyle().Foreground(colorText)
	backendStyle   = lipgloss.NewStyle().Foreground(colorSubtext0)
	cursorRowStyle = lipgloss.NewStyle().Bold(true).Foreground(colorLavender)
	counterStyle   = lipgloss.NewStyle().Foreground(colorOverlay1)
)
