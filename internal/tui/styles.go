package tui

import "github.com/charmbracelet/lipgloss"

// Color palette for consistent styling
var (
	ColorPrimary = lipgloss.Color("#7D56F4")

	ColorSuccess = lipgloss.Color("#50FA7B")
	ColorError   = lipgloss.Color("#FF5F87")
	ColorWarning = lipgloss.Color("#FFB86C")
	ColorInfo    = lipgloss.Color("#8BE9FD")
	ColorMuted   = lipgloss.Color("#6C7086")
)

// Reusable styles
var (
	// Title style for headers
	StyleTitle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(ColorPrimary).
			Padding(0, 1).
			Bold(true)

	// Success message style
	StyleSuccess = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	// Error message style
	StyleError = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	// Warning message style
	StyleWarning = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// Info message style
	StyleInfo = lipgloss.NewStyle().
			Foreground(ColorInfo)

	// Muted/dimmed text
	StyleMuted = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// Highlighted text
	StyleHighlight = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)
)

// Icons for different states
const (
	IconStep    = "●"
	IconSuccess = "✓"
	IconError   = "✗"
	IconWarning = "⚠"
)
