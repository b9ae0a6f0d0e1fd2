package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/todolist/internal/models"
)

// Color constants for the todolist TUI theme
const (
	ColorBorder = "#3A3F55" // Grey-blue

	// Text Colors
	ColorPrimaryText   = "#E6EAF2"
	ColorSecondaryText = "#B1B8C7"
	ColorDisabledText  = "#6D7383"
	ColorPlaceholder   = "#B1B8C7"
	ColorHelpText      = "240"

	// Accent Colors (Purple theme)
	ColorAccentMain   = "#7C3AED"
	ColorAccentBright = "#A78BFA"
	ColorAccentBlue   = "#3B82F6"

	// State Colors
	ColorError   = "#EF4444"
	ColorSuccess = "#22C55E"
	ColorWarning = "#F59E0B"
)

// priorityColor maps high/medium/low to red/amber/green
func priorityColor(p models.Priority) lipgloss.Color {
	switch p {
	case models.PriorityHigh:
		return lipgloss.Color(ColorError)
	case models.PriorityMedium:
		return lipgloss.Color(ColorWarning)
	case models.PriorityLow:
		return lipgloss.Color(ColorSuccess)
	default:
		return lipgloss.Color(ColorDisabledText)
	}
}
