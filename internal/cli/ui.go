package cli

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - headers, today
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - padding days
)

// =============================================================================
// Styles
// =============================================================================

var (
	// styleTitle for the month/week header line.
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// styleWeekday for the weekday column headers.
	styleWeekday = lipgloss.NewStyle().Foreground(colorGray)

	// styleDay for in-period day numbers.
	styleDay = lipgloss.NewStyle().Foreground(colorWhite)

	// styleOutside for padding days from neighboring months.
	styleOutside = lipgloss.NewStyle().Foreground(colorDim)

	// styleToday highlights the cell matching the now reference.
	styleToday = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Reverse(true)

	// styleBar renders event bars in day schedule output.
	styleBar = lipgloss.NewStyle().Foreground(colorCyan)

	// styleDim for secondary schedule text.
	styleDim = lipgloss.NewStyle().Foreground(colorDim)
)
