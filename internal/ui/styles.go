// Package ui renders the frequency report table.
package ui

import "github.com/charmbracelet/lipgloss"

// Color definitions for consistent theming
var (
	ColorViolet = lipgloss.Color("#8B5CF6")
	ColorCyan   = lipgloss.Color("#06B6D4")
	ColorYellow = lipgloss.Color("#F59E0B")
	ColorGray   = lipgloss.Color("#6B7280")
	ColorLtGray = lipgloss.Color("#D1D5DB")
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorViolet)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorCyan)
	ruleStyle   = lipgloss.NewStyle().Foreground(ColorGray)
	barStyle    = lipgloss.NewStyle().Foreground(ColorViolet)
	countStyle  = lipgloss.NewStyle().Foreground(ColorYellow)
	labelStyle  = lipgloss.NewStyle().Foreground(ColorLtGray)
)

// Title returns a styled section title
func Title(s string) string {
	return titleStyle.Render(s)
}
