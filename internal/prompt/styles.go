// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package prompt

import "github.com/charmbracelet/lipgloss"

// Styles holds the styles for status lines printed after a prompt.
type Styles struct {
	Title   lipgloss.Style
	Success lipgloss.Style
	Notice  lipgloss.Style
	Error   lipgloss.Style
}

// DefaultStyles returns the default style set.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4")),

		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")),

		Notice: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#737373")).
			Italic(true),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")),
	}
}
