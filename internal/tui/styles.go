package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8BC34A")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7a8699")).
			Width(22)

	focusedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8BC34A"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e53935")).
			MarginTop(1)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8BC34A")).
			MarginTop(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5a6472")).
			MarginTop(1)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#2a3850")).
			Padding(1, 2)

	faqOpenStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d6dae0")).
			PaddingLeft(2)
)
