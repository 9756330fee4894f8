package ui

import "github.com/charmbracelet/lipgloss"

// Styling constants
var (
	// Colors
	primaryColor   = lipgloss.Color("#3B82F6") // accent blue
	secondaryColor = lipgloss.Color("#E5E7EB") // light gray text
	mutedColor     = lipgloss.Color("#6B7280") // dim gray
	borderColor    = lipgloss.Color("#374151") // dark border

	// Text styles
	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Bold(true)

	normalTextStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	mutedTextStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	highlightedTextStyle = lipgloss.NewStyle().
				Foreground(primaryColor).
				Bold(true)

	ratingBadgeStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(primaryColor).
				Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5555")).
			Bold(true)

	// Component styles
	inputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1)

	focusedInputStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(primaryColor).
				Padding(0, 1)

	listStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1)

	tabStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Padding(0, 2)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			Underline(true).
			Padding(0, 2)

	pagerStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Padding(0, 1)

	pagerActiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(primaryColor).
				Bold(true).
				Padding(0, 1)

	pagerDisabledStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Padding(0, 1)
)
