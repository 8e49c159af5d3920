package tui

import "github.com/charmbracelet/lipgloss"

var (
	primary = lipgloss.AdaptiveColor{Light: "#5A4FCF", Dark: "#7D74FF"}
	muted   = lipgloss.AdaptiveColor{Light: "#8A8A8A", Dark: "#6C6C6C"}
	marker  = lipgloss.AdaptiveColor{Light: "#2E8B57", Dark: "#50C878"}
	danger  = lipgloss.AdaptiveColor{Light: "#C0392B", Dark: "#FF6B6B"}

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primary).
			Width(titleWidth).
			Align(lipgloss.Center)

	navButtonStyle = lipgloss.NewStyle().
			Bold(true).
			Width(navButtonWidth).
			Align(lipgloss.Center)

	previewButtonStyle = lipgloss.NewStyle().
				Foreground(primary)

	headerStyle = lipgloss.NewStyle().
			Foreground(muted).
			Width(cellWidth).
			Align(lipgloss.Center)

	dayStyle      = lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center)
	todayStyle    = dayStyle.Bold(true).Underline(true)
	cursorStyle   = dayStyle.Reverse(true)
	markerStyle   = lipgloss.NewStyle().Foreground(marker)
	statusStyle   = lipgloss.NewStyle().Foreground(muted)
	errorStyle    = lipgloss.NewStyle().Foreground(danger)
	helpKeyStyle  = lipgloss.NewStyle().Bold(true)
	helpTextStyle = lipgloss.NewStyle().Foreground(muted)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(1, 2).
			Width(gridWidth)

	modalTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(primary)
)
