package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent  = lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#60A5FA"}
	dim     = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	warning = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FBBF24"}
	success = lipgloss.AdaptiveColor{Light: "#047857", Dark: "#34D399"}
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(dim).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(dim).
			Width(labelWidth)

	valueStyle = lipgloss.NewStyle().
			Foreground(accent).
			Bold(true)

	tableHeaderStyle = lipgloss.NewStyle().
				Foreground(accent).
				Bold(true)

	footerKeyStyle = lipgloss.NewStyle().
			Foreground(accent).
			Bold(true)

	footerDescStyle = lipgloss.NewStyle().
			Foreground(dim)

	statusRunningStyle = lipgloss.NewStyle().
				Foreground(success).
				Bold(true)

	statusPausedStyle = lipgloss.NewStyle().
				Foreground(warning).
				Bold(true)
)
