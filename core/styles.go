package core

import "github.com/charmbracelet/lipgloss"

var (
	appStyle = lipgloss.NewStyle().Foreground(colorText)

	headerAppStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	headerBarStyle = lipgloss.NewStyle().
			Background(colorMantle).
			Foreground(colorText)
	tabSepStyle = lipgloss.NewStyle().
			Foreground(colorBorder).
			Background(colorMantle)

	activeTabStyle = lipgloss.NewStyle().
			Background(colorSurface0).
			Foreground(colorAccent).
			Bold(true).
			Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().
				Background(colorMantle).
				Foreground(colorTabOff).
				Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorSurface0)
	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Background(colorSurface0)
	footerStyle = lipgloss.NewStyle().
			Background(colorMantle)
)

// Shared styles for screens.
var (
	TitleStyle    = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	MutedStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	CursorStyle   = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	SelectedStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	DangerStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	BalanceStyle  = lipgloss.NewStyle().Foreground(colorBalance).Bold(true)
	CardStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorBorder).Padding(0, 2)
)
