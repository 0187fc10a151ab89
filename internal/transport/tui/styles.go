package tui

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle(). //nolint:gochecknoglobals
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle(). //nolint:gochecknoglobals
			Bold(true).
			Foreground(lipgloss.Color("15"))

	chipStyle = lipgloss.NewStyle(). //nolint:gochecknoglobals
			Foreground(lipgloss.Color("245")).
			Padding(0, 1)

	activeChipStyle = chipStyle. //nolint:gochecknoglobals
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62"))

	cardStyle = lipgloss.NewStyle(). //nolint:gochecknoglobals
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)

	selectedCardStyle = cardStyle. //nolint:gochecknoglobals
				BorderForeground(lipgloss.Color("62"))

	endedBadgeStyle = lipgloss.NewStyle(). //nolint:gochecknoglobals
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("1")).
			Padding(0, 1)

	soonBadgeStyle = lipgloss.NewStyle(). //nolint:gochecknoglobals
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("3")).
			Padding(0, 1)

	priceStyle = lipgloss.NewStyle(). //nolint:gochecknoglobals
			Bold(true).
			Foreground(lipgloss.Color("2"))

	mutedStyle = lipgloss.NewStyle(). //nolint:gochecknoglobals
			Foreground(lipgloss.Color("245"))

	urgentStyle = lipgloss.NewStyle(). //nolint:gochecknoglobals
			Foreground(lipgloss.Color("1"))
)
