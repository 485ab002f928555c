package tui

import "github.com/charmbracelet/lipgloss"

// defaultTint is the accent color for layers without a configured tint.
const defaultTint = lipgloss.Color("12") // bright blue

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")) // dim gray

	// Tab bar styles
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252")).
				Background(lipgloss.Color("236")).
				Padding(0, 2)

	tabBarStyle = lipgloss.NewStyle().
			MarginBottom(1)

	// Key cell styles
	keyStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Width(keyWidth).
			Align(lipgloss.Center)

	keyNubStyle = keyStyle.
			BorderStyle(lipgloss.ThickBorder())

	keyEmptyStyle = keyStyle.
			BorderStyle(lipgloss.HiddenBorder())

	keySelectedBorder = lipgloss.Color("15") // white
	keyMatchBorder    = lipgloss.Color("11") // yellow

	markerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	holdStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	rawStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	keyErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)

	// Status styles
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")) // red

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")) // green

	loadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")) // yellow

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // orange

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	// Filter bar styles
	filterBarStyle = lipgloss.NewStyle().
			MarginTop(1)

	filterPromptStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("11"))

	filterCountStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241"))
)

// tintFor returns the configured accent color for a layer, or defaultTint.
func tintFor(tints map[string]string, name string) lipgloss.Color {
	if c, ok := tints[name]; ok && c != "" {
		return lipgloss.Color(c)
	}
	return defaultTint
}
