package tui

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the interactive UI.
type Theme struct {
	Header    lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Section   lipgloss.Style
	Card      lipgloss.Style
	CardTitle lipgloss.Style
	Faint     lipgloss.Style
	Banner    lipgloss.Style
	Toast     lipgloss.Style
	Footer    lipgloss.Style

	Mood         lipgloss.Style
	SelectedMood lipgloss.Style

	Calendar CalendarTheme
}

// CalendarTheme styles the month grid.
type CalendarTheme struct {
	Title   lipgloss.Style
	Weekday lipgloss.Style
	Outside lipgloss.Style
	Day     lipgloss.Style
	Today   lipgloss.Style
}

// DefaultTheme returns the built-in styles.
func DefaultTheme() Theme {
	return Theme{
		Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Tab:       lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().Bold(true).Reverse(true).Padding(0, 1),
		Section:   lipgloss.NewStyle().Bold(true).Underline(true),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		CardTitle: lipgloss.NewStyle().Bold(true),
		Faint:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Banner:    lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("214")).Padding(0, 1),
		Toast:     lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("42")).Padding(0, 1),
		Footer:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		Mood:         lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		SelectedMood: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),

		Calendar: CalendarTheme{
			Title:   lipgloss.NewStyle().Bold(true),
			Weekday: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
			Outside: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
			Day:     lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
			Today:   lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("81")),
		},
	}
}
