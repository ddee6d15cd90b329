// Copyright (c) 2026 Leetlist Team
// Leetlist - personal wordlist generator
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import "github.com/charmbracelet/lipgloss"

// Theme is a named colour palette.
type Theme struct {
	Name      string
	Bg        lipgloss.Color
	Fg        lipgloss.Color
	EntryBg   lipgloss.Color
	ButtonBg  lipgloss.Color
	ActiveBg  lipgloss.Color
	Subtle    lipgloss.Color
	Highlight lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color
}

var (
	darkTheme = Theme{
		Name:      "dark",
		Bg:        lipgloss.Color("#1e1e1e"),
		Fg:        lipgloss.Color("#ffffff"),
		EntryBg:   lipgloss.Color("#2e2e2e"),
		ButtonBg:  lipgloss.Color("#444444"),
		ActiveBg:  lipgloss.Color("#666666"),
		Subtle:    lipgloss.Color("240"),
		Highlight: lipgloss.Color("81"),
		Error:     lipgloss.Color("196"),
		Success:   lipgloss.Color("40"),
	}
	lightTheme = Theme{
		Name:      "light",
		Bg:        lipgloss.Color("#ffffff"),
		Fg:        lipgloss.Color("#000000"),
		EntryBg:   lipgloss.Color("#f0f0f0"),
		ButtonBg:  lipgloss.Color("#dcdcdc"),
		ActiveBg:  lipgloss.Color("#cccccc"),
		Subtle:    lipgloss.Color("245"),
		Highlight: lipgloss.Color("25"),
		Error:     lipgloss.Color("160"),
		Success:   lipgloss.Color("28"),
	}
)

// ThemeByName returns the light theme for "light" and the dark theme for
// anything else.
func ThemeByName(name string) Theme {
	if name == lightTheme.Name {
		return lightTheme
	}
	return darkTheme
}

func (t Theme) toggled() Theme {
	if t.Name == darkTheme.Name {
		return lightTheme
	}
	return darkTheme
}

// styles are rebuilt whenever the theme changes.
type styles struct {
	doc          lipgloss.Style
	title        lipgloss.Style
	subtitle     lipgloss.Style
	label        lipgloss.Style
	focusedLabel lipgloss.Style
	input        lipgloss.Style
	cursor       lipgloss.Style
	output       lipgloss.Style
	help         lipgloss.Style
	err          lipgloss.Style
	success      lipgloss.Style
	status       lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		doc:          lipgloss.NewStyle().Padding(1, 2).Background(t.Bg).Foreground(t.Fg),
		title:        lipgloss.NewStyle().Foreground(t.Highlight).Background(t.Bg).Bold(true),
		subtitle:     lipgloss.NewStyle().Foreground(t.Subtle).Background(t.Bg),
		label:        lipgloss.NewStyle().Foreground(t.Fg).Background(t.Bg).Width(16),
		focusedLabel: lipgloss.NewStyle().Foreground(t.Highlight).Background(t.Bg).Bold(true).Width(16),
		input:        lipgloss.NewStyle().Foreground(t.Fg).Background(t.EntryBg),
		cursor:       lipgloss.NewStyle().Foreground(t.Highlight),
		output: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.ButtonBg).
			Background(t.EntryBg).
			Foreground(t.Fg).
			Padding(0, 1),
		help:    lipgloss.NewStyle().Foreground(t.Subtle).Background(t.Bg),
		err:     lipgloss.NewStyle().Foreground(t.Error).Background(t.Bg).Bold(true),
		success: lipgloss.NewStyle().Foreground(t.Success).Background(t.Bg),
		status:  lipgloss.NewStyle().Foreground(t.Fg).Background(t.ActiveBg).Padding(0, 1),
	}
}
