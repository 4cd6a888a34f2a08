package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/contrastly/internal/domain"
)

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style

	Label       lipgloss.Style
	ActiveLabel lipgloss.Style
	Ratio       lipgloss.Style
	Pass        lipgloss.Style
	Fail        lipgloss.Style
	Toast       lipgloss.Style
	Badge       map[domain.Level]lipgloss.Style
}

func DefaultTheme() Theme {
	badge := lipgloss.NewStyle().Bold(true).Padding(0, 1)

	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),

		Label:       lipgloss.NewStyle().Width(12),
		ActiveLabel: lipgloss.NewStyle().Width(12).Bold(true).Foreground(lipgloss.Color("63")),
		Ratio:       lipgloss.NewStyle().Bold(true),
		Pass:        lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Fail:        lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Toast:       lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("214")),
		Badge: map[domain.Level]lipgloss.Style{
			domain.LevelAAA:     badge.Background(lipgloss.Color("28")).Foreground(lipgloss.Color("255")),
			domain.LevelAA:      badge.Background(lipgloss.Color("34")).Foreground(lipgloss.Color("255")),
			domain.LevelAALarge: badge.Background(lipgloss.Color("214")).Foreground(lipgloss.Color("16")),
			domain.LevelFail:    badge.Background(lipgloss.Color("160")).Foreground(lipgloss.Color("255")),
		},
	}
}
