package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/speechdrill/internal/device"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	clockStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	selectStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	wordStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true).Padding(0, 2)
	cardStyle    = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
)

var lightColors = map[string]lipgloss.Color{
	"red":    lipgloss.Color("#FF4D4F"),
	"yellow": lipgloss.Color("#F5C542"),
	"green":  lipgloss.Color("#52C41A"),
}

func renderLight(name string, level device.Level) string {
	style := lipgloss.NewStyle().Foreground(lightColors[name])
	switch level {
	case device.On:
		return style.Bold(true).Render("●")
	case device.Dim:
		return style.Faint(true).Render("●")
	default:
		return mutedStyle.Render("○")
	}
}
