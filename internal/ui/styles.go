// Package ui renders screen state for the terminal. Styling decisions stay
// here; the view model only hands over tones.
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/odyssey-travel/odyssey-console/internal/domain"
	"github.com/odyssey-travel/odyssey-console/internal/viewmodel"
)

var (
	neutralStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))

	toneStyles = map[viewmodel.Tone]lipgloss.Style{
		viewmodel.ToneInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		viewmodel.ToneWarn:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		viewmodel.ToneSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		viewmodel.ToneMuted:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		viewmodel.ToneDanger:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		viewmodel.ToneNeutral: neutralStyle,
	}

	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	staleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Italic(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
)

// ToneStyle resolves a tone to its style, falling back to neutral for
// anything unrecognized.
func ToneStyle(tone viewmodel.Tone) lipgloss.Style {
	if style, ok := toneStyles[tone]; ok {
		return style
	}
	return neutralStyle
}

// StatusBadge renders a ticket status in its tone.
func StatusBadge(status domain.TicketStatus) string {
	return ToneStyle(viewmodel.StatusTone(status)).Render(string(status))
}

// PriorityBadge renders a ticket priority in its tone.
func PriorityBadge(priority domain.TicketPriority) string {
	return ToneStyle(viewmodel.PriorityTone(priority)).Render(string(priority))
}

// StaleNotice marks a collection served from the snapshot cache.
func StaleNotice() string {
	return staleStyle.Render("showing last known data, refresh failed")
}
