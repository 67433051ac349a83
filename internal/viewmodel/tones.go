package viewmodel

import "github.com/odyssey-travel/odyssey-console/internal/domain"

// Tone is a display affinity, decoupled from any concrete styling. Every
// status and priority maps to a defined tone; values outside the enums fall
// back to ToneNeutral so presentation never hits an undefined state.
type Tone string

const (
	ToneInfo    Tone = "info"
	ToneWarn    Tone = "warn"
	ToneSuccess Tone = "success"
	ToneMuted   Tone = "muted"
	ToneDanger  Tone = "danger"
	ToneNeutral Tone = "neutral"
)

// StatusTone maps a ticket status to its display tone.
func StatusTone(status domain.TicketStatus) Tone {
	switch status {
	case domain.TicketStatusOpen:
		return ToneInfo
	case domain.TicketStatusInProgress:
		return ToneWarn
	case domain.TicketStatusResolved:
		return ToneSuccess
	case domain.TicketStatusClosed:
		return ToneMuted
	default:
		return ToneNeutral
	}
}

// PriorityTone maps a ticket priority to its display tone.
func PriorityTone(priority domain.TicketPriority) Tone {
	switch priority {
	case domain.TicketPriorityHigh:
		return ToneDanger
	case domain.TicketPriorityMedium:
		return ToneWarn
	case domain.TicketPriorityLow:
		return ToneSuccess
	default:
		return ToneNeutral
	}
}
