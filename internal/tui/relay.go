package tui

import (
	"github.com/MKhiriev/go-serble-keeper/internal/passkey"
	"github.com/MKhiriev/go-serble-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// StateRelay carries passkey ceremony transitions from the goroutine running
// the ceremony into the bubbletea event loop. A full buffer drops states;
// only the latest one matters for display.
type StateRelay struct {
	states chan models.CeremonyState
}

func NewStateRelay() *StateRelay {
	return &StateRelay{states: make(chan models.CeremonyState, 16)}
}

// Hook is installed into the ceremony with [passkey.WithStateHook].
func (r *StateRelay) Hook() passkey.StateHook {
	return func(state models.CeremonyState) {
		select {
		case r.states <- state:
		default:
		}
	}
}

func (r *StateRelay) wait() tea.Cmd {
	if r == nil {
		return nil
	}
	return func() tea.Msg {
		return ceremonyStateMsg{state: <-r.states}
	}
}
