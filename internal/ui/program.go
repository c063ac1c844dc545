package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/averill/deckd/internal/deck"
	"github.com/averill/deckd/internal/state"
)

// Run starts the deck view and blocks until the user quits.
func Run(nav *deck.Navigator, store *state.Store, rows, cols int) error {
	model := NewModel(nav, store, rows, cols)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
