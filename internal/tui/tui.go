package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/todolist/internal/models"
	"github.com/balkashynov/todolist/internal/store"
)

// RunListTUI starts the interactive todo list on top of s
func RunListTUI(s *store.Store, filter models.Filter, sortKey models.SortKey) error {
	model := NewListModel(s, filter, sortKey)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	// Print a summary after the TUI closes
	if m, ok := finalModel.(ListModel); ok {
		totals := m.view.Totals
		fmt.Printf("📝 %d tasks · %d completed · %d remaining\n", totals.Total, totals.Completed, totals.Remaining)
	}

	return nil
}
