package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleSearchInput handles keyboard input while the search field has focus.
// The list is filtered on every keystroke.
func (m Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		// Keep the current search and return to the list
		m.searching = false
		m.searchInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.searching = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.setSearch("")
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.setSearch(m.searchInput.Value())
	return m, cmd
}

func (m *Model) setSearch(value string) {
	if value == m.query.Search {
		return
	}
	m.query.Search = value
	m.recompute()
}
