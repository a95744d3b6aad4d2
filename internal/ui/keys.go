package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Escape     key.Binding

	// Query
	Search     key.Binding
	CycleType  key.Binding
	CycleGen   key.Binding
	NextSort   key.Binding
	PrevSort   key.Binding
	ResetQuery key.Binding

	// Preferences
	ToggleLanguage key.Binding
	ToggleVariant  key.Binding

	// Selection
	Open   key.Binding
	Reopen key.Binding

	// Navigation
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	// Search/input
	Confirm key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q/ctrl+c", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Close details"),
		),

		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search by name"),
		),
		CycleType: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "Cycle type filter"),
		),
		CycleGen: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "Cycle generation filter"),
		),
		NextSort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Next sort order"),
		),
		PrevSort: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "Previous sort order"),
		),
		ResetQuery: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Reset search, filters, sort"),
		),

		ToggleLanguage: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Toggle language"),
		),
		ToggleVariant: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "Toggle image variant"),
		),

		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Open details"),
		),
		Reopen: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "Reopen last details"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G/end", "Go to bottom"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdown", "Page down"),
		),

		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Keep search"),
		),
	}
}

// FullHelp returns key bindings grouped as in the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom, k.PageUp, k.PageDown},
		{k.Search, k.CycleType, k.CycleGen, k.NextSort, k.PrevSort, k.ResetQuery},
		{k.Open, k.Reopen, k.Escape, k.ToggleLanguage, k.ToggleVariant},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
