package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/dex/internal/catalog"
	"github.com/five82/dex/internal/pokedex"
)

const (
	emptyCatalogText = "No Pokémon found"
	noMatchText      = "No Pokémon match the current filters"
)

// renderList renders the visible entities in a titled box, or an empty state.
func (m Model) renderList() string {
	styles := m.theme.Styles()
	contentHeight := m.contentHeight()

	if len(m.snapshot.Pokemon) == 0 {
		return lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center,
			styles.MutedText.Render(emptyCatalogText))
	}
	if len(m.visible) == 0 {
		msg := lipgloss.JoinVertical(lipgloss.Center,
			styles.MutedText.Render(noMatchText),
			styles.FaintText.Render("press x to reset search, filters and sort"))
		return lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, msg)
	}

	innerWidth := m.width - 2
	var lines []string
	end := min(m.offset+m.listRows(), len(m.visible))
	for i := m.offset; i < end; i++ {
		p := m.visible[i]
		if i == m.cursor {
			content := m.formatRowContent(p, innerWidth, m.theme.SelectionBg, true)
			lines = append(lines, lipgloss.NewStyle().
				Background(lipgloss.Color(m.theme.SelectionBg)).
				Width(innerWidth).
				Render(content))
			continue
		}
		content := m.formatRowContent(p, innerWidth, m.theme.FocusBg, false)
		lines = append(lines, lipgloss.NewStyle().
			Background(lipgloss.Color(m.theme.FocusBg)).
			Width(innerWidth).
			Render(content))
	}

	return renderTitledBox(m.theme, m.listTitle(), strings.Join(lines, "\n"), m.width, contentHeight, true)
}

// formatRowContent formats one entity row.
// Format: "#025  Pikachu           Gen 1  Electric"
// Selected rows use SelectionText throughout for contrast.
func (m Model) formatRowContent(p pokedex.Pokemon, width int, bgColor string, selected bool) string {
	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles()

	idStr := formatID(p.ID)
	genStr := fmt.Sprintf("Gen %d", p.Generation)
	nameWidth := max(min(width/3, 24), 10)
	name := padRight(truncate(p.Name.In(m.prefs.Language), nameWidth), nameWidth)

	var idStyle, nameStyle, genStyle lipgloss.Style
	if selected {
		selText := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SelectionText))
		idStyle = selText
		nameStyle = selText.Bold(true)
		genStyle = selText
	} else {
		idStyle = styles.MutedText
		nameStyle = styles.Text
		genStyle = styles.FaintText
	}

	row := bg.Render(padRight(idStr, 6), idStyle) +
		bg.Render(name, nameStyle) + bg.Spaces(2) +
		bg.Render(padRight(genStr, 7), genStyle)

	types := catalog.TypesOf(p, m.snapshot.Types)
	if len(types) == 0 {
		return row
	}
	labels := make([]string, len(types))
	for i, t := range types {
		labels[i] = t.Name.In(m.prefs.Language)
	}
	return row + bg.Chips(labels, func(i int) lipgloss.Style { return styles.ChipStyle(types[i].Name.En) })
}

// listTitle summarises the result count and active query.
func (m Model) listTitle() string {
	total := len(m.snapshot.Pokemon)
	visible := len(m.visible)
	if visible == total {
		return fmt.Sprintf("Pokédex (%d)", total)
	}
	return fmt.Sprintf("Pokédex (%d/%d)", visible, total)
}

// typeFilterLabel names the active type filter in the active language.
func (m Model) typeFilterLabel() string {
	if m.query.TypeID == 0 {
		return "All"
	}
	if t, ok := catalog.FindType(m.snapshot.Types, m.query.TypeID); ok {
		if name := t.Name.In(m.prefs.Language); name != "" {
			return name
		}
	}
	return fmt.Sprintf("#%d", m.query.TypeID)
}

// generationFilterLabel names the active generation filter.
func (m Model) generationFilterLabel() string {
	if m.query.Generation == 0 {
		return "All"
	}
	return fmt.Sprintf("%d", m.query.Generation)
}
