package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/dex/internal/catalog"
	"github.com/five82/dex/internal/pokedex"
)

const (
	detailMaxWidth = 76
	statCeiling    = 255
	labelWidth     = 14
)

var _ Modal = detailModal{}

// detailModal shows one entity in a scrollable box centred over the list.
type detailModal struct {
	title    string
	viewport viewport.Model
}

func newDetailModal(width, height int) detailModal {
	return detailModal{viewport: viewport.New(max(width-2, 1), max(height-2, 1))}
}

// Update scrolls the content; esc or enter closes the overlay.
func (d detailModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, keys.Escape, keys.Open) {
			return d, nil, true
		}
	}
	var cmd tea.Cmd
	d.viewport, cmd = d.viewport.Update(msg)
	return d, cmd, false
}

// View draws the box at its own size and centres it in width x height.
func (d detailModal) View(theme Theme, width, height int) string {
	box := renderTitledBox(theme, d.title, d.viewport.View(), d.viewport.Width+2, d.viewport.Height+2, true)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(lipgloss.Color(theme.Background)),
	)
}

func (d *detailModal) resize(width, height int) {
	d.viewport.Width = max(width-2, 1)
	d.viewport.Height = max(height-2, 1)
}

// openDetail shows the current selection.
func (m *Model) openDetail() {
	w, h := m.detailSize()
	m.detail = newDetailModal(w, h)
	m.refreshDetail()
}

// refreshDetail re-renders the open overlay after a size, theme or
// preference change, keeping its scroll position.
func (m *Model) refreshDetail() {
	d, ok := m.detail.(detailModal)
	if !ok {
		return
	}
	p, ok := m.selection.Current()
	if !ok || !m.selection.IsOpen() {
		m.detail = nil
		return
	}
	w, h := m.detailSize()
	d.resize(w, h)
	d.title = formatID(p.ID) + " " + p.Name.In(m.prefs.Language)
	offset := d.viewport.YOffset
	d.viewport.SetContent(m.detailContent(p, d.viewport.Width))
	d.viewport.SetYOffset(offset)
	m.detail = d
}

// detailSize is the overlay box size for the current window.
func (m Model) detailSize() (int, int) {
	width := min(m.width-4, detailMaxWidth)
	return max(width, 24), m.contentHeight()
}

// detailContent renders every field of p for the overlay.
func (m Model) detailContent(p pokedex.Pokemon, width int) string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.FocusBg)
	lang := m.prefs.Language

	row := func(label, value string, valueStyle lipgloss.Style) string {
		return bg.Render(padRight(label, labelWidth), styles.MutedText) + bg.Render(value, valueStyle)
	}

	var lines []string

	name := bg.Render(p.Name.In(lang), styles.Text.Bold(true))
	if other := p.Name.In(lang.Other()); other != "" && other != p.Name.In(lang) {
		name += bg.Space() + bg.Render("("+other+")", styles.FaintText)
	}
	lines = append(lines, name, "")

	lines = append(lines,
		row("Generation", fmt.Sprintf("%d", p.Generation), styles.Text),
		row("Height", formatMeasure(p.Height, "m"), styles.Text),
		row("Weight", formatMeasure(p.Weight, "kg"), styles.Text),
	)

	types := catalog.TypesOf(p, m.snapshot.Types)
	if len(types) > 0 {
		labels := make([]string, len(types))
		for i, t := range types {
			labels[i] = t.Name.In(lang)
		}
		chips := bg.Chips(labels, func(i int) lipgloss.Style { return styles.ChipStyle(types[i].Name.En) })
		lines = append(lines, bg.Render(padRight("Types", labelWidth), styles.MutedText)+chips)
	} else {
		lines = append(lines, row("Types", "none", styles.FaintText))
	}

	image := p.ImageFor(m.prefs.Variant)
	if image == "" {
		image = "no image"
	}
	lines = append(lines,
		row("Image", m.prefs.Variant.Label(), styles.AccentText),
		bg.Spaces(labelWidth)+bg.Render(truncateMiddle(image, max(width-labelWidth, 8)), styles.InfoText),
		"",
		bg.Render("Stats", styles.AccentText.Bold(true)),
	)

	barWidth := max(width-labelWidth-6, 4)
	for _, s := range statRows(p.Stats) {
		lines = append(lines,
			bg.Render(padRight(s.label, labelWidth), styles.MutedText)+
				bg.Render(fmt.Sprintf("%4d ", s.value), styles.Text)+
				bg.Render(statBar(s.value, statCeiling, barWidth), styles.SuccessText.Bold(false)))
	}
	lines = append(lines, row("Total", fmt.Sprintf("%4d", p.Stats.Total()), styles.Text.Bold(true)), "")

	lines = append(lines,
		row("Evolves from", m.lineageText(p.EvolvedFrom), styles.Text),
		row("Evolves to", m.lineageText(p.EvolvesTo), styles.Text),
	)

	return strings.Join(lines, "\n")
}

type statRow struct {
	label string
	value int
}

func statRows(s pokedex.Stats) []statRow {
	return []statRow{
		{"HP", s.HP},
		{"Attack", s.Attack},
		{"Defense", s.Defense},
		{"Sp. Attack", s.SpecialAttack},
		{"Sp. Defense", s.SpecialDefense},
		{"Speed", s.Speed},
	}
}

// lineageText names each referenced entity, preferring the loaded catalog's
// name in the active language over the label the API sent.
func (m Model) lineageText(l pokedex.Lineage) string {
	ids := l.IDs()
	if len(ids) == 0 {
		return "none"
	}
	byID := make(map[int]pokedex.Pokemon, len(m.snapshot.Pokemon))
	for _, p := range m.snapshot.Pokemon {
		byID[p.ID] = p
	}
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		name := strings.TrimSpace(l[id])
		if p, ok := byID[id]; ok {
			name = p.Name.In(m.prefs.Language)
		}
		if name == "" {
			parts = append(parts, formatID(id))
			continue
		}
		parts = append(parts, formatID(id)+" "+name)
	}
	return strings.Join(parts, ", ")
}
