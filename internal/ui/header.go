package ui

import (
	"fmt"
	"strings"

	"github.com/five82/dex/internal/catalog"
	"github.com/five82/dex/internal/pokedex"
	"github.com/five82/dex/internal/state"
)

// renderHeader renders the status bar: logo, load phase, counts and view preferences.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	parts := []string{bg.Render("dex", styles.Logo)}

	switch m.snapshot.Phase {
	case state.PhaseReady:
		parts = append(parts,
			bg.Render("● READY", styles.SuccessText),
			bg.Render("Showing:", styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("%d/%d", len(m.visible), len(m.snapshot.Pokemon)), styles.Text),
			bg.Render("Types:", styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("%d", len(m.snapshot.Types)), styles.Text),
		)
	case state.PhaseFailed:
		parts = append(parts, bg.Render("● DATA UNAVAILABLE", styles.DangerText))
	default:
		parts = append(parts, bg.Render("● LOADING", styles.WarningText.Bold(true)))
	}

	parts = append(parts,
		bg.Render("Lang:", styles.MutedText)+bg.Space()+
			bg.Render(languageLabel(m.prefs.Language), styles.AccentText),
		bg.Render("Image:", styles.MutedText)+bg.Space()+
			bg.Render(m.prefs.Variant.Label(), styles.AccentText),
	)

	if m.width >= LayoutWideWidth && m.snapshot.Activation != "" {
		parts = append(parts,
			bg.Render("req", styles.FaintText)+bg.Space()+
				bg.Render(shortID(m.snapshot.Activation), styles.MutedText))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

// renderCommandBar renders the key hints for the current mode.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	if m.searching {
		hints := bg.Render("enter", styles.AccentText) + bg.Sep(":") + bg.Render("Keep", styles.MutedText) +
			bg.Spaces(2) +
			bg.Render("esc", styles.AccentText) + bg.Sep(":") + bg.Render("Clear", styles.MutedText)
		input := m.searchInput.View()
		return styles.Header.Width(m.width).Render(input + bg.Spaces(2) + hints)
	}

	type cmd struct{ key, desc string }
	var commands []cmd

	switch {
	case m.detail != nil:
		commands = []cmd{
			{"esc", "Close"},
			{"j/k", "Scroll"},
			{"L", languageLabel(m.prefs.Language)},
			{"v", m.prefs.Variant.Label()},
			{"?", "More"},
		}
	case m.snapshot.Loaded():
		commands = []cmd{
			{"/", "Search"},
			{"t", "Type " + m.typeFilterLabel()},
			{"g", "Gen " + m.generationFilterLabel()},
			{"s", m.query.Sort.Label()},
			{"L", languageLabel(m.prefs.Language)},
			{"v", m.prefs.Variant.Label()},
			{"enter", "Open"},
		}
		if _, ok := m.selection.Current(); ok {
			commands = append(commands, cmd{"d", "Reopen"})
		}
		if m.query.Filtered() || m.query.Sort != catalog.SortIDAsc {
			commands = append(commands, cmd{"x", "Reset"})
		}
		commands = append(commands, cmd{"?", "More"})
	default:
		commands = []cmd{
			{"q", "Quit"},
			{"?", "More"},
		}
	}

	colon := bg.Sep(":")
	segments := make([]string, 0, len(commands)+2)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	// Show the kept search pattern
	if search := m.query.Search; search != "" && m.detail == nil {
		segments = append(segments, styles.AccentText.Render("/"+search))
	}

	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, bg.Spaces(2)))
}

func languageLabel(lang pokedex.Language) string {
	return strings.ToUpper(string(lang))
}
