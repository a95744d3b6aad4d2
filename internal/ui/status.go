package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/dex/internal/catalog"
)

// renderLoading is shown until the load settles.
func (m Model) renderLoading() string {
	styles := m.theme.Styles()
	msg := m.spinner.View() + " " + styles.WarningText.Render("Loading Pokédex...")
	return lipgloss.Place(m.width, m.contentHeight(), lipgloss.Center, lipgloss.Center, msg)
}

// renderFailure shows the load error, where the log lives, and its last records.
// There is no retry; the user restarts dex.
func (m Model) renderFailure() string {
	styles := m.theme.Styles()
	width := max(m.width-4, 20)

	var b strings.Builder
	b.WriteString(styles.DangerText.Render("Error: " + catalog.ErrorMessage(m.snapshot.LastError)))
	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Render("The catalog could not be loaded. Restart dex to try again."))
	b.WriteString("\n")
	if m.logPath != "" {
		b.WriteString(styles.FaintText.Render("logs") + " " + styles.MutedText.Render(truncateMiddle(m.logPath, width-5)))
		b.WriteString("\n")
	}

	if len(m.logLines) > 0 {
		lines := make([]string, 0, len(m.logLines))
		for _, e := range m.logLines {
			lines = append(lines, m.styleLogEntry(e.Level, truncate(e.String(), width-4)))
		}
		boxHeight := min(len(lines)+2, max(m.contentHeight()-6, 3))
		b.WriteString("\n")
		b.WriteString(renderTitledBox(m.theme, "Recent log", strings.Join(lines, "\n"), width, boxHeight, false))
	}

	return lipgloss.Place(m.width, m.contentHeight(), lipgloss.Center, lipgloss.Center, b.String())
}

func (m Model) styleLogEntry(level, text string) string {
	styles := m.theme.Styles()
	switch level {
	case "ERROR", "DPANIC", "PANIC", "FATAL":
		return styles.DangerText.Bold(false).Render(text)
	case "WARN":
		return styles.WarningText.Render(text)
	case "DEBUG":
		return styles.FaintText.Render(text)
	default:
		return styles.Text.Render(text)
	}
}
