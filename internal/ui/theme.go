package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors and styles for the UI.
type Theme struct {
	Name string

	// Base colors
	Background string // Outermost background
	Surface    string // Header and command bar
	SurfaceAlt string // Panels
	FocusBg    string // Focused panel

	// List colors
	SelectionBg   string
	SelectionText string

	// Border colors
	Border      string
	BorderMuted string
	BorderFocus string

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string

	// TypeColors maps lower-case English type names to chip colors.
	TypeColors map[string]string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Background: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Background)),

		Surface: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)),

		SurfaceAlt: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SurfaceAlt)).
			Foreground(lipgloss.Color(t.Text)),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		InfoText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Info)),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),

		typeColors: t.TypeColors,
		background: t.Background,
		muted:      t.Muted,
	}
}

// TypeColor returns the chip color for a type, keyed by its English name.
func (t Theme) TypeColor(englishName string) string {
	if color, ok := t.TypeColors[strings.ToLower(strings.TrimSpace(englishName))]; ok {
		return color
	}
	return t.Muted
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Background lipgloss.Style
	Surface    lipgloss.Style
	SurfaceAlt lipgloss.Style

	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	InfoText    lipgloss.Style

	Header   lipgloss.Style
	Logo     lipgloss.Style
	Selected lipgloss.Style

	typeColors map[string]string
	background string
	muted      string
}

// ChipStyle returns a badge style for a type chip.
func (s Styles) ChipStyle(englishName string) lipgloss.Style {
	color := s.typeColors[strings.ToLower(strings.TrimSpace(englishName))]
	if color == "" {
		color = s.muted
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.background)).
		Background(lipgloss.Color(color)).
		Padding(0, 1)
}

// WithBackground returns a copy of Styles with all text styles having the specified background.
func (s Styles) WithBackground(bgColor string) Styles {
	bg := lipgloss.Color(bgColor)

	return Styles{
		Background: s.Background.Background(bg),
		Surface:    s.Surface.Background(bg),
		SurfaceAlt: s.SurfaceAlt.Background(bg),

		Text:        s.Text.Background(bg),
		MutedText:   s.MutedText.Background(bg),
		FaintText:   s.FaintText.Background(bg),
		AccentText:  s.AccentText.Background(bg),
		SuccessText: s.SuccessText.Background(bg),
		WarningText: s.WarningText.Background(bg),
		DangerText:  s.DangerText.Background(bg),
		InfoText:    s.InfoText.Background(bg),

		Header:   s.Header.Background(bg),
		Logo:     s.Logo.Background(bg),
		Selected: s.Selected.Background(bg),

		typeColors: s.typeColors,
		background: s.background,
		muted:      s.muted,
	}
}

// Theme definitions

var themes = map[string]Theme{
	"Nightfox": nightfoxTheme(),
	"Kanagawa": kanagawaTheme(),
	"Slate":    slateTheme(),
}

var themeOrder = []string{"Nightfox", "Kanagawa", "Slate"}

// GetTheme returns a theme by name, falling back to Nightfox.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return nightfoxTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}


func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "Nightfox",

		Background: "#131a24", // bg0
		Surface:    "#192330", // bg1
		SurfaceAlt: "#212e3f", // bg2
		FocusBg:    "#29394f", // bg3

		SelectionBg:   "#2b3b51", // sel0
		SelectionText: "#cdcecf", // fg1

		Border:      "#39506d", // bg4
		BorderMuted: "#212e3f", // bg2
		BorderFocus: "#719cd6", // blue

		Text:    "#cdcecf", // fg1
		Muted:   "#738091", // comment
		Faint:   "#71839b", // fg3
		Accent:  "#719cd6", // blue
		Success: "#81b29a", // green
		Warning: "#dbc074", // yellow
		Danger:  "#c94f6d", // red
		Info:    "#63cdcf", // cyan

		TypeColors: map[string]string{
			"normal":   "#aeafb0", // fg2
			"fire":     "#f4a261", // orange
			"water":    "#719cd6", // blue
			"grass":    "#81b29a", // green
			"electric": "#dbc074", // yellow
			"ice":      "#86abdc", // blue bright
			"fighting": "#d67ad2", // pink
			"poison":   "#9d79d6", // magenta
			"ground":   "#c6a26f", // yellow dim
			"flying":   "#a3b9dc", // blue light
			"psychic":  "#d16983", // red bright
			"bug":      "#8ebaa4", // green bright
			"rock":     "#a89a7c", // sand
			"ghost":    "#866eb5", // magenta dim
			"dragon":   "#5a85c0", // blue dim
			"dark":     "#575860", // black bright
			"steel":    "#71839b", // fg3
			"fairy":    "#e095c3", // pink light
		},
	}
}

func kanagawaTheme() Theme {
	// Kanagawa palette: https://github.com/rebelot/kanagawa.nvim
	return Theme{
		Name: "Kanagawa",

		Background: "#16161D", // sumiInk0
		Surface:    "#1F1F28", // sumiInk3
		SurfaceAlt: "#2A2A37", // sumiInk4
		FocusBg:    "#2A2A37", // sumiInk4

		SelectionBg:   "#2D4F67", // waveBlue1
		SelectionText: "#DCD7BA", // fujiWhite

		Border:      "#54546D", // sumiInk6
		BorderMuted: "#2A2A37", // sumiInk4
		BorderFocus: "#7E9CD8", // crystalBlue

		Text:    "#DCD7BA", // fujiWhite
		Muted:   "#C8C093", // oldWhite
		Faint:   "#727169", // fujiGray
		Accent:  "#7E9CD8", // crystalBlue
		Success: "#98BB6C", // springGreen
		Warning: "#E6C384", // carpYellow
		Danger:  "#E46876", // waveRed
		Info:    "#7FB4CA", // springBlue

		TypeColors: map[string]string{
			"normal":   "#C8C093", // oldWhite
			"fire":     "#FFA066", // surimiOrange
			"water":    "#7E9CD8", // crystalBlue
			"grass":    "#98BB6C", // springGreen
			"electric": "#E6C384", // carpYellow
			"ice":      "#A3D4D5", // lightBlue
			"fighting": "#C34043", // autumnRed
			"poison":   "#957FB8", // oniViolet
			"ground":   "#C0A36E", // boatYellow2
			"flying":   "#7FB4CA", // springBlue
			"psychic":  "#D27E99", // sakuraPink
			"bug":      "#76946A", // autumnGreen
			"rock":     "#938056", // boatYellow1
			"ghost":    "#938AA9", // springViolet1
			"dragon":   "#658594", // dragonBlue
			"dark":     "#54546D", // sumiInk6
			"steel":    "#727169", // fujiGray
			"fairy":    "#E46876", // waveRed
		},
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Slate",

		Background: "#020617", // slate-950
		Surface:    "#0f172a", // slate-900
		SurfaceAlt: "#1e293b", // slate-800
		FocusBg:    "#283548", // between slate-800 and slate-700

		SelectionBg:   "#0284c7", // sky-600
		SelectionText: "#f8fafc", // slate-50

		Border:      "#334155", // slate-700
		BorderMuted: "#1e293b", // slate-800
		BorderFocus: "#38bdf8", // sky-400

		Text:    "#f1f5f9", // slate-100
		Muted:   "#94a3b8", // slate-400
		Faint:   "#64748b", // slate-500
		Accent:  "#38bdf8", // sky-400
		Success: "#22c55e", // green-500
		Warning: "#f59e0b", // amber-500
		Danger:  "#ef4444", // red-500
		Info:    "#06b6d4", // cyan-500

		TypeColors: map[string]string{
			"normal":   "#a8a29e", // stone-400
			"fire":     "#f97316", // orange-500
			"water":    "#3b82f6", // blue-500
			"grass":    "#22c55e", // green-500
			"electric": "#facc15", // yellow-400
			"ice":      "#67e8f9", // cyan-300
			"fighting": "#b91c1c", // red-700
			"poison":   "#a855f7", // purple-500
			"ground":   "#ca8a04", // yellow-600
			"flying":   "#93c5fd", // blue-300
			"psychic":  "#ec4899", // pink-500
			"bug":      "#84cc16", // lime-500
			"rock":     "#a16207", // yellow-700
			"ghost":    "#6d28d9", // violet-700
			"dragon":   "#4f46e5", // indigo-600
			"dark":     "#44403c", // stone-700
			"steel":    "#94a3b8", // slate-400
			"fairy":    "#f9a8d4", // pink-300
		},
	}
}
