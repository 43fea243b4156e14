// Package theme defines color themes for the kasa TUI.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"kasa/internal/ledger"
)

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name         string
	Background   lipgloss.Color // Main app background
	Surface      lipgloss.Color // Card/panel backgrounds
	Border       lipgloss.Color // Subtle borders
	BorderAccent lipgloss.Color // Accent-colored borders for focus states
	TextDim      lipgloss.Color // Lowest contrast text (hints, disabled)
	TextMuted    lipgloss.Color // Secondary text (labels, metadata)
	TextPrimary  lipgloss.Color // Primary content text
	Accent       lipgloss.Color // Primary accent (active states)
	AccentBright lipgloss.Color // Brighter accent for emphasis
	Green        lipgloss.Color
	Red          lipgloss.Color
	Yellow       lipgloss.Color
	Selection    lipgloss.Color // Selected list row background
}

// Active is the currently selected theme.
var Active = FlexokiDark

// FlexokiDark is the default theme - warm, paper-inspired dark theme.
var FlexokiDark = Theme{
	Name:         "flexoki-dark",
	Background:   lipgloss.Color("#100F0F"),
	Surface:      lipgloss.Color("#1C1B1A"),
	Border:       lipgloss.Color("#403E3C"),
	BorderAccent: lipgloss.Color("#3AA99F"),
	TextDim:      lipgloss.Color("#575653"),
	TextMuted:    lipgloss.Color("#878580"),
	TextPrimary:  lipgloss.Color("#FFFCF0"),
	Accent:       lipgloss.Color("#3AA99F"),
	AccentBright: lipgloss.Color("#5BC8BE"),
	Green:        lipgloss.Color("#879A39"),
	Red:          lipgloss.Color("#D14D41"),
	Yellow:       lipgloss.Color("#D0A215"),
	Selection:    lipgloss.Color("#343331"),
}

// Terminal uses ANSI 16 colors only - maximum compatibility.
var Terminal = Theme{
	Name:         "terminal",
	Background:   lipgloss.Color("0"),
	Surface:      lipgloss.Color("0"),
	Border:       lipgloss.Color("8"),
	BorderAccent: lipgloss.Color("6"),
	TextDim:      lipgloss.Color("8"),
	TextMuted:    lipgloss.Color("7"),
	TextPrimary:  lipgloss.Color("15"),
	Accent:       lipgloss.Color("6"),
	AccentBright: lipgloss.Color("14"),
	Green:        lipgloss.Color("2"),
	Red:          lipgloss.Color("1"),
	Yellow:       lipgloss.Color("3"),
	Selection:    lipgloss.Color("8"),
}

// All available themes.
var All = []Theme{FlexokiDark, Terminal}

// ByName returns a theme by its name, defaulting to FlexokiDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return FlexokiDark
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}

var categoryColors = map[ledger.Category]lipgloss.Color{
	ledger.Fun:        lipgloss.Color("#24837B"),
	ledger.Restaurant: lipgloss.Color("#D14D41"),
	ledger.Shopping:   lipgloss.Color("#CE5D97"),
	ledger.Investment: lipgloss.Color("#4385BE"),
	ledger.Freetime:   lipgloss.Color("#6BA3D6"),
	ledger.Home:       lipgloss.Color("#879A39"),
	ledger.Cloth:      lipgloss.Color("#F5C2E7"),
	ledger.Car:        lipgloss.Color("#DA702C"),
	ledger.Travel:     lipgloss.Color("#D0A215"),
	ledger.Other:      lipgloss.Color("#878580"),
}

// CategoryColor returns a stable color per expense category for charts.
func CategoryColor(c ledger.Category) lipgloss.Color {
	if col, ok := categoryColors[c]; ok {
		return col
	}
	return Active.Accent
}
