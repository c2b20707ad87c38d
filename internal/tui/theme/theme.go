// Package theme defines color themes for the wallet TUI dashboard.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name         string
	Background   lipgloss.Color // Main app background
	Surface      lipgloss.Color // Card/panel backgrounds
	Border       lipgloss.Color
	TextDim      lipgloss.Color // Hints, axis labels
	TextMuted    lipgloss.Color // Labels
	TextPrimary  lipgloss.Color
	Accent       lipgloss.Color
	AccentBright lipgloss.Color
	Income       lipgloss.Color // Positive balances and inflows
	Expense      lipgloss.Color // Negative balances and outflows
	Warning      lipgloss.Color
	Series       []lipgloss.Color // Rotating colors for breakdown rows
}

// Active is the currently selected theme.
var Active = FlexokiDark

// FlexokiDark is the default theme.
var FlexokiDark = Theme{
	Name:         "flexoki-dark",
	Background:   lipgloss.Color("#100F0F"),
	Surface:      lipgloss.Color("#1C1B1A"),
	Border:       lipgloss.Color("#403E3C"),
	TextDim:      lipgloss.Color("#575653"),
	TextMuted:    lipgloss.Color("#878580"),
	TextPrimary:  lipgloss.Color("#FFFCF0"),
	Accent:       lipgloss.Color("#3AA99F"),
	AccentBright: lipgloss.Color("#5BC8BE"),
	Income:       lipgloss.Color("#A3B859"),
	Expense:      lipgloss.Color("#D14D41"),
	Warning:      lipgloss.Color("#DA702C"),
	Series: []lipgloss.Color{
		lipgloss.Color("#6BA3D6"), lipgloss.Color("#24837B"), lipgloss.Color("#CE5D97"),
		lipgloss.Color("#D0A215"), lipgloss.Color("#879A39"),
	},
}

// TokyoNight is a cool blue/purple theme.
var TokyoNight = Theme{
	Name:         "tokyo-night",
	Background:   lipgloss.Color("#1A1B26"),
	Surface:      lipgloss.Color("#24283B"),
	Border:       lipgloss.Color("#565F89"),
	TextDim:      lipgloss.Color("#565F89"),
	TextMuted:    lipgloss.Color("#A9B1D6"),
	TextPrimary:  lipgloss.Color("#C0CAF5"),
	Accent:       lipgloss.Color("#7AA2F7"),
	AccentBright: lipgloss.Color("#A9C1FF"),
	Income:       lipgloss.Color("#9ECE6A"),
	Expense:      lipgloss.Color("#F7768E"),
	Warning:      lipgloss.Color("#FF9E64"),
	Series: []lipgloss.Color{
		lipgloss.Color("#7DCFFF"), lipgloss.Color("#BB9AF7"), lipgloss.Color("#E0AF68"),
		lipgloss.Color("#9ECE6A"), lipgloss.Color("#7AA2F7"),
	},
}

// Terminal uses ANSI 16 colors only.
var Terminal = Theme{
	Name:         "terminal",
	Background:   lipgloss.Color("0"),
	Surface:      lipgloss.Color("0"),
	Border:       lipgloss.Color("8"),
	TextDim:      lipgloss.Color("8"),
	TextMuted:    lipgloss.Color("7"),
	TextPrimary:  lipgloss.Color("15"),
	Accent:       lipgloss.Color("6"),
	AccentBright: lipgloss.Color("14"),
	Income:       lipgloss.Color("2"),
	Expense:      lipgloss.Color("1"),
	Warning:      lipgloss.Color("3"),
	Series: []lipgloss.Color{
		lipgloss.Color("4"), lipgloss.Color("6"), lipgloss.Color("5"),
		lipgloss.Color("3"), lipgloss.Color("2"),
	},
}

// All available themes.
var All = []Theme{FlexokiDark, TokyoNight, Terminal}

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
