package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines a color theme
type Theme struct {
	Name string

	Accent  lipgloss.Color // brand red: logo badge, focus border, active button
	Text    lipgloss.Color
	Subtext lipgloss.Color
	Muted   lipgloss.Color
	Surface lipgloss.Color
	Base    lipgloss.Color
}

// Available themes
var Themes = map[string]Theme{
	"YouTube Dark": {
		Name:    "YouTube Dark",
		Accent:  lipgloss.Color("#ff0033"),
		Text:    lipgloss.Color("#f1f1f1"),
		Subtext: lipgloss.Color("#aaaaaa"),
		Muted:   lipgloss.Color("#717171"),
		Surface: lipgloss.Color("#272727"),
		Base:    lipgloss.Color("#0f0f0f"),
	},
	"YouTube Light": {
		Name:    "YouTube Light",
		Accent:  lipgloss.Color("#cc0000"),
		Text:    lipgloss.Color("#0f0f0f"),
		Subtext: lipgloss.Color("#606060"),
		Muted:   lipgloss.Color("#909090"),
		Surface: lipgloss.Color("#f2f2f2"),
		Base:    lipgloss.Color("#ffffff"),
	},
	"Dracula": {
		Name:    "Dracula",
		Accent:  lipgloss.Color("#ff5555"), // red
		Text:    lipgloss.Color("#f8f8f2"), // foreground
		Subtext: lipgloss.Color("#bd93f9"), // purple
		Muted:   lipgloss.Color("#6272a4"), // comment
		Surface: lipgloss.Color("#44475a"), // current line
		Base:    lipgloss.Color("#282a36"), // background
	},
	"Nord": {
		Name:    "Nord",
		Accent:  lipgloss.Color("#bf616a"), // nord11
		Text:    lipgloss.Color("#eceff4"), // nord6
		Subtext: lipgloss.Color("#81a1c1"), // nord9
		Muted:   lipgloss.Color("#4c566a"), // nord3
		Surface: lipgloss.Color("#3b4252"), // nord1
		Base:    lipgloss.Color("#2e3440"), // nord0
	},
	"Catppuccin Mocha": {
		Name:    "Catppuccin Mocha",
		Accent:  lipgloss.Color("#f38ba8"), // red
		Text:    lipgloss.Color("#cdd6f4"), // text
		Subtext: lipgloss.Color("#bac2de"), // subtext1
		Muted:   lipgloss.Color("#7f849c"), // overlay1
		Surface: lipgloss.Color("#313244"), // surface0
		Base:    lipgloss.Color("#1e1e2e"), // base
	},
}

// ThemeNames returns theme names in display order
var ThemeNames = []string{
	"YouTube Dark",
	"YouTube Light",
	"Dracula",
	"Nord",
	"Catppuccin Mocha",
}

// Current theme colors (set by ApplyTheme)
var (
	accentColor  lipgloss.Color
	textColor    lipgloss.Color
	subtextColor lipgloss.Color
	mutedColor   lipgloss.Color
	surfaceColor lipgloss.Color
	baseColor    lipgloss.Color
)

// Styles (updated by ApplyTheme)
var (
	logoBadgeStyle        lipgloss.Style
	logoTextStyle         lipgloss.Style
	taglineStyle          lipgloss.Style
	searchBoxStyle        lipgloss.Style
	searchBoxFocusedStyle lipgloss.Style
	searchIconStyle       lipgloss.Style
	inputTextStyle        lipgloss.Style
	placeholderStyle      lipgloss.Style
	cursorStyle           lipgloss.Style
	buttonStyle           lipgloss.Style
	activeButtonStyle     lipgloss.Style
	helpStyle             lipgloss.Style
	helpKeyStyle          lipgloss.Style
	statusStyle           lipgloss.Style
)

// CurrentThemeName tracks the active theme
var CurrentThemeName = "YouTube Dark"

func init() {
	ApplyTheme("YouTube Dark")
}

// ApplyTheme applies a theme by name
func ApplyTheme(name string) {
	theme, ok := Themes[name]
	if !ok {
		theme = Themes["YouTube Dark"]
		name = "YouTube Dark"
	}
	CurrentThemeName = name

	accentColor = theme.Accent
	textColor = theme.Text
	subtextColor = theme.Subtext
	mutedColor = theme.Muted
	surfaceColor = theme.Surface
	baseColor = theme.Base

	logoBadgeStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(accentColor).
		Padding(0, 1)

	logoTextStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(textColor)

	taglineStyle = lipgloss.NewStyle().
		Foreground(mutedColor).
		Italic(true)

	searchBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(mutedColor).
		Padding(0, 1)

	searchBoxFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Padding(0, 1)

	searchIconStyle = lipgloss.NewStyle().
		Foreground(subtextColor)

	inputTextStyle = lipgloss.NewStyle().
		Foreground(textColor)

	placeholderStyle = lipgloss.NewStyle().
		Foreground(mutedColor)

	cursorStyle = lipgloss.NewStyle().
		Foreground(accentColor)

	buttonStyle = lipgloss.NewStyle().
		Padding(0, 2).
		Background(surfaceColor).
		Foreground(subtextColor)

	activeButtonStyle = lipgloss.NewStyle().
		Padding(0, 2).
		Background(accentColor).
		Foreground(lipgloss.Color("#FFFFFF")).
		Bold(true)

	helpStyle = lipgloss.NewStyle().
		Foreground(mutedColor)

	helpKeyStyle = lipgloss.NewStyle().
		Foreground(subtextColor)

	statusStyle = lipgloss.NewStyle().
		Foreground(subtextColor).
		Padding(0, 1)
}
