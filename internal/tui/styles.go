package tui

import (
	"github.com/charmbracelet/lipgloss"

	"atlas/internal/theme"
)

type palette struct {
	primary lipgloss.Color
	accent  lipgloss.Color
	text    lipgloss.Color
	muted   lipgloss.Color
	danger  lipgloss.Color
	badgeBg lipgloss.Color
	border  lipgloss.Color
}

var (
	darkPalette = palette{
		primary: lipgloss.Color("99"),  // Purple
		accent:  lipgloss.Color("212"), // Pink
		text:    lipgloss.Color("252"),
		muted:   lipgloss.Color("245"),
		danger:  lipgloss.Color("196"),
		badgeBg: lipgloss.Color("237"),
		border:  lipgloss.Color("240"),
	}

	lightPalette = palette{
		primary: lipgloss.Color("55"), // Deep purple
		accent:  lipgloss.Color("161"),
		text:    lipgloss.Color("235"),
		muted:   lipgloss.Color("243"),
		danger:  lipgloss.Color("124"),
		badgeBg: lipgloss.Color("254"),
		border:  lipgloss.Color("250"),
	}
)

// styles bundles every lipgloss style the view uses, built once per theme.
type styles struct {
	title       lipgloss.Style
	prompt      lipgloss.Style
	hint        lipgloss.Style
	loading     lipgloss.Style
	spinner     lipgloss.Style
	card        lipgloss.Style
	countryName lipgloss.Style
	official    lipgloss.Style
	label       lipgloss.Style
	value       lipgloss.Style
	badge       lipgloss.Style
	errorBox    lipgloss.Style
	footer      lipgloss.Style
}

// newStyles builds the style set for the given theme preference.
func newStyles(pref theme.Preference) styles {
	p := darkPalette
	if pref == theme.Light {
		p = lightPalette
	}

	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.primary).
			PaddingLeft(1).
			MarginBottom(1),

		prompt: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.primary).
			Padding(0, 1),

		hint: lipgloss.NewStyle().
			Foreground(p.muted).
			Italic(true).
			PaddingLeft(1),

		loading: lipgloss.NewStyle().
			Foreground(p.primary).
			PaddingLeft(1),

		spinner: lipgloss.NewStyle().
			Foreground(p.primary),

		card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(1, 2),

		countryName: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.accent),

		official: lipgloss.NewStyle().
			Foreground(p.muted).
			Italic(true),

		label: lipgloss.NewStyle().
			Foreground(p.muted).
			Bold(true).
			Width(14),

		value: lipgloss.NewStyle().
			Foreground(p.text),

		badge: lipgloss.NewStyle().
			Foreground(p.accent).
			Background(p.badgeBg).
			Padding(0, 1).
			MarginRight(1),

		errorBox: lipgloss.NewStyle().
			Foreground(p.danger).
			Bold(true).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(p.danger).
			Padding(1, 2),

		footer: lipgloss.NewStyle().
			Foreground(p.muted).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(p.border).
			PaddingTop(1).
			MarginTop(1),
	}
}
