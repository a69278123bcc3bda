package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"atlas/internal/format"
)

// View renders the current model state: the search bar on top, then exactly
// one of the idle hint, the loading indicator, the results card or the
// error panel.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.title.Render("🌍 Atlas"))
	b.WriteString("\n")
	b.WriteString(m.styles.prompt.Render(m.input.View()))
	b.WriteString("\n\n")

	switch m.state {
	case stateLoading:
		b.WriteString(m.styles.loading.Render(m.spinner.View() + " Searching..."))
	case stateResults:
		b.WriteString(m.results.View())
	case stateError:
		b.WriteString(m.styles.errorBox.Render(m.errMsg))
	default:
		b.WriteString(m.styles.hint.Render("Type a country name and press enter."))
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderCountry builds the results card with every display field, defaults
// applied where source data is missing.
func (m Model) renderCountry() string {
	c := m.country
	if c == nil {
		return ""
	}

	row := func(label, value string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top,
			m.styles.label.Render(label),
			m.styles.value.Render(value),
		)
	}

	title := c.Name.Common
	if c.Flag != "" {
		title = c.Flag + " " + title
	}

	rows := []string{m.styles.countryName.Render(title)}
	if c.Name.Official != "" && c.Name.Official != c.Name.Common {
		rows = append(rows, m.styles.official.Render(c.Name.Official))
	}
	if c.Flags.Alt != "" {
		rows = append(rows, m.styles.official.Render(c.Flags.Alt))
	}
	rows = append(rows, "")

	rows = append(rows,
		row("Capital", format.Capital(c.Capital)),
		row("Region", format.Region(c.Region, c.Subregion)),
		row("Population", format.Number(c.Population)),
		row("Area", format.Area(c.Area)),
		row("Currencies", format.Currencies(c.Currencies)),
		row("Languages", m.renderBadges(format.Languages(c.Languages))),
		row("Domains", m.renderBadges(format.Domains(c.TLD))),
		row("Timezones", format.Timezones(c.Timezones)),
		row("Continent", format.Continent(c.Continents)),
		row("Calling code", format.CallingCode(c.IDD)),
		row("Borders", format.Borders(c.Borders)),
		row("Independent", format.YesNo(c.Independent)),
		row("UN member", format.YesNo(c.UNMember)),
	)

	if c.Flags.PNG != "" {
		rows = append(rows, row("Flag", c.Flags.PNG))
	}
	if mapURL := format.MapURL(c.LatLng, m.mapZoom); mapURL != "" {
		rows = append(rows, row("Map", mapURL))
	}

	return m.styles.card.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// renderBadges renders each value as a small labelled badge.
func (m Model) renderBadges(values []string) string {
	badges := make([]string, 0, len(values))
	for _, v := range values {
		badges = append(badges, m.styles.badge.Render(v))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, badges...)
}

// renderFooter renders the keyboard hints.
func (m Model) renderFooter() string {
	hints := []string{
		"enter: search",
		"ctrl+t: toggle theme",
	}
	if m.state == stateResults {
		hints = append(hints, "↑/↓: scroll")
	}
	hints = append(hints, "esc: quit")

	return m.styles.footer.Render(strings.Join(hints, "  •  "))
}
