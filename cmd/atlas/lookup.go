package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"atlas/internal/countries"
	"atlas/internal/format"
)

func newLookupCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup <country>",
		Short: "Look up a single country and print its details",
		Long:  `Look up a country by name and print its details to standard output. Multi-word names may be given unquoted.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(flags)
			if err != nil {
				return err
			}

			name := strings.TrimSpace(strings.Join(args, " "))
			if name == "" {
				return countries.NewValidationError("Please enter a country name")
			}

			a.log.WithFields(map[string]any{"name": name}).Debug("looking up country")

			country, err := a.client.FetchCountry(cmd.Context(), name)
			if err != nil {
				a.log.Error(err, "lookup failed")
				return err
			}

			styled := isTerminal(os.Stdout)
			fmt.Fprint(cmd.OutOrStdout(), renderLookup(country, a.settings.MapZoom, styled))
			return nil
		},
	}

	return cmd
}

func isTerminal(file *os.File) bool {
	return term.IsTerminal(int(file.Fd()))
}

// renderLookup prints the country card as label/value lines. Styled output
// bolds the title; plain output is stable for piping.
func renderLookup(c *countries.Country, mapZoom int, styled bool) string {
	var b strings.Builder

	title := c.Name.Common
	if c.Flag != "" {
		title = c.Flag + " " + title
	}
	if styled {
		title = lipgloss.NewStyle().Bold(true).Render(title)
	}
	b.WriteString(title)
	b.WriteString("\n")
	if c.Name.Official != "" && c.Name.Official != c.Name.Common {
		b.WriteString(c.Name.Official)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	row := func(label, value string) {
		fmt.Fprintf(&b, "%-14s %s\n", label, value)
	}

	row("Capital", format.Capital(c.Capital))
	row("Region", format.Region(c.Region, c.Subregion))
	row("Population", format.Number(c.Population))
	row("Area", format.Area(c.Area))
	row("Currencies", format.Currencies(c.Currencies))
	row("Languages", strings.Join(format.Languages(c.Languages), ", "))
	row("Domains", strings.Join(format.Domains(c.TLD), ", "))
	row("Timezones", format.Timezones(c.Timezones))
	row("Continent", format.Continent(c.Continents))
	row("Calling code", format.CallingCode(c.IDD))
	row("Borders", format.Borders(c.Borders))
	row("Independent", format.YesNo(c.Independent))
	row("UN member", format.YesNo(c.UNMember))
	if c.Flags.PNG != "" {
		row("Flag", c.Flags.PNG)
	}
	if mapURL := format.MapURL(c.LatLng, mapZoom); mapURL != "" {
		row("Map", mapURL)
	}

	return b.String()
}
