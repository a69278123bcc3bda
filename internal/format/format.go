// Package format converts raw country attributes into display-ready strings.
// All functions are pure; missing source data falls back to NotAvailable
// rather than failing.
package format

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"atlas/internal/countries"
)

// NotAvailable is the placeholder shown for missing source fields.
const NotAvailable = "Not available"

var printer = message.NewPrinter(language.English)

// Number renders an integer with locale digit grouping.
func Number(n int64) string {
	return printer.Sprintf("%d", n)
}

// Decimal renders a float with locale digit grouping. Integral values drop
// the fractional part.
func Decimal(f float64) string {
	if f == float64(int64(f)) {
		return printer.Sprintf("%d", int64(f))
	}
	return printer.Sprintf("%.1f", f)
}

// Area renders a surface area in square kilometres.
func Area(a float64) string {
	return Decimal(a) + " km²"
}

// Languages returns the language display names sorted alphabetically, or a
// single NotAvailable entry when the source map is absent or empty. Map
// iteration order is randomized, so sorting is what makes output stable.
func Languages(langs map[string]string) []string {
	if len(langs) == 0 {
		return []string{NotAvailable}
	}
	names := make([]string, 0, len(langs))
	for _, name := range langs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Currencies returns a comma-joined "Name (Symbol)" list ordered by currency
// code, with the symbol omitted when absent.
func Currencies(currs map[string]countries.Currency) string {
	if len(currs) == 0 {
		return NotAvailable
	}
	codes := make([]string, 0, len(currs))
	for code := range currs {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	parts := make([]string, 0, len(codes))
	for _, code := range codes {
		c := currs[code]
		if c.Symbol != "" {
			parts = append(parts, fmt.Sprintf("%s (%s)", c.Name, c.Symbol))
		} else {
			parts = append(parts, c.Name)
		}
	}
	return strings.Join(parts, ", ")
}

// Domains returns the top-level domains, or a single NotAvailable entry.
func Domains(tlds []string) []string {
	if len(tlds) == 0 {
		return []string{NotAvailable}
	}
	return tlds
}

// Capital returns the first capital, or NotAvailable.
func Capital(capitals []string) string {
	return firstOr(capitals, NotAvailable)
}

// Continent returns the first continent, or NotAvailable.
func Continent(continents []string) string {
	return firstOr(continents, NotAvailable)
}

// Region joins region and subregion, or returns the region alone when no
// subregion is present.
func Region(region, subregion string) string {
	if subregion == "" {
		return region
	}
	return region + " - " + subregion
}

// CallingCode joins the dial root with the first suffix, or NotAvailable
// when the country has no dialing root.
func CallingCode(idd countries.IDD) string {
	if idd.Root == "" {
		return NotAvailable
	}
	suffix := ""
	if len(idd.Suffixes) > 0 {
		suffix = idd.Suffixes[0]
	}
	return idd.Root + suffix
}

// Borders summarizes the neighbouring-country count, or names the country
// as isolated when it has none.
func Borders(borders []string) string {
	switch len(borders) {
	case 0:
		return "None (island/isolated)"
	case 1:
		return "1 neighbouring country"
	default:
		return fmt.Sprintf("%d neighbouring countries", len(borders))
	}
}

// Timezones joins the timezone list.
func Timezones(timezones []string) string {
	if len(timezones) == 0 {
		return NotAvailable
	}
	return strings.Join(timezones, ", ")
}

// YesNo renders a boolean flag for display.
func YesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// MapURL builds a map embed URL at the given zoom level from the first two
// coordinate values, or returns an empty string when coordinates are missing.
func MapURL(latlng []float64, zoom int) string {
	if len(latlng) < 2 {
		return ""
	}
	return fmt.Sprintf("https://maps.google.com/maps?q=%v,%v&z=%d&output=embed", latlng[0], latlng[1], zoom)
}

func firstOr(values []string, fallback string) string {
	if len(values) == 0 || values[0] == "" {
		return fallback
	}
	return values[0]
}
