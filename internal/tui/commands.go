package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"atlas/internal/countries"
)

// CountryService is the lookup dependency of the model.
type CountryService interface {
	FetchCountry(ctx context.Context, name string) (*countries.Country, error)
}

// fetchCountryCmd runs one lookup asynchronously. The sequence number lets
// the model drop responses from superseded searches, so a slow earlier
// request can never overwrite the result of a later one.
func fetchCountryCmd(svc CountryService, name string, seq int) tea.Cmd {
	return func() tea.Msg {
		country, err := svc.FetchCountry(context.Background(), name)
		if err != nil {
			return lookupFailedMsg{seq: seq, err: err}
		}
		return countryLoadedMsg{seq: seq, country: country}
	}
}
