package countries

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const franceResponse = `[
  {
    "name": {"common": "France", "official": "French Republic"},
    "tld": [".fr"],
    "independent": true,
    "unMember": true,
    "currencies": {"EUR": {"name": "Euro", "symbol": "€"}},
    "idd": {"root": "+3", "suffixes": ["3"]},
    "capital": ["Paris"],
    "region": "Europe",
    "subregion": "Western Europe",
    "languages": {"fra": "French"},
    "latlng": [46.0, 2.0],
    "borders": ["AND", "BEL", "DEU", "ITA", "LUX", "MCO", "ESP", "CHE"],
    "area": 551695.0,
    "population": 67391582,
    "timezones": ["UTC+01:00"],
    "continents": ["Europe"],
    "flag": "🇫🇷",
    "flags": {"png": "https://flagcdn.com/w320/fr.png", "alt": "The flag of France"}
  },
  {
    "name": {"common": "Metropolitan France", "official": "Metropolitan France"}
  }
]`

func TestFetchCountrySuccess(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/name/France", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(franceResponse))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	country, err := client.FetchCountry(context.Background(), "France")
	require.NoError(t, err)

	// The first match wins.
	assert.Equal(t, "France", country.Name.Common)
	assert.Equal(t, "French Republic", country.Name.Official)
	assert.Equal(t, []string{"Paris"}, country.Capital)
	assert.Equal(t, "Europe", country.Region)
	assert.Equal(t, "Western Europe", country.Subregion)
	assert.Equal(t, int64(67391582), country.Population)
	assert.Equal(t, 551695.0, country.Area)
	assert.Equal(t, "Euro", country.Currencies["EUR"].Name)
	assert.Equal(t, "€", country.Currencies["EUR"].Symbol)
	assert.Equal(t, "French", country.Languages["fra"])
	assert.Equal(t, []string{".fr"}, country.TLD)
	assert.Equal(t, []float64{46, 2}, country.LatLng)
	assert.Len(t, country.Borders, 8)
	assert.True(t, country.Independent)
	assert.True(t, country.UNMember)
	assert.Equal(t, "+3", country.IDD.Root)
	assert.Equal(t, []string{"3"}, country.IDD.Suffixes)
	assert.Equal(t, "https://flagcdn.com/w320/fr.png", country.Flags.PNG)
}

func TestFetchCountryEncodesName(t *testing.T) {
	t.Parallel()

	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		_, _ = w.Write([]byte(`[{"name": {"common": "Costa Rica", "official": "Republic of Costa Rica"}}]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.FetchCountry(context.Background(), "Costa Rica")
	require.NoError(t, err)
	assert.Equal(t, "/name/Costa%20Rica", gotPath)
}

func TestFetchCountryTrimsName(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/name/France", r.URL.Path)
		_, _ = w.Write([]byte(`[{"name": {"common": "France", "official": "French Republic"}}]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.FetchCountry(context.Background(), "  France  ")
	require.NoError(t, err)
}

func TestFetchCountryEmptyName(t *testing.T) {
	t.Parallel()

	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.FetchCountry(context.Background(), "   ")

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Please enter a country name", validationErr.Message)
	assert.False(t, called, "empty input must never reach the service")
}

func TestFetchCountryNotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status": 404, "message": "Not Found"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.FetchCountry(context.Background(), "Atlantis")

	var notFoundErr *NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "Atlantis", notFoundErr.Name)
	assert.Contains(t, err.Error(), "Atlantis")
}

func TestFetchCountryServerError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.FetchCountry(context.Background(), "France")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}

func TestFetchCountryEmptyResult(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.FetchCountry(context.Background(), "Nowhere")

	var emptyErr *EmptyResultError
	require.ErrorAs(t, err, &emptyErr)
	assert.Contains(t, err.Error(), "Nowhere")
}

func TestFetchCountryNetworkError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewClient(srv.URL)
	_, err := client.FetchCountry(context.Background(), "France")

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Contains(t, err.Error(), "check your internet connection")
	assert.Error(t, errors.Unwrap(err))
}

func TestFetchCountryMalformedBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.FetchCountry(context.Background(), "France")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
}

func TestNewClientDefaultBaseURL(t *testing.T) {
	t.Parallel()

	client := NewClient("")
	assert.Equal(t, DefaultBaseURL, client.baseURL)

	client = NewClient("https://example.com/api/")
	assert.Equal(t, "https://example.com/api", client.baseURL)
}
