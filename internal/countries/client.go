package countries

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// DefaultBaseURL points at the public REST Countries service.
const DefaultBaseURL = "https://restcountries.com/v3.1"

// Client looks up countries by name against the REST Countries API. Each
// lookup is a single request: no retries, no caching of prior lookups.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for the given base URL. An empty base URL
// selects the public service.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
}

// FetchCountry resolves a country name to the first record the service
// returns for it. Failures map onto the lookup error taxonomy: NotFoundError
// for 404, APIError for other failure statuses, EmptyResultError for a
// successful response with no matches and NetworkError for transport errors.
func (c *Client) FetchCountry(ctx context.Context, name string) (*Country, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, NewValidationError("Please enter a country name")
	}

	endpoint := fmt.Sprintf("%s/name/%s", c.baseURL, url.PathEscape(name))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, NewNetworkError(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, NewNetworkError(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, NewNotFoundError(name)
	case resp.StatusCode != http.StatusOK:
		return nil, NewAPIError(resp.StatusCode, resp.Status)
	}

	var matches []Country
	if err := json.NewDecoder(resp.Body).Decode(&matches); err != nil {
		return nil, NewAPIError(resp.StatusCode, fmt.Sprintf("unreadable response: %v", err))
	}
	if len(matches) == 0 {
		return nil, NewEmptyResultError(name)
	}

	return &matches[0], nil
}
