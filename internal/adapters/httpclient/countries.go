package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"countryfx/internal/domain"
)

type CountriesClient struct {
	http *http.Client
	url  string
}

func (c *CountriesClient) FetchCountries(ctx context.Context) ([]domain.SourceCountry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, srcErr(domain.SourceCountries, fmt.Errorf("failed to create request: %w", err))
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, srcErr(domain.SourceCountries, fmt.Errorf("failed to execute request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, srcErr(domain.SourceCountries, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, resp.Status))
	}

	// The payload must be a JSON array; anything else is a malformed snapshot.
	// A JSON null decodes into a nil slice without error, so it needs its own
	// check.
	var entries []domain.SourceCountry
	if err = json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, srcErr(domain.SourceCountries, fmt.Errorf("failed to decode response: %w", err))
	}
	if entries == nil {
		return nil, srcErr(domain.SourceCountries, fmt.Errorf("payload is not a sequence"))
	}

	return entries, nil
}

func NewCountriesClient(httpClient *http.Client, url string) *CountriesClient {
	return &CountriesClient{http: httpClient, url: url}
}

func srcErr(source string, err error) error {
	return &domain.SourceUnavailableError{Source: source, Err: err}
}
