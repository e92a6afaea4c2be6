package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"countryfx/internal/domain"
)

type RatesClient struct {
	http *http.Client
	url  string
}

type ratesResponse struct {
	Rates json.RawMessage `json:"rates"`
}

func (c *RatesClient) FetchRates(ctx context.Context) (map[string]float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, srcErr(domain.SourceRates, fmt.Errorf("failed to create request: %w", err))
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, srcErr(domain.SourceRates, fmt.Errorf("failed to execute request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, srcErr(domain.SourceRates, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, resp.Status))
	}

	var body ratesResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, srcErr(domain.SourceRates, fmt.Errorf("failed to decode response: %w", err))
	}

	// The top-level "rates" key must be present and must be an object. A JSON
	// null leaves the raw message as the literal "null", which is just as
	// absent as a missing key.
	if len(body.Rates) == 0 || string(body.Rates) == "null" {
		return nil, srcErr(domain.SourceRates, fmt.Errorf("response has no 'rates' field"))
	}
	rates := make(map[string]float64)
	if err = json.Unmarshal(body.Rates, &rates); err != nil {
		return nil, srcErr(domain.SourceRates, fmt.Errorf("'rates' field is not a mapping: %w", err))
	}

	return rates, nil
}

func NewRatesClient(httpClient *http.Client, url string) *RatesClient {
	return &RatesClient{http: httpClient, url: url}
}
