package domain

import (
	"time"
)

// SourceCurrency is a single currency entry as delivered by the countries API.
type SourceCurrency struct {
	Code string `json:"code"`
}

// SourceCountry is one raw entry from the countries source. Population is a
// pointer because the payload may omit it entirely, which is different from
// an explicit zero.
type SourceCountry struct {
	Name       string           `json:"name"`
	Capital    string           `json:"capital"`
	Region     string           `json:"region"`
	Population *int64           `json:"population"`
	FlagURL    string           `json:"flag"`
	Currencies []SourceCurrency `json:"currencies"`
}

// Country is the persisted per-country record. Optional fields are pointers:
// a nil ExchangeRate/EstimatedGDP carries meaning distinct from zero (see
// Reconcile in the country package).
type Country struct {
	ID              int64
	Name            string
	Capital         string
	Region          string
	Population      int64
	CurrencyCode    *string
	ExchangeRate    *float64
	EstimatedGDP    *float64
	FlagURL         string
	LastRefreshedAt time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// RefreshResult is returned by a successful refresh run.
type RefreshResult struct {
	Processed       int
	LastRefreshedAt time.Time
}

// ListFilter narrows and orders the country list. Empty string fields mean
// "no filter".
type ListFilter struct {
	Region       string
	CurrencyCode string
	SortByGDP    bool // descending, records without a GDP estimate last
}

// Summary is the input for the generated summary artifact.
type Summary struct {
	TotalCountries int64
	TopByGDP       []Country
	RefreshedAt    time.Time
}
