package adapters

import (
	"context"
	"time"

	"countryfx/internal/domain"
)

type CountriesClient interface {
	FetchCountries(ctx context.Context) ([]domain.SourceCountry, error)
}

type RatesClient interface {
	FetchRates(ctx context.Context) (map[string]float64, error)
}

// CountryTx is the write surface available inside one refresh transaction.
// Upsert reports whether the record was created (as opposed to updated).
type CountryTx interface {
	Upsert(ctx context.Context, c domain.Country) (created bool, err error)
	SetLastRefreshed(ctx context.Context, t time.Time) error
}

type CountryRepository interface {
	WithTx(ctx context.Context, fn func(tx CountryTx) error) error
	GetByName(ctx context.Context, name string) (*domain.Country, error)
	List(ctx context.Context, filter domain.ListFilter) ([]domain.Country, error)
	Top(ctx context.Context, n int) ([]domain.Country, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, name string) error
	LastRefreshed(ctx context.Context) (*time.Time, error)
}

type CountryCache interface {
	Get(name string) (*domain.Country, bool)
	Set(name string, c *domain.Country)
	CleanBatch(names []string)
}

type SummaryRenderer interface {
	Render(ctx context.Context, s domain.Summary) error
}
