package country

import (
	"math/rand/v2"
	"time"

	"countryfx/internal/domain"
)

const (
	multiplierMin = 1000
	multiplierMax = 2000
)

// MultiplierFunc yields the random GDP multiplier for one entry. Injected so
// reconciliation stays deterministic under test.
type MultiplierFunc func() int

// RandomMultiplier draws a uniform integer in [1000, 2000].
func RandomMultiplier() int {
	return multiplierMin + rand.IntN(multiplierMax-multiplierMin+1)
}

// Reconcile turns one source entry plus the rates snapshot into a storable
// record. Pure: no I/O, randomness only through the injected multiplier.
//
// GDP rules:
//   - no currency code       -> rate nil, GDP exactly 0
//   - code known, rate > 0   -> rate set, GDP = population * m / rate
//   - code known, rate == 0  -> rate set, GDP nil
//   - code unknown to rates  -> rate nil, GDP nil
func Reconcile(entry domain.SourceCountry, rates map[string]float64, now time.Time, multiplier MultiplierFunc) (domain.Country, error) {
	if entry.Name == "" {
		return domain.Country{}, &domain.SkipError{Reason: domain.SkipMissingRequiredField, Field: "name"}
	}
	if entry.Population == nil || *entry.Population < 0 {
		return domain.Country{}, &domain.SkipError{Reason: domain.SkipMissingRequiredField, Field: "population"}
	}

	c := domain.Country{
		Name:            entry.Name,
		Capital:         entry.Capital,
		Region:          entry.Region,
		Population:      *entry.Population,
		FlagURL:         entry.FlagURL,
		LastRefreshedAt: now,
	}

	// Only the first currency entry counts.
	var code string
	if len(entry.Currencies) > 0 {
		code = entry.Currencies[0].Code
	}
	if code == "" {
		zero := 0.0
		c.EstimatedGDP = &zero
		return c, nil
	}

	c.CurrencyCode = &code
	rate, ok := rates[code]
	if !ok {
		return c, nil
	}

	c.ExchangeRate = &rate
	if rate > 0 {
		gdp := float64(c.Population) * float64(multiplier()) / rate
		c.EstimatedGDP = &gdp
	}
	return c, nil
}
