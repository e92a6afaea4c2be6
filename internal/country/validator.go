package country

import (
	"errors"
	"regexp"

	"countryfx/internal/domain"
)

var (
	ErrNameRequired    = errors.New("country name is required")
	ErrInvalidCurrency = errors.New("currency filter must be a three-letter code")
	ErrInvalidSort     = errors.New("unsupported sort, expected 'gdp_desc'")
)

const SortGDPDesc = "gdp_desc"

var currencyCodeRe = regexp.MustCompile(`^[A-Za-z]{3}$`)

// QueryValidator checks list/detail query inputs before they reach storage.
type QueryValidator struct{}

func (v *QueryValidator) ValidateName(name string) error {
	if name == "" {
		return ErrNameRequired
	}
	return nil
}

// ValidateListQuery turns raw query params into a ListFilter.
func (v *QueryValidator) ValidateListQuery(region, currency, sort string) (domain.ListFilter, error) {
	if currency != "" && !currencyCodeRe.MatchString(currency) {
		return domain.ListFilter{}, ErrInvalidCurrency
	}
	switch sort {
	case "", SortGDPDesc:
	default:
		return domain.ListFilter{}, ErrInvalidSort
	}
	return domain.ListFilter{
		Region:       region,
		CurrencyCode: currency,
		SortByGDP:    sort == SortGDPDesc,
	}, nil
}

func NewQueryValidator() *QueryValidator {
	return &QueryValidator{}
}
