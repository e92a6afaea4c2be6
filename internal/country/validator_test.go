package country

import (
	"testing"

	"countryfx/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestQueryValidator_ValidateName(t *testing.T) {
	v := NewQueryValidator()

	require.NoError(t, v.ValidateName("Nigeria"))
	require.ErrorIs(t, v.ValidateName(""), ErrNameRequired)
}

func TestQueryValidator_ValidateListQuery(t *testing.T) {
	v := NewQueryValidator()

	cases := []struct {
		name     string
		region   string
		currency string
		sort     string
		want     domain.ListFilter
		wantErr  error
	}{
		{name: "empty query", want: domain.ListFilter{}},
		{name: "region only", region: "Africa", want: domain.ListFilter{Region: "Africa"}},
		{name: "currency only", currency: "NGN", want: domain.ListFilter{CurrencyCode: "NGN"}},
		{name: "gdp sort", sort: "gdp_desc", want: domain.ListFilter{SortByGDP: true}},
		{name: "all together", region: "Africa", currency: "ngn", sort: "gdp_desc",
			want: domain.ListFilter{Region: "Africa", CurrencyCode: "ngn", SortByGDP: true}},
		{name: "bad currency", currency: "NAIRA", wantErr: ErrInvalidCurrency},
		{name: "numeric currency", currency: "123", wantErr: ErrInvalidCurrency},
		{name: "bad sort", sort: "population", wantErr: ErrInvalidSort},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			filter, err := v.ValidateListQuery(tc.region, tc.currency, tc.sort)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, filter)
		})
	}
}
