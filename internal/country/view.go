package country

import "time"

type StatusView struct {
	TotalCountries  int64
	LastRefreshedAt *time.Time // nil until the first successful refresh
}
