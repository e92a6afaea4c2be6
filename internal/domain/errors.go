package domain

import (
	"errors"
	"fmt"
)

var (
	ErrCountryNotFound   = errors.New("country not found")
	ErrRefreshInProgress = errors.New("refresh already in progress")
)

// Source names used in SourceUnavailableError.
const (
	SourceCountries = "countries"
	SourceRates     = "rates"
)

// SourceUnavailableError signals that one of the two external datasets could
// not be fetched. The whole refresh aborts with zero writes when it occurs.
type SourceUnavailableError struct {
	Source string
	Err    error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("source %q unavailable: %v", e.Source, e.Err)
}

func (e *SourceUnavailableError) Unwrap() error { return e.Err }

// SkipReason explains why a single source entry was excluded from a batch.
type SkipReason string

const SkipMissingRequiredField SkipReason = "missing required field"

// SkipError is a per-entry condition: the entry is logged and dropped, the
// batch continues.
type SkipError struct {
	Reason SkipReason
	Field  string
}

func (e *SkipError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Field)
}
