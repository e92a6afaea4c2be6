package country

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"countryfx/internal/adapters"
	"countryfx/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const summaryTopN = 5

// RefreshService drives one end-to-end refresh: fetch both sources, reconcile
// every entry, upsert the batch inside a single transaction, move the marker.
type RefreshService struct {
	countries  adapters.CountriesClient
	rates      adapters.RatesClient
	repo       adapters.CountryRepository
	cache      adapters.CountryCache
	summary    adapters.SummaryRenderer
	multiplier MultiplierFunc
	now        func() time.Time
	// -----
	mu sync.Mutex // at most one refresh in flight
}

func NewRefreshService(
	countries adapters.CountriesClient,
	rates adapters.RatesClient,
	repo adapters.CountryRepository,
	countryCache adapters.CountryCache,
	summary adapters.SummaryRenderer,
) *RefreshService {
	return &RefreshService{
		countries:  countries,
		rates:      rates,
		repo:       repo,
		cache:      countryCache,
		summary:    summary,
		multiplier: RandomMultiplier,
		now:        time.Now,
	}
}

// Refresh runs one atomic refresh batch. A second call while one is running
// fails fast with domain.ErrRefreshInProgress.
func (s *RefreshService) Refresh(ctx context.Context) (domain.RefreshResult, error) {
	if !s.mu.TryLock() {
		return domain.RefreshResult{}, domain.ErrRefreshInProgress
	}
	defer s.mu.Unlock()

	execID := uuid.NewString()
	logrus.Infof("Starting refresh; execID: %s", execID)

	// STEP 1: fetching both snapshots in parallel; either failure aborts the
	// whole run before anything touches storage
	entries, rates, err := s.fetchSources(ctx)
	if err != nil {
		return domain.RefreshResult{}, err
	}
	logrus.Infof("Fetched %d countries and %d rates; execID: %s", len(entries), len(rates), execID)

	// one timestamp for the whole batch
	now := s.now().UTC()

	// STEP 2: reconciling and upserting every entry inside one transaction,
	// marker included; a storage fault rolls everything back
	var (
		processed int
		touched   = make([]string, 0, len(entries))
	)
	err = s.repo.WithTx(ctx, func(tx adapters.CountryTx) error {
		for _, entry := range entries {
			record, recErr := Reconcile(entry, rates, now, s.multiplier)
			if recErr != nil {
				var skip *domain.SkipError
				if errors.As(recErr, &skip) {
					logrus.Warnf("Skipping entry %q (%s); execID: %s", entry.Name, skip, execID)
					continue
				}
				return recErr
			}
			if _, upErr := tx.Upsert(ctx, record); upErr != nil {
				return upErr
			}
			processed++
			touched = append(touched, record.Name)
		}
		return tx.SetLastRefreshed(ctx, now)
	})
	if err != nil {
		return domain.RefreshResult{}, fmt.Errorf("refresh batch failed: %w", err)
	}

	// STEP 3: post-commit housekeeping; stale reads are acceptable, a lost
	// summary image is acceptable, so neither can fail the refresh
	s.cache.CleanBatch(touched)
	s.regenerateSummary(ctx, now, execID)

	logrus.Infof("Refresh finished, %d countries processed; execID: %s", processed, execID)
	return domain.RefreshResult{Processed: processed, LastRefreshedAt: now}, nil
}

// fetchSources runs both fetches concurrently. The countries failure wins
// when both sources are down, matching the sequential contract.
func (s *RefreshService) fetchSources(ctx context.Context) ([]domain.SourceCountry, map[string]float64, error) {
	var (
		wg           sync.WaitGroup
		entries      []domain.SourceCountry
		rates        map[string]float64
		countriesErr error
		ratesErr     error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		entries, countriesErr = s.countries.FetchCountries(ctx)
	}()
	go func() {
		defer wg.Done()
		rates, ratesErr = s.rates.FetchRates(ctx)
	}()
	wg.Wait()

	if countriesErr != nil {
		return nil, nil, countriesErr
	}
	if ratesErr != nil {
		return nil, nil, ratesErr
	}
	return entries, rates, nil
}

func (s *RefreshService) regenerateSummary(ctx context.Context, refreshedAt time.Time, execID string) {
	if s.summary == nil {
		return
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		logrus.Warnf("Summary skipped, count failed: %v; execID: %s", err, execID)
		return
	}
	top, err := s.repo.Top(ctx, summaryTopN)
	if err != nil {
		logrus.Warnf("Summary skipped, top query failed: %v; execID: %s", err, execID)
		return
	}

	summary := domain.Summary{TotalCountries: total, TopByGDP: top, RefreshedAt: refreshedAt}
	if err = s.summary.Render(ctx, summary); err != nil {
		logrus.Warnf("Summary rendering failed: %v; execID: %s", err, execID)
	}
}
