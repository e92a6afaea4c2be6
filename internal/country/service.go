package country

import (
	"context"

	"countryfx/internal/adapters"
	"countryfx/internal/domain"
)

// Service serves the read/delete side: list, detail, status. Detail lookups
// go through the cache; every spelling of a name shares one slot.
type Service struct {
	repo  adapters.CountryRepository
	cache adapters.CountryCache
}

func NewService(repo adapters.CountryRepository, cache adapters.CountryCache) *Service {
	return &Service{repo: repo, cache: cache}
}

func (s *Service) List(ctx context.Context, filter domain.ListFilter) ([]domain.Country, error) {
	return s.repo.List(ctx, filter)
}

func (s *Service) GetByName(ctx context.Context, name string) (*domain.Country, error) {
	if c, ok := s.cache.Get(name); ok {
		return c, nil
	}
	c, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	s.cache.Set(name, c)
	return c, nil
}

func (s *Service) Delete(ctx context.Context, name string) error {
	if err := s.repo.Delete(ctx, name); err != nil {
		return err
	}
	s.cache.CleanBatch([]string{name})
	return nil
}

func (s *Service) Status(ctx context.Context) (StatusView, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return StatusView{}, err
	}
	lastRefreshed, err := s.repo.LastRefreshed(ctx)
	if err != nil {
		return StatusView{}, err
	}
	return StatusView{TotalCountries: total, LastRefreshedAt: lastRefreshed}, nil
}
