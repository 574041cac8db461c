package catalog

import (
	"context"
	"errors"
	"sync"
)

var ErrEmptyCatalog = errors.New("catalog has no plans")

// Service caches the catalog after the first successful load.
// The catalog is immutable for the life of the process; a failed
// load is not cached, so the next request retries the source.
type Service struct {
	repo Repository

	mu      sync.Mutex
	catalog *Catalog
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context) (*Catalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.catalog != nil {
		return s.catalog, nil
	}

	c, err := s.repo.GetCatalog(ctx)
	if err != nil {
		return nil, err
	}
	if c == nil || len(c.Plans) == 0 {
		return nil, ErrEmptyCatalog
	}

	s.catalog = c
	return s.catalog, nil
}
