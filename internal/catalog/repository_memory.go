package catalog

import "context"

type InMemoryRepository struct {
	catalog *Catalog
	err     error

	// Loads counts GetCatalog calls, for fetch-once tests.
	Loads int
}

func NewInMemoryRepository(c *Catalog) *InMemoryRepository {
	return &InMemoryRepository{catalog: c}
}

func NewFailingRepository(err error) *InMemoryRepository {
	return &InMemoryRepository{err: err}
}

func (r *InMemoryRepository) GetCatalog(ctx context.Context) (*Catalog, error) {
	r.Loads++
	if r.err != nil {
		return nil, r.err
	}
	return r.catalog, nil
}
