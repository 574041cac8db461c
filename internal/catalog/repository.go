package catalog

import "context"

// Repository supplies the catalog from wherever it lives
// (postgres, object storage, memory for tests).
type Repository interface {
	GetCatalog(ctx context.Context) (*Catalog, error)
}
