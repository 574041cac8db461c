package catalog

import (
	"context"
	"encoding/json"
	"fmt"
)

// ObjectStore is the narrow slice of object storage the loader needs.
// Satisfied by storage.R2Client.
type ObjectStore interface {
	Download(ctx context.Context, key string) ([]byte, error)
}

// ObjectRepository reads the catalog from a JSON document published
// to object storage by the pricing team. Same wire shape as the
// /catalog endpoint: {planInfos, optionInfos}.
type ObjectRepository struct {
	store ObjectStore
	key   string
}

func NewObjectRepository(store ObjectStore, key string) *ObjectRepository {
	return &ObjectRepository{store: store, key: key}
}

func (r *ObjectRepository) GetCatalog(ctx context.Context) (*Catalog, error) {
	data, err := r.store.Download(ctx, r.key)
	if err != nil {
		return nil, fmt.Errorf("download catalog %s: %w", r.key, err)
	}

	var catalog Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", r.key, err)
	}

	return &catalog, nil
}
