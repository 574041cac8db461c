package campaign

import (
	"context"
	"time"
)

type InMemoryRepository struct {
	campaigns []Campaign
}

func NewInMemoryRepository(campaigns []Campaign) *InMemoryRepository {
	return &InMemoryRepository{campaigns: campaigns}
}

func (r *InMemoryRepository) ListActive(ctx context.Context, now time.Time) ([]Campaign, error) {
	var active []Campaign
	for _, c := range r.campaigns {
		if c.ActiveAt(now) {
			active = append(active, c)
		}
	}
	return active, nil
}
