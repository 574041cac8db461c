package campaign

import (
	"context"
	"time"
)

type Repository interface {
	ListActive(ctx context.Context, now time.Time) ([]Campaign, error)
}
