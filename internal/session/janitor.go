package session

import (
	"context"
	"log"
	"time"
)

// Janitor purges sessions that have not been touched within the TTL.
// Abandoned signups otherwise accumulate forever.
type Janitor struct {
	repo     Repository
	ttl      time.Duration
	interval time.Duration
}

func NewJanitor(repo Repository, ttl, interval time.Duration) *Janitor {
	return &Janitor{repo: repo, ttl: ttl, interval: interval}
}

func (j *Janitor) Run(ctx context.Context) {
	log.Println("session janitor started")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("session janitor stopped")
			return
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

func (j *Janitor) sweep(ctx context.Context) {
	deleted, err := j.repo.DeleteExpired(ctx, time.Now().UTC().Add(-j.ttl))
	if err != nil {
		log.Println("session janitor sweep failed:", err)
		return
	}
	if deleted > 0 {
		log.Printf("session janitor purged %d expired sessions", deleted)
	}
}
