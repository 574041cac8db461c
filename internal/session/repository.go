package session

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("session not found")

// Repository persists sessions. Save is an upsert: the store writes
// on every state change.
type Repository interface {
	Save(ctx context.Context, s *Session) error
	Find(ctx context.Context, id string) (*Session, error)
	DeleteExpired(ctx context.Context, before time.Time) (int, error)
}
