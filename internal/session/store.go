package session

import (
	"context"
	"errors"
	"time"

	"keiyaku/internal/selection"
)

var ErrNotHydrated = errors.New("session store not hydrated")

// Store holds one session's state while a wizard step is active.
// It reads the persisted session exactly once (hydration) and writes
// back on every mutation, so a reload always finds the latest
// selection.
type Store struct {
	repo Repository
	id   string

	hydrated bool
	session  *Session
}

func NewStore(repo Repository, sessionID string) *Store {
	return &Store{repo: repo, id: sessionID}
}

// Hydrate loads the persisted session. Idempotent; further calls are
// no-ops once the session is in memory.
func (s *Store) Hydrate(ctx context.Context) error {
	if s.hydrated {
		return nil
	}

	sess, err := s.repo.Find(ctx, s.id)
	if err != nil {
		return err
	}

	s.session = sess
	s.hydrated = true
	return nil
}

func (s *Store) Hydrated() bool {
	return s.hydrated
}

// Get returns a copy of the session, or false before hydration.
func (s *Store) Get() (Session, bool) {
	if !s.hydrated {
		return Session{}, false
	}
	return *s.session, true
}

func (s *Store) SetSelection(ctx context.Context, st selection.State) error {
	if !s.hydrated {
		return ErrNotHydrated
	}
	s.session.Selection = st
	return s.persist(ctx)
}

func (s *Store) SetCurrentPath(ctx context.Context, path string) error {
	if !s.hydrated {
		return ErrNotHydrated
	}
	s.session.CurrentPath = path
	return s.persist(ctx)
}

func (s *Store) persist(ctx context.Context) error {
	s.session.UpdatedAt = time.Now().UTC()
	return s.repo.Save(ctx, s.session)
}
