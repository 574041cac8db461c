package session

import (
	"context"
	"testing"

	"keiyaku/internal/selection"
)

func TestStoreBlocksBeforeHydration(t *testing.T) {
	repo := NewInMemoryRepository()
	store := NewStore(repo, "missing")

	if store.Hydrated() {
		t.Fatalf("store hydrated before Hydrate")
	}
	if _, ok := store.Get(); ok {
		t.Fatalf("Get returned state before hydration")
	}
	if err := store.SetSelection(context.Background(), selection.NewState()); err != ErrNotHydrated {
		t.Fatalf("expected ErrNotHydrated, got %v", err)
	}
}

func TestStoreHydratesOnce(t *testing.T) {
	repo := NewInMemoryRepository()
	sess := New(selection.ContractNew)
	if err := repo.Save(context.Background(), sess); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	store := NewStore(repo, sess.ID)
	if err := store.Hydrate(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !store.Hydrated() {
		t.Fatalf("store not hydrated after Hydrate")
	}

	// a concurrent writer updates the repo; the store keeps its loaded copy
	updated := *sess
	updated.CurrentPath = "/eid-input"
	if err := repo.Save(context.Background(), &updated); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Hydrate(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := store.Get()
	if got.CurrentPath != sess.CurrentPath {
		t.Fatalf("second Hydrate reloaded the session")
	}
}

func TestStorePersistsEverySet(t *testing.T) {
	repo := NewInMemoryRepository()
	sess := New(selection.ContractNew)
	if err := repo.Save(context.Background(), sess); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	store := NewStore(repo, sess.ID)
	if err := store.Hydrate(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	st := selection.NewState()
	st.PlanID = "plan-v3"
	if err := store.SetSelection(context.Background(), st); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	persisted, err := repo.Find(context.Background(), sess.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if persisted.Selection.PlanID != "plan-v3" {
		t.Fatalf("selection not persisted: %+v", persisted.Selection)
	}
	if !persisted.UpdatedAt.After(sess.UpdatedAt) {
		t.Fatalf("UpdatedAt not advanced on set")
	}
}

func TestStoreHydrateUnknownSession(t *testing.T) {
	store := NewStore(NewInMemoryRepository(), "nope")

	if err := store.Hydrate(context.Background()); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
