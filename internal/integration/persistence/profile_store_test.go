// Package persistence implements the snapshot stores and the in-memory
// profile repository.
package persistence

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gap-tools/financial-tracker-backend/internal/application/adapter"
	"github.com/gap-tools/financial-tracker-backend/internal/domain/entity"
	domainerror "github.com/gap-tools/financial-tracker-backend/internal/domain/error"
	"github.com/gap-tools/financial-tracker-backend/internal/integration/persistence/model"
)

// flakySnapshotStore wraps the memory store and fails Put while failing is
// set, to exercise the dirty-retry path.
type flakySnapshotStore struct {
	adapter.SnapshotStore
	failing bool
	puts    int
}

func (s *flakySnapshotStore) Put(ctx context.Context, key string, payload []byte) error {
	s.puts++
	if s.failing {
		return errors.New("backend unavailable")
	}
	return s.SnapshotStore.Put(ctx, key, payload)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newProfile(name string) *entity.Profile {
	return entity.NewProfile(name, "USD", decimal.NewFromInt(500))
}

func TestProfileStoreCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("create persists a snapshot", func(t *testing.T) {
		snapshots := NewMemorySnapshotStore()
		store := NewProfileStore(snapshots, model.NewCodec(), discardLogger())

		p := newProfile("Alex")
		if err := store.Create(ctx, p); err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if _, err := snapshots.Get(ctx, snapshotKeyPrefix+p.ID.String()); err != nil {
			t.Fatalf("expected a snapshot after create, got %v", err)
		}
	})

	t.Run("duplicate create fails", func(t *testing.T) {
		store := NewProfileStore(NewMemorySnapshotStore(), model.NewCodec(), discardLogger())
		p := newProfile("Alex")
		if err := store.Create(ctx, p); err != nil {
			t.Fatalf("create failed: %v", err)
		}
		err := store.Create(ctx, p)
		var profileErr *domainerror.ProfileError
		if !errors.As(err, &profileErr) || profileErr.Code != domainerror.ErrCodeProfileAlreadyExists {
			t.Fatalf("expected already-exists error, got %v", err)
		}
	})
}

func TestProfileStoreLazyLoad(t *testing.T) {
	ctx := context.Background()
	snapshots := NewMemorySnapshotStore()

	first := NewProfileStore(snapshots, model.NewCodec(), discardLogger())
	p := newProfile("Alex")
	if err := first.Create(ctx, p); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// A fresh store over the same backend simulates a process restart.
	second := NewProfileStore(snapshots, model.NewCodec(), discardLogger())
	err := second.View(ctx, p.ID, func(loaded *entity.Profile) error {
		if loaded.Name != "Alex" {
			t.Errorf("expected restored name Alex, got %q", loaded.Name)
		}
		if loaded.Revision != 0 {
			t.Errorf("expected revision 0 after restore, got %d", loaded.Revision)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("view after restart failed: %v", err)
	}

	t.Run("unknown profile maps to not found", func(t *testing.T) {
		err := second.View(ctx, uuid.New(), func(*entity.Profile) error { return nil })
		var profileErr *domainerror.ProfileError
		if !errors.As(err, &profileErr) || profileErr.Code != domainerror.ErrCodeProfileNotFound {
			t.Fatalf("expected not-found error, got %v", err)
		}
	})
}

func TestProfileStoreUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("successful update bumps the revision and flushes", func(t *testing.T) {
		snapshots := NewMemorySnapshotStore()
		store := NewProfileStore(snapshots, model.NewCodec(), discardLogger())
		p := newProfile("Alex")
		if err := store.Create(ctx, p); err != nil {
			t.Fatalf("create failed: %v", err)
		}

		if err := store.Update(ctx, p.ID, func(p *entity.Profile) error {
			p.Name = "Alexandra"
			return nil
		}); err != nil {
			t.Fatalf("update failed: %v", err)
		}
		if p.Revision != 1 {
			t.Errorf("expected revision 1, got %d", p.Revision)
		}

		// The restored copy carries the mutation.
		restored := NewProfileStore(snapshots, model.NewCodec(), discardLogger())
		_ = restored.View(ctx, p.ID, func(loaded *entity.Profile) error {
			if loaded.Name != "Alexandra" {
				t.Errorf("expected flushed name, got %q", loaded.Name)
			}
			return nil
		})
	})

	t.Run("failing fn persists nothing", func(t *testing.T) {
		store := NewProfileStore(NewMemorySnapshotStore(), model.NewCodec(), discardLogger())
		p := newProfile("Alex")
		if err := store.Create(ctx, p); err != nil {
			t.Fatalf("create failed: %v", err)
		}

		wantErr := errors.New("domain rejected it")
		if err := store.Update(ctx, p.ID, func(p *entity.Profile) error {
			return wantErr
		}); !errors.Is(err, wantErr) {
			t.Fatalf("expected the fn error back, got %v", err)
		}
		if p.Revision != 0 {
			t.Errorf("expected revision untouched on failure, got %d", p.Revision)
		}
	})
}

func TestProfileStoreReplace(t *testing.T) {
	ctx := context.Background()
	store := NewProfileStore(NewMemorySnapshotStore(), model.NewCodec(), discardLogger())

	p := newProfile("Alex")
	if err := store.Create(ctx, p); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	incoming := newProfile("Imported")
	incoming.ID = p.ID
	if err := store.Replace(ctx, incoming); err != nil {
		t.Fatalf("replace failed: %v", err)
	}
	if incoming.Revision != 1 {
		t.Errorf("expected replace to count as one mutation, got revision %d", incoming.Revision)
	}

	_ = store.View(ctx, p.ID, func(loaded *entity.Profile) error {
		if loaded.Name != "Imported" {
			t.Errorf("expected the replaced aggregate, got %q", loaded.Name)
		}
		return nil
	})
}

func TestProfileStoreDelete(t *testing.T) {
	ctx := context.Background()
	snapshots := NewMemorySnapshotStore()
	store := NewProfileStore(snapshots, model.NewCodec(), discardLogger())

	p := newProfile("Alex")
	if err := store.Create(ctx, p); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := store.Delete(ctx, p.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := snapshots.Get(ctx, snapshotKeyPrefix+p.ID.String()); !errors.Is(err, domainerror.ErrSnapshotNotFound) {
		t.Fatalf("expected the snapshot to be gone, got %v", err)
	}
	err := store.View(ctx, p.ID, func(*entity.Profile) error { return nil })
	var profileErr *domainerror.ProfileError
	if !errors.As(err, &profileErr) || profileErr.Code != domainerror.ErrCodeProfileNotFound {
		t.Fatalf("expected not-found after delete, got %v", err)
	}
}

func TestProfileStoreDirtyRetry(t *testing.T) {
	ctx := context.Background()
	flaky := &flakySnapshotStore{SnapshotStore: NewMemorySnapshotStore()}
	store := NewProfileStore(flaky, model.NewCodec(), discardLogger())

	p := newProfile("Alex")
	if err := store.Create(ctx, p); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// The backend goes away; the mutation still applies in memory.
	flaky.failing = true
	if err := store.Update(ctx, p.ID, func(p *entity.Profile) error {
		p.Name = "Alexandra"
		return nil
	}); err != nil {
		t.Fatalf("update must not surface flush failures: %v", err)
	}
	_ = store.View(ctx, p.ID, func(loaded *entity.Profile) error {
		if loaded.Name != "Alexandra" {
			t.Error("in-memory state must stay authoritative during outage")
		}
		return nil
	})

	// The backend recovers; the next mutation flushes the dirty aggregate.
	flaky.failing = false
	if err := store.Update(ctx, p.ID, func(p *entity.Profile) error {
		p.Name = "Sasha"
		return nil
	}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	restored := NewProfileStore(flaky.SnapshotStore, model.NewCodec(), discardLogger())
	err := restored.View(ctx, p.ID, func(loaded *entity.Profile) error {
		if loaded.Name != "Sasha" {
			t.Errorf("expected the retried flush to land, got %q", loaded.Name)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("view failed: %v", err)
	}
}
