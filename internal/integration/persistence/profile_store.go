package persistence

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/gap-tools/financial-tracker-backend/internal/application/adapter"
	"github.com/gap-tools/financial-tracker-backend/internal/domain/entity"
	domainerror "github.com/gap-tools/financial-tracker-backend/internal/domain/error"
)

const snapshotKeyPrefix = "profile:"

// ProfileStore keeps profile aggregates in memory as the authoritative copy
// and write-through persists each applied mutation to the snapshot store.
// A failed flush marks the profile dirty and is retried on the next mutation,
// so the in-memory state never waits on the backend.
type ProfileStore struct {
	mu        sync.Mutex
	profiles  map[uuid.UUID]*entity.Profile
	dirty     map[uuid.UUID]bool
	snapshots adapter.SnapshotStore
	codec     adapter.ProfileCodec
	logger    *slog.Logger
}

// NewProfileStore creates the in-memory profile repository backed by the
// given snapshot store and codec.
func NewProfileStore(snapshots adapter.SnapshotStore, codec adapter.ProfileCodec, logger *slog.Logger) *ProfileStore {
	return &ProfileStore{
		profiles:  make(map[uuid.UUID]*entity.Profile),
		dirty:     make(map[uuid.UUID]bool),
		snapshots: snapshots,
		codec:     codec,
		logger:    logger,
	}
}

// Create registers a new profile aggregate and persists its first snapshot.
func (s *ProfileStore) Create(ctx context.Context, profile *entity.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.profiles[profile.ID]; ok {
		return domainerror.NewProfileError(
			domainerror.ErrCodeProfileAlreadyExists,
			"profile already exists: "+profile.ID.String(),
			nil,
		)
	}
	s.profiles[profile.ID] = profile
	s.flush(ctx, profile)
	return nil
}

// View runs fn against the profile without persisting afterwards. The lock is
// held for the duration of fn, which keeps reads consistent with mutations.
func (s *ProfileStore) View(ctx context.Context, profileID uuid.UUID, fn func(*entity.Profile) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, err := s.load(ctx, profileID)
	if err != nil {
		return err
	}
	return fn(profile)
}

// Update runs fn against the profile. When fn succeeds the revision is bumped
// and the aggregate is write-through persisted; when fn fails nothing is
// persisted and the error is returned as-is.
func (s *ProfileStore) Update(ctx context.Context, profileID uuid.UUID, fn func(*entity.Profile) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, err := s.load(ctx, profileID)
	if err != nil {
		return err
	}
	if err := fn(profile); err != nil {
		return err
	}
	profile.Touch()
	s.flush(ctx, profile)
	return nil
}

// Replace swaps the whole aggregate for the profile ID. The incoming
// aggregate keeps its decoded timestamps; only the revision is bumped so a
// replace counts as a mutation without disturbing the document contents.
func (s *ProfileStore) Replace(ctx context.Context, profile *entity.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile.Revision++
	s.profiles[profile.ID] = profile
	s.flush(ctx, profile)
	return nil
}

// Delete removes the profile and its persisted snapshot.
func (s *ProfileStore) Delete(ctx context.Context, profileID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.load(ctx, profileID); err != nil {
		return err
	}
	delete(s.profiles, profileID)
	delete(s.dirty, profileID)
	if err := s.snapshots.Delete(ctx, snapshotKeyPrefix+profileID.String()); err != nil {
		return err
	}
	return nil
}

// load returns the cached aggregate, lazily restoring it from the snapshot
// store on first access. Callers hold s.mu.
func (s *ProfileStore) load(ctx context.Context, profileID uuid.UUID) (*entity.Profile, error) {
	if profile, ok := s.profiles[profileID]; ok {
		return profile, nil
	}

	payload, err := s.snapshots.Get(ctx, snapshotKeyPrefix+profileID.String())
	if err != nil {
		if errors.Is(err, domainerror.ErrSnapshotNotFound) {
			return nil, domainerror.NewProfileError(
				domainerror.ErrCodeProfileNotFound,
				"profile not found: "+profileID.String(),
				domainerror.ErrProfileNotFound,
			)
		}
		return nil, err
	}
	profile, err := s.codec.Decode(payload)
	if err != nil {
		return nil, err
	}
	s.profiles[profile.ID] = profile
	return profile, nil
}

// flush write-through persists the aggregate. On failure the profile is
// marked dirty and the flush is retried on the next mutation; the in-memory
// state stays authoritative either way. Callers hold s.mu.
func (s *ProfileStore) flush(ctx context.Context, profile *entity.Profile) {
	payload, err := s.codec.Encode(profile)
	if err != nil {
		s.dirty[profile.ID] = true
		s.logger.Warn("profile snapshot encode failed", "profile_id", profile.ID, "error", err)
		return
	}
	if err := s.snapshots.Put(ctx, snapshotKeyPrefix+profile.ID.String(), payload); err != nil {
		s.dirty[profile.ID] = true
		s.logger.Warn("profile snapshot write failed", "profile_id", profile.ID, "error", err)
		return
	}
	delete(s.dirty, profile.ID)

	// Retry any other profile whose previous flush failed.
	for id := range s.dirty {
		stale, ok := s.profiles[id]
		if !ok {
			delete(s.dirty, id)
			continue
		}
		stalePayload, err := s.codec.Encode(stale)
		if err != nil {
			continue
		}
		if err := s.snapshots.Put(ctx, snapshotKeyPrefix+id.String(), stalePayload); err != nil {
			continue
		}
		delete(s.dirty, id)
	}
}
