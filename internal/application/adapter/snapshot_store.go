// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/gap-tools/financial-tracker-backend/internal/domain/entity"
)

// SnapshotStore persists one serialized profile aggregate per key. Backends:
// a gorm snapshot table (local) or a redis document (cloud).
type SnapshotStore interface {
	// Put stores the payload under the key, replacing any previous document.
	Put(ctx context.Context, key string, payload []byte) error

	// Get returns the payload stored under the key.
	// Returns ErrSnapshotNotFound when no document exists.
	Get(ctx context.Context, key string) ([]byte, error)

	// Delete removes the document stored under the key, if any.
	Delete(ctx context.Context, key string) error
}

// ProfileCodec converts a profile aggregate to and from its canonical JSON
// document. Export/import and both snapshot backends share one codec so every
// persisted layout is identical.
type ProfileCodec interface {
	// Encode serializes the aggregate. Encoding the same aggregate twice
	// yields byte-identical output.
	Encode(profile *entity.Profile) ([]byte, error)

	// Decode parses a document and validates its invariants.
	// Returns ErrCorruptDocument when validation fails.
	Decode(payload []byte) (*entity.Profile, error)
}
