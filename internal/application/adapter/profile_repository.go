// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/gap-tools/financial-tracker-backend/internal/domain/entity"
)

// ProfileRepository owns the in-memory profile aggregates and serializes
// access to them. Mutations run inside Update so that validate-then-apply
// closures execute to completion before the next operation begins; the
// repository bumps the profile revision and write-through persists the
// aggregate after each applied mutation.
type ProfileRepository interface {
	// Create registers a new profile aggregate.
	Create(ctx context.Context, profile *entity.Profile) error

	// View runs fn against the profile without mutating it.
	// Returns ErrProfileNotFound when no profile exists for the ID.
	View(ctx context.Context, profileID uuid.UUID, fn func(*entity.Profile) error) error

	// Update runs fn against the profile. When fn returns an error the
	// mutation is considered not applied and nothing is persisted.
	Update(ctx context.Context, profileID uuid.UUID, fn func(*entity.Profile) error) error

	// Replace swaps the whole aggregate for the profile ID (import).
	Replace(ctx context.Context, profile *entity.Profile) error

	// Delete removes the profile and its persisted snapshot.
	Delete(ctx context.Context, profileID uuid.UUID) error
}
