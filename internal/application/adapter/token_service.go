// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SessionClaims represents the claims contained in a session token.
type SessionClaims struct {
	ProfileID uuid.UUID
	ExpiresAt time.Time
}

// TokenService defines the interface for session token operations. A session
// token carries the profile identity that keys the persisted document.
type TokenService interface {
	// GenerateSessionToken issues a signed session token for the profile.
	GenerateSessionToken(ctx context.Context, profileID uuid.UUID) (string, error)

	// ValidateSessionToken validates a session token and returns its claims.
	ValidateSessionToken(ctx context.Context, token string) (*SessionClaims, error)
}
