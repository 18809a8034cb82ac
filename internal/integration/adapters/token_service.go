// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/gap-tools/financial-tracker-backend/internal/application/adapter"
	domainerror "github.com/gap-tools/financial-tracker-backend/internal/domain/error"
)

// SessionClaims represents the custom claims for session tokens.
type SessionClaims struct {
	ProfileID string `json:"profile_id"`
	jwt.RegisteredClaims
}

// tokenService implements the adapter.TokenService interface.
type tokenService struct {
	secret   []byte
	duration time.Duration
}

// NewTokenService creates a new session token service instance.
func NewTokenService(secret string, duration time.Duration) adapter.TokenService {
	return &tokenService{
		secret:   []byte(secret),
		duration: duration,
	}
}

// GenerateSessionToken issues a signed HS256 token carrying the profile identity.
func (s *tokenService) GenerateSessionToken(_ context.Context, profileID uuid.UUID) (string, error) {
	now := time.Now().UTC()
	claims := SessionClaims{
		ProfileID: profileID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "financial-tracker",
			Subject:   profileID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// ValidateSessionToken validates a session token and returns its claims.
func (s *tokenService) ValidateSessionToken(_ context.Context, tokenString string) (*adapter.SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, domainerror.NewSessionError(
			domainerror.ErrCodeInvalidToken,
			"failed to parse session token",
			err,
		)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, domainerror.NewSessionError(
			domainerror.ErrCodeInvalidToken,
			"invalid session token claims",
			nil,
		)
	}

	profileID, err := uuid.Parse(claims.ProfileID)
	if err != nil {
		return nil, domainerror.NewSessionError(
			domainerror.ErrCodeInvalidToken,
			"invalid profile ID in session token",
			err,
		)
	}

	return &adapter.SessionClaims{
		ProfileID: profileID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
