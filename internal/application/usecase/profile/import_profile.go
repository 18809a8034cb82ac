// Package profile contains profile lifecycle use cases.
package profile

import (
	"context"

	"github.com/google/uuid"

	"github.com/gap-tools/financial-tracker-backend/internal/application/adapter"
)

// ImportProfileInput represents the input for importing a profile document.
type ImportProfileInput struct {
	ProfileID uuid.UUID
	Payload   []byte
}

// ImportProfileOutput represents the output of a profile import.
type ImportProfileOutput struct {
	Profile *ProfileOutput
}

// ImportProfileUseCase handles profile import logic.
type ImportProfileUseCase struct {
	profileRepo adapter.ProfileRepository
	codec       adapter.ProfileCodec
}

// NewImportProfileUseCase creates a new ImportProfileUseCase instance.
func NewImportProfileUseCase(profileRepo adapter.ProfileRepository, codec adapter.ProfileCodec) *ImportProfileUseCase {
	return &ImportProfileUseCase{
		profileRepo: profileRepo,
		codec:       codec,
	}
}

// Execute fully replaces the in-memory aggregate with the decoded document.
// There is no merge. The current profile identity key is kept so the session
// and the persisted snapshot stay addressable.
func (uc *ImportProfileUseCase) Execute(ctx context.Context, input ImportProfileInput) (*ImportProfileOutput, error) {
	decoded, err := uc.codec.Decode(input.Payload)
	if err != nil {
		return nil, err
	}

	decoded.ID = input.ProfileID
	if err := uc.profileRepo.Replace(ctx, decoded); err != nil {
		return nil, err
	}

	return &ImportProfileOutput{Profile: ToProfileOutput(decoded)}, nil
}
