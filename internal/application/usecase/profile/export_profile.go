// Package profile contains profile lifecycle use cases.
package profile

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gap-tools/financial-tracker-backend/internal/application/adapter"
	"github.com/gap-tools/financial-tracker-backend/internal/domain/entity"
)

// ExportProfileInput represents the input for exporting a profile.
type ExportProfileInput struct {
	ProfileID uuid.UUID
}

// ExportProfileOutput carries the serialized aggregate and a suggested
// filename for the download dialog.
type ExportProfileOutput struct {
	Filename string
	Payload  []byte
}

// ExportProfileUseCase handles profile export logic.
type ExportProfileUseCase struct {
	profileRepo adapter.ProfileRepository
	codec       adapter.ProfileCodec
}

// NewExportProfileUseCase creates a new ExportProfileUseCase instance.
func NewExportProfileUseCase(profileRepo adapter.ProfileRepository, codec adapter.ProfileCodec) *ExportProfileUseCase {
	return &ExportProfileUseCase{
		profileRepo: profileRepo,
		codec:       codec,
	}
}

// Execute serializes the full aggregate into one JSON document. The layout is
// the same one the snapshot stores persist, so an export can always be
// imported back.
func (uc *ExportProfileUseCase) Execute(ctx context.Context, input ExportProfileInput) (*ExportProfileOutput, error) {
	var output ExportProfileOutput
	err := uc.profileRepo.View(ctx, input.ProfileID, func(p *entity.Profile) error {
		payload, err := uc.codec.Encode(p)
		if err != nil {
			return err
		}
		output.Payload = payload
		output.Filename = exportFilename(p.Name)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &output, nil
}

// exportFilename derives a filesystem-friendly default filename.
func exportFilename(profileName string) string {
	slug := strings.ToLower(strings.TrimSpace(profileName))
	slug = strings.ReplaceAll(slug, " ", "-")
	if slug == "" {
		slug = "profile"
	}
	return fmt.Sprintf("%s-export-%s.json", slug, time.Now().UTC().Format("2006-01-02"))
}
