// Package profile contains profile lifecycle use cases.
package profile

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/gap-tools/financial-tracker-backend/internal/application/adapter"
	domainerror "github.com/gap-tools/financial-tracker-backend/internal/domain/error"
)

// EmailBackupInput represents the input for emailing a backup.
type EmailBackupInput struct {
	ProfileID uuid.UUID
	To        string
}

// EmailBackupOutput represents the output of emailing a backup.
type EmailBackupOutput struct {
	Filename   string
	ProviderID string
}

// EmailBackupUseCase sends the exported document to the user as an email
// attachment.
type EmailBackupUseCase struct {
	exportUseCase *ExportProfileUseCase
	emailSender   adapter.EmailSender
}

// NewEmailBackupUseCase creates a new EmailBackupUseCase instance.
func NewEmailBackupUseCase(exportUseCase *ExportProfileUseCase, emailSender adapter.EmailSender) *EmailBackupUseCase {
	return &EmailBackupUseCase{
		exportUseCase: exportUseCase,
		emailSender:   emailSender,
	}
}

// Execute exports the aggregate and mails it as a JSON attachment.
func (uc *EmailBackupUseCase) Execute(ctx context.Context, input EmailBackupInput) (*EmailBackupOutput, error) {
	to := strings.TrimSpace(input.To)
	if !strings.Contains(to, "@") {
		return nil, domainerror.NewProfileError(
			domainerror.ErrCodeMissingProfileFields,
			"a valid recipient address is required",
			nil,
		)
	}

	export, err := uc.exportUseCase.Execute(ctx, ExportProfileInput{ProfileID: input.ProfileID})
	if err != nil {
		return nil, err
	}

	result, err := uc.emailSender.Send(ctx, adapter.SendEmailInput{
		To:      to,
		Subject: "Your financial tracker backup",
		Text:    fmt.Sprintf("Attached is your ledger backup %s. Import it from the profile screen to restore.", export.Filename),
		Attachments: []adapter.EmailAttachment{
			{Filename: export.Filename, Content: export.Payload},
		},
	})
	if err != nil {
		return nil, err
	}

	return &EmailBackupOutput{
		Filename:   export.Filename,
		ProviderID: result.ProviderID,
	}, nil
}
