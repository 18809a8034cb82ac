// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// EmailAttachment represents a file attached to an outgoing email.
type EmailAttachment struct {
	Filename string
	Content  []byte
}

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To          string
	Subject     string
	HTML        string
	Text        string
	Attachments []EmailAttachment
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ProviderID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}
