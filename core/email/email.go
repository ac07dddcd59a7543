package email

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
)

// EmailSender delivers a single message.
type EmailSender interface {
	SendEmail(ctx context.Context, params SendEmailParams) error
}

// SendEmailParams is the content of one outgoing message.
type SendEmailParams struct {
	SendTo   string
	ReplyTo  string
	Subject  string
	BodyHTML string
	BodyText string
	Tag      string
}

// Validate checks that the recipient, subject and at least one body are set.
func (p SendEmailParams) Validate() error {
	if strings.TrimSpace(p.SendTo) == "" {
		return fmt.Errorf("%w: send to is required", ErrInvalidParams)
	}
	if _, err := mail.ParseAddress(p.SendTo); err != nil {
		return fmt.Errorf("%w: send to: %v", ErrInvalidParams, err)
	}
	if p.ReplyTo != "" {
		if _, err := mail.ParseAddress(p.ReplyTo); err != nil {
			return fmt.Errorf("%w: reply to: %v", ErrInvalidParams, err)
		}
	}
	if strings.TrimSpace(p.Subject) == "" {
		return fmt.Errorf("%w: subject is required", ErrInvalidParams)
	}
	if strings.TrimSpace(p.BodyHTML) == "" && strings.TrimSpace(p.BodyText) == "" {
		return fmt.Errorf("%w: body is required", ErrInvalidParams)
	}
	return nil
}
