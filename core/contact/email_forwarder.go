package contact

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/mail"

	"github.com/dmitrymomot/portfolio/core/email"
)

//go:embed templates/*.html
var templatesFS embed.FS

var messageTemplate = template.Must(template.ParseFS(templatesFS, "templates/message.html"))

// EmailForwarder sends each message to the site owner. Reply-To is the visitor.
type EmailForwarder struct {
	sender    email.EmailSender
	recipient string
	prefix    string
}

// NewEmailForwarder returns a forwarder that mails recipient through sender.
func NewEmailForwarder(sender email.EmailSender, recipient string) (*EmailForwarder, error) {
	if sender == nil {
		return nil, fmt.Errorf("%w: email sender is required", ErrInvalidConfig)
	}
	if _, err := mail.ParseAddress(recipient); err != nil {
		return nil, fmt.Errorf("%w: recipient must be a valid email address", ErrInvalidConfig)
	}
	return &EmailForwarder{sender: sender, recipient: recipient, prefix: "[Portfolio] "}, nil
}

func (f *EmailForwarder) Forward(ctx context.Context, rec Record) error {
	var body bytes.Buffer
	if err := messageTemplate.Execute(&body, rec); err != nil {
		return fmt.Errorf("render message: %w", err)
	}

	return f.sender.SendEmail(ctx, email.SendEmailParams{
		SendTo:   f.recipient,
		ReplyTo:  rec.Message.Email,
		Subject:  f.prefix + rec.Message.Subject,
		BodyHTML: body.String(),
		BodyText: rec.Message.Message,
		Tag:      "contact",
	})
}
