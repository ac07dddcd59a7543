package postmark_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/portfolio/core/email"
	"github.com/dmitrymomot/portfolio/integration/email/postmark"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("valid config", func(t *testing.T) {
		client, err := postmark.New(postmark.Config{
			ServerToken: "server-token",
			SenderEmail: "noreply@example.com",
		})
		require.NoError(t, err)
		var _ email.EmailSender = client
	})

	t.Run("missing server token", func(t *testing.T) {
		_, err := postmark.New(postmark.Config{SenderEmail: "noreply@example.com"})
		assert.ErrorIs(t, err, email.ErrInvalidConfig)
		assert.Contains(t, err.Error(), "ServerToken is required")
	})

	t.Run("invalid sender", func(t *testing.T) {
		_, err := postmark.New(postmark.Config{ServerToken: "t", SenderEmail: "nope"})
		assert.ErrorIs(t, err, email.ErrInvalidConfig)
	})

	t.Run("must panics", func(t *testing.T) {
		assert.Panics(t, func() { postmark.MustNewClient(postmark.Config{}) })
	})
}

func TestSendEmail_InvalidParams(t *testing.T) {
	t.Parallel()

	client := postmark.MustNewClient(postmark.Config{
		ServerToken: "server-token",
		SenderEmail: "noreply@example.com",
	})
	err := client.SendEmail(context.Background(), email.SendEmailParams{})
	assert.ErrorIs(t, err, email.ErrInvalidParams)
}
