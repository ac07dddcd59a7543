package smtp_test

import (
	"bufio"
	"context"
	"net"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/portfolio/core/email"
	"github.com/dmitrymomot/portfolio/integration/email/smtp"
)

var validConfig = smtp.Config{
	Host:        "smtp.example.com",
	Port:        587,
	Username:    "user@example.com",
	Password:    "password",
	TLSMode:     "starttls",
	SenderEmail: "sender@example.com",
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*smtp.Config)
		errMsg string
	}{
		{"empty host", func(c *smtp.Config) { c.Host = "" }, "Host is required"},
		{"zero port", func(c *smtp.Config) { c.Port = 0 }, "Port must be between 1 and 65535"},
		{"port too high", func(c *smtp.Config) { c.Port = 70000 }, "Port must be between 1 and 65535"},
		{"empty username", func(c *smtp.Config) { c.Username = "" }, "Username is required"},
		{"empty password", func(c *smtp.Config) { c.Password = "" }, "Password is required"},
		{"invalid tls mode", func(c *smtp.Config) { c.TLSMode = "ssl" }, "TLSMode must be starttls, tls, or plain"},
		{"invalid sender", func(c *smtp.Config) { c.SenderEmail = "not-an-email" }, "SenderEmail must be a valid email address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig
			tt.mutate(&cfg)
			client, err := smtp.New(cfg)
			assert.Nil(t, client)
			assert.ErrorIs(t, err, email.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}

	for _, mode := range []string{"starttls", "tls", "plain"} {
		cfg := validConfig
		cfg.TLSMode = mode
		_, err := smtp.New(cfg)
		assert.NoError(t, err, mode)
	}

	assert.Panics(t, func() { smtp.MustNewClient(smtp.Config{}) })
	var _ email.EmailSender = smtp.MustNewClient(validConfig)
}

func TestClient_SendEmail_InvalidParams(t *testing.T) {
	t.Parallel()

	client := smtp.MustNewClient(validConfig)
	err := client.SendEmail(context.Background(), email.SendEmailParams{SendTo: "invalid"})
	assert.ErrorIs(t, err, email.ErrInvalidParams)
}

func TestClient_SendEmail_ConnectionError(t *testing.T) {
	t.Parallel()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	cfg := validConfig
	cfg.Host = "127.0.0.1"
	cfg.Port = port
	cfg.TLSMode = "plain"

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err = smtp.MustNewClient(cfg).SendEmail(ctx, email.SendEmailParams{
		SendTo:   "owner@example.com",
		Subject:  "Test",
		BodyHTML: "<p>Test</p>",
	})
	assert.ErrorIs(t, err, email.ErrFailedToSendEmail)
	assert.Contains(t, err.Error(), "connect to SMTP server")
}

// fakeServer accepts one SMTP session and returns the DATA payload.
func fakeServer(t *testing.T) (port int, received <-chan string) {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = listener.Close() })

	out := make(chan string, 1)
	go func() {
		conn, err := listener.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		r := textproto.NewReader(bufio.NewReader(conn))
		w := textproto.NewWriter(bufio.NewWriter(conn))
		_ = w.PrintfLine("220 localhost ESMTP")

		for {
			line, err := r.ReadLine()
			if err != nil {
				return
			}
			switch cmd := strings.ToUpper(strings.SplitN(line, " ", 2)[0]); cmd {
			case "EHLO":
				_ = w.PrintfLine("250-localhost")
				_ = w.PrintfLine("250 AUTH PLAIN")
			case "AUTH":
				_ = w.PrintfLine("235 2.7.0 Authentication successful")
			case "MAIL", "RCPT":
				_ = w.PrintfLine("250 OK")
			case "DATA":
				_ = w.PrintfLine("354 Go ahead")
				data, err := r.ReadDotBytes()
				if err != nil {
					return
				}
				out <- string(data)
				_ = w.PrintfLine("250 Queued")
			case "QUIT":
				_ = w.PrintfLine("221 Bye")
				return
			default:
				_ = w.PrintfLine("502 Not implemented")
			}
		}
	}()

	return listener.Addr().(*net.TCPAddr).Port, out
}

func TestClient_SendEmail_Plain(t *testing.T) {
	t.Parallel()

	port, received := fakeServer(t)

	cfg := validConfig
	cfg.Host = "127.0.0.1"
	cfg.Port = port
	cfg.TLSMode = "plain"

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := smtp.MustNewClient(cfg).SendEmail(ctx, email.SendEmailParams{
		SendTo:   "owner@example.com",
		ReplyTo:  "visitor@example.com",
		Subject:  "Bonjour",
		BodyHTML: "<p>Hello</p>",
		Tag:      "contact",
	})
	require.NoError(t, err)

	select {
	case msg := <-received:
		assert.Contains(t, msg, "From: sender@example.com")
		assert.Contains(t, msg, "To: owner@example.com")
		assert.Contains(t, msg, "Reply-To: visitor@example.com")
		assert.Contains(t, msg, "Subject: Bonjour")
		assert.Contains(t, msg, "<p>Hello</p>")
	case <-time.After(5 * time.Second):
		t.Fatal("message not received")
	}
}
