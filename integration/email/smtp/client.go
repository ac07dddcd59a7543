package smtp

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"mime"
	"net/mail"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/portfolio/core/email"
)

// Client implements email.EmailSender over SMTP. It is safe for concurrent use.
type Client struct {
	config Config
	auth   smtp.Auth
	now    func() time.Time
}

// New validates cfg and returns an SMTP sender.
func New(cfg Config) (*Client, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("%w: Host is required", email.ErrInvalidConfig)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("%w: Port must be between 1 and 65535", email.ErrInvalidConfig)
	}
	if cfg.Username == "" {
		return nil, fmt.Errorf("%w: Username is required", email.ErrInvalidConfig)
	}
	if cfg.Password == "" {
		return nil, fmt.Errorf("%w: Password is required", email.ErrInvalidConfig)
	}
	switch cfg.TLSMode {
	case "starttls", "tls", "plain":
	default:
		return nil, fmt.Errorf("%w: TLSMode must be starttls, tls, or plain", email.ErrInvalidConfig)
	}
	if _, err := mail.ParseAddress(cfg.SenderEmail); err != nil {
		return nil, fmt.Errorf("%w: SenderEmail must be a valid email address", email.ErrInvalidConfig)
	}

	return &Client{
		config: cfg,
		auth:   smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host),
		now:    time.Now,
	}, nil
}

// MustNewClient is New that panics on invalid config.
func MustNewClient(cfg Config) *Client {
	client, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return client
}

// SendEmail implements email.EmailSender. The context bounds the dial and,
// through the connection deadline, the whole transaction.
func (c *Client) SendEmail(ctx context.Context, params email.SendEmailParams) error {
	if err := ctx.Err(); err != nil {
		return errors.Join(email.ErrFailedToSendEmail, err)
	}
	if err := params.Validate(); err != nil {
		return err
	}

	if err := c.send(ctx, params.SendTo, c.buildMessage(params)); err != nil {
		return errors.Join(email.ErrFailedToSendEmail, err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, to string, message []byte) error {
	addr := net.JoinHostPort(c.config.Host, strconv.Itoa(c.config.Port))

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("connect to SMTP server: %w", err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	tlsConfig := &tls.Config{ServerName: c.config.Host}
	if c.config.TLSMode == "tls" {
		conn = tls.Client(conn, tlsConfig)
	}

	client, err := smtp.NewClient(conn, c.config.Host)
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("create SMTP client: %w", err)
	}
	defer func() { _ = client.Close() }()

	if c.config.TLSMode == "starttls" {
		if err := client.StartTLS(tlsConfig); err != nil {
			return fmt.Errorf("start TLS: %w", err)
		}
	}

	if err := client.Auth(c.auth); err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}
	if err := client.Mail(c.config.SenderEmail); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("open data writer: %w", err)
	}
	if _, err := w.Write(message); err != nil {
		_ = w.Close()
		return fmt.Errorf("write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close data writer: %w", err)
	}

	// Some servers drop the connection right after DATA; the message is already accepted.
	_ = client.Quit()
	return nil
}

// buildMessage renders the MIME message with headers in a fixed order.
func (c *Client) buildMessage(params email.SendEmailParams) []byte {
	now := c.now()

	contentType := `text/html; charset="UTF-8"`
	body := params.BodyHTML
	if body == "" {
		contentType = `text/plain; charset="UTF-8"`
		body = params.BodyText
	}

	headers := [][2]string{
		{"From", c.config.SenderEmail},
		{"To", params.SendTo},
	}
	if params.ReplyTo != "" {
		headers = append(headers, [2]string{"Reply-To", params.ReplyTo})
	}
	headers = append(headers,
		[2]string{"Subject", mimeHeader(params.Subject)},
		[2]string{"Date", now.Format(time.RFC1123Z)},
		[2]string{"Message-ID", fmt.Sprintf("<%d.%s@%s>", now.UnixNano(), strings.ReplaceAll(params.Tag, " ", "_"), c.config.Host)},
		[2]string{"MIME-Version", "1.0"},
		[2]string{"Content-Type", contentType},
	)

	var b strings.Builder
	for _, h := range headers {
		b.WriteString(h[0])
		b.WriteString(": ")
		b.WriteString(h[1])
		b.WriteString("\r\n")
	}
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}

// mimeHeader encodes non-ASCII header values, e.g. Arabic subjects.
func mimeHeader(s string) string {
	return mime.QEncoding.Encode("UTF-8", s)
}
