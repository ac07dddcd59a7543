package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/portfolio/core/config"
	"github.com/dmitrymomot/portfolio/core/contact"
	"github.com/dmitrymomot/portfolio/core/email"
	"github.com/dmitrymomot/portfolio/core/logger"
	"github.com/dmitrymomot/portfolio/integration/email/postmark"
	"github.com/dmitrymomot/portfolio/integration/email/smtp"
	"github.com/dmitrymomot/portfolio/middleware"
	"github.com/dmitrymomot/portfolio/web"
)

// mailerConfig selects how contact messages leave the site.
type mailerConfig struct {
	// Mailer is one of auto, endpoint, smtp, postmark or dev. auto picks the
	// form endpoint when CONTACT_FORM_ENDPOINT is set, else dev.
	Mailer string `env:"CONTACT_MAILER" envDefault:"auto"`
	DevDir string `env:"DEV_MAIL_DIR" envDefault:"tmp/mail"`
}

func newLogger() (*slog.Logger, error) {
	var cfg logger.Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	return logger.FromConfig(cfg, logger.WithContextExtractors(middleware.RequestIDExtractor)), nil
}

// newForwarder builds the contact forwarder for the configured mailer.
func newForwarder(ctx context.Context, siteCfg web.Config, log *slog.Logger) (contact.Forwarder, error) {
	var cfg mailerConfig
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}

	mailer := strings.ToLower(strings.TrimSpace(cfg.Mailer))
	if mailer == "auto" {
		mailer = "dev"
		if siteCfg.ContactFormEndpoint != "" {
			mailer = "endpoint"
		}
	}

	var sender email.EmailSender
	switch mailer {
	case "endpoint":
		log.InfoContext(ctx, "contact messages go to the form endpoint", logger.Component("contact"))
		return contact.NewFormEndpoint(siteCfg.ContactFormEndpoint)
	case "smtp":
		var smtpCfg smtp.Config
		if err := config.Load(&smtpCfg); err != nil {
			return nil, err
		}
		client, err := smtp.New(smtpCfg)
		if err != nil {
			return nil, err
		}
		sender = client
	case "postmark":
		var pmCfg postmark.Config
		if err := config.Load(&pmCfg); err != nil {
			return nil, err
		}
		client, err := postmark.New(pmCfg)
		if err != nil {
			return nil, err
		}
		sender = client
	case "dev":
		sender = email.NewDevSender(cfg.DevDir)
	default:
		return nil, fmt.Errorf("unknown contact mailer %q", cfg.Mailer)
	}

	recipient := siteCfg.ContactRecipient
	if recipient == "" && mailer == "dev" {
		recipient = "portfolio@localhost"
	}

	log.InfoContext(ctx, "contact messages go by email",
		logger.Component("contact"),
		slog.String("mailer", mailer))
	return contact.NewEmailForwarder(sender, recipient)
}
