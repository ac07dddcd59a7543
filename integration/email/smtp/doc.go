// Package smtp implements email.EmailSender over plain SMTP with STARTTLS,
// implicit TLS or unencrypted connections.
//
//	var cfg smtp.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//	sender, err := smtp.New(cfg)
//
// Contact messages carry the visitor address in Reply-To so the owner can
// answer directly.
package smtp
