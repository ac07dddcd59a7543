// Package postmark implements email.EmailSender with the Postmark API.
//
//	var cfg postmark.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//	sender := postmark.MustNewClient(cfg)
package postmark
