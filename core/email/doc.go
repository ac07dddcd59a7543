// Package email defines the EmailSender interface used to deliver contact
// messages, plus a development sender that writes messages to disk.
//
// Production senders live in integration/email/smtp and
// integration/email/postmark.
//
//	sender := email.NewDevSender("./tmp/emails")
//	err := sender.SendEmail(ctx, email.SendEmailParams{
//		SendTo:   "owner@example.com",
//		ReplyTo:  "visitor@example.com",
//		Subject:  "New message from the portfolio",
//		BodyHTML: html,
//	})
package email
