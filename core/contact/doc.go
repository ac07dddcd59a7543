// Package contact handles the portfolio contact form.
//
// A submission is sanitized, validated, rate limited per client IP, archived
// as pending, forwarded exactly once and then marked delivered or failed.
// There is no automatic retry.
//
//	forwarder, _ := contact.NewFormEndpoint("https://formspree.io/f/xxxx")
//	svc, _ := contact.NewService(forwarder,
//		contact.WithStore(sqliteStore),
//		contact.WithLimiter(limiter),
//		contact.WithLogger(log),
//	)
//
//	rec, err := svc.Submit(clientip.WithIP(ctx, ip), "en", msg)
//	switch {
//	case errors.Is(err, contact.ErrInvalidMessage):
//	case errors.Is(err, contact.ErrRateLimited):
//	case errors.Is(err, contact.ErrDeliveryFailed):
//	}
package contact
