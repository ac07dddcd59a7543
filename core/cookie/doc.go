// Package cookie reads and writes the site's cookies with shared attributes
// and HMAC signing.
//
// Preference cookies (locale, theme) are stored as plain values; the visitor
// ID that keys per-visitor carousel state is signed so it cannot be forged:
//
//	manager, err := cookie.New([]string{secret}, cookie.WithPath("/portfolio-mui/"))
//	if err != nil {
//		return err
//	}
//
//	_ = manager.Set(w, "portfolio.locale", "fr")
//	_ = manager.SetSigned(w, "portfolio.visitor", visitorID)
//
//	id, err := manager.GetSigned(r, "portfolio.visitor")
//	if errors.Is(err, cookie.ErrInvalidSignature) {
//		// tampered or signed with a retired secret
//	}
//
// Several secrets can be configured (COOKIE_SECRETS="new,old"); the first one
// signs and all of them verify, so secrets can be rotated without logging
// everybody out.
package cookie
