// Package middleware provides the gin middleware stack of the portfolio site.
//
// Every middleware comes in two forms: a constructor with defaults and a
// WithConfig variant. Request-scoped values (request ID, client IP, visitor
// ID, preferences) are stored in the request context so that packages that
// do not know about gin can read them.
//
//	r := gin.New()
//	r.Use(
//		middleware.RequestID(),
//		middleware.ClientIP(),
//		middleware.Logging(log),
//		middleware.SecurityHeaders(),
//		middleware.BodyLimit(),
//		middleware.Visitor(cookies),
//		middleware.Preferences(middleware.PreferencesConfig{
//			Translations: translations,
//			Cookies:      cookies,
//		}),
//	)
//
// Logging should come after RequestID and ClientIP so the log record carries
// both values.
package middleware
