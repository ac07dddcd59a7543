// Package logger builds the application's slog.Logger and provides attribute
// helpers for consistent structured logs.
//
//	import "github.com/dmitrymomot/portfolio/core/logger"
//
//	// Development: text, debug level
//	log := logger.New(logger.WithDevelopment("portfolio"))
//
//	// Production: JSON, info level
//	log := logger.New(
//		logger.WithProduction("portfolio"),
//		logger.WithContextValue("request_id", requestIDKey{}),
//	)
//
//	// From APP_ENV, LOG_LEVEL and LOG_FORMAT
//	var cfg logger.Config
//	config.MustLoad(&cfg)
//	log := logger.FromConfig(cfg)
//
// Attribute helpers return an empty slog.Attr for empty input, so they can be
// passed unconditionally:
//
//	log.WarnContext(ctx, "preference not persisted",
//		logger.Component("preference"),
//		logger.Locale(next),
//		logger.Error(err),
//	)
//
// Extractors added with WithContextValue or WithContextExtractors run on
// every *Context call and append request-scoped attributes such as the
// request ID.
package logger
