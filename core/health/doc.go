// Package health provides gin handlers for service health monitoring.
//
// Handlers:
//   - Liveness: Process is running (no dependency checks)
//   - Readiness: All named dependencies are available
//   - NoContent: Returns 204 for minimal overhead
//
// Usage:
//
//	r.GET("/health/live", health.Liveness)
//	r.GET("/health/ready", health.Readiness(logger, 2*time.Second, map[string]health.Check{
//		"sqlite": sqlite.Healthcheck(db),
//		"redis":  redis.Healthcheck(client),
//	}))
//	r.GET("/ping", health.NoContent)
//
// Dependency checks must follow func(context.Context) error signature:
//
//	func checkDB(ctx context.Context) error {
//		return db.PingContext(ctx)
//	}
package health
