package health

import (
	"context"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/portfolio/core/logger"
)

// Check reports whether a dependency is ready.
type Check func(ctx context.Context) error

const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)

// Report is the readiness response body.
type Report struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// Run executes every check concurrently under timeout. Each entry of the
// report is "ok" or the check's error message.
func Run(ctx context.Context, timeout time.Duration, checks map[string]Check) (Report, bool) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)

	results := make([]error, len(names))
	var g errgroup.Group
	for i, name := range names {
		check := checks[name]
		g.Go(func() error {
			results[i] = check(ctx)
			return nil
		})
	}
	_ = g.Wait()

	report := Report{Status: StatusOK, Checks: make(map[string]string, len(names))}
	for i, name := range names {
		if err := results[i]; err != nil {
			report.Status = StatusUnavailable
			report.Checks[name] = err.Error()
			continue
		}
		report.Checks[name] = StatusOK
	}
	return report, report.Status == StatusOK
}

// Readiness verifies all service dependencies are functioning.
// Returns 200 when every check passes, 503 Service Unavailable otherwise.
func Readiness(log *slog.Logger, timeout time.Duration, checks map[string]Check) gin.HandlerFunc {
	if log == nil {
		log = logger.Discard()
	}
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		report, ok := Run(ctx, timeout, checks)
		if !ok {
			for name, result := range report.Checks {
				if result != StatusOK {
					log.WarnContext(ctx, "readiness check failed",
						logger.Component("health"),
						logger.Key(name),
						slog.String("error", result))
				}
			}
			c.JSON(http.StatusServiceUnavailable, report)
			return
		}
		c.JSON(http.StatusOK, report)
	}
}
