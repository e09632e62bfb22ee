package safeinput

import (
	"log/slog"

	"github.com/bustyanimebabesdotcom/safeinput/pkg/diag"
)

// config holds scanner configuration.
type config struct {
	reporter diag.Reporter
}

// Option configures a Scanner.
type Option func(*config)

// WithReporter sets where diagnostics are sent.
//
// Default: diag.Stderr()
func WithReporter(r diag.Reporter) Option {
	return func(c *config) {
		c.reporter = r
	}
}

// WithLogger sends diagnostics to logger as warn-level records.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.reporter = diag.NewSlog(logger)
	}
}
