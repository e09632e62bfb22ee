package linereader

import "github.com/bustyanimebabesdotcom/safeinput/pkg/diag"

// config holds reader configuration.
type config struct {
	reporter diag.Reporter
}

// Option configures a Reader.
type Option func(*config)

// WithReporter sets where overrun diagnostics are sent.
//
// Default: diag.Stderr()
func WithReporter(r diag.Reporter) Option {
	return func(c *config) {
		c.reporter = r
	}
}
