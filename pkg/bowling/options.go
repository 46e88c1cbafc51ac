package bowling

import "github.com/bft-labs/tenpin/pkg/log"

// Option configures optional behavior of a Game.
type Option func(*options)

type options struct {
	logger log.Logger
}

func defaultOptions() options {
	return options{
		logger: log.NewNoopLogger(),
	}
}

// WithLogger sets a logger for roll and completion events.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
