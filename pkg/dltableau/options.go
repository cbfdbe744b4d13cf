package dltableau

import (
	"time"

	"go.uber.org/zap"
)

// defaultTimeout is the wall-clock budget build_tableau was hard-coded
// to in the original calculus. Option overrides this; the default never
// changes on its own.
const defaultTimeout = 12 * time.Second

// Option configures a Tableau at construction time.
type Option func(*tableauConfig)

type tableauConfig struct {
	timeout time.Duration
	logger  *zap.Logger
}

func defaultConfig() *tableauConfig {
	return &tableauConfig{
		timeout: defaultTimeout,
		logger:  zap.NewNop(),
	}
}

// WithTimeout overrides the search driver's wall-clock budget.
func WithTimeout(d time.Duration) Option {
	return func(c *tableauConfig) { c.timeout = d }
}

// WithLogger installs a structured logger. A nil logger is treated as
// zap.NewNop() — logging must never be load-bearing for correctness.
func WithLogger(logger *zap.Logger) Option {
	return func(c *tableauConfig) {
		if logger == nil {
			logger = zap.NewNop()
		}
		c.logger = logger
	}
}
