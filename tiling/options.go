package tiling

import "log/slog"

// Config is the resolved configuration of an expansion.
type Config struct {
	// MaxFaces caps the face count, root included. Zero or less means no cap.
	MaxFaces int
	Logger   *slog.Logger
}

// Option customizes an expansion.
type Option func(*Config)

// WithMaxFaces stops the expansion once n faces are recorded.
func WithMaxFaces(n int) Option {
	return func(c *Config) {
		c.MaxFaces = n
	}
}

// WithLogger routes diagnostics to l. A nil logger means slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}

func newConfig(opts []Option) Config {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return cfg
}
