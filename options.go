package esresp

import (
	"github.com/gostratum/core/logx"
)

// Option mutates the configuration before a Parsers is constructed.
type Option func(*Config)

// WithConfig replaces the configuration struct. Typically used when loading
// configuration from configx/fx.
func WithConfig(cfg Config) Option {
	return func(c *Config) {
		*c = cfg
	}
}

// WithLogger sets the logger used for parse-time debug events.
func WithLogger(l logx.Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}

// WithClassifier replaces the success type's own classification policy for
// every parse performed with this configuration.
func WithClassifier(fn ClassifierFunc) Option {
	return func(c *Config) {
		c.Classifier = fn
	}
}

// WithMaxBodyBytes caps how much of a streamed body may be buffered.
func WithMaxBodyBytes(n int64) Option {
	return func(c *Config) {
		c.MaxBodyBytes = n
	}
}

// WithStrict toggles rejection of unknown fields in success payloads.
func WithStrict(enabled bool) Option {
	return func(c *Config) {
		c.Strict = enabled
	}
}
