package esresp

import (
	"github.com/gostratum/core/configx"
	"github.com/gostratum/core/logx"
)

// Config describes the runtime configuration for response parsing. It is
// intended to be populated via configx and then optionally overridden via
// functional options.
type Config struct {
	// MaxBodyBytes caps how many bytes of a streamed body may be buffered
	// into memory per response. Zero means no limit.
	MaxBodyBytes int64 `mapstructure:"max_body_bytes" default:"0"`

	// Strict rejects success payloads carrying fields the target type
	// does not declare.
	Strict bool `mapstructure:"strict" default:"false"`

	// Runtime-only fields set via functional options (ignored by config loader).
	Logger     logx.Logger    `mapstructure:"-"`
	Classifier ClassifierFunc `mapstructure:"-"`
}

// Prefix implements configx.Configurable.
func (Config) Prefix() string { return "esresp" }

// NewConfig loads the parser configuration using the provided config loader.
func NewConfig(loader configx.Loader) (Config, error) {
	var cfg Config
	return cfg, loader.Bind(&cfg)
}
