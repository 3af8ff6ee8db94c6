package esresp

import (
	"errors"

	"github.com/gostratum/core/logx"
)

// Parsers carries shared parsing configuration resolved once per process.
// Typed parsers are derived from it via ParseFor; one-off parsers can skip
// it entirely and use Parse with options.
type Parsers struct {
	cfg Config
}

// New constructs a Parsers with the supplied options applied.
func New(opts ...Option) (*Parsers, error) {
	cfg := Config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.MaxBodyBytes < 0 {
		return nil, errors.New("max_body_bytes must not be negative")
	}

	if cfg.Logger == nil {
		cfg.Logger = logx.NewNoopLogger()
	}

	return &Parsers{cfg: cfg}, nil
}

// Config returns a copy of the effective configuration.
func (p *Parsers) Config() Config {
	return p.cfg
}
