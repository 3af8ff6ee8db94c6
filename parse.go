package esresp

import (
	"io"

	"github.com/gostratum/core/logx"
)

// Parser binds a target success type to the classify-and-decode pipeline.
// It is immutable once constructed and may be reused across responses;
// each call owns its body source exclusively.
type Parser[T Classifiable] struct {
	cfg Config
}

// Parse builds a parser for T with the supplied options applied.
func Parse[T Classifiable](opts ...Option) Parser[T] {
	cfg := Config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return Parser[T]{cfg: cfg}
}

// ParseFor builds a parser for T from shared configuration, typically one
// resolved via configx/fx.
func ParseFor[T Classifiable](p *Parsers) Parser[T] {
	return Parser[T]{cfg: p.cfg}
}

// FromBytes classifies and decodes an in-memory response body.
func (p Parser[T]) FromBytes(status int, body []byte) (T, error) {
	return p.decode(NewResponseHead(status), bytesBody{buf: body, opts: p.decodeOpts()})
}

// FromReader classifies and decodes a single-pass response body stream.
// The reader is drained at most once, even when classification needs to
// inspect the payload before the final decode.
func (p Parser[T]) FromReader(status int, r io.Reader) (T, error) {
	return p.decode(NewResponseHead(status), readerBody{r: r, opts: p.decodeOpts()})
}

// decode runs the pipeline: classify once, then exactly one decode against
// whichever body state the classifier returned.
func (p Parser[T]) decode(head ResponseHead, body responseBody) (T, error) {
	var zero T

	classify := p.cfg.Classifier
	if classify == nil {
		classify = zero.ClassifyResponse
	}

	outcome, err := classify(head, newUnbuffered(body))
	if err != nil {
		return zero, newParseError(err)
	}
	if outcome == nil {
		return zero, newParseError(errNoOutcome)
	}

	logger := p.logger()
	logger.Debug("classified response",
		logx.Int("status", head.Status()),
		logx.String("outcome", outcomeLabel(outcome.ok)),
	)

	if outcome.ok {
		var out T
		if err := outcome.state.decode(&out); err != nil {
			return zero, newParseError(err)
		}
		return out, nil
	}

	apiErr, err := outcome.state.decodeErr(head.Status())
	if err != nil {
		return zero, newParseError(err)
	}
	logger.Debug("decoded api error",
		logx.Int("status", head.Status()),
		logx.String("type", apiErr.Type),
	)
	return zero, apiErr
}

func (p Parser[T]) decodeOpts() decodeOpts {
	return decodeOpts{maxBodyBytes: p.cfg.MaxBodyBytes, strict: p.cfg.Strict}
}

func (p Parser[T]) logger() logx.Logger {
	if p.cfg.Logger != nil {
		return p.cfg.Logger
	}
	return logx.NewNoopLogger()
}

func outcomeLabel(ok bool) string {
	if ok {
		return "ok"
	}
	return "error"
}
