package esresp

import (
	"bytes"
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

// decodeOpts carries the per-parser knobs that influence how body bytes
// are read and decoded.
type decodeOpts struct {
	maxBodyBytes int64
	strict       bool
}

// responseBody abstracts the two physical body sources: a single-pass
// stream attached to the transport and a re-readable in-memory buffer.
// materialize parses the body into a JSON document and returns a buffered
// representation that supports repeated decodes without touching the
// transport again.
type responseBody interface {
	materialize() (Value, responseBody, error)
	decodeInto(v any) error
	decodeAPIError(status int) (*APIError, error)
}

// readerBody wraps a single-pass transport stream. Any read irreversibly
// consumes the stream, so materialize is the only way to inspect the body
// ahead of the final decode.
type readerBody struct {
	r    io.Reader
	opts decodeOpts
}

func (b readerBody) materialize() (Value, responseBody, error) {
	buf, err := b.readAll()
	if err != nil {
		return nil, nil, err
	}

	buffered := bytesBody{buf: buf, opts: b.opts}
	doc, _, err := buffered.materialize()
	if err != nil {
		return nil, nil, err
	}
	return doc, buffered, nil
}

func (b readerBody) decodeInto(v any) error {
	buf, err := b.readAll()
	if err != nil {
		return err
	}
	return bytesBody{buf: buf, opts: b.opts}.decodeInto(v)
}

func (b readerBody) decodeAPIError(status int) (*APIError, error) {
	buf, err := b.readAll()
	if err != nil {
		return nil, err
	}
	return bytesBody{buf: buf, opts: b.opts}.decodeAPIError(status)
}

// readAll drains the stream, enforcing the configured size cap. This is
// the only point where a streamed body is copied into memory.
func (b readerBody) readAll() ([]byte, error) {
	r := b.r
	if b.opts.maxBodyBytes > 0 {
		r = io.LimitReader(r, b.opts.maxBodyBytes+1)
	}
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if b.opts.maxBodyBytes > 0 && int64(len(buf)) > b.opts.maxBodyBytes {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrBodyTooLarge, b.opts.maxBodyBytes)
	}
	return buf, nil
}

// bytesBody wraps an in-memory buffer. The bytes are never consumed, so
// every operation may be repeated any number of times.
type bytesBody struct {
	buf  []byte
	opts decodeOpts
}

func (b bytesBody) materialize() (Value, responseBody, error) {
	var doc Value
	if err := json.Unmarshal(b.buf, &doc); err != nil {
		return nil, nil, err
	}
	return doc, b, nil
}

func (b bytesBody) decodeInto(v any) error {
	if b.opts.strict {
		dec := json.NewDecoder(bytes.NewReader(b.buf))
		dec.DisallowUnknownFields()
		return dec.Decode(v)
	}
	return json.Unmarshal(b.buf, v)
}

func (b bytesBody) decodeAPIError(status int) (*APIError, error) {
	return decodeAPIError(b.buf, status)
}
