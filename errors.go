package esresp

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// ErrBodyConsumed reports a read against an Unbuffered handle that was
// already buffered or decoded. The streamed bytes are gone; only the
// Buffered state produced by the transition can still serve decodes.
var ErrBodyConsumed = errors.New("esresp: response body already consumed")

// ErrBodyTooLarge reports a streamed body exceeding Config.MaxBodyBytes.
var ErrBodyTooLarge = errors.New("esresp: response body too large")

var (
	errMissingErrorField = errors.New("esresp: response body has no error field")
	errNoOutcome         = errors.New("esresp: classifier returned no outcome")
)

// ParseError reports that the response bytes could not be turned into a
// value: malformed JSON, a transport read failure, or a payload that does
// not match the expected shape. It is one arm of the error union returned
// by Parser; the other is APIError.
type ParseError struct {
	Err error
}

func newParseError(err error) *ParseError {
	return &ParseError{Err: err}
}

func (e *ParseError) Error() string {
	return "esresp: parse response: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

// APIError is a structurally valid failure payload reported by the search
// engine: the bytes decoded cleanly, the server itself rejected the
// request. Callers branch on it with errors.As and the kind predicates.
type APIError struct {
	Status int
	Type   string
	Reason string
	Index  string

	// Raw holds the structured error object when the engine sent one.
	Raw Value
}

func (e *APIError) Error() string {
	msg := "esresp: api error"
	if e.Status != 0 {
		msg += fmt.Sprintf(" [%d]", e.Status)
	}
	if e.Type != "" {
		msg += ": " + e.Type
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// UnmarshalJSON accepts both error envelopes the engine produces: the
// shorthand {"error":"index_not_found","index":"foo"} and the structured
// {"error":{"type":...,"reason":...,"index":...},"status":404}. A body
// without an error member does not satisfy the error shape.
func (e *APIError) UnmarshalJSON(data []byte) error {
	var envelope struct {
		Error  json.RawMessage `json:"error"`
		Status int             `json:"status"`
		Index  string          `json:"index"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}
	if len(envelope.Error) == 0 {
		return errMissingErrorField
	}

	e.Status = envelope.Status
	e.Index = envelope.Index

	var kind string
	if err := json.Unmarshal(envelope.Error, &kind); err == nil {
		e.Type = kind
		return nil
	}

	var detail struct {
		Type   string `json:"type"`
		Reason string `json:"reason"`
		Index  string `json:"index"`
	}
	if err := json.Unmarshal(envelope.Error, &detail); err != nil {
		return err
	}
	e.Type = detail.Type
	e.Reason = detail.Reason
	if detail.Index != "" {
		e.Index = detail.Index
	}

	var raw Value
	if err := json.Unmarshal(envelope.Error, &raw); err == nil {
		e.Raw = raw
	}
	return nil
}

// Kind predicates for the failures callers commonly branch on. Matching is
// by prefix so both the shorthand form ("index_not_found") and the
// exception form ("index_not_found_exception") satisfy the predicate.

// IsIndexNotFound reports an index_not_found failure.
func (e *APIError) IsIndexNotFound() bool {
	return strings.HasPrefix(e.Type, "index_not_found")
}

// IsIndexAlreadyExists reports an index-creation conflict.
func (e *APIError) IsIndexAlreadyExists() bool {
	return strings.HasPrefix(e.Type, "index_already_exists") ||
		strings.HasPrefix(e.Type, "resource_already_exists")
}

// IsDocumentMissing reports an update against a missing document.
func (e *APIError) IsDocumentMissing() bool {
	return strings.HasPrefix(e.Type, "document_missing")
}

// IsMapperParsing reports a mapping failure for an indexed document.
func (e *APIError) IsMapperParsing() bool {
	return strings.HasPrefix(e.Type, "mapper_parsing")
}

// IsActionRequestValidation reports a rejected malformed request.
func (e *APIError) IsActionRequestValidation() bool {
	return strings.HasPrefix(e.Type, "action_request_validation")
}

// decodeAPIError decodes an error envelope, filling in the transport
// status when the payload does not carry one.
func decodeAPIError(buf []byte, status int) (*APIError, error) {
	apiErr := &APIError{}
	if err := json.Unmarshal(buf, apiErr); err != nil {
		return nil, err
	}
	if apiErr.Status == 0 {
		apiErr.Status = status
	}
	return apiErr, nil
}
