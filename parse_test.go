package esresp

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/gostratum/core/logx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// onceReader fails hard if it is read again after returning EOF, so any
// second drain of the transport shows up as a parse failure.
type onceReader struct {
	r         io.Reader
	exhausted bool
}

func (o *onceReader) Read(p []byte) (int, error) {
	n, err := o.r.Read(p)
	if err == io.EOF {
		if o.exhausted {
			return 0, errors.New("transport read after exhaustion")
		}
		o.exhausted = true
	}
	return n, err
}

func TestParse_StatusClassification(t *testing.T) {
	// The body satisfies both shapes: it decodes as a Value and as an
	// error envelope, so the outcome depends on the status code alone.
	body := []byte(`{"error":"boom"}`)

	for status := 0; status <= 999; status++ {
		res, err := Parse[Value]().FromBytes(status, body)

		if status >= 200 && status <= 299 {
			require.NoError(t, err, "status %d", status)
			assert.Equal(t, "boom", res["error"])
			continue
		}

		require.Error(t, err, "status %d", status)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr, "status %d", status)
		assert.Equal(t, "boom", apiErr.Type)
		assert.Equal(t, status, apiErr.Status)
	}
}

func TestParse_GenericValue(t *testing.T) {
	t.Run("decodes_json_document", func(t *testing.T) {
		res, err := Parse[Value]().FromBytes(200, []byte(`{"a":1}`))
		require.NoError(t, err)
		assert.Equal(t, Value{"a": float64(1)}, res)
	})

	t.Run("malformed_json_is_a_parse_error", func(t *testing.T) {
		_, err := Parse[Value]().FromBytes(200, []byte(`not json`))
		require.Error(t, err)

		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
		var apiErr *APIError
		assert.False(t, errors.As(err, &apiErr))
	})

	t.Run("error_shape_mismatch_is_a_parse_error", func(t *testing.T) {
		_, err := Parse[Value]().FromBytes(500, []byte(`{}`))
		require.Error(t, err)

		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.ErrorIs(t, err, errMissingErrorField)
	})

	t.Run("index_not_found_envelope", func(t *testing.T) {
		_, err := Parse[Value]().FromBytes(404, []byte(`{"error":"index_not_found","index":"foo"}`))
		require.Error(t, err)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.True(t, apiErr.IsIndexNotFound())
		assert.Equal(t, "foo", apiErr.Index)
		assert.Equal(t, 404, apiErr.Status)
	})
}

func TestParse_BytesReaderParity(t *testing.T) {
	bodies := []string{
		`{"a":1}`,
		`{"nested":{"b":[1,2,3]},"s":"x"}`,
		`{}`,
	}

	for _, body := range bodies {
		fromBytes, err := Parse[Value]().FromBytes(200, []byte(body))
		require.NoError(t, err)

		fromReader, err := Parse[Value]().FromReader(200, strings.NewReader(body))
		require.NoError(t, err)

		assert.Equal(t, fromBytes, fromReader, "body %s", body)
	}
}

func TestParse_FromReader(t *testing.T) {
	t.Run("stream_is_read_at_most_once", func(t *testing.T) {
		payload := fmt.Sprintf(`{"pad":%q}`, strings.Repeat("x", 10000))
		reader := &onceReader{r: strings.NewReader(payload)}

		res, err := Parse[Value]().FromReader(200, reader)
		require.NoError(t, err)
		assert.Len(t, res["pad"], 10000)
		assert.True(t, reader.exhausted)
	})

	t.Run("stream_is_read_at_most_once_with_peeking_classifier", func(t *testing.T) {
		payload := fmt.Sprintf(`{"pad":%q}`, strings.Repeat("x", 10000))
		reader := &onceReader{r: strings.NewReader(payload)}

		buffers := 0
		classifier := func(head ResponseHead, body *Unbuffered) (*Outcome, error) {
			buffers++
			_, buffered, err := body.Buffer()
			if err != nil {
				return nil, err
			}
			return Success(buffered), nil
		}

		res, err := Parse[Value](WithClassifier(classifier)).FromReader(200, reader)
		require.NoError(t, err)
		assert.Len(t, res["pad"], 10000)
		assert.Equal(t, 1, buffers)
	})

	t.Run("transport_failure_is_a_parse_error", func(t *testing.T) {
		broken := io.MultiReader(strings.NewReader(`{"a"`), failingReader{})

		_, err := Parse[Value]().FromReader(200, broken)
		require.Error(t, err)

		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
	})
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

func TestParse_CustomClassifier(t *testing.T) {
	t.Run("overrides_the_status_rule", func(t *testing.T) {
		// Treat a 404 without an error member as a success.
		classifier := func(head ResponseHead, body *Unbuffered) (*Outcome, error) {
			if head.Status() == 404 {
				doc, buffered, err := body.Buffer()
				if err != nil {
					return nil, err
				}
				if !doc.Has("error") {
					return Success(buffered), nil
				}
				return Failure(buffered), nil
			}
			return ClassifyByStatus(head, body)
		}

		parser := Parse[Value](WithClassifier(classifier))

		res, err := parser.FromBytes(404, []byte(`{"found":false}`))
		require.NoError(t, err)
		found, ok := res.Bool("found")
		require.True(t, ok)
		assert.False(t, found)

		_, err = parser.FromBytes(404, []byte(`{"error":"index_not_found"}`))
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.True(t, apiErr.IsIndexNotFound())
	})

	t.Run("classifier_failure_is_a_parse_error", func(t *testing.T) {
		classifier := func(ResponseHead, *Unbuffered) (*Outcome, error) {
			return nil, errors.New("cannot decide")
		}

		_, err := Parse[Value](WithClassifier(classifier)).FromBytes(200, []byte(`{}`))
		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
	})

	t.Run("nil_outcome_is_a_parse_error", func(t *testing.T) {
		classifier := func(ResponseHead, *Unbuffered) (*Outcome, error) {
			return nil, nil
		}

		_, err := Parse[Value](WithClassifier(classifier)).FromBytes(200, []byte(`{}`))
		require.ErrorIs(t, err, errNoOutcome)
	})
}

func TestParse_WithLogger(t *testing.T) {
	t.Run("accepts_a_structured_logger", func(t *testing.T) {
		parser := Parse[Value](WithLogger(logx.NewNoopLogger()))

		res, err := parser.FromBytes(200, []byte(`{"a":1}`))
		require.NoError(t, err)
		assert.Equal(t, float64(1), res["a"])
	})
}

func TestParse_EmptyBody(t *testing.T) {
	t.Run("empty_bytes_fail_to_decode", func(t *testing.T) {
		_, err := Parse[Value]().FromBytes(200, nil)
		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
	})

	t.Run("empty_stream_fails_to_decode", func(t *testing.T) {
		_, err := Parse[Value]().FromReader(200, bytes.NewReader(nil))
		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
	})
}
