package esresp

// ResponseState is a response body in one of two buffering states:
// *Unbuffered, still attached to the transport, or *Buffered, already
// materialized into memory. The set of implementations is closed; the
// orchestrator treats both uniformly.
type ResponseState interface {
	decode(v any) error
	decodeErr(status int) (*APIError, error)
}

// Unbuffered wraps a body that has not been read yet. Buffering or
// decoding consumes the handle; there is no way back to the raw transport
// afterwards.
type Unbuffered struct {
	body responseBody
}

func newUnbuffered(body responseBody) *Unbuffered {
	return &Unbuffered{body: body}
}

// Buffer materializes the body into a JSON document and returns it
// alongside the buffered state. The receiver is invalidated: any further
// use surfaces ErrBodyConsumed. Classifiers call this when the status code
// alone cannot decide the outcome.
func (u *Unbuffered) Buffer() (Value, *Buffered, error) {
	body := u.take()
	if body == nil {
		return nil, nil, ErrBodyConsumed
	}
	doc, buffered, err := body.materialize()
	if err != nil {
		return nil, nil, err
	}
	return doc, &Buffered{body: buffered}, nil
}

func (u *Unbuffered) decode(v any) error {
	body := u.take()
	if body == nil {
		return ErrBodyConsumed
	}
	return body.decodeInto(v)
}

func (u *Unbuffered) decodeErr(status int) (*APIError, error) {
	body := u.take()
	if body == nil {
		return nil, ErrBodyConsumed
	}
	return body.decodeAPIError(status)
}

// take detaches the body from the handle so the transition can happen at
// most once.
func (u *Unbuffered) take() responseBody {
	body := u.body
	u.body = nil
	return body
}

// Buffered wraps a body that has already been materialized. Decodes only
// touch the captured bytes and may be repeated.
type Buffered struct {
	body responseBody
}

func (b *Buffered) decode(v any) error { return b.body.decodeInto(v) }

func (b *Buffered) decodeErr(status int) (*APIError, error) {
	return b.body.decodeAPIError(status)
}

// Outcome is a classification verdict paired with whatever body state the
// classifier left behind.
type Outcome struct {
	ok    bool
	state ResponseState
}

// Success marks the response as decodable into the target type.
func Success(state ResponseState) *Outcome {
	return &Outcome{ok: true, state: state}
}

// Failure marks the response as carrying an API error payload.
func Failure(state ResponseState) *Outcome {
	return &Outcome{ok: false, state: state}
}
