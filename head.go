package esresp

// ResponseHead is the non-body component of an HTTP response. It is built
// once from the transport's status line and never mutated.
type ResponseHead struct {
	status int
}

// NewResponseHead constructs a ResponseHead from a numeric status code.
func NewResponseHead(status int) ResponseHead {
	return ResponseHead{status: status}
}

// Status returns the HTTP status code.
func (h ResponseHead) Status() int { return h.status }
