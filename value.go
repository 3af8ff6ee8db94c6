package esresp

// Value is an arbitrary JSON document decoded from a response body. It
// serves as the generic success type for endpoints without a dedicated
// response shape, and as the peek view handed to classifiers that buffer
// the body before deciding the outcome.
type Value map[string]any

// Has reports whether the document contains the given top-level key.
func (v Value) Has(key string) bool {
	_, ok := v[key]
	return ok
}

// Str returns the string under a top-level key, if present.
func (v Value) Str(key string) (string, bool) {
	s, ok := v[key].(string)
	return s, ok
}

// Bool returns the boolean under a top-level key, if present.
func (v Value) Bool(key string) (bool, bool) {
	b, ok := v[key].(bool)
	return b, ok
}

// ClassifyResponse applies the default status-code rule.
func (Value) ClassifyResponse(head ResponseHead, body *Unbuffered) (*Outcome, error) {
	return ClassifyByStatus(head, body)
}
