package esresp

// Classifiable is the capability a success type provides to the pipeline:
// given the response head and the untouched body, decide whether the
// response should be decoded as the type itself or as an APIError.
// ClassifyResponse is invoked on the type's zero value and must not read
// receiver state.
type Classifiable interface {
	ClassifyResponse(head ResponseHead, body *Unbuffered) (*Outcome, error)
}

// ClassifierFunc replaces a type's own classification, e.g. for endpoints
// whose success cannot be derived from the status code alone. A custom
// classifier sees both status and body, so it also owns the tie-break
// between the two.
type ClassifierFunc func(head ResponseHead, body *Unbuffered) (*Outcome, error)

// ClassifyByStatus is the default policy: 2xx is a success, anything else
// is an API error. The body is left untouched.
func ClassifyByStatus(head ResponseHead, body *Unbuffered) (*Outcome, error) {
	if head.Status() >= 200 && head.Status() <= 299 {
		return Success(body), nil
	}
	return Failure(body), nil
}
