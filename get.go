package esresp

// GetResponse is a document get result with the source decoded into T.
type GetResponse[T any] struct {
	Index   string `json:"_index"`
	ID      string `json:"_id"`
	Version int    `json:"_version"`
	Found   bool   `json:"found"`
	Source  T      `json:"_source"`
}

// ClassifyResponse buffers the body on a 404 to tell "document not found"
// apart from index-level failures: a plain {"found":false,...} payload is
// still a success so callers can branch on Found, while a body carrying an
// error member keeps its error classification.
func (GetResponse[T]) ClassifyResponse(head ResponseHead, body *Unbuffered) (*Outcome, error) {
	switch {
	case head.Status() >= 200 && head.Status() <= 299:
		return Success(body), nil
	case head.Status() == 404:
		doc, buffered, err := body.Buffer()
		if err != nil {
			return nil, err
		}
		if doc.Has("error") {
			return Failure(buffered), nil
		}
		return Success(buffered), nil
	default:
		return Failure(body), nil
	}
}
