package esresp

// IndexResponse is the result of indexing a single document.
type IndexResponse struct {
	Index   string `json:"_index"`
	ID      string `json:"_id"`
	Version int    `json:"_version"`
	Result  string `json:"result"`
	Created bool   `json:"created"`
}

// ClassifyResponse applies the default status-code rule. Document writes
// report conflicts and validation failures through error envelopes with
// non-2xx statuses, so no body peek is needed.
func (IndexResponse) ClassifyResponse(head ResponseHead, body *Unbuffered) (*Outcome, error) {
	return ClassifyByStatus(head, body)
}
