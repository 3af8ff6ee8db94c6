package esresp

// CommandResponse is the generic acknowledgement returned by cluster and
// index administration endpoints.
type CommandResponse struct {
	Acknowledged bool `json:"acknowledged"`
}

// ClassifyResponse applies the default status-code rule.
func (CommandResponse) ClassifyResponse(head ResponseHead, body *Unbuffered) (*Outcome, error) {
	return ClassifyByStatus(head, body)
}
