package esresp

// PingResponse is the banner returned by the cluster root endpoint.
type PingResponse struct {
	Name        string      `json:"name"`
	ClusterName string      `json:"cluster_name"`
	Tagline     string      `json:"tagline"`
	Version     PingVersion `json:"version"`
}

// PingVersion describes the node build inside a ping banner.
type PingVersion struct {
	Number string `json:"number"`
}

// ClassifyResponse applies the default status-code rule.
func (PingResponse) ClassifyResponse(head ResponseHead, body *Unbuffered) (*Outcome, error) {
	return ClassifyByStatus(head, body)
}
