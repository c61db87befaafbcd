package osloplan

import "context"

// LinkStatus is the outcome of checking one document's canonical URL.
type LinkStatus struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	URL        string `json:"url"`
	StatusCode int    `json:"statusCode"`
	OK         bool   `json:"ok"`
	PageTitle  string `json:"pageTitle,omitempty"`
	Error      string `json:"error,omitempty"`
}

// LinkVerifier checks that document URLs still resolve at the source.
// Implementations hide HTTP transport, rate limiting, and concurrency.
type LinkVerifier interface {
	VerifyLinks(ctx context.Context, docs []*Document) ([]LinkStatus, error)
}
