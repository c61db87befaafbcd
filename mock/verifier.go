package mock

import (
	"context"

	"github.com/mkleven/osloplan"
)

var _ osloplan.LinkVerifier = (*LinkVerifier)(nil)

// LinkVerifier is a mock implementation of osloplan.LinkVerifier.
type LinkVerifier struct {
	VerifyLinksFn func(ctx context.Context, docs []*osloplan.Document) ([]osloplan.LinkStatus, error)
}

func (v *LinkVerifier) VerifyLinks(ctx context.Context, docs []*osloplan.Document) ([]osloplan.LinkStatus, error) {
	return v.VerifyLinksFn(ctx, docs)
}
