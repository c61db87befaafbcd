package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/mkleven/osloplan"
	main "github.com/mkleven/osloplan/cmd/osloplan"
	"github.com/mkleven/osloplan/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("marks reachable documents verified and reports failures", func(t *testing.T) {
		t.Parallel()

		docs := []*osloplan.Document{
			{ID: "doc-1", Title: "Kommuneplan 2040", URL: "https://oslo.kommune.no/a"},
			{ID: "doc-2", Title: "Sykkelstrategi", URL: "https://oslo.kommune.no/b"},
		}

		var marked []string
		catalog := &mock.CatalogService{
			FindDocumentsFn: func(_ context.Context, _ osloplan.DocumentFilter) ([]*osloplan.Document, error) {
				return docs, nil
			},
			MarkVerifiedFn: func(_ context.Context, id string, _ time.Time) error {
				marked = append(marked, id)
				return nil
			},
		}

		verifier := &mock.LinkVerifier{
			VerifyLinksFn: func(_ context.Context, _ []*osloplan.Document) ([]osloplan.LinkStatus, error) {
				return []osloplan.LinkStatus{
					{ID: "doc-1", Title: "Kommuneplan 2040", StatusCode: 200, OK: true},
					{ID: "doc-2", Title: "Sykkelstrategi", StatusCode: 404, OK: false},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   stderr,
			Catalog:  catalog,
			Verifier: verifier,
		}

		cmd := &main.VerifyCmd{}

		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Equal(t, []string{"doc-1"}, marked)

		output := stdout.String()
		assert.Contains(t, output, "1 of 2 links verified")
		assert.Contains(t, output, "FAIL")
		assert.Contains(t, output, "Sykkelstrategi")
		assert.Contains(t, output, "HTTP 404")
	})

	t.Run("succeeds when every link resolves", func(t *testing.T) {
		t.Parallel()

		catalog := &mock.CatalogService{
			FindDocumentsFn: func(_ context.Context, _ osloplan.DocumentFilter) ([]*osloplan.Document, error) {
				return []*osloplan.Document{{ID: "doc-1", Title: "Kommuneplan 2040"}}, nil
			},
			MarkVerifiedFn: func(_ context.Context, _ string, _ time.Time) error {
				return nil
			},
		}

		verifier := &mock.LinkVerifier{
			VerifyLinksFn: func(_ context.Context, _ []*osloplan.Document) ([]osloplan.LinkStatus, error) {
				return []osloplan.LinkStatus{{ID: "doc-1", StatusCode: 200, OK: true}}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   stderr,
			Catalog:  catalog,
			Verifier: verifier,
		}

		cmd := &main.VerifyCmd{}

		err := cmd.Run(deps)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "1 of 1 links verified")
	})

	t.Run("shows message when catalog is empty", func(t *testing.T) {
		t.Parallel()

		catalog := &mock.CatalogService{
			FindDocumentsFn: func(_ context.Context, _ osloplan.DocumentFilter) ([]*osloplan.Document, error) {
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  stderr,
			Catalog: catalog,
		}

		cmd := &main.VerifyCmd{}

		err := cmd.Run(deps)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No documents to verify")
	})
}
