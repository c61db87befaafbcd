package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/mkleven/osloplan"
	main "github.com/mkleven/osloplan/cmd/osloplan"
	"github.com/mkleven/osloplan/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists documents grouped by category", func(t *testing.T) {
		t.Parallel()

		catalog := &mock.CatalogService{
			FindDocumentsFn: func(_ context.Context, _ osloplan.DocumentFilter) ([]*osloplan.Document, error) {
				return []*osloplan.Document{
					{ID: "doc-1", Title: "Kommuneplan 2040", Category: osloplan.CategoryKommuneplan, Status: "Vedtatt"},
					{ID: "doc-2", Title: "Kommuneplanens arealdel", Category: osloplan.CategoryKommuneplan, Status: "Vedtatt"},
					{ID: "doc-3", Title: "Sykkelstrategi", Category: osloplan.CategoryTransport, Status: "Vedtatt"},
				}, nil
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

		cmd := &main.ListCmd{}

		err := cmd.Run(deps)
		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "Kommuneplan 2040")
		assert.Contains(t, output, "Sykkelstrategi")
		assert.Contains(t, output, "3 documents")
		// Each category heading appears exactly once
		assert.Equal(t, 1, bytes.Count(stdout.Bytes(), []byte("Transport\n")))
	})

	t.Run("passes category filter through", func(t *testing.T) {
		t.Parallel()

		var gotFilter osloplan.DocumentFilter
		catalog := &mock.CatalogService{
			FindDocumentsFn: func(_ context.Context, filter osloplan.DocumentFilter) ([]*osloplan.Document, error) {
				gotFilter = filter
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

		cmd := &main.ListCmd{Category: "Transport"}

		err := cmd.Run(deps)
		require.NoError(t, err)
		require.NotNil(t, gotFilter.Category)
		assert.Equal(t, "Transport", *gotFilter.Category)
	})

	t.Run("shows message when catalog is empty", func(t *testing.T) {
		t.Parallel()

		catalog := &mock.CatalogService{
			FindDocumentsFn: func(_ context.Context, _ osloplan.DocumentFilter) ([]*osloplan.Document, error) {
				return []*osloplan.Document{}, nil
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

		cmd := &main.ListCmd{}

		err := cmd.Run(deps)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No documents")
	})

	t.Run("returns error when FindDocuments fails", func(t *testing.T) {
		t.Parallel()

		dbErr := errors.New("database connection failed")

		catalog := &mock.CatalogService{
			FindDocumentsFn: func(_ context.Context, _ osloplan.DocumentFilter) ([]*osloplan.Document, error) {
				return nil, dbErr
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

		cmd := &main.ListCmd{}

		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Equal(t, dbErr, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
