package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/mkleven/osloplan"
	"github.com/mkleven/osloplan/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededCatalog(t *testing.T) *sqlite.CatalogService {
	t.Helper()
	svc := sqlite.NewCatalogService(setupTestDB(t))
	report, err := svc.Seed(context.Background(), osloplan.Fixture())
	require.NoError(t, err)
	require.Equal(t, 21, report.Loaded)
	require.Zero(t, report.Skipped)
	require.Empty(t, report.Rejected)
	return svc
}

func TestCatalogService_Seed(t *testing.T) {
	t.Parallel()

	t.Run("loads the fixture into an empty catalog", func(t *testing.T) {
		t.Parallel()

		svc := seededCatalog(t)

		docs, err := svc.FindDocuments(context.Background(), osloplan.DocumentFilter{})
		require.NoError(t, err)
		assert.Len(t, docs, 21)
		for _, doc := range docs {
			assert.NotEmpty(t, doc.ID)
			assert.NotEmpty(t, doc.ContentHash)
			assert.False(t, doc.LastVerified.IsZero())
		}
	})

	t.Run("reseeding is idempotent", func(t *testing.T) {
		t.Parallel()

		svc := seededCatalog(t)
		ctx := context.Background()

		report, err := svc.Seed(ctx, osloplan.Fixture())
		require.NoError(t, err)
		assert.Zero(t, report.Loaded)
		assert.Equal(t, 21, report.Skipped)

		docs, err := svc.FindDocuments(ctx, osloplan.DocumentFilter{})
		require.NoError(t, err)
		assert.Len(t, docs, 21, "record count should be unchanged after reseeding")
	})

	t.Run("skips duplicate title and URL within one batch", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewCatalogService(setupTestDB(t))
		ctx := context.Background()

		docs := []*osloplan.Document{
			{
				Title:    "Boligstrategi 2020-2030",
				Category: osloplan.CategoryByutvikling,
				URL:      "https://oslo.kommune.no/boligpolitikk/",
			},
			{
				// Same identity despite different case; only one record survives.
				Title:    "BOLIGSTRATEGI 2020-2030",
				Category: osloplan.CategoryByutvikling,
				URL:      "https://oslo.kommune.no/boligpolitikk/",
			},
		}

		report, err := svc.Seed(ctx, docs)
		require.NoError(t, err)
		assert.Equal(t, 1, report.Loaded)
		assert.Equal(t, 1, report.Skipped)

		stored, err := svc.FindDocuments(ctx, osloplan.DocumentFilter{})
		require.NoError(t, err)
		assert.Len(t, stored, 1)
	})

	t.Run("rejects malformed records with title context", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewCatalogService(setupTestDB(t))
		ctx := context.Background()

		docs := []*osloplan.Document{
			{
				Title:    "Plan uten URL",
				Category: osloplan.CategoryTransport,
			},
			{
				Title:    "Plan med ukjent kategori",
				Category: "Samferdsel",
				URL:      "https://oslo.kommune.no/plan/",
			},
			{
				Title:    "Gyldig plan",
				Category: osloplan.CategoryTransport,
				URL:      "https://oslo.kommune.no/gyldig/",
			},
		}

		report, err := svc.Seed(ctx, docs)
		require.NoError(t, err)
		assert.Equal(t, 1, report.Loaded)
		require.Len(t, report.Rejected, 2)
		assert.Equal(t, "Plan uten URL", report.Rejected[0].Title)
		assert.Contains(t, report.Rejected[1].Reason, "Samferdsel")
	})
}

func TestCatalogService_FindDocuments(t *testing.T) {
	t.Parallel()

	t.Run("returns documents in category then title order", func(t *testing.T) {
		t.Parallel()

		svc := seededCatalog(t)

		docs, err := svc.FindDocuments(context.Background(), osloplan.DocumentFilter{})
		require.NoError(t, err)
		require.Len(t, docs, 21)

		assert.Equal(t, osloplan.CategoryKommuneplan, docs[0].Category, "Kommuneplan sorts first")
		assert.Equal(t, osloplan.CategoryNaering, docs[len(docs)-1].Category, "Næring og innovasjon sorts last")

		lastOrder, lastTitle := 0, ""
		for _, doc := range docs {
			order := categoryDisplayOrder(t, doc.Category)
			if order == lastOrder {
				assert.Greater(t, doc.Title, lastTitle, "titles should ascend within a category")
			} else {
				assert.Greater(t, order, lastOrder, "categories should appear in display order")
			}
			lastOrder, lastTitle = order, doc.Title
		}
	})

	t.Run("filters by category", func(t *testing.T) {
		t.Parallel()

		svc := seededCatalog(t)

		category := osloplan.CategoryTransport
		docs, err := svc.FindDocuments(context.Background(), osloplan.DocumentFilter{Category: &category})
		require.NoError(t, err)
		require.Len(t, docs, 2)
		for _, doc := range docs {
			assert.Equal(t, osloplan.CategoryTransport, doc.Category)
		}
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		t.Parallel()

		svc := seededCatalog(t)

		category := "NotACategory"
		_, err := svc.FindDocuments(context.Background(), osloplan.DocumentFilter{Category: &category})
		require.Error(t, err)
		assert.Equal(t, osloplan.EINVALID, osloplan.ErrorCode(err))
		assert.Contains(t, osloplan.ErrorMessage(err), "NotACategory")
	})

	t.Run("filters by status and department", func(t *testing.T) {
		t.Parallel()

		svc := seededCatalog(t)
		ctx := context.Background()

		status := "Under behandling"
		docs, err := svc.FindDocuments(ctx, osloplan.DocumentFilter{Status: &status})
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "Hovinbyen - områderegulering", docs[0].Title)

		department := "Utdanningsetaten"
		docs, err = svc.FindDocuments(ctx, osloplan.DocumentFilter{Department: &department})
		require.NoError(t, err)
		assert.Len(t, docs, 2)
	})

	t.Run("supports limit and offset", func(t *testing.T) {
		t.Parallel()

		svc := seededCatalog(t)
		ctx := context.Background()

		page1, err := svc.FindDocuments(ctx, osloplan.DocumentFilter{Limit: 5})
		require.NoError(t, err)
		require.Len(t, page1, 5)

		page2, err := svc.FindDocuments(ctx, osloplan.DocumentFilter{Limit: 5, Offset: 5})
		require.NoError(t, err)
		require.Len(t, page2, 5)
		assert.NotEqual(t, page1[0].ID, page2[0].ID)
	})
}

func TestCatalogService_FindDocumentByID(t *testing.T) {
	t.Parallel()

	t.Run("returns document when found", func(t *testing.T) {
		t.Parallel()

		svc := seededCatalog(t)
		ctx := context.Background()

		docs, err := svc.FindDocuments(ctx, osloplan.DocumentFilter{})
		require.NoError(t, err)

		found, err := svc.FindDocumentByID(ctx, docs[0].ID)
		require.NoError(t, err)
		assert.Equal(t, docs[0].Title, found.Title)
		assert.Equal(t, docs[0].ContentHash, found.ContentHash)
	})

	t.Run("returns ENOTFOUND when missing", func(t *testing.T) {
		t.Parallel()

		svc := seededCatalog(t)

		_, err := svc.FindDocumentByID(context.Background(), "nonexistent-id")
		require.Error(t, err)
		assert.Equal(t, osloplan.ENOTFOUND, osloplan.ErrorCode(err))
	})
}

func TestCatalogService_SearchDocuments(t *testing.T) {
	t.Parallel()

	t.Run("matches title, category, and department case-insensitively", func(t *testing.T) {
		t.Parallel()

		svc := seededCatalog(t)

		results, err := svc.SearchDocuments(context.Background(), "kommuneplan")
		require.NoError(t, err)
		require.NotEmpty(t, results)
		for _, r := range results {
			matched := osloplan.MatchScore(r.Document, "kommuneplan")
			assert.Positive(t, matched, "result %q should contain the query", r.Document.Title)
		}
		// Title matches outrank matches in other fields.
		assert.Equal(t, osloplan.ScoreTitle, results[0].Score)
		assert.Contains(t, results[0].Document.Title, "Kommuneplan")
	})

	t.Run("exact title match ranks first", func(t *testing.T) {
		t.Parallel()

		svc := seededCatalog(t)

		results, err := svc.SearchDocuments(context.Background(), "Kommuneplan for Oslo 2020-2035")
		require.NoError(t, err)
		require.NotEmpty(t, results)
		assert.Equal(t, osloplan.ScoreExactTitle, results[0].Score)
		assert.Equal(t, "Kommuneplan for Oslo 2020-2035", results[0].Document.Title)
	})

	t.Run("matches Norwegian characters across case", func(t *testing.T) {
		t.Parallel()

		svc := seededCatalog(t)

		results, err := svc.SearchDocuments(context.Background(), "BYMILJØETATEN")
		require.NoError(t, err)
		require.Len(t, results, 2)
		for _, r := range results {
			assert.Equal(t, "Bymiljøetaten", r.Document.Department)
		}
	})

	t.Run("empty query returns all documents in catalog order", func(t *testing.T) {
		t.Parallel()

		svc := seededCatalog(t)

		results, err := svc.SearchDocuments(context.Background(), "")
		require.NoError(t, err)
		require.Len(t, results, 21)
		assert.Zero(t, results[0].Score)
		assert.Equal(t, osloplan.CategoryKommuneplan, results[0].Document.Category)
	})

	t.Run("no match returns empty slice", func(t *testing.T) {
		t.Parallel()

		svc := seededCatalog(t)

		results, err := svc.SearchDocuments(context.Background(), "nonexistent_term_12345")
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

func TestCatalogService_Statistics(t *testing.T) {
	t.Parallel()

	t.Run("category counts sum to total", func(t *testing.T) {
		t.Parallel()

		svc := seededCatalog(t)
		ctx := context.Background()

		stats, err := svc.Statistics(ctx)
		require.NoError(t, err)

		docs, err := svc.FindDocuments(ctx, osloplan.DocumentFilter{})
		require.NoError(t, err)
		assert.Equal(t, len(docs), stats.Total)

		sum := 0
		for _, n := range stats.ByCategory {
			sum += n
		}
		assert.Equal(t, stats.Total, sum)
	})

	t.Run("reports per-status counts and completion", func(t *testing.T) {
		t.Parallel()

		svc := seededCatalog(t)

		stats, err := svc.Statistics(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 20, stats.ByStatus["Vedtatt"])
		assert.Equal(t, 1, stats.ByStatus["Under behandling"])
		assert.InDelta(t, 100*20.0/21.0, stats.CompletionPercent, 0.01)
	})

	t.Run("empty catalog yields zero statistics", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewCatalogService(setupTestDB(t))

		stats, err := svc.Statistics(context.Background())
		require.NoError(t, err)
		assert.Zero(t, stats.Total)
		assert.Zero(t, stats.CompletionPercent)
		assert.Empty(t, stats.ByCategory)
	})
}

func TestCatalogService_VerifyIntegrity(t *testing.T) {
	t.Parallel()

	t.Run("untouched catalog is clean", func(t *testing.T) {
		t.Parallel()

		svc := seededCatalog(t)

		report, err := svc.VerifyIntegrity(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 21, report.Checked)
		assert.True(t, report.Clean())
	})

	t.Run("detects externally mutated record", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewCatalogService(db)
		ctx := context.Background()

		_, err := svc.Seed(ctx, osloplan.Fixture())
		require.NoError(t, err)

		// Simulate an external writer changing a title without updating
		// the stored hash.
		_, err = db.ExecContext(ctx,
			"UPDATE documents SET title = 'Tampered' WHERE title = 'Klimabudsjett 2023'")
		require.NoError(t, err)

		report, err := svc.VerifyIntegrity(ctx)
		require.NoError(t, err)
		require.Len(t, report.Mismatches, 1)
		assert.Equal(t, "Tampered", report.Mismatches[0].Title)
		assert.NotEqual(t, report.Mismatches[0].Stored, report.Mismatches[0].Computed)
		assert.False(t, report.Clean())
	})

	t.Run("detects duplicate hashes bypassing the uniqueness constraint", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewCatalogService(db)
		ctx := context.Background()

		_, err := svc.Seed(ctx, osloplan.Fixture())
		require.NoError(t, err)

		// An external writer rewriting identifying fields can introduce a
		// collision that the stored hashes hide.
		_, err = db.ExecContext(ctx, `
			UPDATE documents SET
				title = (SELECT title FROM documents WHERE title = 'Eldreplan 2020-2023'),
				url = (SELECT url FROM documents WHERE title = 'Eldreplan 2020-2023')
			WHERE title = 'Folkehelseplan 2019-2030'
		`)
		require.NoError(t, err)

		report, err := svc.VerifyIntegrity(ctx)
		require.NoError(t, err)
		require.Len(t, report.Duplicates, 1)
		assert.Equal(t, "Eldreplan 2020-2023", report.Duplicates[0].FirstTitle)
		assert.Equal(t, "Eldreplan 2020-2023", report.Duplicates[0].SecondTitle)
		assert.NotEqual(t, report.Duplicates[0].FirstID, report.Duplicates[0].SecondID)
	})
}

func TestCatalogService_MarkVerified(t *testing.T) {
	t.Parallel()

	t.Run("updates last verified timestamp", func(t *testing.T) {
		t.Parallel()

		svc := seededCatalog(t)
		ctx := context.Background()

		docs, err := svc.FindDocuments(ctx, osloplan.DocumentFilter{})
		require.NoError(t, err)

		at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		require.NoError(t, svc.MarkVerified(ctx, docs[0].ID, at))

		found, err := svc.FindDocumentByID(ctx, docs[0].ID)
		require.NoError(t, err)
		assert.True(t, found.LastVerified.Equal(at))
	})

	t.Run("returns ENOTFOUND for unknown document", func(t *testing.T) {
		t.Parallel()

		svc := seededCatalog(t)

		err := svc.MarkVerified(context.Background(), "nonexistent-id", time.Now())
		require.Error(t, err)
		assert.Equal(t, osloplan.ENOTFOUND, osloplan.ErrorCode(err))
	})
}

func TestCatalogService_Reset(t *testing.T) {
	t.Parallel()

	svc := seededCatalog(t)
	ctx := context.Background()

	require.NoError(t, svc.Reset(ctx))

	docs, err := svc.FindDocuments(ctx, osloplan.DocumentFilter{})
	require.NoError(t, err)
	assert.Empty(t, docs)

	// A reset catalog accepts a fresh seed.
	report, err := svc.Seed(ctx, osloplan.Fixture())
	require.NoError(t, err)
	assert.Equal(t, 21, report.Loaded)
}

func categoryDisplayOrder(t *testing.T, name string) int {
	t.Helper()
	for _, c := range osloplan.Categories() {
		if c.Name == name {
			return c.DisplayOrder
		}
	}
	t.Fatalf("unknown category %q", name)
	return 0
}
