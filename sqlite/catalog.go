package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mkleven/osloplan"
	"github.com/mkleven/osloplan/bloom"
)

// Compile-time interface verification.
var _ osloplan.CatalogService = (*CatalogService)(nil)

// CatalogService implements osloplan.CatalogService using SQLite.
type CatalogService struct {
	db *DB
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(db *DB) *CatalogService {
	return &CatalogService{db: db}
}

// Seed loads documents into the catalog, deduplicating by content hash.
// Records already present (same normalized title+URL) are skipped and
// counted; records that fail validation are rejected and reported with
// their title. Seeding twice with the same fixture leaves the catalog
// unchanged.
func (s *CatalogService) Seed(ctx context.Context, docs []*osloplan.Document) (*osloplan.SeedReport, error) {
	existing, err := s.storedHashes(ctx)
	if err != nil {
		return nil, err
	}

	// Bloom filter as the duplicate fast path; a positive is confirmed
	// against the store since false positives are possible.
	filter := bloom.NewFilter(uint(len(existing)+len(docs)+1), 0.01)
	for _, h := range existing {
		filter.Add(h)
	}

	report := &osloplan.SeedReport{}
	for _, doc := range docs {
		if err := doc.Validate(); err != nil {
			report.Rejected = append(report.Rejected, osloplan.RejectedRecord{
				Title:  doc.Title,
				Reason: osloplan.ErrorMessage(err),
			})
			continue
		}

		hash := osloplan.HashContent(doc.Title, doc.URL)
		if filter.Test(hash) {
			dup, err := s.hashExists(ctx, hash)
			if err != nil {
				return nil, err
			}
			if dup {
				report.Skipped++
				continue
			}
		}

		doc.ID = uuid.New().String()
		doc.ContentHash = hash
		if doc.LastVerified.IsZero() {
			doc.LastVerified = time.Now().UTC()
		}

		_, err = s.db.ExecContext(ctx, `
			INSERT INTO documents (id, title, category, subcategory, doc_type, status,
				priority, department, url, description, date_published, tags,
				content_hash, last_verified)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, doc.ID, doc.Title, doc.Category, doc.Subcategory, doc.DocType, doc.Status,
			doc.Priority, doc.Department, doc.URL, doc.Description, doc.DatePublished,
			doc.Tags, doc.ContentHash, doc.LastVerified.Format(time.RFC3339))
		if err != nil {
			return nil, err
		}

		filter.Add(hash)
		report.Loaded++
	}

	return report, nil
}

// FindDocumentByID retrieves a document by ID.
func (s *CatalogService) FindDocumentByID(ctx context.Context, id string) (*osloplan.Document, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+documentColumns+`
		FROM documents
		WHERE id = ?
	`, id)

	doc, err := scanDocumentRow(row)
	if err == sql.ErrNoRows {
		return nil, osloplan.Errorf(osloplan.ENOTFOUND, "document %q not found", id)
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// FindDocuments retrieves documents matching the filter in stable catalog
// order: category display order first, then title.
func (s *CatalogService) FindDocuments(ctx context.Context, filter osloplan.DocumentFilter) ([]*osloplan.Document, error) {
	if filter.Category != nil && !osloplan.ValidCategory(*filter.Category) {
		return nil, osloplan.Errorf(osloplan.EINVALID, "unknown category %q", *filter.Category)
	}

	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + prefixedDocumentColumns + ` FROM documents d
		JOIN categories c ON c.name = d.category
		WHERE 1=1`)

	if filter.ID != nil {
		query.WriteString(" AND d.id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Category != nil {
		query.WriteString(" AND d.category = ?")
		args = append(args, *filter.Category)
	}
	if filter.Status != nil {
		query.WriteString(" AND d.status = ?")
		args = append(args, *filter.Status)
	}
	if filter.Department != nil {
		query.WriteString(" AND d.department = ?")
		args = append(args, *filter.Department)
	}

	query.WriteString(" ORDER BY c.display_order ASC, d.title ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*osloplan.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

// SearchDocuments returns documents matching the query, best match first.
// The catalog holds a few dozen records, so matching runs in Go where
// Unicode case folding is correct for Norwegian titles; SQLite's LIKE
// only folds ASCII.
func (s *CatalogService) SearchDocuments(ctx context.Context, query string) ([]*osloplan.SearchResult, error) {
	docs, err := s.FindDocuments(ctx, osloplan.DocumentFilter{})
	if err != nil {
		return nil, err
	}

	results := make([]*osloplan.SearchResult, 0, len(docs))
	if strings.TrimSpace(query) == "" {
		for _, doc := range docs {
			results = append(results, &osloplan.SearchResult{Document: doc})
		}
		return results, nil
	}

	for _, doc := range docs {
		if score := osloplan.MatchScore(doc, query); score > 0 {
			results = append(results, &osloplan.SearchResult{Document: doc, Score: score})
		}
	}
	osloplan.SortResults(results)

	return results, nil
}

// Statistics computes aggregate counts over the stored documents.
func (s *CatalogService) Statistics(ctx context.Context) (*osloplan.Statistics, error) {
	stats := &osloplan.Statistics{
		ByCategory: make(map[string]int),
		ByStatus:   make(map[string]int),
	}

	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM documents").Scan(&stats.Total); err != nil {
		return nil, err
	}

	if err := s.countBy(ctx, "category", stats.ByCategory); err != nil {
		return nil, err
	}
	if err := s.countBy(ctx, "status", stats.ByStatus); err != nil {
		return nil, err
	}

	if stats.Total > 0 {
		stats.CompletionPercent = float64(stats.ByStatus["Vedtatt"]) / float64(stats.Total) * 100
	}

	return stats, nil
}

// VerifyIntegrity recomputes every stored content hash and confirms
// uniqueness. A populated report means the store was mutated outside the
// catalog.
func (s *CatalogService) VerifyIntegrity(ctx context.Context) (*osloplan.IntegrityReport, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, url, content_hash
		FROM documents
		ORDER BY title ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	type seen struct {
		id    string
		title string
	}

	report := &osloplan.IntegrityReport{}
	byHash := make(map[string]seen)

	for rows.Next() {
		var id, title, url, stored string
		if err := rows.Scan(&id, &title, &url, &stored); err != nil {
			return nil, err
		}
		report.Checked++

		computed := osloplan.HashContent(title, url)
		if computed != stored {
			report.Mismatches = append(report.Mismatches, osloplan.HashMismatch{
				ID:       id,
				Title:    title,
				Stored:   stored,
				Computed: computed,
			})
		}

		if prev, ok := byHash[computed]; ok {
			report.Duplicates = append(report.Duplicates, osloplan.DuplicatePair{
				Hash:        computed,
				FirstID:     prev.id,
				FirstTitle:  prev.title,
				SecondID:    id,
				SecondTitle: title,
			})
			continue
		}
		byHash[computed] = seen{id: id, title: title}
	}

	return report, rows.Err()
}

// MarkVerified records a successful link check for a document.
func (s *CatalogService) MarkVerified(ctx context.Context, id string, at time.Time) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE documents SET last_verified = ? WHERE id = ?",
		at.UTC().Format(time.RFC3339), id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return osloplan.Errorf(osloplan.ENOTFOUND, "document %q not found", id)
	}

	return nil
}

// Reset removes every stored document. The fixed category metadata is
// kept; callers reseed with Seed.
func (s *CatalogService) Reset(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM documents")
	return err
}

func (s *CatalogService) storedHashes(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT content_hash FROM documents")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hashes []string
	for rows.Next() {
		var h string
		if err := rows.Scan(&h); err != nil {
			return nil, err
		}
		hashes = append(hashes, h)
	}
	return hashes, rows.Err()
}

func (s *CatalogService) hashExists(ctx context.Context, hash string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM documents WHERE content_hash = ?", hash).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *CatalogService) countBy(ctx context.Context, column string, into map[string]int) error {
	// column is one of the fixed grouping fields, never user input.
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+column+", COUNT(*) FROM documents GROUP BY "+column)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var count int
		if err := rows.Scan(&key, &count); err != nil {
			return err
		}
		into[key] = count
	}
	return rows.Err()
}

const documentColumns = `id, title, category, subcategory, doc_type, status,
	priority, department, url, description, date_published, tags,
	content_hash, last_verified`

const prefixedDocumentColumns = `d.id, d.title, d.category, d.subcategory,
	d.doc_type, d.status, d.priority, d.department, d.url, d.description,
	d.date_published, d.tags, d.content_hash, d.last_verified`

type scanner interface {
	Scan(dest ...any) error
}

func scanInto(sc scanner, doc *osloplan.Document, lastVerified *string) error {
	return sc.Scan(&doc.ID, &doc.Title, &doc.Category, &doc.Subcategory,
		&doc.DocType, &doc.Status, &doc.Priority, &doc.Department, &doc.URL,
		&doc.Description, &doc.DatePublished, &doc.Tags, &doc.ContentHash,
		lastVerified)
}

func scanDocument(rows *sql.Rows) (*osloplan.Document, error) {
	var doc osloplan.Document
	var lastVerified string
	if err := scanInto(rows, &doc, &lastVerified); err != nil {
		return nil, err
	}
	var err error
	doc.LastVerified, err = parseRFC3339(lastVerified, "last_verified")
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func scanDocumentRow(row *sql.Row) (*osloplan.Document, error) {
	var doc osloplan.Document
	var lastVerified string
	if err := scanInto(row, &doc, &lastVerified); err != nil {
		return nil, err
	}
	var err error
	doc.LastVerified, err = parseRFC3339(lastVerified, "last_verified")
	if err != nil {
		return nil, err
	}
	return &doc, nil
}
