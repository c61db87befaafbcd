package osloplan

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"net/url"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Document represents a single verified planning document published by
// Oslo kommune.
type Document struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Category      string    `json:"category"`
	Subcategory   string    `json:"subcategory"`
	DocType       string    `json:"docType"`
	Status        string    `json:"status"`
	Priority      int       `json:"priority"`
	Department    string    `json:"department"`
	URL           string    `json:"url"`
	Description   string    `json:"description"`
	DatePublished string    `json:"datePublished"`
	Tags          string    `json:"tags"`
	ContentHash   string    `json:"contentHash"`
	LastVerified  time.Time `json:"lastVerified"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Title == "" {
		return Errorf(EINVALID, "document title required")
	}
	if !ValidCategory(d.Category) {
		return Errorf(EINVALID, "document %q has unknown category %q", d.Title, d.Category)
	}
	if d.URL == "" {
		return Errorf(EINVALID, "document %q has no URL", d.Title)
	}
	u, err := url.Parse(d.URL)
	if err != nil || !u.IsAbs() || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return Errorf(EINVALID, "document %q has malformed URL %q", d.Title, d.URL)
	}
	return nil
}

// HashContent computes the deduplication fingerprint for a document from
// its normalized title and URL. The same title+URL pair always produces
// the same hash regardless of letter case or surrounding whitespace.
func HashContent(title, urlStr string) string {
	normalized := strings.ToLower(strings.TrimSpace(title)) + "\n" + strings.ToLower(strings.TrimSpace(urlStr))
	h := xxhash.Sum64String(normalized)
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, h)
	return hex.EncodeToString(b)
}

// SeedReport summarizes the outcome of seeding the catalog from a
// fixture list.
type SeedReport struct {
	Loaded   int              `json:"loaded"`
	Skipped  int              `json:"skipped"`
	Rejected []RejectedRecord `json:"rejected,omitempty"`
}

// RejectedRecord describes a fixture entry that failed validation at load
// time. The title is included so the offending record can be located.
type RejectedRecord struct {
	Title  string `json:"title"`
	Reason string `json:"reason"`
}

// DocumentFilter represents a filter for FindDocuments.
type DocumentFilter struct {
	ID         *string `json:"id"`
	Category   *string `json:"category"`
	Status     *string `json:"status"`
	Department *string `json:"department"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// SearchResult pairs a document with its relevance score for a query.
type SearchResult struct {
	Document *Document `json:"document"`
	Score    int       `json:"score"`
}

// Statistics aggregates document counts for the dashboard KPI cards.
type Statistics struct {
	Total             int            `json:"total"`
	ByCategory        map[string]int `json:"byCategory"`
	ByStatus          map[string]int `json:"byStatus"`
	CompletionPercent float64        `json:"completionPercent"`
}

// IntegrityReport is the result of a full catalog integrity check.
type IntegrityReport struct {
	Checked    int             `json:"checked"`
	Mismatches []HashMismatch  `json:"mismatches,omitempty"`
	Duplicates []DuplicatePair `json:"duplicates,omitempty"`
}

// Clean reports whether the check found no problems.
func (r *IntegrityReport) Clean() bool {
	return len(r.Mismatches) == 0 && len(r.Duplicates) == 0
}

// HashMismatch describes a stored document whose persisted hash no longer
// matches the hash recomputed from its fields. This indicates external
// mutation of the backing store.
type HashMismatch struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Stored   string `json:"stored"`
	Computed string `json:"computed"`
}

// DuplicatePair describes two stored documents sharing a content hash.
type DuplicatePair struct {
	Hash        string `json:"hash"`
	FirstID     string `json:"firstId"`
	FirstTitle  string `json:"firstTitle"`
	SecondID    string `json:"secondId"`
	SecondTitle string `json:"secondTitle"`
}

// CatalogService represents a service for managing the planning document
// catalog.
type CatalogService interface {
	// Seed loads the given documents into an empty catalog, computing
	// content hashes and skipping duplicates. Seeding an already populated
	// catalog is a no-op that reports zero loaded records.
	Seed(ctx context.Context, docs []*Document) (*SeedReport, error)

	// FindDocumentByID retrieves a document by ID.
	// Returns ENOTFOUND if the document does not exist.
	FindDocumentByID(ctx context.Context, id string) (*Document, error)

	// FindDocuments retrieves documents matching the filter, ordered by
	// category display order, then title. Returns EINVALID if the filter
	// names an unknown category.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)

	// SearchDocuments returns documents whose title, category, or
	// department contains the query (case-insensitive), best match first.
	// An empty query returns every document.
	SearchDocuments(ctx context.Context, query string) ([]*SearchResult, error)

	// Statistics computes aggregate counts over the stored documents.
	Statistics(ctx context.Context) (*Statistics, error)

	// VerifyIntegrity recomputes every stored content hash and checks
	// hash uniqueness.
	VerifyIntegrity(ctx context.Context) (*IntegrityReport, error)

	// MarkVerified records a successful link check for a document.
	MarkVerified(ctx context.Context, id string, at time.Time) error

	// Reset destroys all stored documents so the catalog can be reseeded.
	Reset(ctx context.Context) error
}

// SnapshotWriter persists catalog documents outside the primary store so
// the catalog can be browsed offline or archived.
type SnapshotWriter interface {
	// WriteDocument persists a single document.
	WriteDocument(ctx context.Context, doc *Document) error

	// WriteCatalog persists every given document, stopping at the first
	// failure.
	WriteCatalog(ctx context.Context, docs []*Document) error
}
