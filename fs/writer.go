// Package fs writes file-based snapshots of the document catalog.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/mkleven/osloplan"
)

// Slug converts a document title or category to a filesystem-safe name.
// Norwegian letters are transliterated so snapshots travel well across
// filesystems and archives.
// Example: "Kommunedelplan for klima og energi" → kommunedelplan-for-klima-og-energi
func Slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	replacer := strings.NewReplacer("æ", "ae", "ø", "oe", "å", "aa")
	s = replacer.Replace(s)

	var b strings.Builder
	lastDash := true
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// DocPath returns the snapshot file path for a document, relative to the
// snapshot root. Documents are grouped in one directory per category.
func DocPath(doc *osloplan.Document) string {
	return filepath.Join(Slug(doc.Category), Slug(doc.Title)+".md")
}

// FormatDocument formats a document as markdown with YAML frontmatter.
func FormatDocument(doc *osloplan.Document) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("title: ")
	b.WriteString(doc.Title)
	b.WriteString("\ncategory: ")
	b.WriteString(doc.Category)
	b.WriteString("\nstatus: ")
	b.WriteString(doc.Status)
	b.WriteString("\ndepartment: ")
	b.WriteString(doc.Department)
	b.WriteString("\nsource: ")
	b.WriteString(doc.URL)
	if !doc.LastVerified.IsZero() {
		b.WriteString("\nverified: ")
		b.WriteString(doc.LastVerified.Format("2006-01-02"))
	}
	b.WriteString("\n---\n\n")
	b.WriteString(doc.Description)
	b.WriteString("\n")
	return b.String()
}

// Ensure Writer implements osloplan.SnapshotWriter at compile time.
var _ osloplan.SnapshotWriter = (*Writer)(nil)

// Writer writes catalog documents as markdown files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteDocument writes one document to disk as a markdown file.
func (w *Writer) WriteDocument(ctx context.Context, doc *osloplan.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, DocPath(doc))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, []byte(FormatDocument(doc)), 0644)
}

// WriteCatalog writes every document. It stops at the first failure.
func (w *Writer) WriteCatalog(ctx context.Context, docs []*osloplan.Document) error {
	for _, doc := range docs {
		if err := w.WriteDocument(ctx, doc); err != nil {
			return err
		}
	}
	return nil
}
