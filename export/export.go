// Package export serializes catalog documents for download and backup.
// The dashboard offers the same three formats the documents are consumed
// in by external tools: CSV, JSON, and an Excel workbook.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/mkleven/osloplan"
)

var csvHeader = []string{
	"id", "title", "category", "subcategory", "doc_type", "status",
	"priority", "department", "url", "description", "date_published",
	"tags", "content_hash", "last_verified",
}

func csvRecord(doc *osloplan.Document) []string {
	return []string{
		doc.ID, doc.Title, doc.Category, doc.Subcategory, doc.DocType,
		doc.Status, strconv.Itoa(doc.Priority), doc.Department, doc.URL,
		doc.Description, doc.DatePublished, doc.Tags, doc.ContentHash,
		doc.LastVerified.Format(time.RFC3339),
	}
}

// WriteCSV writes the documents as CSV with a header row.
func WriteCSV(w io.Writer, docs []*osloplan.Document) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, doc := range docs {
		if err := cw.Write(csvRecord(doc)); err != nil {
			return fmt.Errorf("failed to write CSV record for %q: %w", doc.Title, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the documents as an indented JSON array.
func WriteJSON(w io.Writer, docs []*osloplan.Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(docs); err != nil {
		return fmt.Errorf("failed to encode documents: %w", err)
	}
	return nil
}
