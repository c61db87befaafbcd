// Package slog provides logging decorators for osloplan services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/mkleven/osloplan"
)

// Ensure LoggingCatalogService implements osloplan.CatalogService.
var _ osloplan.CatalogService = (*LoggingCatalogService)(nil)

// LoggingCatalogService wraps a CatalogService with operation logging.
type LoggingCatalogService struct {
	next   osloplan.CatalogService
	logger *slog.Logger
}

// NewLoggingCatalogService creates a new LoggingCatalogService.
func NewLoggingCatalogService(next osloplan.CatalogService, logger *slog.Logger) *LoggingCatalogService {
	return &LoggingCatalogService{next: next, logger: logger}
}

// Seed delegates to the wrapped service and logs the seed outcome.
func (s *LoggingCatalogService) Seed(ctx context.Context, docs []*osloplan.Document) (*osloplan.SeedReport, error) {
	begin := time.Now()
	report, err := s.next.Seed(ctx, docs)
	if err != nil {
		s.logger.Error("catalog seed failed", "error", err)
		return nil, err
	}
	s.logger.Info("catalog seeded",
		"loaded", report.Loaded,
		"skipped", report.Skipped,
		"rejected", len(report.Rejected),
		"duration", time.Since(begin),
	)
	for _, r := range report.Rejected {
		s.logger.Warn("fixture record rejected", "title", r.Title, "reason", r.Reason)
	}
	return report, nil
}

// FindDocumentByID delegates to the wrapped service.
func (s *LoggingCatalogService) FindDocumentByID(ctx context.Context, id string) (*osloplan.Document, error) {
	return s.next.FindDocumentByID(ctx, id)
}

// FindDocuments delegates to the wrapped service.
func (s *LoggingCatalogService) FindDocuments(ctx context.Context, filter osloplan.DocumentFilter) ([]*osloplan.Document, error) {
	return s.next.FindDocuments(ctx, filter)
}

// SearchDocuments delegates to the wrapped service and logs the query
// with its hit count.
func (s *LoggingCatalogService) SearchDocuments(ctx context.Context, query string) ([]*osloplan.SearchResult, error) {
	begin := time.Now()
	results, err := s.next.SearchDocuments(ctx, query)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("catalog search",
		"query", query,
		"hits", len(results),
		"duration", time.Since(begin),
	)
	return results, nil
}

// Statistics delegates to the wrapped service.
func (s *LoggingCatalogService) Statistics(ctx context.Context) (*osloplan.Statistics, error) {
	return s.next.Statistics(ctx)
}

// VerifyIntegrity delegates to the wrapped service and logs any detected
// problems.
func (s *LoggingCatalogService) VerifyIntegrity(ctx context.Context) (*osloplan.IntegrityReport, error) {
	report, err := s.next.VerifyIntegrity(ctx)
	if err != nil {
		return nil, err
	}
	if report.Clean() {
		s.logger.Info("integrity check passed", "checked", report.Checked)
		return report, nil
	}
	for _, m := range report.Mismatches {
		s.logger.Warn("content hash mismatch",
			"id", m.ID, "title", m.Title, "stored", m.Stored, "computed", m.Computed)
	}
	for _, d := range report.Duplicates {
		s.logger.Warn("duplicate content hash",
			"hash", d.Hash, "first", d.FirstTitle, "second", d.SecondTitle)
	}
	return report, nil
}

// MarkVerified delegates to the wrapped service.
func (s *LoggingCatalogService) MarkVerified(ctx context.Context, id string, at time.Time) error {
	return s.next.MarkVerified(ctx, id, at)
}

// Reset delegates to the wrapped service and logs the reset.
func (s *LoggingCatalogService) Reset(ctx context.Context) error {
	if err := s.next.Reset(ctx); err != nil {
		return err
	}
	s.logger.Info("catalog reset")
	return nil
}
